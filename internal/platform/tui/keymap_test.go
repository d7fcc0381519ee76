package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beer-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func hasAction(actions []core.Action, a core.Action) bool {
	for _, got := range actions {
		if got == a {
			return true
		}
	}
	return false
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space jumps and drinks", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump, core.ActionDrink}},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump}},
		{"w jumps", runeKey('w'), []core.Action{core.ActionJump}},
		{"left tilts", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"a tilts", runeKey('a'), []core.Action{core.ActionLeft}},
		{"right tilts", tea.KeyMsg{Type: tea.KeyRight}, []core.Action{core.ActionRight}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}},
		{"r restarts", runeKey('r'), []core.Action{core.ActionRestart}},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit {
				t.Fatal("unexpected quit")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("MapKey() = %v, want %v", got, tt.want)
			}
			for _, a := range tt.want {
				if !hasAction(got, a) {
					t.Errorf("MapKey() = %v, missing %v", got, a)
				}
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		actions, quit := km.MapKey(msg)
		if !quit {
			t.Errorf("MapKey(%q) did not quit", msg.String())
		}
		if !hasAction(actions, core.ActionQuit) {
			t.Errorf("MapKey(%q) = %v, want Quit", msg.String(), actions)
		}
	}
}

func TestMapKeyUnbound(t *testing.T) {
	km := NewKeyMapper()
	actions, quit := km.MapKey(runeKey('z'))
	if quit || len(actions) != 0 {
		t.Errorf("MapKey(z) = %v, %v; want nothing", actions, quit)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for _, row := range keys.FullHelp() {
		for _, b := range row {
			if b.Help().Key == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
