package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                      { return g.id }
func (g *stubGame) Title() string                   { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)        {}
func (g *stubGame) Step(core.Frame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)             {}
func (g *stubGame) State() core.GameState           { return core.GameState{} }
func (g *stubGame) MaxFrameDelta() time.Duration    { return 50 * time.Millisecond }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatalf("Exists(zz-stub-a) = false")
	}
	if Exists("nope") {
		t.Fatalf("Exists(nope) = true")
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Fatalf("created %q", g.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Fatalf("Create(nope) returned no error")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-stub-b" {
			found = info.Title == "Stub zz-stub-b"
		}
	}
	if !found {
		t.Fatalf("zz-stub-b missing or untitled in %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate registration did not panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "a short pitch" }

func TestRegisterKeepsDescription(t *testing.T) {
	Register("zz-described", func() Game { return &describedGame{stubGame{id: "zz-described"}} })

	for _, info := range List() {
		if info.ID == "zz-described" {
			if info.Description != "a short pitch" {
				t.Errorf("Description = %q", info.Description)
			}
			return
		}
	}
	t.Fatal("zz-described not listed")
}
