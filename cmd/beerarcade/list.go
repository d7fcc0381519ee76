package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beer-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bar's games",
	Long:  `Shows every registered game with a one-line description.`,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("The bar is closed: no games registered.")
		return
	}

	fmt.Println(gameTable(games))
	fmt.Println()
	fmt.Println("Run 'beerarcade play <id>' to play, or 'beerarcade menu' to pick one.")
}

// gameTable renders the registered games as an ID / title / description table.
func gameTable(games []registry.GameInfo) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "ABOUT").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return listHeaderStyle.Padding(0, 1)
			}
			return s
		})
	for _, g := range games {
		about := g.Description
		if about == "" {
			about = "-"
		}
		t.Row(g.ID, g.Title, about)
	}
	return t
}
