package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dgallion1/devisqa/internal/agent"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	answerStyle = lipgloss.NewStyle().Padding(0, 1).Width(62)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

// renderAnswers lays out one table row per project.
func renderAnswers(answers []agent.Answer) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("PROJET", "RÉPONSE", "CONFIANCE", "SOURCES").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerStyle
			}
			if col == 1 {
				return answerStyle
			}
			return cellStyle
		})

	for _, a := range answers {
		t.Row(a.Project, a.Answer, fmt.Sprintf("%.2f", a.Confidence), formatSources(a.Sources))
	}

	return titleStyle.Render("Synthèse par projet") + "\n" + t.Render()
}

func formatSources(sources []agent.SourceAttribution) string {
	if len(sources) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		parts = append(parts, fmt.Sprintf("Page %d (score %.2f)", src.PageNumber, src.Score))
	}
	return strings.Join(parts, "\n")
}
