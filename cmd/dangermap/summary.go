package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kass/go-danger-map/pkg/dangermap"
	"github.com/kass/go-danger-map/pkg/models"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6")).
			Background(lipgloss.Color("#282A36")).
			Padding(0, 1)

	safeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(1, 2)

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))
)

func renderSummary(res *dangermap.Result) string {
	rendered := len(res.Markers) - len(res.Skipped())

	stats := fmt.Sprintf(
		"Center: %s\n"+
			"Radius: %s m\n"+
			"Incidents drawn: %s of %s\n"+
			"Segments: %s\n"+
			"Dangerous homes: %s of %s",
		statStyle.Render(res.Zone.Center.String()),
		statStyle.Render(fmt.Sprintf("%.0f", res.Zone.RadiusMeters)),
		statStyle.Render(fmt.Sprintf("%d", rendered)),
		statStyle.Render(fmt.Sprintf("%d", len(res.Markers))),
		statStyle.Render(fmt.Sprintf("%d", res.Segments)),
		statStyle.Render(fmt.Sprintf("%d", res.Dangerous())),
		statStyle.Render(fmt.Sprintf("%d", len(res.Assessments))),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Danger zone"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(stats))

	if skipped := res.Skipped(); len(skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Please check that every location has a street name:"))
		for _, m := range skipped {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("• " + m.Reason))
		}
	}

	return b.String()
}

func renderAssessments(res *dangermap.Result) string {
	var b strings.Builder
	for i, a := range res.Assessments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%2d. %s %8.1f m  %s",
			i+1, a.Home.Location, a.DistanceMeters, renderSafety(a.Safety))
	}
	return b.String()
}

func renderSafety(s models.Safety) string {
	if s == models.Dangerous {
		return dangerStyle.Render(s.String())
	}
	return safeStyle.Render(s.String())
}
