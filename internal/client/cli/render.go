package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

// Column widths for list tables. Identifier columns fit a UUID; text
// columns are truncated to keep rows on one line.
const (
	columnWidthID   = 36
	columnWidthName = 24
	columnWidthType = 14
	columnWidthDate = 10
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Width(16)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func pad(s string, width int) string {
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

func errorLine(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

func okLine(msg string) string {
	return okStyle.Render("✓ " + msg)
}

// renderActorTable renders threat actors as an aligned table with a styled
// header row. An empty collection renders a muted placeholder instead.
func renderActorTable(actors []models.ThreatActor) string {
	if len(actors) == 0 {
		return mutedStyle.Render("No threat actors recorded.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(
		pad("ID", columnWidthID) + "  " + pad("NAME", columnWidthName) + "  " +
			pad("TYPE", columnWidthType) + "  " + pad("LAST ACTIVITY", columnWidthDate)))
	b.WriteString("\n")
	for _, a := range actors {
		b.WriteString(idStyle.Render(pad(a.ActorID, columnWidthID)))
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(pad(a.Name, columnWidthName)))
		b.WriteString("  ")
		b.WriteString(pad(a.Type, columnWidthType))
		b.WriteString("  ")
		b.WriteString(pad(a.LastActivity, columnWidthDate))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderActorDetail renders a read-only projection of one threat actor.
func renderActorDetail(a models.ThreatActor) string {
	lines := []struct{ label, value string }{
		{"ID", a.ActorID},
		{"Name", a.Name},
		{"Type", a.Type},
		{"Description", a.Description},
		{"Origin Country", a.OriginCountry},
		{"First Observed", a.FirstObserved},
		{"Last Activity", a.LastActivity},
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(l.label), l.value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderIncidentTable renders incident logs as an aligned table.
func renderIncidentTable(logs []models.IncidentLog) string {
	if len(logs) == 0 {
		return mutedStyle.Render("No incidents recorded.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(
		pad("ID", columnWidthID) + "  " + pad("DATE", columnWidthDate) + "  " + "TITLE"))
	b.WriteString("\n")
	for _, l := range logs {
		b.WriteString(idStyle.Render(pad(l.LogID, columnWidthID)))
		b.WriteString("  ")
		b.WriteString(pad(l.Date, columnWidthDate))
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(l.Title))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderIncidentDetail renders a read-only projection of one incident log.
func renderIncidentDetail(l models.IncidentLog) string {
	lines := []struct{ label, value string }{
		{"ID", l.LogID},
		{"Title", l.Title},
		{"Date", l.Date},
		{"Description", l.Description},
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(line.label), line.value))
	}
	return strings.TrimRight(b.String(), "\n")
}
