package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/smallstring/pkg/core/health"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorInline  = lipgloss.Color("#10B981") // Emerald
	colorHeap    = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	inlineStyle = lipgloss.NewStyle().
			Foreground(colorInline)

	heapStyle = lipgloss.NewStyle().
			Foreground(colorHeap).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorInline).
		Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// modeStyle returns the style for a storage mode name
func modeStyle(mode string) lipgloss.Style {
	if mode == "heap" {
		return heapStyle
	}
	return inlineStyle
}

// renderTable lays out rows in padded columns. Cells may carry styles, so
// widths are measured with lipgloss.Width.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	line := func(cells []string, style *lipgloss.Style) {
		for i, cell := range cells {
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		b.WriteByte('\n')
	}

	line(header, &headerStyle)
	for _, row := range rows {
		line(row, nil)
	}
	return b.String()
}

func statusStyle(status health.Status) lipgloss.Style {
	switch status {
	case health.StatusHealthy:
		return okStyle
	case health.StatusUnhealthy:
		return errorStyle
	default:
		return heapStyle
	}
}
