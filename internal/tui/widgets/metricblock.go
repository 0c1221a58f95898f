// ABOUTME: Compact metric block widget for the recommendation summary
// ABOUTME: Renders an icon, title, value, and subtitle in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/icons"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/styles"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       22,
		BorderColor: styles.Muted,
		TitleColor:  styles.Primary,
		ValueColor:  styles.Text,
	}
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title string, value string, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 22
	}

	// Border + padding
	innerWidth := config.Width - 4

	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)
	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)

	topBorder := fmt.Sprintf("┌─ %s %s┐",
		titleStyle.Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1)))

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	valueLine := "│  " + pad(valueStyle.Render(truncate(value, innerWidth)), innerWidth) + "│"

	subtitleStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	subtitleLine := "│  " + pad(subtitleStyle.Render(truncate(subtitle, innerWidth)), innerWidth) + "│"

	bottomBorder := fmt.Sprintf("└%s┘", strings.Repeat("─", config.Width-2))

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder),
		borderStyle.Render(valueLine),
		borderStyle.Render(subtitleLine),
		borderStyle.Render(bottomBorder),
	}, "\n")
}

// CountBlock renders a simple count metric (nodes, service groups)
func CountBlock(icon icons.Icon, title string, count int64, label string, config MetricBlockConfig) string {
	return MetricBlock(icon, title, fmt.Sprintf("%d", count), label, config)
}

// pad right-fills a rendered string to width display cells
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
