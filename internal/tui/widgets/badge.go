// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Maps estimator lifecycle states to colored inline badges

package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusWarning:
		bg, fg = BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	case StatusInfo:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	default:
		bg, fg = BadgeNeutralBg, BadgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StateLevel returns the badge level for a controller state
func StateLevel(s estimator.State) StatusLevel {
	switch s {
	case estimator.StateSucceeded:
		return StatusOK
	case estimator.StateInvalid:
		return StatusWarning
	case estimator.StateFailed:
		return StatusCritical
	case estimator.StatePending:
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// StateBadge renders the controller state as a badge
func StateBadge(s estimator.State) string {
	return Badge(s.String(), StateLevel(s))
}
