// ABOUTME: Recommendation view showing the estimation summary and service groups
// ABOUTME: Renders metric blocks, a service group table, or the empty state

package recommendation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/icons"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/styles"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/widgets"
)

// EmptyStateMsg is shown until a recommendation is available
const EmptyStateMsg = "Start entering the information to get your recommendation here."

// Recommendation displays the latest estimation result
type Recommendation struct {
	result estimator.EstimationResult
	width  int
}

// New creates a new recommendation view
func New(result estimator.EstimationResult, width int) *Recommendation {
	return &Recommendation{
		result: result,
		width:  width,
	}
}

// View renders the recommendation
func (r *Recommendation) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Recommended Configuration"))
	sb.WriteString("\n")

	if r.result.IsEmpty() {
		sb.WriteString(styles.Subtitle.Render(EmptyStateMsg))
		return lipgloss.NewStyle().Width(r.width).Render(sb.String())
	}

	if s := r.result.Summary; s != nil {
		sb.WriteString(r.renderSummary(s))
		sb.WriteString("\n\n")
	}

	sb.WriteString(styles.Subtitle.Render("Resource Estimates"))
	sb.WriteString("\n")
	sb.WriteString(r.renderTable())

	return lipgloss.NewStyle().Width(r.width).Render(sb.String())
}

func (r *Recommendation) renderSummary(s *estimator.Summary) string {
	cfg := widgets.DefaultMetricBlockConfig()
	blocks := []string{
		widgets.MetricBlock(icons.Settings, "Cluster", s.ClusterOption, s.WorkloadType, cfg),
		widgets.CountBlock(icons.Server, "Nodes", s.NodesAllocated, "allocated", cfg),
		widgets.CountBlock(icons.Group, "Groups", s.ServiceGroupCount, "service groups", cfg),
	}

	var rows []string
	if r.width > 0 && r.width < cfg.Width*len(blocks) {
		rows = blocks
	} else {
		rows = []string{lipgloss.JoinHorizontal(lipgloss.Top, blocks...)}
	}

	services := "Services: " + styles.ValueStyle.Render(strings.Join(s.Services, ", "))
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, services)...)
}

// Fixed column widths plus one cell of padding on each side of every column
const fixedColumnsWidth = 5 + 8 + 10 + 5 + 9 + 8 + 7*2

// Columns returns the service group table layout for the given width.
// The service group column takes whatever the figures leave over.
func Columns(width int) []table.Column {
	return []table.Column{
		{Title: "Service Group", Width: max(12, width-fixedColumnsWidth)},
		{Title: "Nodes", Width: 5},
		{Title: "RAM (GB)", Width: 8},
		{Title: "CPU (vCPU)", Width: 10},
		{Title: "Disk", Width: 5},
		{Title: "Disk (GB)", Width: 9},
		{Title: "Disk I/O", Width: 8},
	}
}

// Rows converts service groups to table rows in result order
func Rows(groups []estimator.ServiceGroup) []table.Row {
	rows := make([]table.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, table.Row{
			GroupName(g),
			fmt.Sprintf("%d", g.Nodes),
			g.EstimatedRAMGB.String(),
			g.EstimatedCPUVCPUs.String(),
			g.DiskType,
			g.EstimatedDiskGB.String(),
			g.EstimatedDiskIO.String(),
		})
	}
	return rows
}

// GroupName labels a service group by its services
func GroupName(g estimator.ServiceGroup) string {
	if len(g.Services) == 0 {
		return "(no services)"
	}
	return strings.Join(g.Services, ", ")
}

func (r *Recommendation) renderTable() string {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Foreground(styles.Accent).
		Bold(true)
	// Selection has no meaning in a read-only view
	tableStyles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(Columns(r.width)),
		table.WithRows(Rows(r.result.ServiceGroups)),
		table.WithHeight(len(r.result.ServiceGroups)+2),
		table.WithFocused(false),
		table.WithStyles(tableStyles),
	)
	return t.View()
}
