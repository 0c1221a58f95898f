// ABOUTME: Tests for the recommendation view
// ABOUTME: Verifies empty state, summary rendering, and service group row order

package recommendation

import (
	"strings"
	"testing"

	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() estimator.EstimationResult {
	return estimator.EstimationResult{
		Summary: &estimator.Summary{
			ClusterOption:     "Custom",
			NodesAllocated:    5,
			ServiceGroupCount: 2,
			Services:          []string{"data", "index", "query", "search"},
			WorkloadType:      "read",
		},
		ServiceGroups: []estimator.ServiceGroup{
			{
				Services:          []string{"data", "index", "query"},
				Nodes:             3,
				EstimatedRAMGB:    decimal.RequireFromString("64"),
				EstimatedCPUVCPUs: decimal.RequireFromString("16"),
				DiskType:          "gp3",
				EstimatedDiskGB:   decimal.RequireFromString("50"),
				EstimatedDiskIO:   decimal.RequireFromString("3000"),
			},
			{
				Services:          []string{"search"},
				Nodes:             2,
				EstimatedRAMGB:    decimal.RequireFromString("32.5"),
				EstimatedCPUVCPUs: decimal.RequireFromString("8"),
				DiskType:          "gp3",
				EstimatedDiskGB:   decimal.RequireFromString("120"),
				EstimatedDiskIO:   decimal.RequireFromString("3500"),
			},
		},
	}
}

func TestView_EmptyState(t *testing.T) {
	out := New(estimator.EstimationResult{}, 100).View()
	assert.Contains(t, out, "Recommended Configuration")
	assert.Contains(t, out, "Start entering the information")
}

func TestView_WithSummary(t *testing.T) {
	out := New(sampleResult(), 120).View()
	assert.Contains(t, out, "Custom")
	assert.Contains(t, out, "Nodes")
	assert.Contains(t, out, "data, index, query")
	assert.Contains(t, out, "32.5")
	assert.NotContains(t, out, EmptyStateMsg)
}

func TestView_SummaryAbsentRendersGroupsAlone(t *testing.T) {
	result := sampleResult()
	result.Summary = nil

	out := New(result, 120).View()
	assert.Contains(t, out, "Resource Estimates")
	assert.Contains(t, out, "search")
	assert.NotContains(t, out, "Cluster")
}

func TestRows_PreserveOrder(t *testing.T) {
	rows := Rows(sampleResult().ServiceGroups)
	require.Len(t, rows, 2)
	assert.Equal(t, "data, index, query", rows[0][0])
	assert.Equal(t, "search", rows[1][0])
	assert.Equal(t, "3", rows[0][1])
	assert.Equal(t, "32.5", rows[1][2])
	for _, row := range rows {
		assert.Len(t, row, len(Columns(80)))
	}
}

func TestColumns_GroupColumnFillsWidth(t *testing.T) {
	cols := Columns(80)
	assert.Equal(t, 80-fixedColumnsWidth, cols[0].Width)
	assert.Equal(t, 12, Columns(20)[0].Width)
}

func TestGroupName_NoServices(t *testing.T) {
	assert.Equal(t, "(no services)", GroupName(estimator.ServiceGroup{}))
	assert.False(t, strings.Contains(GroupName(estimator.ServiceGroup{Services: []string{"data"}}), ","))
}
