// ABOUTME: Tests for estimation result mapping and JSON output
// ABOUTME: Checks figures stay numeric under the service's field names

package estimator

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimationResult_JSONUsesNumbers(t *testing.T) {
	result := EstimationResult{
		ServiceGroups: []ServiceGroup{{
			Services:          []string{"search"},
			Nodes:             2,
			EstimatedRAMGB:    decimal.RequireFromString("32.5"),
			EstimatedCPUVCPUs: decimal.NewFromInt(8),
			DiskType:          "gp3",
			EstimatedDiskGB:   decimal.NewFromInt(120),
			EstimatedDiskIO:   decimal.NewFromInt(3500),
		}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "summary")

	groups, ok := raw["service_groups_results"].([]interface{})
	require.True(t, ok, "expected service_groups_results array in %s", data)
	require.Len(t, groups, 1)
	group := groups[0].(map[string]interface{})
	assert.Equal(t, 32.5, group["estimated_ram"])
	assert.Equal(t, float64(8), group["estimated_cpu"])
	assert.Equal(t, float64(120), group["estimated_disk"])
	assert.Equal(t, float64(3500), group["estimated_disk_io"])
	assert.Equal(t, float64(2), group["nodes"])
	assert.Equal(t, "gp3", group["disk_type"])
}

func TestEstimationResult_JSONRoundTripKeepsPrecision(t *testing.T) {
	in := EstimationResult{ServiceGroups: []ServiceGroup{{
		Services:       []string{"data"},
		EstimatedRAMGB: decimal.RequireFromString("0.125"),
	}}}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out EstimationResult
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.ServiceGroups, 1)
	assert.True(t, in.ServiceGroups[0].EstimatedRAMGB.Equal(out.ServiceGroups[0].EstimatedRAMGB))
}

func TestEstimationResult_CloneSharesNothing(t *testing.T) {
	in := EstimationResult{
		Summary:       &Summary{Services: []string{"data"}},
		ServiceGroups: []ServiceGroup{{Services: []string{"data"}}},
	}
	out := in.Clone()
	out.Summary.Services[0] = "changed"
	out.ServiceGroups[0].Services[0] = "changed"

	assert.Equal(t, "data", in.Summary.Services[0])
	assert.Equal(t, "data", in.ServiceGroups[0].Services[0])
}
