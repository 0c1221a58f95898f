// ABOUTME: Estimation result shapes exposed to the rendering layer
// ABOUTME: Maps the service response into summary and ordered service groups

package estimator

import (
	"encoding/json"

	"github.com/katyalpiyush/workload-estimator-poc/internal/client"
	"github.com/shopspring/decimal"
)

// Summary is the top-level recommendation digest
type Summary struct {
	ClusterOption     string   `json:"cluster_option"`
	NodesAllocated    int64    `json:"nodes_allocated"`
	ServiceGroupCount int64    `json:"service_groups"`
	Services          []string `json:"services"`
	WorkloadType      string   `json:"workload_type"`
}

// ServiceGroup is one set of co-located services and its resource estimates
type ServiceGroup struct {
	Services          []string        `json:"services"`
	Nodes             int64           `json:"nodes"`
	EstimatedRAMGB    decimal.Decimal `json:"estimated_ram"`
	EstimatedCPUVCPUs decimal.Decimal `json:"estimated_cpu"`
	DiskType          string          `json:"disk_type"`
	EstimatedDiskGB   decimal.Decimal `json:"estimated_disk"`
	EstimatedDiskIO   decimal.Decimal `json:"estimated_disk_io"`
}

// MarshalJSON writes the figures as JSON numbers under the service's keys
func (g ServiceGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Services        []string    `json:"services"`
		Nodes           int64       `json:"nodes"`
		EstimatedRAM    json.Number `json:"estimated_ram"`
		EstimatedCPU    json.Number `json:"estimated_cpu"`
		DiskType        string      `json:"disk_type"`
		EstimatedDisk   json.Number `json:"estimated_disk"`
		EstimatedDiskIO json.Number `json:"estimated_disk_io"`
	}{
		Services:        g.Services,
		Nodes:           g.Nodes,
		EstimatedRAM:    json.Number(g.EstimatedRAMGB.String()),
		EstimatedCPU:    json.Number(g.EstimatedCPUVCPUs.String()),
		DiskType:        g.DiskType,
		EstimatedDisk:   json.Number(g.EstimatedDiskGB.String()),
		EstimatedDiskIO: json.Number(g.EstimatedDiskIO.String()),
	})
}

// EstimationResult is the latest successful recommendation.
// Summary is nil when the service omitted it.
type EstimationResult struct {
	Summary       *Summary       `json:"summary,omitempty"`
	ServiceGroups []ServiceGroup `json:"service_groups_results"`
}

// IsEmpty reports whether there is nothing to show
func (r EstimationResult) IsEmpty() bool {
	return len(r.ServiceGroups) == 0
}

// Clone returns a deep copy sharing no slices with r
func (r EstimationResult) Clone() EstimationResult {
	out := EstimationResult{}
	if r.Summary != nil {
		s := *r.Summary
		s.Services = cloneStrings(r.Summary.Services)
		out.Summary = &s
	}
	if r.ServiceGroups != nil {
		out.ServiceGroups = make([]ServiceGroup, len(r.ServiceGroups))
		for i, g := range r.ServiceGroups {
			g.Services = cloneStrings(g.Services)
			out.ServiceGroups[i] = g
		}
	}
	return out
}

func resultFromResponse(resp *client.EstimateResponse) EstimationResult {
	out := EstimationResult{
		ServiceGroups: make([]ServiceGroup, 0, len(resp.ServiceGroupsResults)),
	}
	if s := resp.Summary; s != nil {
		out.Summary = &Summary{
			ClusterOption:     s.ClusterOption,
			NodesAllocated:    s.NodesAllocated,
			ServiceGroupCount: s.ServiceGroups,
			Services:          cloneStrings(s.Services),
			WorkloadType:      s.WorkloadType,
		}
	}
	for _, g := range resp.ServiceGroupsResults {
		out.ServiceGroups = append(out.ServiceGroups, ServiceGroup{
			Services:          cloneStrings(g.Services),
			Nodes:             g.Nodes,
			EstimatedRAMGB:    g.EstimatedRAM,
			EstimatedCPUVCPUs: g.EstimatedCPU,
			DiskType:          g.DiskType,
			EstimatedDiskGB:   g.EstimatedDisk,
			EstimatedDiskIO:   g.EstimatedDiskIO,
		})
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
