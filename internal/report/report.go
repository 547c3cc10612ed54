// Package report renders what the pipeline produced: a model summary for the
// operator and the investment sheet the optimizer run will be judged against.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vk/enflow/internal/busreg"
	"github.com/vk/enflow/internal/model"
)

// ModelSummary is the operator-facing digest of an assembled graph.
type ModelSummary struct {
	RunID         string         `json:"run_id" yaml:"run_id"`
	Start         time.Time      `json:"start" yaml:"start"`
	End           time.Time      `json:"end" yaml:"end"`
	Steps         int            `json:"steps" yaml:"steps"`
	Nodes         int            `json:"nodes" yaml:"nodes"`
	Buses         int            `json:"buses" yaml:"buses"`
	NodesByKind   map[string]int `json:"nodes_by_kind" yaml:"nodes_by_kind"`
	IsolatedBuses []string       `json:"isolated_buses,omitempty" yaml:"isolated_buses,omitempty"`
}

// InvestmentLine describes one capacity-bearing component.
type InvestmentLine struct {
	Label         string  `json:"label" yaml:"label"`
	Kind          string  `json:"kind" yaml:"kind"`
	Investment    bool    `json:"investment" yaml:"investment"`
	Capacity      float64 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Maximum       float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Minimum       float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Existing      float64 `json:"existing,omitempty" yaml:"existing,omitempty"`
	EPCosts       float64 `json:"ep_costs,omitempty" yaml:"ep_costs,omitempty"`
	MaxAnnualCost float64 `json:"max_annual_cost,omitempty" yaml:"max_annual_cost,omitempty"`
}

// InvestmentSummary lists all capacity decisions the optimizer will face.
type InvestmentSummary struct {
	RunID string           `json:"run_id" yaml:"run_id"`
	Lines []InvestmentLine `json:"lines" yaml:"lines"`
}

// Summarize builds the model digest from a graph and its connectivity report.
func Summarize(g *model.Graph, conn busreg.Report) ModelSummary {
	start, end := g.TimeBase().Span()
	byKind := make(map[string]int)
	for _, n := range g.Nodes() {
		byKind[n.Kind().String()]++
	}
	return ModelSummary{
		RunID:         g.RunID().String(),
		Start:         start,
		End:           end,
		Steps:         g.TimeBase().Steps(),
		Nodes:         g.Len(),
		Buses:         len(g.BusLabels()),
		NodesByKind:   byKind,
		IsolatedBuses: conn.Isolated(),
	}
}

// Investments builds the investment sheet: one line per capacity-bearing
// component, sorted by label.
func Investments(g *model.Graph) InvestmentSummary {
	summary := InvestmentSummary{RunID: g.RunID().String()}
	for _, comp := range g.Components() {
		holder, ok := comp.(model.CapacityHolder)
		if !ok {
			continue
		}
		desc := holder.PrimaryCapacity()
		if desc == nil {
			continue
		}
		line := InvestmentLine{
			Label: comp.Label(),
			Kind:  comp.Kind().String(),
		}
		switch desc.Kind {
		case model.CapacityExisting:
			line.Capacity = desc.Value
		case model.CapacityInvestment:
			line.Investment = true
			line.Maximum = desc.Maximum
			line.Minimum = desc.Minimum
			line.EPCosts = desc.EPCosts
			line.MaxAnnualCost = desc.Maximum * desc.EPCosts
			if desc.HasExisting {
				line.Existing = desc.Existing
			}
		}
		summary.Lines = append(summary.Lines, line)
	}
	sort.Slice(summary.Lines, func(i, j int) bool {
		return summary.Lines[i].Label < summary.Lines[j].Label
	})
	return summary
}

// WriteJSON renders any report value as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteYAML renders any report value as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
