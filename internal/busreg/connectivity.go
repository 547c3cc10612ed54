package busreg

import (
	"sort"

	"github.com/vk/enflow/internal/model"
)

// BusStats counts the flows attached to one bus. Inbound counts flows feeding
// the bus, outbound counts flows drawing from it; ByKind breaks the
// connections down by component kind.
type BusStats struct {
	Inbound  int
	Outbound int
	ByKind   map[model.NodeKind]int
}

// Total returns the overall connection count of the bus.
func (s BusStats) Total() int { return s.Inbound + s.Outbound }

// Report is the connectivity health of a finished graph. Isolated buses are a
// warning, not a failure: an unconnected bus may be intentional scaffolding.
type Report struct {
	TotalBuses     int
	ConnectedBuses int
	PerBus         map[string]BusStats
}

// IsolatedCount returns the number of buses without any connection.
func (r Report) IsolatedCount() int { return r.TotalBuses - r.ConnectedBuses }

// Isolated returns the labels of unconnected buses in sorted order.
func (r Report) Isolated() []string {
	var labels []string
	for label, stats := range r.PerBus {
		if stats.Total() == 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Connectivity computes per-bus flow counts over the finished graph.
func Connectivity(g *model.Graph) Report {
	perBus := make(map[string]BusStats)
	for _, label := range g.BusLabels() {
		perBus[label] = BusStats{ByKind: make(map[model.NodeKind]int)}
	}

	for _, comp := range g.Components() {
		for _, flow := range comp.Flows() {
			stats, ok := perBus[flow.Bus]
			if !ok {
				continue
			}
			if flow.Direction == model.FlowOutbound {
				stats.Inbound++
			} else {
				stats.Outbound++
			}
			stats.ByKind[comp.Kind()]++
			perBus[flow.Bus] = stats
		}
	}

	report := Report{TotalBuses: len(perBus), PerBus: perBus}
	for _, stats := range perBus {
		if stats.Total() > 0 {
			report.ConnectedBuses++
		}
	}
	return report
}
