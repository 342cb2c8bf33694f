package viewmodel

import (
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/metrics"
	"github.com/secmon-lab/atelier/pkg/service/resolver"
)

// MissionNetwork is the renderer-agnostic missions/supports diagram: one
// column of mission nodes, one column of support nodes, and the edges
// between them. Positions are normalized to [0,1] so any renderer can scale
// them.
type MissionNetwork struct {
	Missions []MissionNode `json:"missions"`
	Supports []SupportNode `json:"supports"`
	Edges    []NetworkEdge `json:"edges"`
}

// MissionNode is a mission in the network, sized and colored by its impact
// level.
type MissionNode struct {
	ID     types.MissionID `json:"id"`
	Label  string          `json:"label"`
	Impact int             `json:"impact"`
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
}

// SupportNode is a support in the network, sized by the number of missions
// referencing it and colored by the maximum impact of those missions.
type SupportNode struct {
	Name      string  `json:"name"`
	Degree    int     `json:"degree"`
	MaxImpact int     `json:"maxImpact"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// NetworkEdge links a mission to one of its supports
type NetworkEdge struct {
	MissionID   types.MissionID `json:"missionId"`
	SupportName string          `json:"supportName"`
}

const (
	missionColumnX = 0.0
	supportColumnX = 1.0
)

// evenSpacing returns the normalized vertical position of node i among n,
// leaving a margin at both ends.
func evenSpacing(i, n int) float64 {
	return float64(i+1) / float64(n+1)
}

// ProjectMissionNetwork builds the missions/supports network view-model.
// It is a pure projection: identical input yields identical output.
func ProjectMissionNetwork(a *model.Analysis) MissionNetwork {
	res := resolver.New(a)
	supports := res.UniqueSupports()

	vm := MissionNetwork{
		Missions: make([]MissionNode, 0, len(a.Data.Missions)),
		Supports: make([]SupportNode, 0, len(supports)),
		Edges:    []NetworkEdge{},
	}

	for i, m := range a.Data.Missions {
		vm.Missions = append(vm.Missions, MissionNode{
			ID:     m.ID,
			Label:  m.Denom,
			Impact: metrics.MissionImpact(a, m.ID),
			X:      missionColumnX,
			Y:      evenSpacing(i, len(a.Data.Missions)),
		})
		for _, s := range m.Supports {
			vm.Edges = append(vm.Edges, NetworkEdge{MissionID: m.ID, SupportName: s.Name})
		}
	}

	for i, s := range supports {
		stats := metrics.SupportStatsFor(a, s.Name)
		vm.Supports = append(vm.Supports, SupportNode{
			Name:      s.Name,
			Degree:    stats.Degree,
			MaxImpact: stats.MaxImpact,
			X:         supportColumnX,
			Y:         evenSpacing(i, len(supports)),
		})
	}

	return vm
}
