package viewmodel

import (
	"strings"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/service/metrics"
)

// SourceObjectiveNetwork is the threat source / objective diagram of the
// second workshop: unique source nodes, unique objective nodes and one edge
// per couple.
type SourceObjectiveNetwork struct {
	Sources    []SourceNode    `json:"sources"`
	Objectives []ObjectiveNode `json:"objectives"`
	Edges      []SrovEdge      `json:"edges"`
}

// SourceNode is a unique threat source
type SourceNode struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ObjectiveNode is a unique objective, labeled with the maximum priority
// across its incoming edges.
type ObjectiveNode struct {
	Name        string  `json:"name"`
	MaxPriority int     `json:"maxPriority"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// SrovEdge is one source/objective couple. Bucket drives the edge color,
// Retained the line style (solid vs dashed) and Justification carries the
// optional exclusion label.
type SrovEdge struct {
	Source        string `json:"source"`
	Objective     string `json:"objective"`
	Pertinence    int    `json:"pertinence"`
	Bucket        int    `json:"bucket"`
	Retained      bool   `json:"retained"`
	Justification string `json:"justification"`
}

// ProjectSourceObjectiveNetwork builds the source/objective view-model.
// Nodes are deduplicated by trimmed name in insertion order.
func ProjectSourceObjectiveNetwork(a *model.Analysis) SourceObjectiveNetwork {
	vm := SourceObjectiveNetwork{
		Sources:    []SourceNode{},
		Objectives: []ObjectiveNode{},
		Edges:      []SrovEdge{},
	}

	sourceIdx := make(map[string]int)
	objectiveIdx := make(map[string]int)

	for _, c := range a.Data.Couples {
		source := strings.TrimSpace(c.Source)
		objective := strings.TrimSpace(c.Objectif)

		if _, seen := sourceIdx[source]; !seen {
			sourceIdx[source] = len(vm.Sources)
			vm.Sources = append(vm.Sources, SourceNode{Name: source, X: missionColumnX})
		}
		if _, seen := objectiveIdx[objective]; !seen {
			objectiveIdx[objective] = len(vm.Objectives)
			vm.Objectives = append(vm.Objectives, ObjectiveNode{Name: objective, X: supportColumnX})
		}

		product, bucket := metrics.Pertinence(c.Motivation, c.Ressources)
		edge := SrovEdge{
			Source:     source,
			Objective:  objective,
			Pertinence: product,
			Bucket:     bucket,
			Retained:   c.Retained(),
		}
		if !edge.Retained {
			edge.Justification = c.Justification
		}
		vm.Edges = append(vm.Edges, edge)

		obj := &vm.Objectives[objectiveIdx[objective]]
		if p := c.Priorite.Clamp().Int(); p > obj.MaxPriority {
			obj.MaxPriority = p
		}
	}

	for i := range vm.Sources {
		vm.Sources[i].Y = evenSpacing(i, len(vm.Sources))
	}
	for i := range vm.Objectives {
		vm.Objectives[i].Y = evenSpacing(i, len(vm.Objectives))
	}

	return vm
}
