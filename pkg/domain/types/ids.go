package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AnalysisID represents a unique identifier for an analysis
type AnalysisID string

// MissionID represents a unique identifier for a mission (business value)
type MissionID string

// EventID represents a unique identifier for a feared event
type EventID string

// RequirementID represents a unique identifier for a gap requirement
type RequirementID string

// CoupleID represents a unique identifier for a threat source/objective pair
type CoupleID string

// StakeholderID represents a unique identifier for a stakeholder
type StakeholderID string

// StrategyID represents a unique identifier for a strategic scenario
type StrategyID string

// ScenarioID represents a unique identifier for an operational scenario
type ScenarioID string

// RiskID represents a unique identifier for a risk
type RiskID string

// NewAnalysisID generates a new random AnalysisID
func NewAnalysisID() AnalysisID { return AnalysisID(uuid.NewString()) }

// NewMissionID generates a new random MissionID
func NewMissionID() MissionID { return MissionID(uuid.NewString()) }

// NewEventID generates a new random EventID
func NewEventID() EventID { return EventID(uuid.NewString()) }

// NewRequirementID generates a new random RequirementID
func NewRequirementID() RequirementID { return RequirementID(uuid.NewString()) }

// NewCoupleID generates a new random CoupleID
func NewCoupleID() CoupleID { return CoupleID(uuid.NewString()) }

// NewStakeholderID generates a new random StakeholderID
func NewStakeholderID() StakeholderID { return StakeholderID(uuid.NewString()) }

// NewStrategyID generates a new random StrategyID
func NewStrategyID() StrategyID { return StrategyID(uuid.NewString()) }

// NewScenarioID generates a new random ScenarioID
func NewScenarioID() ScenarioID { return ScenarioID(uuid.NewString()) }

// NewRiskID generates a new random RiskID
func NewRiskID() RiskID { return RiskID(uuid.NewString()) }

func (id AnalysisID) String() string    { return string(id) }
func (id MissionID) String() string     { return string(id) }
func (id EventID) String() string       { return string(id) }
func (id RequirementID) String() string { return string(id) }
func (id CoupleID) String() string      { return string(id) }
func (id StakeholderID) String() string { return string(id) }
func (id StrategyID) String() string    { return string(id) }
func (id ScenarioID) String() string    { return string(id) }
func (id RiskID) String() string        { return string(id) }

// Validate checks if the AnalysisID is valid
func (id AnalysisID) Validate() error {
	if id == "" {
		return goerr.New("analysis ID cannot be empty")
	}
	return nil
}

// Validate checks if the MissionID is valid
func (id MissionID) Validate() error {
	if id == "" {
		return goerr.New("mission ID cannot be empty")
	}
	return nil
}

// Validate checks if the EventID is valid
func (id EventID) Validate() error {
	if id == "" {
		return goerr.New("event ID cannot be empty")
	}
	return nil
}

// Validate checks if the StakeholderID is valid
func (id StakeholderID) Validate() error {
	if id == "" {
		return goerr.New("stakeholder ID cannot be empty")
	}
	return nil
}
