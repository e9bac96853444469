package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrFatigueOutOfRange = errors.New("fatigue level should be between 1 and 10")
	ErrBrakeBeforeEvent  = errors.New("brake time is before obstacle time")
)

// ReactionTrial is a single braking trial recorded by the driving simulator.
//
// ReactionMs is derived: the gap between ObstacleAt and BrakeAt in milliseconds.
type ReactionTrial struct {
	ParticipantId  string
	ObstacleAt     time.Time
	BrakeAt        time.Time
	ReactionMs     int
	Scenario       string
	Failed         bool
	FatigueLevel   int
	SessionMinutes int
	Weather        string
	Traffic        string
}

// NewReactionTrial derives ReactionMs and checks invariants:
// BrakeAt is not before ObstacleAt, and fatigue level is in 1..10.
func NewReactionTrial(
	participantId string,
	obstacleAt, brakeAt time.Time,
	scenario string,
	failed bool,
	fatigueLevel int,
	sessionMinutes int,
	weather, traffic string,
) (ReactionTrial, error) {
	if brakeAt.Before(obstacleAt) {
		return ReactionTrial{}, fmt.Errorf(
			"%w: obstacle at %s, brake at %s",
			ErrBrakeBeforeEvent, obstacleAt, brakeAt,
		)
	}
	if fatigueLevel < 1 || 10 < fatigueLevel {
		return ReactionTrial{}, fmt.Errorf("%w: %d", ErrFatigueOutOfRange, fatigueLevel)
	}

	return ReactionTrial{
		ParticipantId:  participantId,
		ObstacleAt:     obstacleAt,
		BrakeAt:        brakeAt,
		ReactionMs:     int(brakeAt.Sub(obstacleAt).Milliseconds()),
		Scenario:       scenario,
		Failed:         failed,
		FatigueLevel:   fatigueLevel,
		SessionMinutes: sessionMinutes,
		Weather:        weather,
		Traffic:        traffic,
	}, nil
}

func (t *ReactionTrial) Equal(other *ReactionTrial) bool {
	if (t == nil) || (other == nil) {
		return (t == nil) && (other == nil)
	}

	return t.ParticipantId == other.ParticipantId &&
		t.ObstacleAt.Equal(other.ObstacleAt) &&
		t.BrakeAt.Equal(other.BrakeAt) &&
		t.ReactionMs == other.ReactionMs &&
		t.Scenario == other.Scenario &&
		t.Failed == other.Failed &&
		t.FatigueLevel == other.FatigueLevel &&
		t.SessionMinutes == other.SessionMinutes &&
		t.Weather == other.Weather &&
		t.Traffic == other.Traffic
}

// TrialStats is the headline statistics over all reaction trials.
type TrialStats struct {
	TotalTrials       int
	TotalParticipants int
	AvgReactionMs     float64
	ErrorRate         float64 // percentage, 0..100
}

// ScenarioStat aggregates trials per driving scenario.
type ScenarioStat struct {
	Scenario      string
	Trials        int
	AvgReactionMs float64
	ErrorRate     float64
}

// ParticipantPerformance is the per-participant summary with its trial series.
type ParticipantPerformance struct {
	ParticipantId string
	Trials        int
	AvgReactionMs float64
	ErrorRate     float64
	Series        []ReactionTrial
}

// FatigueStat aggregates trials per reported fatigue level.
type FatigueStat struct {
	FatigueLevel  int
	Trials        int
	AvgReactionMs float64
	ErrorRate     float64
}

// WeatherStat aggregates trials per weather condition.
type WeatherStat struct {
	Weather       string
	Trials        int
	AvgReactionMs float64
	StddevMs      float64
}
