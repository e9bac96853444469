package db

import (
	"context"

	"github.com/cartload/cartload/pkg/domain"
)

type TrialInterface interface {
	// Put stores a single reaction trial and returns its record id.
	Put(ctx context.Context, trial domain.ReactionTrial) (int, error)

	// Stats returns the headline statistics over all stored trials.
	Stats(ctx context.Context) (domain.TrialStats, error)

	// ByScenario aggregates trials per scenario,
	// ordered by average reaction time, descending.
	ByScenario(ctx context.Context) ([]domain.ScenarioStat, error)

	// ByParticipant returns one participant's summary and trial series,
	// ordered by trial timestamp, ascending.
	//
	// When the participant has no trials, it returns domain.ErrMissing (wrapped).
	ByParticipant(ctx context.Context, participantId string) (domain.ParticipantPerformance, error)

	// FatigueImpact aggregates trials per fatigue level, ascending.
	FatigueImpact(ctx context.Context) ([]domain.FatigueStat, error)

	// ByWeather aggregates trials per weather condition,
	// ordered by average reaction time, descending.
	ByWeather(ctx context.Context) ([]domain.WeatherStat, error)

	// Recent returns up to limit trials, newest first. limit <= 0 means no limit.
	Recent(ctx context.Context, limit int) ([]domain.ReactionTrial, error)
}
