package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/cartload/cartload/pkg/domain"
	"github.com/cartload/cartload/pkg/utils/try"
)

func TestNewReactionTrial(t *testing.T) {
	obstacleAt := try.To(time.Parse(time.RFC3339, "2024-05-01T10:00:00Z")).OrFatal(t)

	t.Run("it derives the reaction time in milliseconds", func(t *testing.T) {
		trial := try.To(domain.NewReactionTrial(
			"P001",
			obstacleAt, obstacleAt.Add(850*time.Millisecond),
			"highway", false, 3, 25, "rain", "dense",
		)).OrFatal(t)

		if trial.ReactionMs != 850 {
			t.Errorf("unexpected reaction time: %d", trial.ReactionMs)
		}
		if trial.ParticipantId != "P001" || trial.Scenario != "highway" {
			t.Errorf("unexpected trial: %+v", trial)
		}
	})

	t.Run("a brake at the same instant is a zero reaction", func(t *testing.T) {
		trial := try.To(domain.NewReactionTrial(
			"P001", obstacleAt, obstacleAt,
			"highway", false, 3, 25, "clear", "light",
		)).OrFatal(t)

		if trial.ReactionMs != 0 {
			t.Errorf("unexpected reaction time: %d", trial.ReactionMs)
		}
	})

	t.Run("it rejects a brake before the obstacle", func(t *testing.T) {
		_, err := domain.NewReactionTrial(
			"P001",
			obstacleAt, obstacleAt.Add(-1*time.Millisecond),
			"highway", false, 3, 25, "clear", "light",
		)
		if !errors.Is(err, domain.ErrBrakeBeforeEvent) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it rejects fatigue levels out of 1..10", func(t *testing.T) {
		for _, fatigue := range []int{0, -1, 11, 100} {
			_, err := domain.NewReactionTrial(
				"P001",
				obstacleAt, obstacleAt.Add(850*time.Millisecond),
				"highway", false, fatigue, 25, "clear", "light",
			)
			if !errors.Is(err, domain.ErrFatigueOutOfRange) {
				t.Errorf("unexpected error for fatigue %d: %v", fatigue, err)
			}
		}
	})

	t.Run("it accepts the fatigue bounds", func(t *testing.T) {
		for _, fatigue := range []int{1, 10} {
			trial := try.To(domain.NewReactionTrial(
				"P001",
				obstacleAt, obstacleAt.Add(850*time.Millisecond),
				"highway", false, fatigue, 25, "clear", "light",
			)).OrFatal(t)
			if trial.FatigueLevel != fatigue {
				t.Errorf("unexpected fatigue level: %d", trial.FatigueLevel)
			}
		}
	})
}

func TestReactionTrialEqual(t *testing.T) {
	obstacleAt := try.To(time.Parse(time.RFC3339, "2024-05-01T10:00:00Z")).OrFatal(t)
	base := try.To(domain.NewReactionTrial(
		"P001",
		obstacleAt, obstacleAt.Add(850*time.Millisecond),
		"highway", false, 3, 25, "rain", "dense",
	)).OrFatal(t)

	t.Run("it equals itself", func(t *testing.T) {
		other := base
		if !base.Equal(&other) {
			t.Error("trial is not equal to its copy, unexpectedly.")
		}
	})

	t.Run("it detects differences", func(t *testing.T) {
		other := base
		other.Weather = "fog"
		if base.Equal(&other) {
			t.Error("different trials are equal, unexpectedly.")
		}
	})
}
