package postgres

import (
	"context"

	kpool "github.com/cartload/cartload/pkg/conn/db/postgres/pool"
	"github.com/cartload/cartload/pkg/domain"
	kpgerr "github.com/cartload/cartload/pkg/domain/errors/dberrors/postgres"
)

type trialPG struct { // implements db.TrialInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *trialPG {
	return &trialPG{pool: pool}
}

func (t *trialPG) Put(ctx context.Context, trial domain.ReactionTrial) (int, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var id int
	if err := conn.QueryRow(
		ctx,
		`
		insert into "reaction_logs" (
			"participant_id", "obstacle_time", "brake_time", "reaction_time_ms",
			"scenario", "error", "fatigue_level", "session_duration",
			"weather_condition", "traffic_density"
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		returning "id"
		`,
		trial.ParticipantId, trial.ObstacleAt, trial.BrakeAt, trial.ReactionMs,
		trial.Scenario, trial.Failed, trial.FatigueLevel, trial.SessionMinutes,
		trial.Weather, trial.Traffic,
	).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (t *trialPG) Stats(ctx context.Context) (domain.TrialStats, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return domain.TrialStats{}, err
	}
	defer conn.Release()

	var stats domain.TrialStats
	if err := conn.QueryRow(
		ctx,
		`
		select
			count(*),
			count(distinct "participant_id"),
			coalesce(avg("reaction_time_ms"), 0),
			coalesce(
				sum(case when "error" then 1 else 0 end)::float / nullif(count(*), 0) * 100,
				0
			)
		from "reaction_logs"
		`,
	).Scan(
		&stats.TotalTrials, &stats.TotalParticipants,
		&stats.AvgReactionMs, &stats.ErrorRate,
	); err != nil {
		return domain.TrialStats{}, err
	}

	return stats, nil
}

func (t *trialPG) ByScenario(ctx context.Context) ([]domain.ScenarioStat, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"scenario",
			count(*) as "trials",
			round(avg("reaction_time_ms"), 2) as "avg_reaction_time",
			round(
				sum(case when "error" then 1 else 0 end)::numeric / count(*) * 100, 2
			) as "error_rate"
		from "reaction_logs"
		group by "scenario"
		order by "avg_reaction_time" desc, "scenario"
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.ScenarioStat{}
	for rows.Next() {
		var stat domain.ScenarioStat
		if err := rows.Scan(
			&stat.Scenario, &stat.Trials, &stat.AvgReactionMs, &stat.ErrorRate,
		); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (t *trialPG) ByParticipant(ctx context.Context, participantId string) (domain.ParticipantPerformance, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return domain.ParticipantPerformance{}, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"participant_id", "obstacle_time", "brake_time", "reaction_time_ms",
			"scenario", "error", "fatigue_level", "session_duration",
			"weather_condition", "traffic_density"
		from "reaction_logs"
		where "participant_id" = $1
		order by "timestamp"
		`,
		participantId,
	)
	if err != nil {
		return domain.ParticipantPerformance{}, err
	}
	defer rows.Close()

	perf := domain.ParticipantPerformance{
		ParticipantId: participantId,
		Series:        []domain.ReactionTrial{},
	}
	totalMs := 0
	errored := 0
	for rows.Next() {
		var trial domain.ReactionTrial
		if err := rows.Scan(
			&trial.ParticipantId, &trial.ObstacleAt, &trial.BrakeAt, &trial.ReactionMs,
			&trial.Scenario, &trial.Failed, &trial.FatigueLevel, &trial.SessionMinutes,
			&trial.Weather, &trial.Traffic,
		); err != nil {
			return domain.ParticipantPerformance{}, err
		}
		perf.Series = append(perf.Series, trial)
		totalMs += trial.ReactionMs
		if trial.Failed {
			errored += 1
		}
	}

	perf.Trials = len(perf.Series)
	if perf.Trials == 0 {
		return domain.ParticipantPerformance{}, kpgerr.Missing{
			Table: "reaction_logs", Identity: participantId,
		}
	}
	perf.AvgReactionMs = float64(totalMs) / float64(perf.Trials)
	perf.ErrorRate = float64(errored) / float64(perf.Trials) * 100

	return perf, nil
}

func (t *trialPG) FatigueImpact(ctx context.Context) ([]domain.FatigueStat, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"fatigue_level",
			count(*) as "trials",
			round(avg("reaction_time_ms"), 2) as "avg_reaction_time",
			round(
				sum(case when "error" then 1 else 0 end)::numeric / count(*) * 100, 2
			) as "error_rate"
		from "reaction_logs"
		group by "fatigue_level"
		order by "fatigue_level"
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.FatigueStat{}
	for rows.Next() {
		var stat domain.FatigueStat
		if err := rows.Scan(
			&stat.FatigueLevel, &stat.Trials, &stat.AvgReactionMs, &stat.ErrorRate,
		); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (t *trialPG) ByWeather(ctx context.Context) ([]domain.WeatherStat, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"weather_condition",
			count(*) as "trials",
			round(avg("reaction_time_ms"), 2) as "avg_reaction_time",
			round(coalesce(stddev("reaction_time_ms"), 0), 2) as "stddev_ms"
		from "reaction_logs"
		group by "weather_condition"
		order by "avg_reaction_time" desc, "weather_condition"
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.WeatherStat{}
	for rows.Next() {
		var stat domain.WeatherStat
		if err := rows.Scan(
			&stat.Weather, &stat.Trials, &stat.AvgReactionMs, &stat.StddevMs,
		); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (t *trialPG) Recent(ctx context.Context, limit int) ([]domain.ReactionTrial, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	if limit < 0 {
		limit = 0
	}

	rows, err := conn.Query(
		ctx,
		`
		select
			"participant_id", "obstacle_time", "brake_time", "reaction_time_ms",
			"scenario", "error", "fatigue_level", "session_duration",
			"weather_condition", "traffic_density"
		from "reaction_logs"
		order by "timestamp" desc
		limit nullif($1::int, 0)
		`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trials := []domain.ReactionTrial{}
	for rows.Next() {
		var trial domain.ReactionTrial
		if err := rows.Scan(
			&trial.ParticipantId, &trial.ObstacleAt, &trial.BrakeAt, &trial.ReactionMs,
			&trial.Scenario, &trial.Failed, &trial.FatigueLevel, &trial.SessionMinutes,
			&trial.Weather, &trial.Traffic,
		); err != nil {
			return nil, err
		}
		trials = append(trials, trial)
	}

	return trials, nil
}
