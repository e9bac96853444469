package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/cartload/cartload/pkg/api/types/errors"
	apitrials "github.com/cartload/cartload/pkg/api/types/trials"
	"github.com/cartload/cartload/pkg/domain"
	kdbtrial "github.com/cartload/cartload/pkg/domain/trial/db"
)

func RegisterTrialHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitrials.TrialSpec{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		if spec.ParticipantId == "" {
			return apierr.BadRequest(`"participantId" is required`, nil)
		}
		if spec.Scenario == "" {
			return apierr.BadRequest(`"scenario" is required`, nil)
		}
		if spec.ObstacleAt.Time().IsZero() || spec.BrakeAt.Time().IsZero() {
			return apierr.BadRequest(`"obstacleAt" and "brakeAt" are required`, nil)
		}

		trial, err := domain.NewReactionTrial(
			spec.ParticipantId,
			spec.ObstacleAt.Time(), spec.BrakeAt.Time(),
			spec.Scenario,
			spec.Error,
			spec.FatigueLevel,
			spec.SessionMinutes,
			spec.Weather, spec.Traffic,
		)
		if err != nil {
			if errors.Is(err, domain.ErrFatigueOutOfRange) || errors.Is(err, domain.ErrBrakeBeforeEvent) {
				return apierr.BadRequest(err.Error(), err)
			}
			return apierr.InternalServerError(err)
		}

		id, err := dbTrial.Put(ctx, trial)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apitrials.ComposeTrial(id, trial))
	}
}

func GetTrialStatsHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		stats, err := dbTrial.Stats(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeStats(stats))
	}
}

func GetScenarioStatsHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		scenarios, err := dbTrial.ByScenario(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeScenarios(scenarios))
	}
}

func GetParticipantHandler(dbTrial kdbtrial.TrialInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		participantId := c.Param(paramKey)

		performance, err := dbTrial.ByParticipant(ctx, participantId)
		if err != nil {
			if errors.Is(err, domain.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeParticipant(performance))
	}
}

func GetRecentTrialsHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limit, err := limitParam(c)
		if err != nil {
			return apierr.BadRequest(`"limit" should be a non-negative integer`, err)
		}

		trials, err := dbTrial.Recent(ctx, limit)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeTrials(trials))
	}
}

func GetFatigueImpactHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		fatigue, err := dbTrial.FatigueImpact(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeFatigue(fatigue))
	}
}

func GetWeatherImpactHandler(dbTrial kdbtrial.TrialInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		weather, err := dbTrial.ByWeather(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitrials.ComposeWeather(weather))
	}
}
