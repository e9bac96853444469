package mocks

import (
	"context"
	"errors"

	"github.com/cartload/cartload/pkg/domain"
	kdbtrial "github.com/cartload/cartload/pkg/domain/trial/db"

	dbmock "github.com/cartload/cartload/pkg/domain/internal/db/mock"
)

type TrialInterface struct {
	Impl struct {
		Put           func(context.Context, domain.ReactionTrial) (int, error)
		Stats         func(context.Context) (domain.TrialStats, error)
		ByScenario    func(context.Context) ([]domain.ScenarioStat, error)
		ByParticipant func(context.Context, string) (domain.ParticipantPerformance, error)
		FatigueImpact func(context.Context) ([]domain.FatigueStat, error)
		ByWeather     func(context.Context) ([]domain.WeatherStat, error)
		Recent        func(context.Context, int) ([]domain.ReactionTrial, error)
	}
	Calls struct {
		Put           dbmock.CallLog[struct{ Trial domain.ReactionTrial }]
		Stats         dbmock.CallLog[struct{}]
		ByScenario    dbmock.CallLog[struct{}]
		ByParticipant dbmock.CallLog[struct{ ParticipantId string }]
		FatigueImpact dbmock.CallLog[struct{}]
		ByWeather     dbmock.CallLog[struct{}]
		Recent        dbmock.CallLog[struct{ Limit int }]
	}
}

func NewTrialInterface() *TrialInterface {
	return &TrialInterface{}
}

var _ kdbtrial.TrialInterface = &TrialInterface{}

func (ti *TrialInterface) Put(ctx context.Context, trial domain.ReactionTrial) (int, error) {
	ti.Calls.Put = append(ti.Calls.Put, struct{ Trial domain.ReactionTrial }{Trial: trial})
	if ti.Impl.Put != nil {
		return ti.Impl.Put(ctx, trial)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) Stats(ctx context.Context) (domain.TrialStats, error) {
	ti.Calls.Stats = append(ti.Calls.Stats, struct{}{})
	if ti.Impl.Stats != nil {
		return ti.Impl.Stats(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) ByScenario(ctx context.Context) ([]domain.ScenarioStat, error) {
	ti.Calls.ByScenario = append(ti.Calls.ByScenario, struct{}{})
	if ti.Impl.ByScenario != nil {
		return ti.Impl.ByScenario(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) ByParticipant(ctx context.Context, participantId string) (domain.ParticipantPerformance, error) {
	ti.Calls.ByParticipant = append(ti.Calls.ByParticipant, struct{ ParticipantId string }{ParticipantId: participantId})
	if ti.Impl.ByParticipant != nil {
		return ti.Impl.ByParticipant(ctx, participantId)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) FatigueImpact(ctx context.Context) ([]domain.FatigueStat, error) {
	ti.Calls.FatigueImpact = append(ti.Calls.FatigueImpact, struct{}{})
	if ti.Impl.FatigueImpact != nil {
		return ti.Impl.FatigueImpact(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) ByWeather(ctx context.Context) ([]domain.WeatherStat, error) {
	ti.Calls.ByWeather = append(ti.Calls.ByWeather, struct{}{})
	if ti.Impl.ByWeather != nil {
		return ti.Impl.ByWeather(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TrialInterface) Recent(ctx context.Context, limit int) ([]domain.ReactionTrial, error) {
	ti.Calls.Recent = append(ti.Calls.Recent, struct{ Limit int }{Limit: limit})
	if ti.Impl.Recent != nil {
		return ti.Impl.Recent(ctx, limit)
	}
	panic(errors.New("it should not be called"))
}
