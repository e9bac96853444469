// JSON representations of the reaction trial endpoints.
package trials

import (
	"github.com/cartload/cartload/pkg/domain"
	"github.com/cartload/cartload/pkg/utils/rfctime"
	"github.com/cartload/cartload/pkg/utils/slices"
)

// TrialSpec is the request body registering a reaction trial.
//
// ReactionMs is not accepted from the client. It is derived from the
// obstacle and brake timestamps.
type TrialSpec struct {
	ParticipantId  string          `json:"participantId"`
	ObstacleAt     rfctime.RFC3339 `json:"obstacleAt"`
	BrakeAt        rfctime.RFC3339 `json:"brakeAt"`
	Scenario       string          `json:"scenario"`
	Error          bool            `json:"error"`
	FatigueLevel   int             `json:"fatigueLevel"`
	SessionMinutes int             `json:"sessionMinutes"`
	Weather        string          `json:"weather"`
	Traffic        string          `json:"traffic"`
}

// Trial reports a registered reaction trial.
type Trial struct {
	Id             int             `json:"id,omitempty"`
	ParticipantId  string          `json:"participantId"`
	ObstacleAt     rfctime.RFC3339 `json:"obstacleAt"`
	BrakeAt        rfctime.RFC3339 `json:"brakeAt"`
	ReactionMs     int             `json:"reactionMs"`
	Scenario       string          `json:"scenario"`
	Error          bool            `json:"error"`
	FatigueLevel   int             `json:"fatigueLevel"`
	SessionMinutes int             `json:"sessionMinutes"`
	Weather        string          `json:"weather"`
	Traffic        string          `json:"traffic"`
}

func ComposeTrial(id int, t domain.ReactionTrial) Trial {
	return Trial{
		Id:             id,
		ParticipantId:  t.ParticipantId,
		ObstacleAt:     rfctime.New(t.ObstacleAt),
		BrakeAt:        rfctime.New(t.BrakeAt),
		ReactionMs:     t.ReactionMs,
		Scenario:       t.Scenario,
		Error:          t.Failed,
		FatigueLevel:   t.FatigueLevel,
		SessionMinutes: t.SessionMinutes,
		Weather:        t.Weather,
		Traffic:        t.Traffic,
	}
}

// ComposeTrials reports trials already stored. Their ids are not carried
// through aggregation queries, so the id field is left out.
func ComposeTrials(ts []domain.ReactionTrial) []Trial {
	return slices.Map(ts, func(t domain.ReactionTrial) Trial {
		return ComposeTrial(0, t)
	})
}

type Stats struct {
	TotalTrials       int     `json:"totalTrials"`
	TotalParticipants int     `json:"totalParticipants"`
	AvgReactionMs     float64 `json:"avgReactionMs"`
	ErrorRate         float64 `json:"errorRate"`
}

func ComposeStats(s domain.TrialStats) Stats {
	return Stats{
		TotalTrials:       s.TotalTrials,
		TotalParticipants: s.TotalParticipants,
		AvgReactionMs:     s.AvgReactionMs,
		ErrorRate:         s.ErrorRate,
	}
}

type Scenario struct {
	Scenario      string  `json:"scenario"`
	Trials        int     `json:"trials"`
	AvgReactionMs float64 `json:"avgReactionMs"`
	ErrorRate     float64 `json:"errorRate"`
}

func ComposeScenarios(ss []domain.ScenarioStat) []Scenario {
	return slices.Map(ss, func(s domain.ScenarioStat) Scenario {
		return Scenario{
			Scenario:      s.Scenario,
			Trials:        s.Trials,
			AvgReactionMs: s.AvgReactionMs,
			ErrorRate:     s.ErrorRate,
		}
	})
}

type Participant struct {
	ParticipantId string  `json:"participantId"`
	Trials        int     `json:"trials"`
	AvgReactionMs float64 `json:"avgReactionMs"`
	ErrorRate     float64 `json:"errorRate"`
	Series        []Trial `json:"series"`
}

func ComposeParticipant(p domain.ParticipantPerformance) Participant {
	return Participant{
		ParticipantId: p.ParticipantId,
		Trials:        p.Trials,
		AvgReactionMs: p.AvgReactionMs,
		ErrorRate:     p.ErrorRate,
		Series:        ComposeTrials(p.Series),
	}
}

type Fatigue struct {
	FatigueLevel  int     `json:"fatigueLevel"`
	Trials        int     `json:"trials"`
	AvgReactionMs float64 `json:"avgReactionMs"`
	ErrorRate     float64 `json:"errorRate"`
}

func ComposeFatigue(fs []domain.FatigueStat) []Fatigue {
	return slices.Map(fs, func(f domain.FatigueStat) Fatigue {
		return Fatigue{
			FatigueLevel:  f.FatigueLevel,
			Trials:        f.Trials,
			AvgReactionMs: f.AvgReactionMs,
			ErrorRate:     f.ErrorRate,
		}
	})
}

type Weather struct {
	Weather       string  `json:"weather"`
	Trials        int     `json:"trials"`
	AvgReactionMs float64 `json:"avgReactionMs"`
	StddevMs      float64 `json:"stddevMs"`
}

func ComposeWeather(ws []domain.WeatherStat) []Weather {
	return slices.Map(ws, func(w domain.WeatherStat) Weather {
		return Weather{
			Weather:       w.Weather,
			Trials:        w.Trials,
			AvgReactionMs: w.AvgReactionMs,
			StddevMs:      w.StddevMs,
		}
	})
}
