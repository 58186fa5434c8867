package response

import (
	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase"
)

// EstimateResponse is the stored record plus its presentation stage.
type EstimateResponse struct {
	entities.EstimateRecord
	Stage       string                      `json:"stage"`
	NextAction  string                      `json:"nextAction,omitempty"`
	SideEffects []usecase.SideEffectFailure `json:"sideEffects,omitempty"`
}

func FromEstimate(rec entities.EstimateRecord) EstimateResponse {
	return EstimateResponse{
		EstimateRecord: rec,
		Stage:          string(lifecycle.StageOf(rec)),
		NextAction:     lifecycle.NextAction(rec),
	}
}

func FromEstimateResult(res usecase.EstimateResult) EstimateResponse {
	out := FromEstimate(res.Estimate)
	out.SideEffects = res.SideEffects
	return out
}

func FromEstimates(recs []entities.EstimateRecord) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromEstimate(rec))
	}
	return out
}
