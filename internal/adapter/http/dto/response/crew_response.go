package response

import (
	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
)

type TimerResponse struct {
	Active         bool                  `json:"active"`
	Timer          *entities.ActiveTimer `json:"timer,omitempty"`
	ElapsedSeconds int64                 `json:"elapsedSeconds"`
	Reason         string                `json:"reason,omitempty"`
}

func FromTimerStatus(st usecase.TimerStatus) TimerResponse {
	return TimerResponse{
		Active:         st.Active,
		Timer:          st.Timer,
		ElapsedSeconds: int64(st.Elapsed.Seconds()),
		Reason:         st.Reason,
	}
}

type CrewSyncResponse struct {
	Ran    bool   `json:"ran"`
	Reason string `json:"reason,omitempty"`
}
