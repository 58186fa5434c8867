package response

import (
	"testing"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
)

func TestFromTimerStatus(t *testing.T) {
	res := FromTimerStatus(usecase.TimerStatus{
		Active:  true,
		Timer:   &entities.ActiveTimer{JobID: "e1", User: "sam"},
		Elapsed: 90*time.Second + 400*time.Millisecond,
	})
	if !res.Active || res.ElapsedSeconds != 90 || res.Timer.JobID != "e1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
