package interfaces

import (
	"context"

	"foampro/internal/domain/entities"
)

// ITimerStore keeps one resumable job clock per user across restarts.
type ITimerStore interface {
	Save(ctx context.Context, t entities.ActiveTimer) error
	Get(ctx context.Context, user string) (entities.ActiveTimer, bool, error)
	Delete(ctx context.Context, user string) error
	List(ctx context.Context) ([]entities.ActiveTimer, error)
}
