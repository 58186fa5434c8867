package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

// TimerStore persists one active timer per crew user in SQLite.
type TimerStore struct {
	db *sql.DB
}

var _ interfaces.ITimerStore = (*TimerStore)(nil)

func NewTimerStore(db *sql.DB) *TimerStore {
	return &TimerStore{db: db}
}

func (s *TimerStore) Save(ctx context.Context, t entities.ActiveTimer) error {
	if strings.TrimSpace(t.User) == "" || strings.TrimSpace(t.JobID) == "" {
		return errors.New("timer needs a user and a job id")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO active_timers (user_name, job_id, started_at) VALUES (?, ?, ?)
		ON CONFLICT(user_name) DO UPDATE SET job_id = excluded.job_id, started_at = excluded.started_at`,
		t.User, t.JobID, t.StartedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save timer: %w", err)
	}
	return nil
}

func (s *TimerStore) Get(ctx context.Context, user string) (entities.ActiveTimer, bool, error) {
	var jobID, started string
	err := s.db.QueryRowContext(ctx,
		`SELECT job_id, started_at FROM active_timers WHERE user_name = ?`, user,
	).Scan(&jobID, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ActiveTimer{}, false, nil
	}
	if err != nil {
		return entities.ActiveTimer{}, false, fmt.Errorf("load timer: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return entities.ActiveTimer{}, false, fmt.Errorf("parse timer start %q: %w", started, err)
	}
	return entities.ActiveTimer{JobID: jobID, StartedAt: at, User: user}, true, nil
}

func (s *TimerStore) Delete(ctx context.Context, user string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM active_timers WHERE user_name = ?`, user); err != nil {
		return fmt.Errorf("delete timer: %w", err)
	}
	return nil
}

// List returns every persisted timer ordered by user.
func (s *TimerStore) List(ctx context.Context) ([]entities.ActiveTimer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_name, job_id, started_at FROM active_timers ORDER BY user_name`)
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer rows.Close()

	var out []entities.ActiveTimer
	for rows.Next() {
		var user, jobID, started string
		if err := rows.Scan(&user, &jobID, &started); err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		at, err := time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parse timer start %q: %w", started, err)
		}
		out = append(out, entities.ActiveTimer{JobID: jobID, StartedAt: at, User: user})
	}
	return out, rows.Err()
}
