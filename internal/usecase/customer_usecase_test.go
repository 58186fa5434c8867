package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"foampro/internal/adapter/persistence/repository"
	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
	mock_interfaces "foampro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCustomerUseCase(email interfaces.IEmailSender) (*CustomerUseCase, *repository.EstimateMemoryRepository) {
	estimates := repository.NewEstimateMemoryRepository()
	uc := NewCustomerUseCase(repository.NewCustomerMemoryRepository(), estimates, email)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = sequentialIDs("cus")
	return uc, estimates
}

func TestCustomerUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores active customer and sends welcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc, _ := newCustomerUseCase(email)

		email.EXPECT().SendWelcome(gomock.Any(), "bea@example.com", "Bea Lopez").Return(nil)

		res, err := uc.Create(ctx, entities.CustomerProfile{Name: "  Bea Lopez ", Email: " bea@example.com", ID: "client-chosen"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c := res.Customer
		if c.ID != "cus-1" || c.Status != entities.CustomerStatusActive || c.CreatedAt != "2026-04-10T15:00:00Z" {
			t.Fatalf("unexpected customer: %+v", c)
		}
		if len(res.SideEffects) != 0 {
			t.Fatalf("unexpected side effects: %+v", res.SideEffects)
		}
	})

	t.Run("welcome failure keeps the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc, _ := newCustomerUseCase(email)

		email.EXPECT().SendWelcome(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		res, err := uc.Create(ctx, entities.CustomerProfile{Name: "Bea", Email: "bea@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.SideEffects) != 1 || res.SideEffects[0].Name != sideEffectWelcome {
			t.Fatalf("expected welcome failure, got %+v", res.SideEffects)
		}
		if _, err := uc.GetByID(ctx, res.Customer.ID); err != nil {
			t.Fatalf("customer not stored: %v", err)
		}
	})

	t.Run("no email skips welcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCustomerUseCase(mock_interfaces.NewMockIEmailSender(ctrl))

		if _, err := uc.Create(ctx, entities.CustomerProfile{Name: "Walk-in"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc, _ := newCustomerUseCase(nil)
		if _, err := uc.Create(ctx, entities.CustomerProfile{Name: " "}); !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected invalid name, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdateArchiveAndLogs(t *testing.T) {
	ctx := context.Background()
	uc, estimates := newCustomerUseCase(nil)
	res, _ := uc.Create(ctx, entities.CustomerProfile{Name: "Carl"})
	id := res.Customer.ID

	t.Run("update keeps identity and log", func(t *testing.T) {
		if _, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{Content: "first call", Type: entities.LogEntryCall, Date: "2026-04-01T09:00:00Z"}); err != nil {
			t.Fatalf("add log: %v", err)
		}
		updated, err := uc.Update(ctx, entities.CustomerProfile{ID: id, Name: "Carl Jones", City: "Austin", Status: entities.CustomerStatusArchived})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Carl Jones" || updated.City != "Austin" || updated.Status != entities.CustomerStatusActive || len(updated.Logs) != 1 {
			t.Fatalf("unexpected update: %+v", updated)
		}
	})

	t.Run("logs newest first", func(t *testing.T) {
		entry, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{Content: "  sent quote "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Type != entities.LogEntryNote || entry.Date != "2026-04-10T15:00:00Z" || entry.Content != "sent quote" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
		logs, _ := uc.Logs(ctx, id)
		if len(logs) != 2 || logs[0].Content != "sent quote" {
			t.Fatalf("unexpected logs: %+v", logs)
		}
	})

	t.Run("log validation", func(t *testing.T) {
		if _, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{}); !errors.Is(err, ErrInvalidLogEntry) {
			t.Fatalf("expected invalid entry, got %v", err)
		}
		if _, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{Content: "x", Type: "Fax"}); !errors.Is(err, ErrInvalidLogType) {
			t.Fatalf("expected invalid type, got %v", err)
		}
	})

	t.Run("estimates newest first", func(t *testing.T) {
		_, _ = estimates.Create(ctx, entities.EstimateRecord{ID: "a", CustomerID: id, Date: "2026-03-01"})
		_, _ = estimates.Create(ctx, entities.EstimateRecord{ID: "b", CustomerID: id, Date: "2026-04-01"})
		_, _ = estimates.Create(ctx, entities.EstimateRecord{ID: "c", CustomerID: "other", Date: "2026-04-02"})
		recs, err := uc.Estimates(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 || recs[0].ID != "b" {
			t.Fatalf("unexpected estimates: %v", recordIDs(recs))
		}
	})

	t.Run("archive hides from list", func(t *testing.T) {
		_, _ = uc.Create(ctx, entities.CustomerProfile{Name: "alice"})
		if _, err := uc.Archive(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		visible, _ := uc.List(ctx, false)
		if len(visible) != 1 || visible[0].Name != "alice" {
			t.Fatalf("unexpected list: %+v", visible)
		}
		all, _ := uc.List(ctx, true)
		if len(all) != 2 || all[0].Name != "alice" {
			t.Fatalf("unexpected full list: %+v", all)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if _, err := uc.Logs(ctx, ""); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected invalid id, got %v", err)
		}
	})
}

// racingCustomers lands a competing log entry before each of the next races updates.
type racingCustomers struct {
	*repository.CustomerMemoryRepository
	races int
}

func (r *racingCustomers) Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	if r.races > 0 {
		r.races--
		cur, _ := r.CustomerMemoryRepository.GetByID(ctx, c.ID)
		cur.Logs = append(cur.Logs, entities.CommunicationLogEntry{ID: "office", Content: "office note"})
		if _, err := r.CustomerMemoryRepository.Update(ctx, cur); err != nil {
			return entities.CustomerProfile{}, err
		}
	}
	return r.CustomerMemoryRepository.Update(ctx, c)
}

func TestCustomerUseCase_AddLogEntryConflict(t *testing.T) {
	ctx := context.Background()

	setup := func(races int) (*CustomerUseCase, *racingCustomers, string) {
		repo := &racingCustomers{CustomerMemoryRepository: repository.NewCustomerMemoryRepository()}
		uc := NewCustomerUseCase(repo, repository.NewEstimateMemoryRepository(), nil)
		uc.now = func() time.Time { return fixedNow }
		uc.newID = sequentialIDs("cus")
		res, err := uc.Create(ctx, entities.CustomerProfile{Name: "Dana"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.races = races
		return uc, repo, res.Customer.ID
	}

	t.Run("retries once and keeps both entries", func(t *testing.T) {
		uc, _, id := setup(1)
		if _, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{Content: "crew call"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c, _ := uc.GetByID(ctx, id)
		if len(c.Logs) != 2 || c.Logs[0].Content != "office note" || c.Logs[1].Content != "crew call" {
			t.Fatalf("unexpected logs: %+v", c.Logs)
		}
		if c.Version != 3 {
			t.Fatalf("version = %d", c.Version)
		}
	})

	t.Run("second conflict surfaces", func(t *testing.T) {
		uc, _, id := setup(2)
		if _, err := uc.AddLogEntry(ctx, id, entities.CommunicationLogEntry{Content: "crew call"}); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected version conflict, got %v", err)
		}
		c, _ := uc.GetByID(ctx, id)
		for _, l := range c.Logs {
			if l.Content == "crew call" {
				t.Fatalf("rejected entry stored: %+v", c.Logs)
			}
		}
	})

	t.Run("stale update rejected", func(t *testing.T) {
		uc, repo, id := setup(1)
		if _, err := uc.Update(ctx, entities.CustomerProfile{ID: id, Name: "Dana Ruiz"}); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected version conflict, got %v", err)
		}
		c, _ := repo.GetByID(ctx, id)
		if c.Name != "Dana" || len(c.Logs) != 1 {
			t.Fatalf("competing write lost: %+v", c)
		}
	})
}
