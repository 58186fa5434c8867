package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const sideEffectWelcome = "welcome_email"

var (
	ErrInvalidCustomerName = errors.New("customer name required")
	ErrInvalidLogEntry     = errors.New("log entry content required")
	ErrInvalidLogType      = errors.New("invalid log entry type")
)

type CustomerResult struct {
	Customer    entities.CustomerProfile `json:"customer"`
	SideEffects []SideEffectFailure      `json:"sideEffects,omitempty"`
}

// ICustomerUseCase is the CRM surface. Estimates keep their own snapshot of
// the customer, so edits here never rewrite existing records.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.CustomerProfile) (CustomerResult, error)
	Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	Archive(ctx context.Context, id string) (entities.CustomerProfile, error)
	AddLogEntry(ctx context.Context, id string, entry entities.CommunicationLogEntry) (entities.CommunicationLogEntry, error)
	Logs(ctx context.Context, id string) ([]entities.CommunicationLogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CustomerProfile, error)
	List(ctx context.Context, includeArchived bool) ([]entities.CustomerProfile, error)
	Estimates(ctx context.Context, id string) ([]entities.EstimateRecord, error)
}

type CustomerUseCase struct {
	repo      interfaces.ICustomerRepository
	estimates interfaces.IEstimateRepository
	email     interfaces.IEmailSender
	now       func() time.Time
	newID     func() string
	log       *slog.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, estimates interfaces.IEstimateRepository, email interfaces.IEmailSender) *CustomerUseCase {
	return &CustomerUseCase{
		repo:      repo,
		estimates: estimates,
		email:     email,
		now:       time.Now,
		newID:     uuid.NewString,
		log:       slog.Default().With("component", "customer"),
	}
}

func normalizeCustomer(c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return c, ErrInvalidCustomerName
	}
	return c, nil
}

// Create stores a new active customer and sends the welcome email when an
// address is known.
func (u *CustomerUseCase) Create(ctx context.Context, c entities.CustomerProfile) (CustomerResult, error) {
	c, err := normalizeCustomer(c)
	if err != nil {
		return CustomerResult{}, err
	}
	c.ID = u.newID()
	c.Status = entities.CustomerStatusActive
	c.CreatedAt = u.now().UTC().Format(time.RFC3339)
	c.Logs = nil

	saved, err := u.repo.Create(ctx, c)
	if err != nil {
		return CustomerResult{}, err
	}
	log := u.log.With("customer_id", saved.ID)
	log.Info("customer created")

	var effects sideEffects
	if saved.Email != "" {
		if u.email == nil {
			effects.record(log, sideEffectWelcome, external("email service", interfaces.ErrCollaboratorNotConfigured))
		} else {
			effects.record(log, sideEffectWelcome, external("email service", u.email.SendWelcome(ctx, saved.Email, saved.Name)))
		}
	}
	return CustomerResult{Customer: saved, SideEffects: effects}, nil
}

// Update replaces the editable fields. Identity, status, creation date and
// the activity log are kept from the stored customer.
func (u *CustomerUseCase) Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	c, err = normalizeCustomer(c)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	c.ID = current.ID
	c.Status = current.Status
	c.CreatedAt = current.CreatedAt
	c.Logs = current.Logs
	c.Version = current.Version
	return u.save(ctx, c)
}

// save writes c at the version it was read with.
func (u *CustomerUseCase) save(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	saved, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if saved.ID == "" {
		return entities.CustomerProfile{}, ErrCustomerNotFound
	}
	return saved, nil
}

func (u *CustomerUseCase) Archive(ctx context.Context, id string) (entities.CustomerProfile, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if c.Status == entities.CustomerStatusArchived {
		return c, nil
	}
	c.Status = entities.CustomerStatusArchived
	u.log.Info("customer archived", "customer_id", c.ID)
	return u.save(ctx, c)
}

func validLogType(t entities.LogEntryType) bool {
	switch t {
	case entities.LogEntryCall, entities.LogEntryNote, entities.LogEntryEmail, entities.LogEntryMeeting:
		return true
	}
	return false
}

// AddLogEntry appends to the customer's activity log. Type defaults to Note.
// A concurrent write is absorbed by re-reading once and appending again.
func (u *CustomerUseCase) AddLogEntry(ctx context.Context, id string, entry entities.CommunicationLogEntry) (entities.CommunicationLogEntry, error) {
	entry.Content = strings.TrimSpace(entry.Content)
	if entry.Content == "" {
		return entities.CommunicationLogEntry{}, ErrInvalidLogEntry
	}
	if entry.Type == "" {
		entry.Type = entities.LogEntryNote
	}
	if !validLogType(entry.Type) {
		return entities.CommunicationLogEntry{}, ErrInvalidLogType
	}
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CommunicationLogEntry{}, err
	}
	entry.ID = u.newID()
	if entry.Date == "" {
		entry.Date = u.now().UTC().Format(time.RFC3339)
	}
	for attempt := 0; ; attempt++ {
		c.Logs = append(c.Logs, entry)
		_, err := u.save(ctx, c)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) || attempt > 0 {
			return entities.CommunicationLogEntry{}, err
		}
		u.log.Warn("customer log entry retried", "customer_id", id, "err", err)
		if c, err = u.GetByID(ctx, id); err != nil {
			return entities.CommunicationLogEntry{}, err
		}
	}
}

// Logs returns the activity log newest first.
func (u *CustomerUseCase) Logs(ctx context.Context, id string) ([]entities.CommunicationLogEntry, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := append([]entities.CommunicationLogEntry(nil), c.Logs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.CustomerProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CustomerProfile{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if c.ID == "" {
		return entities.CustomerProfile{}, ErrCustomerNotFound
	}
	return c, nil
}

// List returns customers by name; archived ones only when asked.
func (u *CustomerUseCase) List(ctx context.Context, includeArchived bool) ([]entities.CustomerProfile, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CustomerProfile, 0, len(all))
	for _, c := range all {
		if !includeArchived && c.Status == entities.CustomerStatusArchived {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// Estimates lists the customer's records newest first.
func (u *CustomerUseCase) Estimates(ctx context.Context, id string) ([]entities.EstimateRecord, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recs, err := u.estimates.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs, nil
}
