package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/estimator"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const sideEffectMirror = "mirror_estimate"

// EstimateSettings are the company defaults applied to every calculation.
type EstimateSettings struct {
	Yields    entities.Yields
	Costs     entities.ChemicalCosts
	Tolerance float64
	Company   entities.CompanyProfile
}

// EstimateCollaborators are optional; a nil collaborator disables the
// feature that needs it.
type EstimateCollaborators struct {
	Customers interfaces.ICustomerRepository
	Warehouse interfaces.IWarehouseRepository
	Backend   interfaces.IFieldBackend
	Renderer  interfaces.IDocumentRenderer
	Email     interfaces.IEmailSender
}

// EstimateResult is a committed record plus any follow-up failures.
type EstimateResult struct {
	Estimate    entities.EstimateRecord `json:"estimate"`
	SideEffects []SideEffectFailure     `json:"sideEffects,omitempty"`
}

// EstimateFilter narrows List. Archived records are hidden unless asked for.
type EstimateFilter struct {
	Status          entities.EstimateStatus
	CustomerID      string
	Stage           lifecycle.Stage
	IncludeArchived bool
}

type SentDocument struct {
	FileName string `json:"fileName"`
	To       string `json:"to"`
}

// IEstimateUseCase covers the office side of a job: quoting, converting to a
// work order, scheduling, invoicing and archival.
type IEstimateUseCase interface {
	Calculate(state entities.CalculatorState) entities.CalculationResults
	CreateDraft(ctx context.Context, state entities.CalculatorState) (EstimateResult, error)
	UpdateInputs(ctx context.Context, id string, version int64, state entities.CalculatorState) (EstimateResult, error)
	ConvertToWorkOrder(ctx context.Context, id string, version int64, state *entities.CalculatorState) (EstimateResult, error)
	Schedule(ctx context.Context, id string, version int64, date string) (EstimateResult, error)
	Invoice(ctx context.Context, id string, version int64, details lifecycle.InvoiceDetails) (EstimateResult, error)
	RefreshFinancials(ctx context.Context, id string, version int64) (EstimateResult, error)
	Archive(ctx context.Context, id string, version int64) (EstimateResult, error)
	Unarchive(ctx context.Context, id string, version int64) (EstimateResult, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	List(ctx context.Context, filter EstimateFilter) ([]entities.EstimateRecord, error)
	SendDocument(ctx context.Context, id string, kind interfaces.DocumentKind) (SentDocument, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	collab   EstimateCollaborators
	settings EstimateSettings
	now      func() time.Time
	newID    func() string
	log      *slog.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, collab EstimateCollaborators, settings EstimateSettings) *EstimateUseCase {
	return &EstimateUseCase{
		repo:     repo,
		collab:   collab,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      slog.Default().With("component", "estimate"),
	}
}

// withDefaults fills the company yields, unit costs and modes a request left unset.
func (u *EstimateUseCase) withDefaults(s entities.CalculatorState) entities.CalculatorState {
	if s.Mode == "" {
		s.Mode = entities.CalculationModeBuilding
	}
	if s.PricingMode == "" {
		s.PricingMode = entities.PricingModeCostPlus
	}
	if s.Yields.OpenCell <= 0 {
		s.Yields.OpenCell = u.settings.Yields.OpenCell
	}
	if s.Yields.ClosedCell <= 0 {
		s.Yields.ClosedCell = u.settings.Yields.ClosedCell
	}
	if s.Costs.OpenCell <= 0 {
		s.Costs.OpenCell = u.settings.Costs.OpenCell
	}
	if s.Costs.ClosedCell <= 0 {
		s.Costs.ClosedCell = u.settings.Costs.ClosedCell
	}
	if s.Costs.LaborRate <= 0 {
		s.Costs.LaborRate = u.settings.Costs.LaborRate
	}
	return s
}

func (u *EstimateUseCase) Calculate(state entities.CalculatorState) entities.CalculationResults {
	return estimator.Calculate(u.withDefaults(state))
}

// resolveInventory copies catalog name, unit and cost onto job lines that
// only name a warehouse item.
func (u *EstimateUseCase) resolveInventory(ctx context.Context, s entities.CalculatorState) (entities.CalculatorState, error) {
	if u.collab.Warehouse == nil || len(s.Inventory) == 0 {
		return s, nil
	}
	var catalog *warehouse.Catalog
	lines := make([]entities.InventoryItem, len(s.Inventory))
	for i, line := range s.Inventory {
		lines[i] = line
		if line.WarehouseItemID == "" || line.Name != "" {
			continue
		}
		if catalog == nil {
			items, err := u.collab.Warehouse.ListItems(ctx)
			if err != nil {
				return s, err
			}
			c := warehouse.NewCatalog(items)
			catalog = &c
		}
		selected, err := warehouse.Select(*catalog, line.WarehouseItemID, line.Quantity)
		if err != nil {
			return s, fmt.Errorf("%w: %v", lifecycle.ErrValidation, err)
		}
		if line.ID != "" {
			selected.ID = line.ID
		}
		lines[i] = selected
	}
	s.Inventory = lines
	return s, nil
}

// resolveCustomer snapshots the stored CRM profile when the state links one.
func (u *EstimateUseCase) resolveCustomer(ctx context.Context, s entities.CalculatorState) (entities.CalculatorState, error) {
	id := strings.TrimSpace(s.CustomerProfile.ID)
	if id == "" || u.collab.Customers == nil {
		return s, nil
	}
	c, err := u.collab.Customers.GetByID(ctx, id)
	if err != nil {
		return s, err
	}
	if c.ID == "" {
		return s, ErrCustomerNotFound
	}
	c.Version = 0
	s.CustomerProfile = c
	return s, nil
}

func (u *EstimateUseCase) prepare(ctx context.Context, s entities.CalculatorState) (entities.CalculatorState, entities.CalculationResults, error) {
	s = u.withDefaults(s)
	s, err := u.resolveCustomer(ctx, s)
	if err != nil {
		return s, entities.CalculationResults{}, err
	}
	s, err = u.resolveInventory(ctx, s)
	if err != nil {
		return s, entities.CalculationResults{}, err
	}
	return s, estimator.Calculate(s), nil
}

func (u *EstimateUseCase) mirror(ctx context.Context, rec entities.EstimateRecord, effects *sideEffects) {
	if u.collab.Backend == nil {
		return
	}
	effects.record(u.log.With("estimate_id", rec.ID), sideEffectMirror, external("script backend", u.collab.Backend.SaveEstimate(ctx, rec)))
}

func (u *EstimateUseCase) CreateDraft(ctx context.Context, state entities.CalculatorState) (EstimateResult, error) {
	s, results, err := u.prepare(ctx, state)
	if err != nil {
		return EstimateResult{}, err
	}
	rec, err := lifecycle.NewDraft(u.newID(), s, results, u.now())
	if err != nil {
		return EstimateResult{}, err
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		u.log.Error("create failed", "estimate_id", rec.ID, "err", err)
		return EstimateResult{}, err
	}
	u.log.Info("draft created", "estimate_id", created.ID, "customer_id", created.CustomerID, "total", created.TotalValue)

	var effects sideEffects
	u.mirror(ctx, created, &effects)
	return EstimateResult{Estimate: created, SideEffects: effects}, nil
}

// loadEstimate returns the current record or ErrEstimateNotFound.
func loadEstimate(ctx context.Context, repo interfaces.IEstimateRepository, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}
	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return rec, nil
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.EstimateRecord, error) {
	return loadEstimate(ctx, u.repo, id)
}

// apply runs one transition against the latest record and commits it with
// a version check. version 0 skips the caller-side check; the repository
// still rejects a concurrent write.
func (u *EstimateUseCase) apply(ctx context.Context, op, id string, version int64, fn func(entities.EstimateRecord) (entities.EstimateRecord, error)) (EstimateResult, error) {
	rec, err := u.load(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}
	if err := checkVersion(rec.Version, version); err != nil {
		return EstimateResult{}, err
	}
	next, err := fn(rec)
	if err != nil {
		u.log.Info("transition rejected", "op", op, "estimate_id", rec.ID, "status", rec.Status, "err", err)
		return EstimateResult{}, err
	}
	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Warn("concurrent update", "op", op, "estimate_id", rec.ID)
		} else {
			u.log.Error("update failed", "op", op, "estimate_id", rec.ID, "err", err)
		}
		return EstimateResult{}, err
	}
	u.log.Info("estimate updated", "op", op, "estimate_id", saved.ID, "status", saved.Status, "version", saved.Version)

	var effects sideEffects
	u.mirror(ctx, saved, &effects)
	return EstimateResult{Estimate: saved, SideEffects: effects}, nil
}

func (u *EstimateUseCase) UpdateInputs(ctx context.Context, id string, version int64, state entities.CalculatorState) (EstimateResult, error) {
	s, results, err := u.prepare(ctx, state)
	if err != nil {
		return EstimateResult{}, err
	}
	return u.apply(ctx, "update_inputs", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.UpdateInputs(rec, s, results, u.now())
	})
}

// ConvertToWorkOrder marks a draft as sold. A nil state recomputes the
// stored calculation.
func (u *EstimateUseCase) ConvertToWorkOrder(ctx context.Context, id string, version int64, state *entities.CalculatorState) (EstimateResult, error) {
	var (
		s       entities.CalculatorState
		results entities.CalculationResults
		err     error
	)
	if state != nil {
		if s, results, err = u.prepare(ctx, *state); err != nil {
			return EstimateResult{}, err
		}
	}
	return u.apply(ctx, "convert", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		if state == nil {
			s = lifecycle.LoadState(rec)
			results = lifecycle.Recalculate(rec)
		}
		return lifecycle.ConvertToWorkOrder(rec, s, results, u.now())
	})
}

func (u *EstimateUseCase) Schedule(ctx context.Context, id string, version int64, date string) (EstimateResult, error) {
	return u.apply(ctx, "schedule", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.Schedule(rec, date, u.now())
	})
}

func (u *EstimateUseCase) Invoice(ctx context.Context, id string, version int64, details lifecycle.InvoiceDetails) (EstimateResult, error) {
	return u.apply(ctx, "invoice", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.Invoice(rec, details, u.settings.Tolerance, u.now())
	})
}

func (u *EstimateUseCase) RefreshFinancials(ctx context.Context, id string, version int64) (EstimateResult, error) {
	return u.apply(ctx, "refresh_financials", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.RefreshFinancials(rec, u.settings.Tolerance, u.now())
	})
}

func (u *EstimateUseCase) Archive(ctx context.Context, id string, version int64) (EstimateResult, error) {
	return u.apply(ctx, "archive", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.Archive(rec, u.now())
	})
}

func (u *EstimateUseCase) Unarchive(ctx context.Context, id string, version int64) (EstimateResult, error) {
	return u.apply(ctx, "unarchive", id, version, func(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
		return lifecycle.Unarchive(rec, u.now())
	})
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	return u.load(ctx, id)
}

// List returns matching records, newest first.
func (u *EstimateUseCase) List(ctx context.Context, filter EstimateFilter) ([]entities.EstimateRecord, error) {
	var (
		all []entities.EstimateRecord
		err error
	)
	if id := strings.TrimSpace(filter.CustomerID); id != "" {
		all, err = u.repo.ListByCustomerID(ctx, id)
	} else {
		all, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	showArchived := filter.IncludeArchived || filter.Status == entities.EstimateStatusArchived || filter.Stage == lifecycle.StageArchived
	out := make([]entities.EstimateRecord, 0, len(all))
	for _, rec := range all {
		if rec.Status == entities.EstimateStatusArchived && !showArchived {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.Stage != "" && lifecycle.StageOf(rec) != filter.Stage {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// customerEmail prefers the CRM profile over the snapshot on the record.
func (u *EstimateUseCase) customerEmail(ctx context.Context, rec entities.EstimateRecord) string {
	if u.collab.Customers != nil && rec.CustomerID != "" {
		if c, err := u.collab.Customers.GetByID(ctx, rec.CustomerID); err == nil && strings.TrimSpace(c.Email) != "" {
			return strings.TrimSpace(c.Email)
		}
	}
	return strings.TrimSpace(rec.Customer.Email)
}

// SendDocument renders the requested document and emails it to the customer.
// Nothing is persisted.
func (u *EstimateUseCase) SendDocument(ctx context.Context, id string, kind interfaces.DocumentKind) (SentDocument, error) {
	rec, err := u.load(ctx, id)
	if err != nil {
		return SentDocument{}, err
	}
	to := u.customerEmail(ctx, rec)
	if to == "" {
		return SentDocument{}, ErrCustomerEmailRequired
	}
	if u.collab.Renderer == nil || u.collab.Email == nil {
		return SentDocument{}, external("email service", interfaces.ErrCollaboratorNotConfigured)
	}

	data, err := BuildDocumentData(kind, rec, u.settings.Company)
	if err != nil {
		return SentDocument{}, err
	}
	doc, err := u.collab.Renderer.Render(ctx, data)
	if err != nil {
		return SentDocument{}, external("document renderer", err)
	}

	company := u.settings.Company.CompanyName
	if company == "" {
		company = "your contractor"
	}
	err = u.collab.Email.SendDocument(ctx, interfaces.DocumentEmail{
		To:               to,
		Subject:          fmt.Sprintf("%s %s from %s", data.Title, data.Number, company),
		Body:             fmt.Sprintf("Hello %s,\n\nPlease find your %s attached.\n\nThank you,\n%s", rec.Customer.Name, strings.ToLower(data.Title), company),
		AttachmentBase64: base64.StdEncoding.EncodeToString(doc.Body),
		FileName:         doc.FileName,
	})
	if err != nil {
		u.log.Error("send document failed", "estimate_id", rec.ID, "kind", kind, "err", err)
		return SentDocument{}, external("email service", err)
	}
	u.log.Info("document sent", "estimate_id", rec.ID, "kind", kind)
	return SentDocument{FileName: doc.FileName, To: to}, nil
}
