package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"foampro/internal/domain/crew"
	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	sideEffectStartJob    = "backend_start_job"
	sideEffectCompleteJob = "backend_complete_job"
	sideEffectTimeLog     = "crew_time_log"
	sideEffectStock       = "stock_deduction"
	sideEffectEquipment   = "equipment_return"
	sideEffectCheckout    = "equipment_checkout"
)

var (
	ErrInvalidCrewUser = errors.New("crew member required")
	ErrNoActiveTimer   = fmt.Errorf("%w: no active timer for this job", lifecycle.ErrPrecondition)
	ErrTimerOtherJob   = fmt.Errorf("%w: a timer is already running for another job", lifecycle.ErrPrecondition)
	ErrInvalidPhoto    = errors.New("photo data required")
)

// TimerStatus is the outcome of resuming a crew member's clock.
type TimerStatus struct {
	Active  bool                  `json:"active"`
	Timer   *entities.ActiveTimer `json:"timer,omitempty"`
	Elapsed time.Duration         `json:"elapsed"`
	Reason  string                `json:"reason,omitempty"`
}

type CrewStartResult struct {
	Estimate    entities.EstimateRecord `json:"estimate"`
	Timer       entities.ActiveTimer    `json:"timer"`
	SideEffects []SideEffectFailure     `json:"sideEffects,omitempty"`
}

type CrewStopResult struct {
	Entry       interfaces.CrewTimeLog `json:"entry"`
	SideEffects []SideEffectFailure    `json:"sideEffects,omitempty"`
}

// CrewCompletion reports the committed record and any stock that went
// negative because of it.
type CrewCompletion struct {
	Estimate    entities.EstimateRecord  `json:"estimate"`
	Shortages   []entities.WarehouseItem `json:"shortages,omitempty"`
	SideEffects []SideEffectFailure      `json:"sideEffects,omitempty"`
}

type PhotoUpload struct {
	Base64Data string
	FileName   string
	Kind       entities.ImageKind
	Caption    string
}

// ICrewUseCase is the field-crew surface: job list, job clock, completion
// with actuals, photos and the background refresh.
type ICrewUseCase interface {
	ListJobs(ctx context.Context, history bool) ([]entities.EstimateRecord, error)
	StartJob(ctx context.Context, jobID, user string) (CrewStartResult, error)
	ResumeTimer(ctx context.Context, user string) (TimerStatus, error)
	StopTimer(ctx context.Context, jobID, user string, complete bool) (CrewStopResult, error)
	CompleteJob(ctx context.Context, jobID, user string, actuals entities.Actuals) (CrewCompletion, error)
	UploadPhoto(ctx context.Context, jobID, user string, photo PhotoUpload) (entities.JobImage, error)
	CancelCompletion(ctx context.Context, jobID, user string) error
	SyncNow(ctx context.Context) (ran bool, reason string, err error)
	RunAutoSync(ctx context.Context) error
}

// CrewStores are the repositories the crew flow touches besides estimates.
type CrewStores struct {
	Warehouse interfaces.IWarehouseRepository
	Usage     interfaces.IMaterialUsageRepository
	Equipment interfaces.IEquipmentRepository
	Timers    interfaces.ITimerStore
}

type CrewUseCase struct {
	estimates interfaces.IEstimateRepository
	stores    CrewStores
	backend   interfaces.IFieldBackend
	refresh   func(ctx context.Context) error
	interval  time.Duration
	gate      *crew.SyncGate

	mu      sync.Mutex
	running map[string]string // user → job id
	forms   map[string]completionForm // user → open completion form

	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

var _ ICrewUseCase = (*CrewUseCase)(nil)

// NewCrewUseCase wires the crew flow. refresh is what auto sync runs,
// normally SyncUseCase.SyncDown.
func NewCrewUseCase(estimates interfaces.IEstimateRepository, stores CrewStores, backend interfaces.IFieldBackend, refresh func(ctx context.Context) error, interval time.Duration) *CrewUseCase {
	return &CrewUseCase{
		estimates: estimates,
		stores:    stores,
		backend:   backend,
		refresh:   refresh,
		interval:  interval,
		gate:      crew.NewSyncGate(),
		running:   map[string]string{},
		forms:     map[string]completionForm{},
		now:       time.Now,
		newID:     uuid.NewString,
		log:       slog.Default().With("component", "crew"),
	}
}

func (u *CrewUseCase) setRunning(user, jobID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if jobID == "" {
		delete(u.running, user)
	} else {
		u.running[user] = jobID
	}
	u.gate.SetTimerRunning(len(u.running) > 0)
}

// completionForm is a completion started by stopping the clock but not yet
// submitted.
type completionForm struct {
	jobID string
	hours float64
}

func (u *CrewUseCase) openForm(user string, f completionForm) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.forms[user] = f
	u.gate.SetFormOpen(true)
}

func (u *CrewUseCase) closeForm(user string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.forms, user)
	u.gate.SetFormOpen(len(u.forms) > 0)
}

func (u *CrewUseCase) openFormFor(user, jobID string) (completionForm, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f, ok := u.forms[user]
	return f, ok && f.jobID == jobID
}

// ListJobs returns work orders for the crew: open jobs by schedule, or
// completed ones for history.
func (u *CrewUseCase) ListJobs(ctx context.Context, history bool) ([]entities.EstimateRecord, error) {
	all, err := u.estimates.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.EstimateRecord
	for _, rec := range all {
		switch rec.Status {
		case entities.EstimateStatusWorkOrder, entities.EstimateStatusInvoiced, entities.EstimateStatusPaid:
		default:
			continue
		}
		done := rec.ExecutionStatus == entities.ExecutionCompleted
		if done != history {
			continue
		}
		if !history && rec.Status == entities.EstimateStatusPaid {
			continue
		}
		out = append(out, rec)
	}
	if history {
		sort.SliceStable(out, func(i, j int) bool { return completionDate(out[i]) > completionDate(out[j]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return scheduleKey(out[i]) < scheduleKey(out[j]) })
	}
	return out, nil
}

func completionDate(rec entities.EstimateRecord) string {
	if rec.Actuals != nil {
		return rec.Actuals.CompletionDate
	}
	return rec.UpdatedAt
}

// scheduleKey sorts unscheduled jobs last.
func scheduleKey(rec entities.EstimateRecord) string {
	if rec.ScheduledDate == "" {
		return "~" + rec.Date
	}
	return rec.ScheduledDate
}

func cleanUser(user string) (string, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return "", ErrInvalidCrewUser
	}
	return user, nil
}

// StartJob starts the clock for user and moves the job to In Progress.
// Starting the job you are already timing returns the existing clock.
func (u *CrewUseCase) StartJob(ctx context.Context, jobID, user string) (CrewStartResult, error) {
	user, err := cleanUser(user)
	if err != nil {
		return CrewStartResult{}, err
	}
	rec, err := loadEstimate(ctx, u.estimates, jobID)
	if err != nil {
		return CrewStartResult{}, err
	}
	log := u.log.With("job_id", rec.ID, "user", user)

	timer, found, err := u.stores.Timers.Get(ctx, user)
	if err != nil {
		return CrewStartResult{}, err
	}
	if found && timer.JobID != rec.ID {
		return CrewStartResult{}, fmt.Errorf("%w (job %s)", ErrTimerOtherJob, timer.JobID)
	}

	next, changed, err := lifecycle.StartJob(rec, u.now())
	if err != nil {
		log.Info("start rejected", "err", err)
		return CrewStartResult{}, err
	}
	var effects sideEffects
	if changed {
		if next, err = u.estimates.Update(ctx, next); err != nil {
			return CrewStartResult{}, err
		}
		log.Info("job started")
		effects.record(log, sideEffectCheckout, u.checkOutEquipment(ctx, next, user))
	}

	if !found {
		timer = entities.ActiveTimer{JobID: rec.ID, StartedAt: u.now().UTC(), User: user}
		if err := u.stores.Timers.Save(ctx, timer); err != nil {
			return CrewStartResult{}, err
		}
	}
	u.setRunning(user, rec.ID)

	if u.backend != nil {
		effects.record(log, sideEffectStartJob, external("script backend", u.backend.StartJob(ctx, rec.ID)))
	}
	return CrewStartResult{Estimate: next, Timer: timer, SideEffects: effects}, nil
}

// ResumeTimer restores user's clock after a restart, discarding it when the
// job is gone or already finished.
func (u *CrewUseCase) ResumeTimer(ctx context.Context, user string) (TimerStatus, error) {
	user, err := cleanUser(user)
	if err != nil {
		return TimerStatus{}, err
	}
	timer, found, err := u.stores.Timers.Get(ctx, user)
	if err != nil {
		return TimerStatus{}, err
	}
	if !found {
		u.setRunning(user, "")
		return TimerStatus{}, nil
	}
	return u.resume(ctx, timer)
}

func (u *CrewUseCase) resume(ctx context.Context, timer entities.ActiveTimer) (TimerStatus, error) {
	rec, err := u.estimates.GetByID(ctx, timer.JobID)
	if err != nil {
		return TimerStatus{}, err
	}

	d := crew.Resume(timer, rec, rec.ID != "", u.now())
	if !d.Keep {
		u.log.Info("discarding stale timer", "job_id", timer.JobID, "user", timer.User, "reason", d.Reason)
		if err := u.stores.Timers.Delete(ctx, timer.User); err != nil {
			return TimerStatus{}, err
		}
		u.setRunning(timer.User, "")
		return TimerStatus{Reason: d.Reason}, nil
	}
	u.setRunning(timer.User, timer.JobID)
	return TimerStatus{Active: true, Timer: &timer, Elapsed: d.Elapsed}, nil
}

// RestoreTimers resumes every clock persisted before a restart so the sync
// gate sees them. Stale timers are discarded. It returns how many are still
// running.
func (u *CrewUseCase) RestoreTimers(ctx context.Context) (int, error) {
	timers, err := u.stores.Timers.List(ctx)
	if err != nil {
		return 0, err
	}
	kept := 0
	for _, t := range timers {
		st, err := u.resume(ctx, t)
		if err != nil {
			return kept, fmt.Errorf("resume timer of %s: %w", t.User, err)
		}
		if st.Active {
			kept++
		}
	}
	if len(timers) > 0 {
		u.log.Info("timers restored", "found", len(timers), "running", kept)
	}
	return kept, nil
}

// StopTimer ends user's clock on jobID and logs the worked span. With
// complete set the completion form opens and holds back auto sync until the
// job is completed or the completion is cancelled.
func (u *CrewUseCase) StopTimer(ctx context.Context, jobID, user string, complete bool) (CrewStopResult, error) {
	user, err := cleanUser(user)
	if err != nil {
		return CrewStopResult{}, err
	}
	timer, found, err := u.stores.Timers.Get(ctx, user)
	if err != nil {
		return CrewStopResult{}, err
	}
	if !found || timer.JobID != strings.TrimSpace(jobID) {
		return CrewStopResult{}, ErrNoActiveTimer
	}
	entry, effects, err := u.stopTimer(ctx, timer)
	if err != nil {
		return CrewStopResult{}, err
	}
	if complete {
		u.openForm(user, completionForm{jobID: timer.JobID, hours: entry.End.Sub(entry.Start).Hours()})
	}
	return CrewStopResult{Entry: entry, SideEffects: effects}, nil
}

// CancelCompletion closes user's completion form without submitting actuals.
func (u *CrewUseCase) CancelCompletion(_ context.Context, jobID, user string) error {
	user, err := cleanUser(user)
	if err != nil {
		return err
	}
	if _, ok := u.openFormFor(user, strings.TrimSpace(jobID)); ok {
		u.closeForm(user)
	}
	return nil
}

func (u *CrewUseCase) stopTimer(ctx context.Context, timer entities.ActiveTimer) (interfaces.CrewTimeLog, sideEffects, error) {
	if err := u.stores.Timers.Delete(ctx, timer.User); err != nil {
		return interfaces.CrewTimeLog{}, nil, err
	}
	u.setRunning(timer.User, "")

	entry := interfaces.CrewTimeLog{JobID: timer.JobID, Start: timer.StartedAt, End: u.now().UTC(), User: timer.User}
	var effects sideEffects
	if u.backend != nil {
		effects.record(u.log.With("job_id", timer.JobID), sideEffectTimeLog, external("script backend", u.backend.LogCrewTime(ctx, entry)))
	}
	u.log.Info("timer stopped", "job_id", timer.JobID, "user", timer.User, "elapsed", entry.End.Sub(entry.Start))
	return entry, effects, nil
}

// CompleteJob records the crew's actuals. The first completion needs the
// submitting user's clock running on the job, or a completion form opened by
// stopping it; resubmissions need neither.
// Warehouse stock moves by the difference from the previous submission.
func (u *CrewUseCase) CompleteJob(ctx context.Context, jobID, user string, actuals entities.Actuals) (CrewCompletion, error) {
	user, err := cleanUser(user)
	if err != nil {
		return CrewCompletion{}, err
	}
	done := u.gate.BeginCompletion()
	defer done()

	rec, err := loadEstimate(ctx, u.estimates, jobID)
	if err != nil {
		return CrewCompletion{}, err
	}
	log := u.log.With("job_id", rec.ID, "user", user)

	timer, found, err := u.stores.Timers.Get(ctx, user)
	if err != nil {
		return CrewCompletion{}, err
	}
	hasTimer := found && timer.JobID == rec.ID
	form, hasForm := u.openFormFor(user, rec.ID)
	if rec.ExecutionStatus != entities.ExecutionCompleted && !hasTimer && !hasForm {
		log.Info("completion rejected", "err", ErrNoActiveTimer)
		return CrewCompletion{}, ErrNoActiveTimer
	}

	if strings.TrimSpace(actuals.CompletedBy) == "" {
		actuals.CompletedBy = user
	}
	if actuals.LaborHours == 0 {
		switch {
		case hasTimer:
			actuals.LaborHours = u.now().Sub(timer.StartedAt).Hours()
		case hasForm:
			actuals.LaborHours = form.hours
		}
	}

	next, err := lifecycle.CompleteJob(rec, actuals, u.now())
	if err != nil {
		log.Info("completion rejected", "err", err)
		return CrewCompletion{}, err
	}
	saved, err := u.estimates.Update(ctx, next)
	if err != nil {
		return CrewCompletion{}, err
	}
	log.Info("job completed", "open_cell_sets", actuals.OpenCellSets, "closed_cell_sets", actuals.ClosedCellSets)
	u.closeForm(user)

	out := CrewCompletion{Estimate: saved}
	var effects sideEffects
	shortages, err := u.consumeStock(ctx, rec, saved, user)
	effects.record(log, sideEffectStock, err)
	out.Shortages = shortages
	effects.record(log, sideEffectEquipment, u.returnEquipment(ctx, saved, user))

	if hasTimer {
		_, timerEffects, err := u.stopTimer(ctx, timer)
		effects.record(log, sideEffectTimeLog, err)
		effects = append(effects, timerEffects...)
	}
	if u.backend != nil {
		effects.record(log, sideEffectCompleteJob, external("script backend", u.backend.CompleteJob(ctx, saved.ID, *saved.Actuals)))
	}
	out.SideEffects = effects
	return out, nil
}

func (u *CrewUseCase) consumeStock(ctx context.Context, prev, next entities.EstimateRecord, user string) ([]entities.WarehouseItem, error) {
	if u.stores.Warehouse == nil {
		return nil, nil
	}
	items, err := u.stores.Warehouse.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	ref := warehouse.JobRef{
		JobID:        next.ID,
		CustomerName: next.Customer.Name,
		LoggedBy:     user,
		Date:         u.now().UTC().Format(time.RFC3339),
	}
	c := warehouse.Consume(warehouse.NewCatalog(items), warehouse.UsageFromActuals(prev.Actuals), warehouse.UsageFromActuals(next.Actuals), ref, u.newID)
	if len(c.Changed) == 0 {
		return nil, nil
	}
	if err := u.stores.Warehouse.PutItems(ctx, c.Changed); err != nil {
		return nil, err
	}
	if u.stores.Usage != nil {
		if err := u.stores.Usage.Append(ctx, c.Log); err != nil {
			return nil, err
		}
	}
	return warehouse.Shortages(c.Catalog), nil
}

func (u *CrewUseCase) lastSeen(rec entities.EstimateRecord, user string) entities.LastSeen {
	return entities.LastSeen{JobID: rec.ID, CustomerName: rec.Customer.Name, Date: u.now().UTC().Format("2006-01-02"), CrewMember: user}
}

// checkOutEquipment marks the job's planned equipment In Use. Tools that are
// missing or busy elsewhere are reported and skipped.
func (u *CrewUseCase) checkOutEquipment(ctx context.Context, rec entities.EstimateRecord, user string) error {
	if u.stores.Equipment == nil {
		return nil
	}
	seen := u.lastSeen(rec, user)
	var errs []error
	for _, planned := range rec.Materials.Equipment {
		e, err := u.stores.Equipment.GetByID(ctx, planned.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%w: %s", warehouse.ErrEquipmentNotFound, planned.ID))
			continue
		}
		out, err := warehouse.CheckOut(e, seen)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := u.stores.Equipment.Put(ctx, out); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// returnEquipment marks the job's planned and used equipment available again
// with the job as its last known location. Tools checked out to another job
// are left alone.
func (u *CrewUseCase) returnEquipment(ctx context.Context, rec entities.EstimateRecord, user string) error {
	if u.stores.Equipment == nil || rec.Actuals == nil {
		return nil
	}
	seen := u.lastSeen(rec, user)
	ids := map[string]bool{}
	var errs []error
	for _, used := range append(append([]entities.EquipmentItem(nil), rec.Materials.Equipment...), rec.Actuals.Equipment...) {
		if used.ID == "" || ids[used.ID] {
			continue
		}
		ids[used.ID] = true
		e, err := u.stores.Equipment.GetByID(ctx, used.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e.ID == "" {
			continue
		}
		if e.Status == entities.EquipmentInUse && e.LastSeen != nil && e.LastSeen.JobID != rec.ID {
			continue
		}
		if _, err := u.stores.Equipment.Put(ctx, warehouse.Return(e, seen)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// UploadPhoto stores an image through the backend. Site photos are attached
// to the record; completion photos are returned for the actuals payload.
func (u *CrewUseCase) UploadPhoto(ctx context.Context, jobID, user string, photo PhotoUpload) (entities.JobImage, error) {
	user, err := cleanUser(user)
	if err != nil {
		return entities.JobImage{}, err
	}
	if strings.TrimSpace(photo.Base64Data) == "" {
		return entities.JobImage{}, ErrInvalidPhoto
	}
	done := u.gate.BeginUpload()
	defer done()

	rec, err := loadEstimate(ctx, u.estimates, jobID)
	if err != nil {
		return entities.JobImage{}, err
	}
	if u.backend == nil {
		return entities.JobImage{}, external("script backend", interfaces.ErrCollaboratorNotConfigured)
	}

	kind := photo.Kind
	if kind == "" {
		kind = entities.ImageKindSiteCondition
	}
	name := photo.FileName
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("%s_%s_%d.jpg", rec.ID, kind, u.now().Unix())
	}
	url, err := u.backend.UploadImage(ctx, photo.Base64Data, name)
	if err != nil {
		u.log.Warn("photo upload failed", "job_id", rec.ID, "err", err)
		return entities.JobImage{}, external("script backend", err)
	}
	img := entities.JobImage{
		ID:         u.newID(),
		URL:        url,
		Caption:    photo.Caption,
		UploadedAt: u.now().UTC().Format(time.RFC3339),
		UploadedBy: user,
		Type:       kind,
	}
	if kind != entities.ImageKindSiteCondition {
		return img, nil
	}

	// The upload is idempotent, so a lost race simply re-reads and appends.
	for attempt := 0; ; attempt++ {
		rec.SitePhotos = append(rec.SitePhotos, img)
		_, err := u.estimates.Update(ctx, rec)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) || attempt > 0 {
			return entities.JobImage{}, err
		}
		if rec, err = loadEstimate(ctx, u.estimates, rec.ID); err != nil {
			return entities.JobImage{}, err
		}
	}
}

// SyncNow runs one refresh unless a crew operation is in flight.
func (u *CrewUseCase) SyncNow(ctx context.Context) (bool, string, error) {
	var reason string
	p := u.poller()
	p.OnSkip = func(r string) { reason = r }
	ran, err := p.Tick(ctx)
	return ran, reason, err
}

// RunAutoSync polls until ctx is cancelled.
func (u *CrewUseCase) RunAutoSync(ctx context.Context) error {
	u.log.Info("auto sync started", "interval", u.interval)
	return u.poller().Run(ctx)
}

func (u *CrewUseCase) poller() *crew.Poller {
	refresh := u.refresh
	if refresh == nil {
		refresh = func(context.Context) error { return nil }
	}
	return &crew.Poller{
		Interval: u.interval,
		Gate:     u.gate,
		Refresh:  refresh,
		OnSkip:   func(reason string) { u.log.Debug("auto sync skipped", "reason", reason) },
		OnError:  func(err error) { u.log.Warn("auto sync failed", "err", err) },
	}
}
