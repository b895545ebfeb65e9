// Package fwsync reconciles the on-device relational store with the
// remote multi-tenant document store. One Engine serializes all sync
// passes behind a single mutex, runs the download phase in dependency
// order, then pushes the owner's full local snapshot back up, and only
// then advances the per-(owner, installation) baseline timestamp.
package fwsync

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Baseline scopes. Each scope keeps its own last-sync timestamp per
// (owner, installation) so the lightweight user-data pass does not
// disturb the full pass's incremental window.
const (
	ScopeAll  = "all"
	ScopeUser = "user"
)

// Config holds engine configuration.
type Config struct {
	// InstallationID identifies this device install. Baselines are keyed
	// by it so multiple devices for one user keep independent windows.
	InstallationID string

	// Cooldown is the minimum interval between successful SyncAll passes.
	// Zero disables the cooldown.
	Cooldown time.Duration

	Logger *slog.Logger

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Engine is the sync coordinator.
type Engine struct {
	local   LocalStores
	remote  RemoteStores
	meta    MetadataStore
	session SessionProvider

	installationID string
	cooldown       time.Duration
	logger         *slog.Logger
	now            func() time.Time

	// mu serializes every entry point. lastFullSync is the cooldown
	// reference and is only touched under mu.
	mu           sync.Mutex
	lastFullSync time.Time
}

// New creates a sync engine. All entry points share one mutex, so passes
// started from different call sites never interleave local-store writes.
func New(local LocalStores, remote RemoteStores, meta MetadataStore, session SessionProvider, cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Engine{
		local:          local,
		remote:         remote,
		meta:           meta,
		session:        session,
		installationID: cfg.InstallationID,
		cooldown:       cfg.Cooldown,
		logger:         logger,
		now:            now,
	}
}

// SyncAll performs a full bidirectional sync for the currently
// authenticated owner: download in dependency order, then upload the full
// local snapshot, then advance the baseline. Callers block until any
// in-flight pass completes; there is no queue deduplication.
func (e *Engine) SyncAll(ctx context.Context) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cooldown > 0 && !e.lastFullSync.IsZero() {
		if elapsed := e.now().Sub(e.lastFullSync); elapsed < e.cooldown {
			remaining := e.cooldown - elapsed
			e.logger.Debug("sync skipped, cooldown not elapsed", "remaining", remaining)
			return skipped("cooldown not elapsed", remaining)
		}
	}

	owner, ok := e.session.CurrentUserID(ctx)
	if !ok || owner == "" {
		return failure(StageAuth, ErrNotAuthenticated)
	}

	baseline, err := e.resolveBaseline(ctx, owner, ScopeAll)
	if err != nil {
		return failure(StageDownload, err)
	}

	if err := e.runSteps(ctx, "download", e.downloadSteps(owner, baseline, true)); err != nil {
		return failure(StageDownload, err)
	}
	// Download results are committed locally at this point. An upload
	// failure below is an accepted partial-success state: rolling back
	// would discard legitimately newer remote data.
	if err := e.runSteps(ctx, "upload", e.uploadSteps(owner)); err != nil {
		return failure(StageUpload, err)
	}

	syncedAt := e.now()
	if err := e.meta.SetLastSyncTime(ctx, owner, e.installationID, ScopeAll, syncedAt); err != nil {
		return failure(StageFinalize, &StoreError{Op: "persist baseline", Err: err})
	}
	e.lastFullSync = syncedAt
	e.logger.Info("sync completed", "user", owner, "synced_at", syncedAt)
	return success(syncedAt)
}

// SyncSystemReferenceData downloads only the ownerless global exercise
// catalog. It needs no authentication and always fetches the full
// catalog.
func (e *Engine) SyncSystemReferenceData(ctx context.Context) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.runSteps(ctx, "download", []step{e.catalogStep()}); err != nil {
		return failure(StageDownload, err)
	}
	return success(e.now())
}

// SyncUserData downloads and uploads only the owner-scoped collections,
// skipping the global catalog re-fetch. It keeps its own baseline scope
// and is intended for a lighter-weight, more frequent pass.
func (e *Engine) SyncUserData(ctx context.Context, ownerID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ownerID == "" {
		return failure(StageAuth, ErrNotAuthenticated)
	}

	baseline, err := e.resolveBaseline(ctx, ownerID, ScopeUser)
	if err != nil {
		return failure(StageDownload, err)
	}

	if err := e.runSteps(ctx, "download", e.downloadSteps(ownerID, baseline, false)); err != nil {
		return failure(StageDownload, err)
	}
	if err := e.runSteps(ctx, "upload", e.uploadSteps(ownerID)); err != nil {
		return failure(StageUpload, err)
	}

	syncedAt := e.now()
	if err := e.meta.SetLastSyncTime(ctx, ownerID, e.installationID, ScopeUser, syncedAt); err != nil {
		return failure(StageFinalize, &StoreError{Op: "persist baseline", Err: err})
	}
	e.logger.Info("user data sync completed", "user", ownerID, "synced_at", syncedAt)
	return success(syncedAt)
}

// RestoreFromCloud is destructive: it deletes all local owner-scoped data
// first, then performs a full unfiltered download, rewriting the local
// store entirely from remote. Used for device-switch and reinstall
// recovery. Nothing is uploaded; local-only rows that never synced are
// gone afterwards.
func (e *Engine) RestoreFromCloud(ctx context.Context) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	owner, ok := e.session.CurrentUserID(ctx)
	if !ok || owner == "" {
		return failure(StageAuth, ErrNotAuthenticated)
	}

	e.logger.Warn("restoring local store from cloud", "user", owner)
	if err := e.deleteOwnerData(ctx, owner); err != nil {
		return failure(StageRestore, err)
	}

	if err := e.runSteps(ctx, "download", e.downloadSteps(owner, nil, true)); err != nil {
		return failure(StageDownload, err)
	}

	syncedAt := e.now()
	for _, scope := range []string{ScopeAll, ScopeUser} {
		if err := e.meta.SetLastSyncTime(ctx, owner, e.installationID, scope, syncedAt); err != nil {
			return failure(StageFinalize, &StoreError{Op: "persist baseline", Err: err})
		}
	}
	e.logger.Info("restore completed", "user", owner, "synced_at", syncedAt)
	return success(syncedAt)
}

// resolveBaseline reads the stored baseline for the scope and applies
// fresh-install detection: an owner with zero workout rows but a stored
// baseline means the metadata outlived the data (reinstall, cleared
// storage), and an incremental fetch would silently return nothing.
// Force a full download instead.
func (e *Engine) resolveBaseline(ctx context.Context, owner, scope string) (*time.Time, error) {
	baseline, err := e.meta.LastSyncTime(ctx, owner, e.installationID, scope)
	if err != nil {
		return nil, &StoreError{Op: "read baseline", Err: err}
	}
	if baseline == nil {
		return nil, nil
	}
	count, err := e.local.Workouts.CountForOwner(ctx, owner)
	if err != nil {
		return nil, &StoreError{Op: "count workouts", Err: err}
	}
	if count == 0 {
		e.logger.Warn("empty local store with stored baseline, forcing full download",
			"user", owner, "scope", scope, "stale_baseline", *baseline)
		return nil, nil
	}
	return baseline, nil
}

// deleteOwnerData clears every owner-scoped collection, children before
// parents so declared foreign keys hold while rows disappear.
func (e *Engine) deleteOwnerData(ctx context.Context, owner string) error {
	deletes := []struct {
		name string
		run  func(context.Context, string) error
	}{
		{"clear parse_requests", e.local.ParseRequests.DeleteAllForOwner},
		{"clear training_analyses", e.local.TrainingAnalyses.DeleteAllForOwner},
		{"clear global_exercise_progress", e.local.GlobalExerciseProgress.DeleteAllForOwner},
		{"clear performance_tracking", e.local.PerformanceTracking.DeleteAllForOwner},
		{"clear swap_history", e.local.SwapHistory.DeleteAllForOwner},
		{"clear exercise_usage", e.local.ExerciseUsage.DeleteAllForOwner},
		{"clear personal_records", e.local.PersonalRecords.DeleteAllForOwner},
		{"clear exercise_maxes", e.local.ExerciseMaxes.DeleteAllForOwner},
		{"clear template_sets", e.local.TemplateSets.DeleteAllForOwner},
		{"clear template_exercises", e.local.TemplateExercises.DeleteAllForOwner},
		{"clear templates", e.local.Templates.DeleteAllForOwner},
		{"clear set_logs", e.local.SetLogs.DeleteAllForOwner},
		{"clear exercise_logs", e.local.ExerciseLogs.DeleteAllForOwner},
		{"clear workouts", e.local.Workouts.DeleteAllForOwner},
		{"clear programme_progress", e.local.ProgrammeProgress.DeleteAllForOwner},
		{"clear programme_workouts", e.local.ProgrammeWorkouts.DeleteAllForOwner},
		{"clear programme_weeks", e.local.ProgrammeWeeks.DeleteAllForOwner},
		{"clear programmes", e.local.Programmes.DeleteAllForOwner},
		{"clear custom_exercises", e.local.CustomExercises.DeleteAllForOwner},
	}
	for _, d := range deletes {
		if err := d.run(ctx, owner); err != nil {
			return &StoreError{Op: d.name, Err: err}
		}
	}
	return nil
}
