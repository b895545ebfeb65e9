package fwsync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/radupana/featherweight-sub015/fwcloud"
	"github.com/radupana/featherweight-sub015/fwstore"
	"github.com/radupana/featherweight-sub015/model"
)

type sessionFunc func(ctx context.Context) (string, bool)

func (f sessionFunc) CurrentUserID(ctx context.Context) (string, bool) { return f(ctx) }

// callLog records the order of remote operations across all fakes.
type callLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *callLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// fakeRemote is an in-memory stand-in for one remote collection.
type fakeRemote[D any] struct {
	name        string
	log         *callLog
	docs        []D
	downloadErr error
	uploadErr   error
	onDownload  func()

	mu        sync.Mutex
	uploads   [][]D
	sinceSeen []*time.Time
	ownerSeen []string
}

func (f *fakeRemote[D]) Download(ctx context.Context, ownerID string, since *time.Time) ([]D, error) {
	if f.onDownload != nil {
		f.onDownload()
	}
	f.log.add("download " + f.name)
	f.mu.Lock()
	f.sinceSeen = append(f.sinceSeen, since)
	f.ownerSeen = append(f.ownerSeen, ownerID)
	f.mu.Unlock()
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.docs, nil
}

func (f *fakeRemote[D]) Upload(ctx context.Context, ownerID string, docs []D) error {
	f.log.add("upload " + f.name)
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.mu.Lock()
	f.uploads = append(f.uploads, docs)
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote[D]) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeRemote[D]) lastSince() *time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sinceSeen) == 0 {
		return nil
	}
	return f.sinceSeen[len(f.sinceSeen)-1]
}

// fakeClock is a hand-advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type remoteFakes struct {
	exercises       *fakeRemote[fwcloud.ExerciseDoc]
	customExercises *fakeRemote[fwcloud.CustomExerciseDoc]

	programmes        *fakeRemote[fwcloud.ProgrammeDoc]
	programmeWeeks    *fakeRemote[fwcloud.ProgrammeWeekDoc]
	programmeWorkouts *fakeRemote[fwcloud.ProgrammeWorkoutDoc]
	programmeProgress *fakeRemote[fwcloud.ProgrammeProgressDoc]

	workouts     *fakeRemote[fwcloud.WorkoutDoc]
	exerciseLogs *fakeRemote[fwcloud.ExerciseLogDoc]
	setLogs      *fakeRemote[fwcloud.SetLogDoc]

	templates         *fakeRemote[fwcloud.TemplateDoc]
	templateExercises *fakeRemote[fwcloud.TemplateExerciseDoc]
	templateSets      *fakeRemote[fwcloud.TemplateSetDoc]

	exerciseMaxes   *fakeRemote[fwcloud.ExerciseMaxDoc]
	personalRecords *fakeRemote[fwcloud.PersonalRecordDoc]
	exerciseUsage   *fakeRemote[fwcloud.ExerciseUsageDoc]

	swapHistory            *fakeRemote[fwcloud.SwapHistoryDoc]
	performanceTracking    *fakeRemote[fwcloud.PerformanceTrackingDoc]
	globalExerciseProgress *fakeRemote[fwcloud.GlobalExerciseProgressDoc]
	trainingAnalyses       *fakeRemote[fwcloud.TrainingAnalysisDoc]
	parseRequests          *fakeRemote[fwcloud.ParseRequestDoc]
}

type harness struct {
	store   *fwstore.Store
	remotes *remoteFakes
	log     *callLog
	clock   *fakeClock
	engine  *Engine
}

const (
	testUser    = "user-1"
	testInstall = "install-1"
)

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	store, err := fwstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := &callLog{}
	r := &remoteFakes{
		exercises:       &fakeRemote[fwcloud.ExerciseDoc]{name: "exercises", log: log},
		customExercises: &fakeRemote[fwcloud.CustomExerciseDoc]{name: "custom_exercises", log: log},

		programmes:        &fakeRemote[fwcloud.ProgrammeDoc]{name: "programmes", log: log},
		programmeWeeks:    &fakeRemote[fwcloud.ProgrammeWeekDoc]{name: "programme_weeks", log: log},
		programmeWorkouts: &fakeRemote[fwcloud.ProgrammeWorkoutDoc]{name: "programme_workouts", log: log},
		programmeProgress: &fakeRemote[fwcloud.ProgrammeProgressDoc]{name: "programme_progress", log: log},

		workouts:     &fakeRemote[fwcloud.WorkoutDoc]{name: "workouts", log: log},
		exerciseLogs: &fakeRemote[fwcloud.ExerciseLogDoc]{name: "exercise_logs", log: log},
		setLogs:      &fakeRemote[fwcloud.SetLogDoc]{name: "set_logs", log: log},

		templates:         &fakeRemote[fwcloud.TemplateDoc]{name: "templates", log: log},
		templateExercises: &fakeRemote[fwcloud.TemplateExerciseDoc]{name: "template_exercises", log: log},
		templateSets:      &fakeRemote[fwcloud.TemplateSetDoc]{name: "template_sets", log: log},

		exerciseMaxes:   &fakeRemote[fwcloud.ExerciseMaxDoc]{name: "exercise_maxes", log: log},
		personalRecords: &fakeRemote[fwcloud.PersonalRecordDoc]{name: "personal_records", log: log},
		exerciseUsage:   &fakeRemote[fwcloud.ExerciseUsageDoc]{name: "exercise_usage", log: log},

		swapHistory:            &fakeRemote[fwcloud.SwapHistoryDoc]{name: "swap_history", log: log},
		performanceTracking:    &fakeRemote[fwcloud.PerformanceTrackingDoc]{name: "performance_tracking", log: log},
		globalExerciseProgress: &fakeRemote[fwcloud.GlobalExerciseProgressDoc]{name: "global_exercise_progress", log: log},
		trainingAnalyses:       &fakeRemote[fwcloud.TrainingAnalysisDoc]{name: "training_analyses", log: log},
		parseRequests:          &fakeRemote[fwcloud.ParseRequestDoc]{name: "parse_requests", log: log},
	}

	remote := RemoteStores{
		Exercises:       r.exercises,
		CustomExercises: r.customExercises,

		Programmes:        r.programmes,
		ProgrammeWeeks:    r.programmeWeeks,
		ProgrammeWorkouts: r.programmeWorkouts,
		ProgrammeProgress: r.programmeProgress,

		Workouts:     r.workouts,
		ExerciseLogs: r.exerciseLogs,
		SetLogs:      r.setLogs,

		Templates:         r.templates,
		TemplateExercises: r.templateExercises,
		TemplateSets:      r.templateSets,

		ExerciseMaxes:   r.exerciseMaxes,
		PersonalRecords: r.personalRecords,
		ExerciseUsage:   r.exerciseUsage,

		SwapHistory:            r.swapHistory,
		PerformanceTracking:    r.performanceTracking,
		GlobalExerciseProgress: r.globalExerciseProgress,
		TrainingAnalyses:       r.trainingAnalyses,
		ParseRequests:          r.parseRequests,
	}

	clock := &fakeClock{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	if cfg.InstallationID == "" {
		cfg.InstallationID = testInstall
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.now
	}

	session := sessionFunc(func(ctx context.Context) (string, bool) { return testUser, true })
	engine := New(LocalFromStore(store), remote, store, session, cfg)

	return &harness{store: store, remotes: r, log: log, clock: clock, engine: engine}
}

func TestSyncAllNotAuthenticated(t *testing.T) {
	h := newHarness(t, Config{})
	h.engine.session = sessionFunc(func(ctx context.Context) (string, bool) { return "", false })

	out := h.engine.SyncAll(context.Background())
	require.Equal(t, StatusError, out.Status)
	require.Equal(t, StageAuth, out.Stage)
	require.ErrorIs(t, out.Err, ErrNotAuthenticated)
	require.Empty(t, h.log.all(), "no remote calls before authentication")
}

func TestSyncAllDownloadsThenUploads(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	h.remotes.exercises.docs = []fwcloud.ExerciseDoc{
		{ID: "ex-1", Name: "Back Squat", Category: "strength", UpdatedAt: h.clock.now()},
	}
	h.remotes.workouts.docs = []fwcloud.WorkoutDoc{
		{ID: "w-remote", UserID: testUser, Name: "Monday heavy", StartedAt: h.clock.now(), UpdatedAt: h.clock.now()},
	}
	require.NoError(t, h.store.Workouts.Upsert(ctx, model.Workout{
		ID: "w-local", UserID: testUser, Name: "local only", StartedAt: h.clock.now(), UpdatedAt: h.clock.now(),
	}))

	out := h.engine.SyncAll(ctx)
	require.Equal(t, StatusSuccess, out.Status)
	require.Equal(t, h.clock.now(), out.SyncedAt)

	ex, err := h.store.Exercises.GetByID(ctx, "ex-1")
	require.NoError(t, err)
	require.NotNil(t, ex)
	require.Equal(t, "Back Squat", ex.Name)

	w, err := h.store.Workouts.GetByID(ctx, "w-remote")
	require.NoError(t, err)
	require.NotNil(t, w)

	// Upload carries the merged snapshot: the pre-existing local row plus
	// the row that just came down.
	require.Equal(t, 1, h.remotes.workouts.uploadCount())
	require.Len(t, h.remotes.workouts.uploads[0], 2)
	require.Zero(t, h.remotes.exercises.uploadCount(), "catalog is never uploaded")

	// First sync is a full download; the baseline is persisted afterwards.
	require.Nil(t, h.remotes.workouts.sinceSeen[0])
	baseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, ScopeAll)
	require.NoError(t, err)
	require.NotNil(t, baseline)
	require.Equal(t, out.SyncedAt, baseline.UTC())

	// Second pass slides the window to the stored baseline.
	h.clock.advance(time.Hour)
	out2 := h.engine.SyncAll(ctx)
	require.Equal(t, StatusSuccess, out2.Status)
	since := h.remotes.workouts.lastSince()
	require.NotNil(t, since)
	require.Equal(t, out.SyncedAt, since.UTC())
}

func TestSyncAllCooldown(t *testing.T) {
	h := newHarness(t, Config{Cooldown: 5 * time.Minute})
	ctx := context.Background()

	require.Equal(t, StatusSuccess, h.engine.SyncAll(ctx).Status)

	h.clock.advance(2 * time.Minute)
	out := h.engine.SyncAll(ctx)
	require.Equal(t, StatusSkipped, out.Status)
	require.Equal(t, "cooldown not elapsed", out.Reason)
	require.Equal(t, 3*time.Minute, out.Remaining)
	require.Nil(t, out.Err)

	h.clock.advance(3 * time.Minute)
	require.Equal(t, StatusSuccess, h.engine.SyncAll(ctx).Status)
}

func TestSyncAllFreshInstallForcesFullDownload(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	// A stored baseline with no local workout rows means the metadata
	// outlived the data. The incremental window must be discarded.
	stale := h.clock.now().Add(-24 * time.Hour)
	require.NoError(t, h.store.SetLastSyncTime(ctx, testUser, testInstall, ScopeAll, stale))

	out := h.engine.SyncAll(ctx)
	require.Equal(t, StatusSuccess, out.Status)
	require.Nil(t, h.remotes.workouts.sinceSeen[0], "stale baseline must not narrow the download")

	// With local data present the stored baseline is honored.
	require.NoError(t, h.store.Workouts.Upsert(ctx, model.Workout{
		ID: "w-1", UserID: testUser, Name: "squats", StartedAt: h.clock.now(), UpdatedAt: h.clock.now(),
	}))
	h.clock.advance(time.Hour)
	require.Equal(t, StatusSuccess, h.engine.SyncAll(ctx).Status)
	require.NotNil(t, h.remotes.workouts.lastSince())
}

func TestSyncAllDownloadFailurePreventsUpload(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	h.remotes.workouts.downloadErr = errors.New("server unavailable")

	out := h.engine.SyncAll(ctx)
	require.Equal(t, StatusError, out.Status)
	require.Equal(t, StageDownload, out.Stage)

	var remoteErr *RemoteError
	require.ErrorAs(t, out.Err, &remoteErr)

	for _, entry := range h.log.all() {
		require.NotContains(t, entry, "upload", "no upload may run after a failed download")
	}
	baseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, ScopeAll)
	require.NoError(t, err)
	require.Nil(t, baseline)
}

func TestSyncAllUploadFailureKeepsDownloadedData(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	h.remotes.workouts.docs = []fwcloud.WorkoutDoc{
		{ID: "w-remote", UserID: testUser, Name: "remote", StartedAt: h.clock.now(), UpdatedAt: h.clock.now()},
	}
	h.remotes.customExercises.uploadErr = errors.New("server unavailable")

	out := h.engine.SyncAll(ctx)
	require.Equal(t, StatusError, out.Status)
	require.Equal(t, StageUpload, out.Stage)

	// The downloaded row stays: the local store already committed it.
	w, err := h.store.Workouts.GetByID(ctx, "w-remote")
	require.NoError(t, err)
	require.NotNil(t, w)

	// But the pass did not complete, so the baseline does not advance.
	baseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, ScopeAll)
	require.NoError(t, err)
	require.Nil(t, baseline)
}

func TestSyncAllSerializesConcurrentCallers(t *testing.T) {
	h := newHarness(t, Config{})

	var mu sync.Mutex
	active, maxActive := 0, 0
	h.remotes.exercises.onDownload = func() {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.engine.SyncAll(context.Background())
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxActive, "passes must never overlap")
}

func TestSyncSystemReferenceData(t *testing.T) {
	h := newHarness(t, Config{})
	// No authenticated session required for the global catalog.
	h.engine.session = sessionFunc(func(ctx context.Context) (string, bool) { return "", false })
	h.remotes.exercises.docs = []fwcloud.ExerciseDoc{
		{ID: "ex-1", Name: "Deadlift", UpdatedAt: h.clock.now()},
	}

	out := h.engine.SyncSystemReferenceData(context.Background())
	require.Equal(t, StatusSuccess, out.Status)
	require.Equal(t, []string{"download exercises"}, h.log.all())

	ex, err := h.store.Exercises.GetByID(context.Background(), "ex-1")
	require.NoError(t, err)
	require.NotNil(t, ex)
}

func TestSyncUserDataSkipsCatalogAndScopesBaseline(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	out := h.engine.SyncUserData(ctx, testUser)
	require.Equal(t, StatusSuccess, out.Status)

	for _, entry := range h.log.all() {
		require.NotEqual(t, "download exercises", entry, "user pass must not re-fetch the catalog")
	}

	userBaseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, ScopeUser)
	require.NoError(t, err)
	require.NotNil(t, userBaseline)
	allBaseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, ScopeAll)
	require.NoError(t, err)
	require.Nil(t, allBaseline, "user pass keeps its own baseline scope")
}

func TestRestoreFromCloud(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	// Local rows that never made it to remote are lost on restore.
	require.NoError(t, h.store.Workouts.Upsert(ctx, model.Workout{
		ID: "w-local", UserID: testUser, Name: "never synced", StartedAt: h.clock.now(), UpdatedAt: h.clock.now(),
	}))
	h.remotes.workouts.docs = []fwcloud.WorkoutDoc{
		{ID: "w-cloud", UserID: testUser, Name: "from cloud", StartedAt: h.clock.now(), UpdatedAt: h.clock.now()},
	}

	out := h.engine.RestoreFromCloud(ctx)
	require.Equal(t, StatusSuccess, out.Status)

	gone, err := h.store.Workouts.GetByID(ctx, "w-local")
	require.NoError(t, err)
	require.Nil(t, gone)
	restored, err := h.store.Workouts.GetByID(ctx, "w-cloud")
	require.NoError(t, err)
	require.NotNil(t, restored)

	for _, entry := range h.log.all() {
		require.NotContains(t, entry, "upload", "restore must never upload")
	}
	require.Nil(t, h.remotes.workouts.sinceSeen[0], "restore downloads everything")

	for _, scope := range []string{ScopeAll, ScopeUser} {
		baseline, err := h.store.LastSyncTime(ctx, testUser, testInstall, scope)
		require.NoError(t, err)
		require.NotNil(t, baseline, "scope %s", scope)
	}
}
