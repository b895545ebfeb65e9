package fwsync

import (
	"context"
	"time"

	"github.com/radupana/featherweight-sub015/fwcloud"
	"github.com/radupana/featherweight-sub015/model"
)

// downloadStep fetches remote records, looks up the local row by primary
// key and applies the collection's merge policy to each pair.
func downloadStep[L, D any](
	name string,
	remote RemoteCollection[D],
	local LocalCollection[L],
	fromDoc func(D) L,
	pk func(L) string,
	policy MergePolicy[L],
	owner string,
	since *time.Time,
) step {
	return step{name: name, run: func(ctx context.Context) error {
		docs, err := remote.Download(ctx, owner, since)
		if err != nil {
			return &RemoteError{Op: name, Err: err}
		}
		for _, d := range docs {
			rec := fromDoc(d)
			cur, err := local.GetByID(ctx, pk(rec))
			if err != nil {
				return &StoreError{Op: name, Err: err}
			}
			merged, action := policy.Resolve(cur, rec)
			switch action {
			case ActionInsert:
				if err := local.InsertIfAbsent(ctx, merged); err != nil {
					return &StoreError{Op: name, Err: err}
				}
			case ActionUpdate:
				if err := local.Upsert(ctx, merged); err != nil {
					return &StoreError{Op: name, Err: err}
				}
			}
		}
		return nil
	}}
}

// swapHistoryStep dedupes downloaded swap rows by logical identity
// (owner, original exercise, new exercise, workout) before writing, so
// retried syncs from different devices never produce duplicate rows for
// the same swap.
func (e *Engine) swapHistoryStep(owner string, since *time.Time) step {
	const name = "download swap_history"
	return step{name: name, run: func(ctx context.Context) error {
		docs, err := e.remote.SwapHistory.Download(ctx, owner, since)
		if err != nil {
			return &RemoteError{Op: name, Err: err}
		}
		for _, d := range docs {
			rec := SwapHistoryFromDoc(d)
			existing, err := e.local.Swaps.FindSwap(ctx, rec.UserID, rec.OriginalExerciseID, rec.NewExerciseID, rec.WorkoutID)
			if err != nil {
				return &StoreError{Op: name, Err: err}
			}
			if existing != nil {
				// Same logical swap already recorded locally, possibly
				// under a different row id. Update in place.
				rec.ID = existing.ID
			}
			if err := e.local.SwapHistory.Upsert(ctx, rec); err != nil {
				return &StoreError{Op: name, Err: err}
			}
		}
		return nil
	}}
}

// catalogStep re-downloads the full global exercise catalog. It ignores
// the incremental baseline and carries no owner.
func (e *Engine) catalogStep() step {
	return downloadStep("download exercises",
		e.remote.Exercises, e.local.Exercises, ExerciseFromDoc,
		func(x model.Exercise) string { return x.ID }, overwrite[model.Exercise]{}, "", nil)
}

// downloadSteps builds the ordered download pipeline for one owner.
// Phase order is load-bearing: parents must land before the children that
// reference them, and the coordinator's sequencing is the only mechanism
// enforcing that.
func (e *Engine) downloadSteps(owner string, baseline *time.Time, includeCatalog bool) []step {
	var steps []step

	// Phase 1: global reference catalog.
	if includeCatalog {
		steps = append(steps, e.catalogStep())
	}

	// Phase 2: owner-scoped reference data.
	steps = append(steps,
		downloadStep("download custom_exercises",
			e.remote.CustomExercises, e.local.CustomExercises, CustomExerciseFromDoc,
			func(x model.CustomExercise) string { return x.ID }, overwrite[model.CustomExercise]{}, owner, baseline),
	)

	// Phase 3: programme hierarchy, parents first.
	steps = append(steps,
		downloadStep("download programmes",
			e.remote.Programmes, e.local.Programmes, ProgrammeFromDoc,
			func(x model.Programme) string { return x.ID }, insertIfAbsent[model.Programme]{}, owner, baseline),
		downloadStep("download programme_weeks",
			e.remote.ProgrammeWeeks, e.local.ProgrammeWeeks, ProgrammeWeekFromDoc,
			func(x model.ProgrammeWeek) string { return x.ID }, insertIfAbsent[model.ProgrammeWeek]{}, owner, baseline),
		downloadStep("download programme_workouts",
			e.remote.ProgrammeWorkouts, e.local.ProgrammeWorkouts, ProgrammeWorkoutFromDoc,
			func(x model.ProgrammeWorkout) string { return x.ID }, insertIfAbsent[model.ProgrammeWorkout]{}, owner, baseline),
		downloadStep("download programme_progress",
			e.remote.ProgrammeProgress, e.local.ProgrammeProgress, ProgrammeProgressFromDoc,
			func(x model.ProgrammeProgress) string { return x.ID }, progressAdvance{}, owner, baseline),
	)

	// Phase 4: primary workout hierarchy.
	steps = append(steps,
		downloadStep("download workouts",
			e.remote.Workouts, e.local.Workouts, WorkoutFromDoc,
			func(x model.Workout) string { return x.ID }, overwrite[model.Workout]{}, owner, baseline),
		downloadStep("download exercise_logs",
			e.remote.ExerciseLogs, e.local.ExerciseLogs, ExerciseLogFromDoc,
			func(x model.ExerciseLog) string { return x.ID }, overwrite[model.ExerciseLog]{}, owner, baseline),
		downloadStep("download set_logs",
			e.remote.SetLogs, e.local.SetLogs, SetLogFromDoc,
			func(x model.SetLog) string { return x.ID }, overwrite[model.SetLog]{}, owner, baseline),
	)

	// Phase 5: template hierarchy.
	steps = append(steps,
		downloadStep("download templates",
			e.remote.Templates, e.local.Templates, TemplateFromDoc,
			func(x model.Template) string { return x.ID }, overwrite[model.Template]{}, owner, baseline),
		downloadStep("download template_exercises",
			e.remote.TemplateExercises, e.local.TemplateExercises, TemplateExerciseFromDoc,
			func(x model.TemplateExercise) string { return x.ID }, overwrite[model.TemplateExercise]{}, owner, baseline),
		downloadStep("download template_sets",
			e.remote.TemplateSets, e.local.TemplateSets, TemplateSetFromDoc,
			func(x model.TemplateSet) string { return x.ID }, overwrite[model.TemplateSet]{}, owner, baseline),
	)

	// Phase 6: statistics with bespoke conflict rules.
	steps = append(steps,
		downloadStep("download exercise_maxes",
			e.remote.ExerciseMaxes, e.local.ExerciseMaxes, ExerciseMaxFromDoc,
			func(x model.ExerciseMax) string { return x.ID }, higherMax{}, owner, baseline),
		downloadStep("download personal_records",
			e.remote.PersonalRecords, e.local.PersonalRecords, PersonalRecordFromDoc,
			func(x model.PersonalRecord) string { return x.ID }, betterRecord{}, owner, baseline),
		downloadStep("download exercise_usage",
			e.remote.ExerciseUsage, e.local.ExerciseUsage, ExerciseUsageFromDoc,
			func(x model.ExerciseUsage) string { return x.ID }, combineUsage{now: e.now}, owner, baseline),
	)

	// Phase 7: tracking and history.
	steps = append(steps,
		e.swapHistoryStep(owner, baseline),
		downloadStep("download performance_tracking",
			e.remote.PerformanceTracking, e.local.PerformanceTracking, PerformanceTrackingFromDoc,
			func(x model.PerformanceTracking) string { return x.ID }, insertIfAbsent[model.PerformanceTracking]{}, owner, baseline),
		downloadStep("download global_exercise_progress",
			e.remote.GlobalExerciseProgress, e.local.GlobalExerciseProgress, GlobalExerciseProgressFromDoc,
			func(x model.GlobalExerciseProgress) string { return x.ID }, insertIfAbsent[model.GlobalExerciseProgress]{}, owner, baseline),
		downloadStep("download training_analyses",
			e.remote.TrainingAnalyses, e.local.TrainingAnalyses, TrainingAnalysisFromDoc,
			func(x model.TrainingAnalysis) string { return x.ID }, insertIfAbsent[model.TrainingAnalysis]{}, owner, baseline),
		downloadStep("download parse_requests",
			e.remote.ParseRequests, e.local.ParseRequests, ParseRequestFromDoc,
			func(x model.ParseRequest) string { return x.ID }, insertIfAbsent[model.ParseRequest]{}, owner, baseline),
	)

	return steps
}

// compile-time check that the cloud adapter satisfies the engine contract
var _ RemoteCollection[fwcloud.WorkoutDoc] = (*fwcloud.Collection[fwcloud.WorkoutDoc])(nil)
