package fwsync

import "context"

// uploadStep pushes the owner's complete current local snapshot of one
// collection to remote. Upload is replace-all, not incremental: every
// pass re-sends the full current rows for the collection and owner.
func uploadStep[L, D any](
	name string,
	local LocalCollection[L],
	remote RemoteCollection[D],
	toDoc func(L) D,
	owner string,
) step {
	return step{name: name, run: func(ctx context.Context) error {
		recs, err := local.GetAll(ctx, owner)
		if err != nil {
			return &StoreError{Op: name, Err: err}
		}
		docs := make([]D, len(recs))
		for i, rec := range recs {
			docs[i] = toDoc(rec)
		}
		if err := remote.Upload(ctx, owner, docs); err != nil {
			return &RemoteError{Op: name, Err: err}
		}
		return nil
	}}
}

// uploadSteps builds the upload pipeline. The global exercise catalog is
// server-authoritative and never uploaded. Remote storage enforces no FK
// constraints, so ordering is not required for correctness; the download
// order is reused anyway for determinism and easier debugging.
func (e *Engine) uploadSteps(owner string) []step {
	return []step{
		uploadStep("upload custom_exercises", e.local.CustomExercises, e.remote.CustomExercises, CustomExerciseToDoc, owner),

		uploadStep("upload programmes", e.local.Programmes, e.remote.Programmes, ProgrammeToDoc, owner),
		uploadStep("upload programme_weeks", e.local.ProgrammeWeeks, e.remote.ProgrammeWeeks, ProgrammeWeekToDoc, owner),
		uploadStep("upload programme_workouts", e.local.ProgrammeWorkouts, e.remote.ProgrammeWorkouts, ProgrammeWorkoutToDoc, owner),
		uploadStep("upload programme_progress", e.local.ProgrammeProgress, e.remote.ProgrammeProgress, ProgrammeProgressToDoc, owner),

		uploadStep("upload workouts", e.local.Workouts, e.remote.Workouts, WorkoutToDoc, owner),
		uploadStep("upload exercise_logs", e.local.ExerciseLogs, e.remote.ExerciseLogs, ExerciseLogToDoc, owner),
		uploadStep("upload set_logs", e.local.SetLogs, e.remote.SetLogs, SetLogToDoc, owner),

		uploadStep("upload templates", e.local.Templates, e.remote.Templates, TemplateToDoc, owner),
		uploadStep("upload template_exercises", e.local.TemplateExercises, e.remote.TemplateExercises, TemplateExerciseToDoc, owner),
		uploadStep("upload template_sets", e.local.TemplateSets, e.remote.TemplateSets, TemplateSetToDoc, owner),

		uploadStep("upload exercise_maxes", e.local.ExerciseMaxes, e.remote.ExerciseMaxes, ExerciseMaxToDoc, owner),
		uploadStep("upload personal_records", e.local.PersonalRecords, e.remote.PersonalRecords, PersonalRecordToDoc, owner),
		uploadStep("upload exercise_usage", e.local.ExerciseUsage, e.remote.ExerciseUsage, ExerciseUsageToDoc, owner),

		uploadStep("upload swap_history", e.local.SwapHistory, e.remote.SwapHistory, SwapHistoryToDoc, owner),
		uploadStep("upload performance_tracking", e.local.PerformanceTracking, e.remote.PerformanceTracking, PerformanceTrackingToDoc, owner),
		uploadStep("upload global_exercise_progress", e.local.GlobalExerciseProgress, e.remote.GlobalExerciseProgress, GlobalExerciseProgressToDoc, owner),
		uploadStep("upload training_analyses", e.local.TrainingAnalyses, e.remote.TrainingAnalyses, TrainingAnalysisToDoc, owner),
		uploadStep("upload parse_requests", e.local.ParseRequests, e.remote.ParseRequests, ParseRequestToDoc, owner),
	}
}
