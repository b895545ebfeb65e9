package fwsync

import (
	"github.com/radupana/featherweight-sub015/fwcloud"
	"github.com/radupana/featherweight-sub015/fwstore"
)

// LocalFromStore adapts a fwstore.Store into the interface bundle the
// engine consumes.
func LocalFromStore(s *fwstore.Store) LocalStores {
	return LocalStores{
		Exercises:       s.Exercises,
		CustomExercises: s.CustomExercises,

		Programmes:        s.Programmes,
		ProgrammeWeeks:    s.ProgrammeWeeks,
		ProgrammeWorkouts: s.ProgrammeWorkouts,
		ProgrammeProgress: s.ProgrammeProgress,

		Workouts:     s.Workouts,
		ExerciseLogs: s.ExerciseLogs,
		SetLogs:      s.SetLogs,

		Templates:         s.Templates,
		TemplateExercises: s.TemplateExercises,
		TemplateSets:      s.TemplateSets,

		ExerciseMaxes:   s.ExerciseMaxes,
		PersonalRecords: s.PersonalRecords,
		ExerciseUsage:   s.ExerciseUsage,

		SwapHistory:            s.SwapHistory,
		PerformanceTracking:    s.PerformanceTracking,
		GlobalExerciseProgress: s.GlobalExerciseProgress,
		TrainingAnalyses:       s.TrainingAnalyses,
		ParseRequests:          s.ParseRequests,

		Swaps: s,
	}
}

// RemoteFromCollections adapts a fwcloud.Collections bundle.
func RemoteFromCollections(c *fwcloud.Collections) RemoteStores {
	return RemoteStores{
		Exercises:       c.Exercises,
		CustomExercises: c.CustomExercises,

		Programmes:        c.Programmes,
		ProgrammeWeeks:    c.ProgrammeWeeks,
		ProgrammeWorkouts: c.ProgrammeWorkouts,
		ProgrammeProgress: c.ProgrammeProgress,

		Workouts:     c.Workouts,
		ExerciseLogs: c.ExerciseLogs,
		SetLogs:      c.SetLogs,

		Templates:         c.Templates,
		TemplateExercises: c.TemplateExercises,
		TemplateSets:      c.TemplateSets,

		ExerciseMaxes:   c.ExerciseMaxes,
		PersonalRecords: c.PersonalRecords,
		ExerciseUsage:   c.ExerciseUsage,

		SwapHistory:            c.SwapHistory,
		PerformanceTracking:    c.PerformanceTracking,
		GlobalExerciseProgress: c.GlobalExerciseProgress,
		TrainingAnalyses:       c.TrainingAnalyses,
		ParseRequests:          c.ParseRequests,
	}
}
