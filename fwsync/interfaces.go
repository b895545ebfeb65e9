package fwsync

import (
	"context"
	"time"

	"github.com/radupana/featherweight-sub015/fwcloud"
	"github.com/radupana/featherweight-sub015/model"
)

// LocalCollection is the per-collection contract the engine requires from
// the local relational store. fwstore.Collection satisfies it.
type LocalCollection[T any] interface {
	GetAll(ctx context.Context, ownerID string) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	CountForOwner(ctx context.Context, ownerID string) (int, error)
	Upsert(ctx context.Context, rec T) error
	InsertIfAbsent(ctx context.Context, rec T) error
	DeleteAllForOwner(ctx context.Context, ownerID string) error
}

// RemoteCollection is the per-collection contract the engine requires
// from the remote document store. fwcloud.Collection satisfies it.
type RemoteCollection[D any] interface {
	Download(ctx context.Context, ownerID string, since *time.Time) ([]D, error)
	Upload(ctx context.Context, ownerID string, docs []D) error
}

// SwapFinder looks up swap-history rows by logical identity instead of
// primary key. fwstore.Store satisfies it.
type SwapFinder interface {
	FindSwap(ctx context.Context, userID, originalExerciseID, newExerciseID, workoutID string) (*model.SwapHistory, error)
}

// MetadataStore persists the per-(owner, installation, scope) baseline
// timestamp. fwstore.Store satisfies it.
type MetadataStore interface {
	LastSyncTime(ctx context.Context, userID, installationID, scope string) (*time.Time, error)
	SetLastSyncTime(ctx context.Context, userID, installationID, scope string, t time.Time) error
}

// SessionProvider resolves the currently authenticated owner.
type SessionProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// LocalStores bundles the local side of every synchronized collection.
type LocalStores struct {
	Exercises       LocalCollection[model.Exercise]
	CustomExercises LocalCollection[model.CustomExercise]

	Programmes        LocalCollection[model.Programme]
	ProgrammeWeeks    LocalCollection[model.ProgrammeWeek]
	ProgrammeWorkouts LocalCollection[model.ProgrammeWorkout]
	ProgrammeProgress LocalCollection[model.ProgrammeProgress]

	Workouts     LocalCollection[model.Workout]
	ExerciseLogs LocalCollection[model.ExerciseLog]
	SetLogs      LocalCollection[model.SetLog]

	Templates         LocalCollection[model.Template]
	TemplateExercises LocalCollection[model.TemplateExercise]
	TemplateSets      LocalCollection[model.TemplateSet]

	ExerciseMaxes   LocalCollection[model.ExerciseMax]
	PersonalRecords LocalCollection[model.PersonalRecord]
	ExerciseUsage   LocalCollection[model.ExerciseUsage]

	SwapHistory            LocalCollection[model.SwapHistory]
	PerformanceTracking    LocalCollection[model.PerformanceTracking]
	GlobalExerciseProgress LocalCollection[model.GlobalExerciseProgress]
	TrainingAnalyses       LocalCollection[model.TrainingAnalysis]
	ParseRequests          LocalCollection[model.ParseRequest]

	Swaps SwapFinder
}

// RemoteStores bundles the remote side of every synchronized collection.
type RemoteStores struct {
	Exercises       RemoteCollection[fwcloud.ExerciseDoc]
	CustomExercises RemoteCollection[fwcloud.CustomExerciseDoc]

	Programmes        RemoteCollection[fwcloud.ProgrammeDoc]
	ProgrammeWeeks    RemoteCollection[fwcloud.ProgrammeWeekDoc]
	ProgrammeWorkouts RemoteCollection[fwcloud.ProgrammeWorkoutDoc]
	ProgrammeProgress RemoteCollection[fwcloud.ProgrammeProgressDoc]

	Workouts     RemoteCollection[fwcloud.WorkoutDoc]
	ExerciseLogs RemoteCollection[fwcloud.ExerciseLogDoc]
	SetLogs      RemoteCollection[fwcloud.SetLogDoc]

	Templates         RemoteCollection[fwcloud.TemplateDoc]
	TemplateExercises RemoteCollection[fwcloud.TemplateExerciseDoc]
	TemplateSets      RemoteCollection[fwcloud.TemplateSetDoc]

	ExerciseMaxes   RemoteCollection[fwcloud.ExerciseMaxDoc]
	PersonalRecords RemoteCollection[fwcloud.PersonalRecordDoc]
	ExerciseUsage   RemoteCollection[fwcloud.ExerciseUsageDoc]

	SwapHistory            RemoteCollection[fwcloud.SwapHistoryDoc]
	PerformanceTracking    RemoteCollection[fwcloud.PerformanceTrackingDoc]
	GlobalExerciseProgress RemoteCollection[fwcloud.GlobalExerciseProgressDoc]
	TrainingAnalyses       RemoteCollection[fwcloud.TrainingAnalysisDoc]
	ParseRequests          RemoteCollection[fwcloud.ParseRequestDoc]
}
