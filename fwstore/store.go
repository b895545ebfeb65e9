// Package fwstore is the local store adapter: typed access to the
// on-device SQLite database for every synchronized collection, plus the
// engine-owned baseline metadata table.
package fwstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/radupana/featherweight-sub015/model"
)

// Store bundles one typed Collection per synchronized table. Collections
// are ordered here the way the sync pipeline visits them.
type Store struct {
	db *sql.DB

	Exercises       *Collection[model.Exercise]
	CustomExercises *Collection[model.CustomExercise]

	Programmes        *Collection[model.Programme]
	ProgrammeWeeks    *Collection[model.ProgrammeWeek]
	ProgrammeWorkouts *Collection[model.ProgrammeWorkout]
	ProgrammeProgress *Collection[model.ProgrammeProgress]

	Workouts     *Collection[model.Workout]
	ExerciseLogs *Collection[model.ExerciseLog]
	SetLogs      *Collection[model.SetLog]

	Templates         *Collection[model.Template]
	TemplateExercises *Collection[model.TemplateExercise]
	TemplateSets      *Collection[model.TemplateSet]

	ExerciseMaxes   *Collection[model.ExerciseMax]
	PersonalRecords *Collection[model.PersonalRecord]
	ExerciseUsage   *Collection[model.ExerciseUsage]

	SwapHistory            *Collection[model.SwapHistory]
	PerformanceTracking    *Collection[model.PerformanceTracking]
	GlobalExerciseProgress *Collection[model.GlobalExerciseProgress]
	TrainingAnalyses       *Collection[model.TrainingAnalysis]
	ParseRequests          *Collection[model.ParseRequest]
}

// Open opens (or creates) the SQLite database at path and initializes the
// schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing database handle, creating any missing tables.
func New(db *sql.DB) (*Store, error) {
	if err := initializeSchema(db); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{
		db: db,

		Exercises:       newCollection(db, exerciseSpec),
		CustomExercises: newCollection(db, customExerciseSpec),

		Programmes:        newCollection(db, programmeSpec),
		ProgrammeWeeks:    newCollection(db, programmeWeekSpec),
		ProgrammeWorkouts: newCollection(db, programmeWorkoutSpec),
		ProgrammeProgress: newCollection(db, programmeProgressSpec),

		Workouts:     newCollection(db, workoutSpec),
		ExerciseLogs: newCollection(db, exerciseLogSpec),
		SetLogs:      newCollection(db, setLogSpec),

		Templates:         newCollection(db, templateSpec),
		TemplateExercises: newCollection(db, templateExerciseSpec),
		TemplateSets:      newCollection(db, templateSetSpec),

		ExerciseMaxes:   newCollection(db, exerciseMaxSpec),
		PersonalRecords: newCollection(db, personalRecordSpec),
		ExerciseUsage:   newCollection(db, exerciseUsageSpec),

		SwapHistory:            newCollection(db, swapHistorySpec),
		PerformanceTracking:    newCollection(db, performanceTrackingSpec),
		GlobalExerciseProgress: newCollection(db, globalExerciseProgressSpec),
		TrainingAnalyses:       newCollection(db, trainingAnalysisSpec),
		ParseRequests:          newCollection(db, parseRequestSpec),
	}, nil
}

// DB exposes the underlying handle for callers that need raw access.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// FindSwap looks up a swap-history row by its logical identity rather
// than its primary key. The engine uses this to dedupe downloaded swap
// rows created independently on different devices.
func (s *Store) FindSwap(ctx context.Context, userID, originalExerciseID, newExerciseID, workoutID string) (*model.SwapHistory, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, workout_id, original_exercise_id, new_exercise_id, swapped_at, updated_at
		FROM swap_history
		WHERE user_id = ? AND original_exercise_id = ? AND new_exercise_id = ? AND workout_id = ?
	`, userID, originalExerciseID, newExerciseID, workoutID)

	rec, err := swapHistorySpec.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find swap by identity: %w", err)
	}
	return &rec, nil
}
