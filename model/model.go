// Package model defines the local entity shapes for every synchronized
// collection. These are the rows the app writes to the on-device SQLite
// store; fwsync converts them to and from their cloud document shapes.
package model

import "time"

// Exercise is a row of the global exercise catalog. It has no owner and is
// server-authoritative: the engine downloads it but never uploads it.
type Exercise struct {
	ID           string
	Name         string
	Category     string
	MuscleGroup  string
	Equipment    string
	Instructions string
	UpdatedAt    time.Time
}

// CustomExercise is a user-created extension of the catalog.
type CustomExercise struct {
	ID          string
	UserID      string
	Name        string
	Category    string
	MuscleGroup string
	Equipment   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Workout is a completed or in-progress training session.
type Workout struct {
	ID              string
	UserID          string
	Name            string
	Notes           string
	ProgrammeID     *string
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationSeconds int64
	UpdatedAt       time.Time
}

// ExerciseLog is one exercise performed within a workout.
type ExerciseLog struct {
	ID           string
	UserID       string
	WorkoutID    string
	ExerciseID   string
	ExerciseName string
	OrderIndex   int
	Notes        string
	UpdatedAt    time.Time
}

// SetLog is a single set within an exercise log.
type SetLog struct {
	ID            string
	UserID        string
	ExerciseLogID string
	SetNumber     int
	Weight        float64
	Reps          int
	RPE           *float64
	Completed     bool
	CompletedAt   *time.Time
	UpdatedAt     time.Time
}

// Template is a reusable workout blueprint.
type Template struct {
	ID        string
	UserID    string
	Name      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateExercise is one exercise slot in a template.
type TemplateExercise struct {
	ID         string
	UserID     string
	TemplateID string
	ExerciseID string
	OrderIndex int
	UpdatedAt  time.Time
}

// TemplateSet is a target set within a template exercise.
type TemplateSet struct {
	ID                 string
	UserID             string
	TemplateExerciseID string
	SetNumber          int
	TargetWeight       float64
	TargetReps         int
	UpdatedAt          time.Time
}

// Programme is a multi-week training plan. Weeks and workouts reference it
// by foreign key, so it must exist locally before its children are written.
type Programme struct {
	ID            string
	UserID        string
	Name          string
	DurationWeeks int
	Active        bool
	StartedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgrammeWeek is one week of a programme.
type ProgrammeWeek struct {
	ID          string
	UserID      string
	ProgrammeID string
	WeekNumber  int
	Name        string
	UpdatedAt   time.Time
}

// ProgrammeWorkout is a planned workout within a programme week.
type ProgrammeWorkout struct {
	ID              string
	UserID          string
	ProgrammeWeekID string
	DayNumber       int
	Name            string
	UpdatedAt       time.Time
}

// ProgrammeProgress marks the user's position in a programme. Devices only
// ever advance it, so remote replaces local only when the remote
// (week, day) position is strictly ahead.
type ProgrammeProgress struct {
	ID                string
	UserID            string
	ProgrammeID       string
	CurrentWeek       int
	CurrentDay        int
	CompletedWorkouts int
	UpdatedAt         time.Time
}

// ExerciseMax is the heaviest tracked single for an exercise.
type ExerciseMax struct {
	ID         string
	UserID     string
	ExerciseID string
	MaxWeight  float64
	RecordedAt time.Time
	UpdatedAt  time.Time
}

// Personal record types. "Better" depends on the type: weight records
// compare raw weight, estimated-1RM records compare the estimate.
const (
	RecordTypeWeight       = "WEIGHT"
	RecordTypeEstimated1RM = "ESTIMATED_1RM"
)

// PersonalRecord is a per-exercise best.
type PersonalRecord struct {
	ID           string
	UserID       string
	ExerciseID   string
	RecordType   string
	Weight       float64
	Reps         int
	Estimated1RM float64
	AchievedAt   time.Time
	UpdatedAt    time.Time
}

// ExerciseUsage counts how often an exercise has been performed.
type ExerciseUsage struct {
	ID         string
	UserID     string
	ExerciseID string
	UseCount   int
	LastUsedAt time.Time
	Notes      *string
	UpdatedAt  time.Time
}

// SwapHistory records an exercise substitution inside a workout. Its
// logical identity is (user, original exercise, new exercise, workout),
// not the row id, so retried syncs do not create duplicate rows.
type SwapHistory struct {
	ID                 string
	UserID             string
	WorkoutID          string
	OriginalExerciseID string
	NewExerciseID      string
	SwappedAt          time.Time
	UpdatedAt          time.Time
}

// PerformanceTracking is a per-exercise daily volume snapshot.
type PerformanceTracking struct {
	ID           string
	UserID       string
	ExerciseID   string
	Date         time.Time
	TotalVolume  float64
	TopSetWeight float64
	UpdatedAt    time.Time
}

// GlobalExerciseProgress is a derived long-term trend per exercise.
type GlobalExerciseProgress struct {
	ID               string
	UserID           string
	ExerciseID       string
	Trend            string
	LastCalculatedAt time.Time
	UpdatedAt        time.Time
}

// TrainingAnalysis is a generated summary over a training period.
type TrainingAnalysis struct {
	ID          string
	UserID      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Summary     string
	GeneratedAt time.Time
	UpdatedAt   time.Time
}

// ParseRequest is a free-text workout parse job submitted by the user.
type ParseRequest struct {
	ID          string
	UserID      string
	RawText     string
	Status      string
	ResultJSON  *string
	RequestedAt time.Time
	UpdatedAt   time.Time
}
