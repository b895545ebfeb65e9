package fwcloud

import "time"

// Document shapes for every remote collection. These are the wire format
// the document-store server speaks; fwsync converts them to and from the
// local model types. Optional fields are pointers so absent values
// round-trip as JSON null rather than zero values.

type ExerciseDoc struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	MuscleGroup  string    `json:"muscle_group"`
	Equipment    string    `json:"equipment"`
	Instructions string    `json:"instructions"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomExerciseDoc struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MuscleGroup string    `json:"muscle_group"`
	Equipment   string    `json:"equipment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WorkoutDoc struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Notes           string     `json:"notes"`
	ProgrammeID     *string    `json:"programme_id,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ExerciseLogDoc struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	WorkoutID    string    `json:"workout_id"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	OrderIndex   int       `json:"order_index"`
	Notes        string    `json:"notes"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SetLogDoc struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ExerciseLogID string     `json:"exercise_log_id"`
	SetNumber     int        `json:"set_number"`
	Weight        float64    `json:"weight"`
	Reps          int        `json:"reps"`
	RPE           *float64   `json:"rpe,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TemplateDoc struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TemplateExerciseDoc struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TemplateID string    `json:"template_id"`
	ExerciseID string    `json:"exercise_id"`
	OrderIndex int       `json:"order_index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TemplateSetDoc struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	TemplateExerciseID string    `json:"template_exercise_id"`
	SetNumber          int       `json:"set_number"`
	TargetWeight       float64   `json:"target_weight"`
	TargetReps         int       `json:"target_reps"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProgrammeDoc struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	DurationWeeks int        `json:"duration_weeks"`
	Active        bool       `json:"active"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ProgrammeWeekDoc struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProgrammeID string    `json:"programme_id"`
	WeekNumber  int       `json:"week_number"`
	Name        string    `json:"name"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProgrammeWorkoutDoc struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ProgrammeWeekID string    `json:"programme_week_id"`
	DayNumber       int       `json:"day_number"`
	Name            string    `json:"name"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProgrammeProgressDoc struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ProgrammeID       string    `json:"programme_id"`
	CurrentWeek       int       `json:"current_week"`
	CurrentDay        int       `json:"current_day"`
	CompletedWorkouts int       `json:"completed_workouts"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ExerciseMaxDoc struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ExerciseID string    `json:"exercise_id"`
	MaxWeight  float64   `json:"max_weight"`
	RecordedAt time.Time `json:"recorded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PersonalRecordDoc struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	RecordType   string    `json:"record_type"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Estimated1RM float64   `json:"estimated_1rm"`
	AchievedAt   time.Time `json:"achieved_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ExerciseUsageDoc struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ExerciseID string    `json:"exercise_id"`
	UseCount   int       `json:"use_count"`
	LastUsedAt time.Time `json:"last_used_at"`
	Notes      *string   `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SwapHistoryDoc struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	WorkoutID          string    `json:"workout_id"`
	OriginalExerciseID string    `json:"original_exercise_id"`
	NewExerciseID      string    `json:"new_exercise_id"`
	SwappedAt          time.Time `json:"swapped_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PerformanceTrackingDoc struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	Date         time.Time `json:"date"`
	TotalVolume  float64   `json:"total_volume"`
	TopSetWeight float64   `json:"top_set_weight"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GlobalExerciseProgressDoc struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ExerciseID       string    `json:"exercise_id"`
	Trend            string    `json:"trend"`
	LastCalculatedAt time.Time `json:"last_calculated_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TrainingAnalysisDoc struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ParseRequestDoc struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	RawText     string    `json:"raw_text"`
	Status      string    `json:"status"`
	ResultJSON  *string   `json:"result_json,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
