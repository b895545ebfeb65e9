package fwstore

import (
	"database/sql"
	"time"

	"github.com/radupana/featherweight-sub015/model"
)

func nullStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

var exerciseSpec = tableSpec[model.Exercise]{
	table:   "exercises",
	columns: []string{"id", "name", "category", "muscle_group", "equipment", "instructions", "updated_at"},
	pk:      func(e *model.Exercise) string { return e.ID },
	scan: func(r rowScanner) (model.Exercise, error) {
		var e model.Exercise
		err := r.Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.Equipment, &e.Instructions, &e.UpdatedAt)
		return e, err
	},
	args: func(e *model.Exercise) []any {
		return []any{e.ID, e.Name, e.Category, e.MuscleGroup, e.Equipment, e.Instructions, e.UpdatedAt}
	},
}

var customExerciseSpec = tableSpec[model.CustomExercise]{
	table:    "custom_exercises",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "name", "category", "muscle_group", "equipment", "created_at", "updated_at"},
	pk:       func(e *model.CustomExercise) string { return e.ID },
	scan: func(r rowScanner) (model.CustomExercise, error) {
		var e model.CustomExercise
		err := r.Scan(&e.ID, &e.UserID, &e.Name, &e.Category, &e.MuscleGroup, &e.Equipment, &e.CreatedAt, &e.UpdatedAt)
		return e, err
	},
	args: func(e *model.CustomExercise) []any {
		return []any{e.ID, e.UserID, e.Name, e.Category, e.MuscleGroup, e.Equipment, e.CreatedAt, e.UpdatedAt}
	},
}

var programmeSpec = tableSpec[model.Programme]{
	table:    "programmes",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "name", "duration_weeks", "active", "started_at", "created_at", "updated_at"},
	pk:       func(p *model.Programme) string { return p.ID },
	scan: func(r rowScanner) (model.Programme, error) {
		var p model.Programme
		var startedAt sql.NullTime
		err := r.Scan(&p.ID, &p.UserID, &p.Name, &p.DurationWeeks, &p.Active, &startedAt, &p.CreatedAt, &p.UpdatedAt)
		p.StartedAt = timePtr(startedAt)
		return p, err
	},
	args: func(p *model.Programme) []any {
		return []any{p.ID, p.UserID, p.Name, p.DurationWeeks, p.Active, nullTime(p.StartedAt), p.CreatedAt, p.UpdatedAt}
	},
}

var programmeWeekSpec = tableSpec[model.ProgrammeWeek]{
	table:    "programme_weeks",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "programme_id", "week_number", "name", "updated_at"},
	pk:       func(w *model.ProgrammeWeek) string { return w.ID },
	scan: func(r rowScanner) (model.ProgrammeWeek, error) {
		var w model.ProgrammeWeek
		err := r.Scan(&w.ID, &w.UserID, &w.ProgrammeID, &w.WeekNumber, &w.Name, &w.UpdatedAt)
		return w, err
	},
	args: func(w *model.ProgrammeWeek) []any {
		return []any{w.ID, w.UserID, w.ProgrammeID, w.WeekNumber, w.Name, w.UpdatedAt}
	},
}

var programmeWorkoutSpec = tableSpec[model.ProgrammeWorkout]{
	table:    "programme_workouts",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "programme_week_id", "day_number", "name", "updated_at"},
	pk:       func(w *model.ProgrammeWorkout) string { return w.ID },
	scan: func(r rowScanner) (model.ProgrammeWorkout, error) {
		var w model.ProgrammeWorkout
		err := r.Scan(&w.ID, &w.UserID, &w.ProgrammeWeekID, &w.DayNumber, &w.Name, &w.UpdatedAt)
		return w, err
	},
	args: func(w *model.ProgrammeWorkout) []any {
		return []any{w.ID, w.UserID, w.ProgrammeWeekID, w.DayNumber, w.Name, w.UpdatedAt}
	},
}

var programmeProgressSpec = tableSpec[model.ProgrammeProgress]{
	table:    "programme_progress",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "programme_id", "current_week", "current_day", "completed_workouts", "updated_at"},
	pk:       func(p *model.ProgrammeProgress) string { return p.ID },
	scan: func(r rowScanner) (model.ProgrammeProgress, error) {
		var p model.ProgrammeProgress
		err := r.Scan(&p.ID, &p.UserID, &p.ProgrammeID, &p.CurrentWeek, &p.CurrentDay, &p.CompletedWorkouts, &p.UpdatedAt)
		return p, err
	},
	args: func(p *model.ProgrammeProgress) []any {
		return []any{p.ID, p.UserID, p.ProgrammeID, p.CurrentWeek, p.CurrentDay, p.CompletedWorkouts, p.UpdatedAt}
	},
}

var workoutSpec = tableSpec[model.Workout]{
	table:    "workouts",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "name", "notes", "programme_id", "started_at", "completed_at", "duration_seconds", "updated_at"},
	pk:       func(w *model.Workout) string { return w.ID },
	scan: func(r rowScanner) (model.Workout, error) {
		var w model.Workout
		var programmeID sql.NullString
		var completedAt sql.NullTime
		err := r.Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &programmeID, &w.StartedAt, &completedAt, &w.DurationSeconds, &w.UpdatedAt)
		w.ProgrammeID = strPtr(programmeID)
		w.CompletedAt = timePtr(completedAt)
		return w, err
	},
	args: func(w *model.Workout) []any {
		return []any{w.ID, w.UserID, w.Name, w.Notes, nullStr(w.ProgrammeID), w.StartedAt, nullTime(w.CompletedAt), w.DurationSeconds, w.UpdatedAt}
	},
}

var exerciseLogSpec = tableSpec[model.ExerciseLog]{
	table:    "exercise_logs",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "workout_id", "exercise_id", "exercise_name", "order_index", "notes", "updated_at"},
	pk:       func(l *model.ExerciseLog) string { return l.ID },
	scan: func(r rowScanner) (model.ExerciseLog, error) {
		var l model.ExerciseLog
		err := r.Scan(&l.ID, &l.UserID, &l.WorkoutID, &l.ExerciseID, &l.ExerciseName, &l.OrderIndex, &l.Notes, &l.UpdatedAt)
		return l, err
	},
	args: func(l *model.ExerciseLog) []any {
		return []any{l.ID, l.UserID, l.WorkoutID, l.ExerciseID, l.ExerciseName, l.OrderIndex, l.Notes, l.UpdatedAt}
	},
}

var setLogSpec = tableSpec[model.SetLog]{
	table:    "set_logs",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_log_id", "set_number", "weight", "reps", "rpe", "completed", "completed_at", "updated_at"},
	pk:       func(s *model.SetLog) string { return s.ID },
	scan: func(r rowScanner) (model.SetLog, error) {
		var s model.SetLog
		var rpe sql.NullFloat64
		var completedAt sql.NullTime
		err := r.Scan(&s.ID, &s.UserID, &s.ExerciseLogID, &s.SetNumber, &s.Weight, &s.Reps, &rpe, &s.Completed, &completedAt, &s.UpdatedAt)
		s.RPE = floatPtr(rpe)
		s.CompletedAt = timePtr(completedAt)
		return s, err
	},
	args: func(s *model.SetLog) []any {
		return []any{s.ID, s.UserID, s.ExerciseLogID, s.SetNumber, s.Weight, s.Reps, nullFloat(s.RPE), s.Completed, nullTime(s.CompletedAt), s.UpdatedAt}
	},
}

var templateSpec = tableSpec[model.Template]{
	table:    "templates",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "name", "notes", "created_at", "updated_at"},
	pk:       func(t *model.Template) string { return t.ID },
	scan: func(r rowScanner) (model.Template, error) {
		var t model.Template
		err := r.Scan(&t.ID, &t.UserID, &t.Name, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
		return t, err
	},
	args: func(t *model.Template) []any {
		return []any{t.ID, t.UserID, t.Name, t.Notes, t.CreatedAt, t.UpdatedAt}
	},
}

var templateExerciseSpec = tableSpec[model.TemplateExercise]{
	table:    "template_exercises",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "template_id", "exercise_id", "order_index", "updated_at"},
	pk:       func(t *model.TemplateExercise) string { return t.ID },
	scan: func(r rowScanner) (model.TemplateExercise, error) {
		var t model.TemplateExercise
		err := r.Scan(&t.ID, &t.UserID, &t.TemplateID, &t.ExerciseID, &t.OrderIndex, &t.UpdatedAt)
		return t, err
	},
	args: func(t *model.TemplateExercise) []any {
		return []any{t.ID, t.UserID, t.TemplateID, t.ExerciseID, t.OrderIndex, t.UpdatedAt}
	},
}

var templateSetSpec = tableSpec[model.TemplateSet]{
	table:    "template_sets",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "template_exercise_id", "set_number", "target_weight", "target_reps", "updated_at"},
	pk:       func(t *model.TemplateSet) string { return t.ID },
	scan: func(r rowScanner) (model.TemplateSet, error) {
		var t model.TemplateSet
		err := r.Scan(&t.ID, &t.UserID, &t.TemplateExerciseID, &t.SetNumber, &t.TargetWeight, &t.TargetReps, &t.UpdatedAt)
		return t, err
	},
	args: func(t *model.TemplateSet) []any {
		return []any{t.ID, t.UserID, t.TemplateExerciseID, t.SetNumber, t.TargetWeight, t.TargetReps, t.UpdatedAt}
	},
}

var exerciseMaxSpec = tableSpec[model.ExerciseMax]{
	table:    "exercise_maxes",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_id", "max_weight", "recorded_at", "updated_at"},
	pk:       func(m *model.ExerciseMax) string { return m.ID },
	scan: func(r rowScanner) (model.ExerciseMax, error) {
		var m model.ExerciseMax
		err := r.Scan(&m.ID, &m.UserID, &m.ExerciseID, &m.MaxWeight, &m.RecordedAt, &m.UpdatedAt)
		return m, err
	},
	args: func(m *model.ExerciseMax) []any {
		return []any{m.ID, m.UserID, m.ExerciseID, m.MaxWeight, m.RecordedAt, m.UpdatedAt}
	},
}

var personalRecordSpec = tableSpec[model.PersonalRecord]{
	table:    "personal_records",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_id", "record_type", "weight", "reps", "estimated_1rm", "achieved_at", "updated_at"},
	pk:       func(p *model.PersonalRecord) string { return p.ID },
	scan: func(r rowScanner) (model.PersonalRecord, error) {
		var p model.PersonalRecord
		err := r.Scan(&p.ID, &p.UserID, &p.ExerciseID, &p.RecordType, &p.Weight, &p.Reps, &p.Estimated1RM, &p.AchievedAt, &p.UpdatedAt)
		return p, err
	},
	args: func(p *model.PersonalRecord) []any {
		return []any{p.ID, p.UserID, p.ExerciseID, p.RecordType, p.Weight, p.Reps, p.Estimated1RM, p.AchievedAt, p.UpdatedAt}
	},
}

var exerciseUsageSpec = tableSpec[model.ExerciseUsage]{
	table:    "exercise_usage",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_id", "use_count", "last_used_at", "notes", "updated_at"},
	pk:       func(u *model.ExerciseUsage) string { return u.ID },
	scan: func(r rowScanner) (model.ExerciseUsage, error) {
		var u model.ExerciseUsage
		var notes sql.NullString
		err := r.Scan(&u.ID, &u.UserID, &u.ExerciseID, &u.UseCount, &u.LastUsedAt, &notes, &u.UpdatedAt)
		u.Notes = strPtr(notes)
		return u, err
	},
	args: func(u *model.ExerciseUsage) []any {
		return []any{u.ID, u.UserID, u.ExerciseID, u.UseCount, u.LastUsedAt, nullStr(u.Notes), u.UpdatedAt}
	},
}

var swapHistorySpec = tableSpec[model.SwapHistory]{
	table:    "swap_history",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "workout_id", "original_exercise_id", "new_exercise_id", "swapped_at", "updated_at"},
	pk:       func(s *model.SwapHistory) string { return s.ID },
	scan: func(r rowScanner) (model.SwapHistory, error) {
		var s model.SwapHistory
		err := r.Scan(&s.ID, &s.UserID, &s.WorkoutID, &s.OriginalExerciseID, &s.NewExerciseID, &s.SwappedAt, &s.UpdatedAt)
		return s, err
	},
	args: func(s *model.SwapHistory) []any {
		return []any{s.ID, s.UserID, s.WorkoutID, s.OriginalExerciseID, s.NewExerciseID, s.SwappedAt, s.UpdatedAt}
	},
}

var performanceTrackingSpec = tableSpec[model.PerformanceTracking]{
	table:    "performance_tracking",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_id", "date", "total_volume", "top_set_weight", "updated_at"},
	pk:       func(p *model.PerformanceTracking) string { return p.ID },
	scan: func(r rowScanner) (model.PerformanceTracking, error) {
		var p model.PerformanceTracking
		err := r.Scan(&p.ID, &p.UserID, &p.ExerciseID, &p.Date, &p.TotalVolume, &p.TopSetWeight, &p.UpdatedAt)
		return p, err
	},
	args: func(p *model.PerformanceTracking) []any {
		return []any{p.ID, p.UserID, p.ExerciseID, p.Date, p.TotalVolume, p.TopSetWeight, p.UpdatedAt}
	},
}

var globalExerciseProgressSpec = tableSpec[model.GlobalExerciseProgress]{
	table:    "global_exercise_progress",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "exercise_id", "trend", "last_calculated_at", "updated_at"},
	pk:       func(g *model.GlobalExerciseProgress) string { return g.ID },
	scan: func(r rowScanner) (model.GlobalExerciseProgress, error) {
		var g model.GlobalExerciseProgress
		err := r.Scan(&g.ID, &g.UserID, &g.ExerciseID, &g.Trend, &g.LastCalculatedAt, &g.UpdatedAt)
		return g, err
	},
	args: func(g *model.GlobalExerciseProgress) []any {
		return []any{g.ID, g.UserID, g.ExerciseID, g.Trend, g.LastCalculatedAt, g.UpdatedAt}
	},
}

var trainingAnalysisSpec = tableSpec[model.TrainingAnalysis]{
	table:    "training_analyses",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "period_start", "period_end", "summary", "generated_at", "updated_at"},
	pk:       func(t *model.TrainingAnalysis) string { return t.ID },
	scan: func(r rowScanner) (model.TrainingAnalysis, error) {
		var t model.TrainingAnalysis
		err := r.Scan(&t.ID, &t.UserID, &t.PeriodStart, &t.PeriodEnd, &t.Summary, &t.GeneratedAt, &t.UpdatedAt)
		return t, err
	},
	args: func(t *model.TrainingAnalysis) []any {
		return []any{t.ID, t.UserID, t.PeriodStart, t.PeriodEnd, t.Summary, t.GeneratedAt, t.UpdatedAt}
	},
}

var parseRequestSpec = tableSpec[model.ParseRequest]{
	table:    "parse_requests",
	ownerCol: "user_id",
	columns:  []string{"id", "user_id", "raw_text", "status", "result_json", "requested_at", "updated_at"},
	pk:       func(p *model.ParseRequest) string { return p.ID },
	scan: func(r rowScanner) (model.ParseRequest, error) {
		var p model.ParseRequest
		var result sql.NullString
		err := r.Scan(&p.ID, &p.UserID, &p.RawText, &p.Status, &result, &p.RequestedAt, &p.UpdatedAt)
		p.ResultJSON = strPtr(result)
		return p, err
	},
	args: func(p *model.ParseRequest) []any {
		return []any{p.ID, p.UserID, p.RawText, p.Status, nullStr(p.ResultJSON), p.RequestedAt, p.UpdatedAt}
	},
}
