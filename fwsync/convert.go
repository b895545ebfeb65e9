package fwsync

import (
	"github.com/radupana/featherweight-sub015/fwcloud"
	"github.com/radupana/featherweight-sub015/model"
)

// Converters between local entity shapes and remote document shapes.
// All of them are pure, total and lossless over persisted fields in both
// directions; optional fields map to pointers on both sides so absence
// survives the round trip.

func ExerciseFromDoc(d fwcloud.ExerciseDoc) model.Exercise {
	return model.Exercise{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		MuscleGroup:  d.MuscleGroup,
		Equipment:    d.Equipment,
		Instructions: d.Instructions,
		UpdatedAt:    d.UpdatedAt,
	}
}

func ExerciseToDoc(e model.Exercise) fwcloud.ExerciseDoc {
	return fwcloud.ExerciseDoc{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		MuscleGroup:  e.MuscleGroup,
		Equipment:    e.Equipment,
		Instructions: e.Instructions,
		UpdatedAt:    e.UpdatedAt,
	}
}

func CustomExerciseFromDoc(d fwcloud.CustomExerciseDoc) model.CustomExercise {
	return model.CustomExercise{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Category:    d.Category,
		MuscleGroup: d.MuscleGroup,
		Equipment:   d.Equipment,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func CustomExerciseToDoc(e model.CustomExercise) fwcloud.CustomExerciseDoc {
	return fwcloud.CustomExerciseDoc{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Category:    e.Category,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func WorkoutFromDoc(d fwcloud.WorkoutDoc) model.Workout {
	return model.Workout{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            d.Name,
		Notes:           d.Notes,
		ProgrammeID:     d.ProgrammeID,
		StartedAt:       d.StartedAt,
		CompletedAt:     d.CompletedAt,
		DurationSeconds: d.DurationSeconds,
		UpdatedAt:       d.UpdatedAt,
	}
}

func WorkoutToDoc(w model.Workout) fwcloud.WorkoutDoc {
	return fwcloud.WorkoutDoc{
		ID:              w.ID,
		UserID:          w.UserID,
		Name:            w.Name,
		Notes:           w.Notes,
		ProgrammeID:     w.ProgrammeID,
		StartedAt:       w.StartedAt,
		CompletedAt:     w.CompletedAt,
		DurationSeconds: w.DurationSeconds,
		UpdatedAt:       w.UpdatedAt,
	}
}

func ExerciseLogFromDoc(d fwcloud.ExerciseLogDoc) model.ExerciseLog {
	return model.ExerciseLog{
		ID:           d.ID,
		UserID:       d.UserID,
		WorkoutID:    d.WorkoutID,
		ExerciseID:   d.ExerciseID,
		ExerciseName: d.ExerciseName,
		OrderIndex:   d.OrderIndex,
		Notes:        d.Notes,
		UpdatedAt:    d.UpdatedAt,
	}
}

func ExerciseLogToDoc(l model.ExerciseLog) fwcloud.ExerciseLogDoc {
	return fwcloud.ExerciseLogDoc{
		ID:           l.ID,
		UserID:       l.UserID,
		WorkoutID:    l.WorkoutID,
		ExerciseID:   l.ExerciseID,
		ExerciseName: l.ExerciseName,
		OrderIndex:   l.OrderIndex,
		Notes:        l.Notes,
		UpdatedAt:    l.UpdatedAt,
	}
}

func SetLogFromDoc(d fwcloud.SetLogDoc) model.SetLog {
	return model.SetLog{
		ID:            d.ID,
		UserID:        d.UserID,
		ExerciseLogID: d.ExerciseLogID,
		SetNumber:     d.SetNumber,
		Weight:        d.Weight,
		Reps:          d.Reps,
		RPE:           d.RPE,
		Completed:     d.Completed,
		CompletedAt:   d.CompletedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func SetLogToDoc(s model.SetLog) fwcloud.SetLogDoc {
	return fwcloud.SetLogDoc{
		ID:            s.ID,
		UserID:        s.UserID,
		ExerciseLogID: s.ExerciseLogID,
		SetNumber:     s.SetNumber,
		Weight:        s.Weight,
		Reps:          s.Reps,
		RPE:           s.RPE,
		Completed:     s.Completed,
		CompletedAt:   s.CompletedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func TemplateFromDoc(d fwcloud.TemplateDoc) model.Template {
	return model.Template{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func TemplateToDoc(t model.Template) fwcloud.TemplateDoc {
	return fwcloud.TemplateDoc{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func TemplateExerciseFromDoc(d fwcloud.TemplateExerciseDoc) model.TemplateExercise {
	return model.TemplateExercise{
		ID:         d.ID,
		UserID:     d.UserID,
		TemplateID: d.TemplateID,
		ExerciseID: d.ExerciseID,
		OrderIndex: d.OrderIndex,
		UpdatedAt:  d.UpdatedAt,
	}
}

func TemplateExerciseToDoc(t model.TemplateExercise) fwcloud.TemplateExerciseDoc {
	return fwcloud.TemplateExerciseDoc{
		ID:         t.ID,
		UserID:     t.UserID,
		TemplateID: t.TemplateID,
		ExerciseID: t.ExerciseID,
		OrderIndex: t.OrderIndex,
		UpdatedAt:  t.UpdatedAt,
	}
}

func TemplateSetFromDoc(d fwcloud.TemplateSetDoc) model.TemplateSet {
	return model.TemplateSet{
		ID:                 d.ID,
		UserID:             d.UserID,
		TemplateExerciseID: d.TemplateExerciseID,
		SetNumber:          d.SetNumber,
		TargetWeight:       d.TargetWeight,
		TargetReps:         d.TargetReps,
		UpdatedAt:          d.UpdatedAt,
	}
}

func TemplateSetToDoc(t model.TemplateSet) fwcloud.TemplateSetDoc {
	return fwcloud.TemplateSetDoc{
		ID:                 t.ID,
		UserID:             t.UserID,
		TemplateExerciseID: t.TemplateExerciseID,
		SetNumber:          t.SetNumber,
		TargetWeight:       t.TargetWeight,
		TargetReps:         t.TargetReps,
		UpdatedAt:          t.UpdatedAt,
	}
}

func ProgrammeFromDoc(d fwcloud.ProgrammeDoc) model.Programme {
	return model.Programme{
		ID:            d.ID,
		UserID:        d.UserID,
		Name:          d.Name,
		DurationWeeks: d.DurationWeeks,
		Active:        d.Active,
		StartedAt:     d.StartedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ProgrammeToDoc(p model.Programme) fwcloud.ProgrammeDoc {
	return fwcloud.ProgrammeDoc{
		ID:            p.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		DurationWeeks: p.DurationWeeks,
		Active:        p.Active,
		StartedAt:     p.StartedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ProgrammeWeekFromDoc(d fwcloud.ProgrammeWeekDoc) model.ProgrammeWeek {
	return model.ProgrammeWeek{
		ID:          d.ID,
		UserID:      d.UserID,
		ProgrammeID: d.ProgrammeID,
		WeekNumber:  d.WeekNumber,
		Name:        d.Name,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ProgrammeWeekToDoc(w model.ProgrammeWeek) fwcloud.ProgrammeWeekDoc {
	return fwcloud.ProgrammeWeekDoc{
		ID:          w.ID,
		UserID:      w.UserID,
		ProgrammeID: w.ProgrammeID,
		WeekNumber:  w.WeekNumber,
		Name:        w.Name,
		UpdatedAt:   w.UpdatedAt,
	}
}

func ProgrammeWorkoutFromDoc(d fwcloud.ProgrammeWorkoutDoc) model.ProgrammeWorkout {
	return model.ProgrammeWorkout{
		ID:              d.ID,
		UserID:          d.UserID,
		ProgrammeWeekID: d.ProgrammeWeekID,
		DayNumber:       d.DayNumber,
		Name:            d.Name,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ProgrammeWorkoutToDoc(w model.ProgrammeWorkout) fwcloud.ProgrammeWorkoutDoc {
	return fwcloud.ProgrammeWorkoutDoc{
		ID:              w.ID,
		UserID:          w.UserID,
		ProgrammeWeekID: w.ProgrammeWeekID,
		DayNumber:       w.DayNumber,
		Name:            w.Name,
		UpdatedAt:       w.UpdatedAt,
	}
}

func ProgrammeProgressFromDoc(d fwcloud.ProgrammeProgressDoc) model.ProgrammeProgress {
	return model.ProgrammeProgress{
		ID:                d.ID,
		UserID:            d.UserID,
		ProgrammeID:       d.ProgrammeID,
		CurrentWeek:       d.CurrentWeek,
		CurrentDay:        d.CurrentDay,
		CompletedWorkouts: d.CompletedWorkouts,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ProgrammeProgressToDoc(p model.ProgrammeProgress) fwcloud.ProgrammeProgressDoc {
	return fwcloud.ProgrammeProgressDoc{
		ID:                p.ID,
		UserID:            p.UserID,
		ProgrammeID:       p.ProgrammeID,
		CurrentWeek:       p.CurrentWeek,
		CurrentDay:        p.CurrentDay,
		CompletedWorkouts: p.CompletedWorkouts,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ExerciseMaxFromDoc(d fwcloud.ExerciseMaxDoc) model.ExerciseMax {
	return model.ExerciseMax{
		ID:         d.ID,
		UserID:     d.UserID,
		ExerciseID: d.ExerciseID,
		MaxWeight:  d.MaxWeight,
		RecordedAt: d.RecordedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func ExerciseMaxToDoc(m model.ExerciseMax) fwcloud.ExerciseMaxDoc {
	return fwcloud.ExerciseMaxDoc{
		ID:         m.ID,
		UserID:     m.UserID,
		ExerciseID: m.ExerciseID,
		MaxWeight:  m.MaxWeight,
		RecordedAt: m.RecordedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func PersonalRecordFromDoc(d fwcloud.PersonalRecordDoc) model.PersonalRecord {
	return model.PersonalRecord{
		ID:           d.ID,
		UserID:       d.UserID,
		ExerciseID:   d.ExerciseID,
		RecordType:   d.RecordType,
		Weight:       d.Weight,
		Reps:         d.Reps,
		Estimated1RM: d.Estimated1RM,
		AchievedAt:   d.AchievedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func PersonalRecordToDoc(p model.PersonalRecord) fwcloud.PersonalRecordDoc {
	return fwcloud.PersonalRecordDoc{
		ID:           p.ID,
		UserID:       p.UserID,
		ExerciseID:   p.ExerciseID,
		RecordType:   p.RecordType,
		Weight:       p.Weight,
		Reps:         p.Reps,
		Estimated1RM: p.Estimated1RM,
		AchievedAt:   p.AchievedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ExerciseUsageFromDoc(d fwcloud.ExerciseUsageDoc) model.ExerciseUsage {
	return model.ExerciseUsage{
		ID:         d.ID,
		UserID:     d.UserID,
		ExerciseID: d.ExerciseID,
		UseCount:   d.UseCount,
		LastUsedAt: d.LastUsedAt,
		Notes:      d.Notes,
		UpdatedAt:  d.UpdatedAt,
	}
}

func ExerciseUsageToDoc(u model.ExerciseUsage) fwcloud.ExerciseUsageDoc {
	return fwcloud.ExerciseUsageDoc{
		ID:         u.ID,
		UserID:     u.UserID,
		ExerciseID: u.ExerciseID,
		UseCount:   u.UseCount,
		LastUsedAt: u.LastUsedAt,
		Notes:      u.Notes,
		UpdatedAt:  u.UpdatedAt,
	}
}

func SwapHistoryFromDoc(d fwcloud.SwapHistoryDoc) model.SwapHistory {
	return model.SwapHistory{
		ID:                 d.ID,
		UserID:             d.UserID,
		WorkoutID:          d.WorkoutID,
		OriginalExerciseID: d.OriginalExerciseID,
		NewExerciseID:      d.NewExerciseID,
		SwappedAt:          d.SwappedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func SwapHistoryToDoc(s model.SwapHistory) fwcloud.SwapHistoryDoc {
	return fwcloud.SwapHistoryDoc{
		ID:                 s.ID,
		UserID:             s.UserID,
		WorkoutID:          s.WorkoutID,
		OriginalExerciseID: s.OriginalExerciseID,
		NewExerciseID:      s.NewExerciseID,
		SwappedAt:          s.SwappedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func PerformanceTrackingFromDoc(d fwcloud.PerformanceTrackingDoc) model.PerformanceTracking {
	return model.PerformanceTracking{
		ID:           d.ID,
		UserID:       d.UserID,
		ExerciseID:   d.ExerciseID,
		Date:         d.Date,
		TotalVolume:  d.TotalVolume,
		TopSetWeight: d.TopSetWeight,
		UpdatedAt:    d.UpdatedAt,
	}
}

func PerformanceTrackingToDoc(p model.PerformanceTracking) fwcloud.PerformanceTrackingDoc {
	return fwcloud.PerformanceTrackingDoc{
		ID:           p.ID,
		UserID:       p.UserID,
		ExerciseID:   p.ExerciseID,
		Date:         p.Date,
		TotalVolume:  p.TotalVolume,
		TopSetWeight: p.TopSetWeight,
		UpdatedAt:    p.UpdatedAt,
	}
}

func GlobalExerciseProgressFromDoc(d fwcloud.GlobalExerciseProgressDoc) model.GlobalExerciseProgress {
	return model.GlobalExerciseProgress{
		ID:               d.ID,
		UserID:           d.UserID,
		ExerciseID:       d.ExerciseID,
		Trend:            d.Trend,
		LastCalculatedAt: d.LastCalculatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func GlobalExerciseProgressToDoc(g model.GlobalExerciseProgress) fwcloud.GlobalExerciseProgressDoc {
	return fwcloud.GlobalExerciseProgressDoc{
		ID:               g.ID,
		UserID:           g.UserID,
		ExerciseID:       g.ExerciseID,
		Trend:            g.Trend,
		LastCalculatedAt: g.LastCalculatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

func TrainingAnalysisFromDoc(d fwcloud.TrainingAnalysisDoc) model.TrainingAnalysis {
	return model.TrainingAnalysis{
		ID:          d.ID,
		UserID:      d.UserID,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		Summary:     d.Summary,
		GeneratedAt: d.GeneratedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func TrainingAnalysisToDoc(t model.TrainingAnalysis) fwcloud.TrainingAnalysisDoc {
	return fwcloud.TrainingAnalysisDoc{
		ID:          t.ID,
		UserID:      t.UserID,
		PeriodStart: t.PeriodStart,
		PeriodEnd:   t.PeriodEnd,
		Summary:     t.Summary,
		GeneratedAt: t.GeneratedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ParseRequestFromDoc(d fwcloud.ParseRequestDoc) model.ParseRequest {
	return model.ParseRequest{
		ID:          d.ID,
		UserID:      d.UserID,
		RawText:     d.RawText,
		Status:      d.Status,
		ResultJSON:  d.ResultJSON,
		RequestedAt: d.RequestedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ParseRequestToDoc(p model.ParseRequest) fwcloud.ParseRequestDoc {
	return fwcloud.ParseRequestDoc{
		ID:          p.ID,
		UserID:      p.UserID,
		RawText:     p.RawText,
		Status:      p.Status,
		ResultJSON:  p.ResultJSON,
		RequestedAt: p.RequestedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
