package fwsync

import (
	"time"

	"github.com/radupana/featherweight-sub015/model"
)

// Action is what the downloader does with one remote record after the
// merge policy has compared it against the local row.
type Action int

const (
	ActionSkip Action = iota
	ActionInsert
	ActionUpdate
)

// MergePolicy decides how a downloaded remote record (already converted
// to local shape) is reconciled against the local row with the same
// primary key. local is nil when no such row exists.
type MergePolicy[T any] interface {
	Name() string
	Resolve(local *T, remote T) (T, Action)
}

// overwrite always takes the remote record: last writer wins at the
// granularity of a full record replace.
type overwrite[T any] struct{}

func (overwrite[T]) Name() string { return "upsert-by-key" }

func (overwrite[T]) Resolve(local *T, remote T) (T, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	return remote, ActionUpdate
}

// insertIfAbsent never touches an existing local row.
type insertIfAbsent[T any] struct{}

func (insertIfAbsent[T]) Name() string { return "insert-if-absent" }

func (insertIfAbsent[T]) Resolve(local *T, remote T) (T, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	return remote, ActionSkip
}

// progressAdvance accepts remote programme progress only when its
// (week, day) position is strictly ahead of the local one. A tie, or a
// same-week lower day, keeps the local row.
type progressAdvance struct{}

func (progressAdvance) Name() string { return "monotonic-advance" }

func (progressAdvance) Resolve(local *model.ProgrammeProgress, remote model.ProgrammeProgress) (model.ProgrammeProgress, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	if remote.CurrentWeek > local.CurrentWeek ||
		(remote.CurrentWeek == local.CurrentWeek && remote.CurrentDay > local.CurrentDay) {
		return remote, ActionUpdate
	}
	return remote, ActionSkip
}

// higherMax keeps whichever side tracked the heavier max.
type higherMax struct{}

func (higherMax) Name() string { return "keep-higher-value" }

func (higherMax) Resolve(local *model.ExerciseMax, remote model.ExerciseMax) (model.ExerciseMax, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	if remote.MaxWeight > local.MaxWeight {
		return remote, ActionUpdate
	}
	return remote, ActionSkip
}

// betterRecord keeps the better personal record, where "better" depends
// on the record type: raw weight for weight records, the estimate for
// estimated-1RM records.
type betterRecord struct{}

func (betterRecord) Name() string { return "keep-better-record" }

func (betterRecord) Resolve(local *model.PersonalRecord, remote model.PersonalRecord) (model.PersonalRecord, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	var localScore, remoteScore float64
	if remote.RecordType == model.RecordTypeEstimated1RM {
		localScore, remoteScore = local.Estimated1RM, remote.Estimated1RM
	} else {
		localScore, remoteScore = local.Weight, remote.Weight
	}
	if remoteScore > localScore {
		return remote, ActionUpdate
	}
	return remote, ActionSkip
}

// combineUsage merges usage counters field-wise: the count takes the
// maximum of both sides, last-used takes the later timestamp, notes take
// the remote value only when local has none.
type combineUsage struct {
	now func() time.Time
}

func (combineUsage) Name() string { return "field-wise-combine" }

func (p combineUsage) Resolve(local *model.ExerciseUsage, remote model.ExerciseUsage) (model.ExerciseUsage, Action) {
	if local == nil {
		return remote, ActionInsert
	}
	merged := *local
	if remote.UseCount > merged.UseCount {
		merged.UseCount = remote.UseCount
	}
	if remote.LastUsedAt.After(merged.LastUsedAt) {
		merged.LastUsedAt = remote.LastUsedAt
	}
	if merged.Notes == nil {
		merged.Notes = remote.Notes
	}
	merged.UpdatedAt = p.now()
	return merged, ActionUpdate
}
