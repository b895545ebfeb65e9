package fwsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/radupana/featherweight-sub015/model"
)

func TestOverwritePolicy(t *testing.T) {
	p := overwrite[model.Workout]{}
	remote := model.Workout{ID: "w1", Name: "remote"}

	got, action := p.Resolve(nil, remote)
	require.Equal(t, ActionInsert, action)
	require.Equal(t, remote, got)

	local := model.Workout{ID: "w1", Name: "local"}
	got, action = p.Resolve(&local, remote)
	require.Equal(t, ActionUpdate, action)
	require.Equal(t, "remote", got.Name)
}

func TestInsertIfAbsentPolicy(t *testing.T) {
	p := insertIfAbsent[model.Programme]{}
	remote := model.Programme{ID: "p1", Name: "remote"}

	_, action := p.Resolve(nil, remote)
	require.Equal(t, ActionInsert, action)

	local := model.Programme{ID: "p1", Name: "local"}
	_, action = p.Resolve(&local, remote)
	require.Equal(t, ActionSkip, action)
}

func TestProgressAdvance(t *testing.T) {
	cases := []struct {
		name                  string
		localWeek, localDay   int
		remoteWeek, remoteDay int
		action                Action
	}{
		{"remote week ahead", 2, 3, 3, 1, ActionUpdate},
		{"same week remote day ahead", 2, 3, 2, 4, ActionUpdate},
		{"identical position", 2, 3, 2, 3, ActionSkip},
		{"same week remote day behind", 2, 3, 2, 2, ActionSkip},
		{"remote week behind higher day", 2, 1, 1, 5, ActionSkip},
	}

	p := progressAdvance{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			local := model.ProgrammeProgress{ID: "pp1", CurrentWeek: tc.localWeek, CurrentDay: tc.localDay}
			remote := model.ProgrammeProgress{ID: "pp1", CurrentWeek: tc.remoteWeek, CurrentDay: tc.remoteDay}
			_, action := p.Resolve(&local, remote)
			require.Equal(t, tc.action, action)
		})
	}

	remote := model.ProgrammeProgress{ID: "pp1", CurrentWeek: 1, CurrentDay: 1}
	_, action := p.Resolve(nil, remote)
	require.Equal(t, ActionInsert, action)
}

func TestHigherMax(t *testing.T) {
	p := higherMax{}
	local := model.ExerciseMax{ID: "m1", MaxWeight: 140}

	_, action := p.Resolve(&local, model.ExerciseMax{ID: "m1", MaxWeight: 145})
	require.Equal(t, ActionUpdate, action)

	_, action = p.Resolve(&local, model.ExerciseMax{ID: "m1", MaxWeight: 140})
	require.Equal(t, ActionSkip, action)

	_, action = p.Resolve(&local, model.ExerciseMax{ID: "m1", MaxWeight: 120})
	require.Equal(t, ActionSkip, action)
}

func TestBetterRecord(t *testing.T) {
	p := betterRecord{}

	// Weight records compare raw weight even when the estimate differs.
	local := model.PersonalRecord{ID: "r1", RecordType: model.RecordTypeWeight, Weight: 100, Estimated1RM: 110}
	remote := model.PersonalRecord{ID: "r1", RecordType: model.RecordTypeWeight, Weight: 105, Estimated1RM: 105}
	_, action := p.Resolve(&local, remote)
	require.Equal(t, ActionUpdate, action)

	// Estimated-1RM records compare the estimate.
	local = model.PersonalRecord{ID: "r2", RecordType: model.RecordTypeEstimated1RM, Weight: 100, Estimated1RM: 120}
	remote = model.PersonalRecord{ID: "r2", RecordType: model.RecordTypeEstimated1RM, Weight: 110, Estimated1RM: 115}
	_, action = p.Resolve(&local, remote)
	require.Equal(t, ActionSkip, action)

	// Ties keep local.
	remote.Estimated1RM = 120
	_, action = p.Resolve(&local, remote)
	require.Equal(t, ActionSkip, action)
}

func TestCombineUsage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := combineUsage{now: func() time.Time { return now }}

	localNotes := "prefer close grip"
	remoteNotes := "remote notes"
	local := model.ExerciseUsage{
		ID:         "u1",
		UseCount:   5,
		LastUsedAt: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Notes:      &localNotes,
	}
	remote := model.ExerciseUsage{
		ID:         "u1",
		UseCount:   8,
		LastUsedAt: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Notes:      &remoteNotes,
	}

	merged, action := p.Resolve(&local, remote)
	require.Equal(t, ActionUpdate, action)
	require.Equal(t, 8, merged.UseCount, "count takes the maximum")
	require.Equal(t, local.LastUsedAt, merged.LastUsedAt, "later last-used wins")
	require.Equal(t, &localNotes, merged.Notes, "local notes win when present")
	require.Equal(t, now, merged.UpdatedAt)

	// Remote notes fill in only when local has none.
	local.Notes = nil
	merged, _ = p.Resolve(&local, remote)
	require.Equal(t, &remoteNotes, merged.Notes)

	// Later remote last-used wins even when the local count is higher.
	local.UseCount = 9
	remote.LastUsedAt = time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	merged, _ = p.Resolve(&local, remote)
	require.Equal(t, 9, merged.UseCount)
	require.Equal(t, remote.LastUsedAt, merged.LastUsedAt)
}

func TestPolicyNames(t *testing.T) {
	require.Equal(t, "upsert-by-key", overwrite[model.Workout]{}.Name())
	require.Equal(t, "insert-if-absent", insertIfAbsent[model.Programme]{}.Name())
	require.Equal(t, "monotonic-advance", progressAdvance{}.Name())
	require.Equal(t, "keep-higher-value", higherMax{}.Name())
	require.Equal(t, "keep-better-record", betterRecord{}.Name())
	require.Equal(t, "field-wise-combine", combineUsage{}.Name())
}
