package fwsync

import "time"

// Status is the terminal state of a sync pass.
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Stage identifies which part of the pipeline an error outcome came from.
type Stage string

const (
	StageAuth     Stage = "authenticate"
	StageDownload Stage = "download"
	StageUpload   Stage = "upload"
	StageRestore  Stage = "restore"
	StageFinalize Stage = "finalize"
)

// Outcome is the typed result of a sync pass. No error ever crosses the
// coordinator's public boundary except through Err here.
type Outcome struct {
	Status Status

	// SyncedAt is set on success: the new baseline timestamp.
	SyncedAt time.Time

	// Reason and Remaining are set on skip (cooldown not yet elapsed).
	Reason    string
	Remaining time.Duration

	// Stage and Err are set on error.
	Stage Stage
	Err   error
}

func success(at time.Time) Outcome {
	return Outcome{Status: StatusSuccess, SyncedAt: at}
}

func skipped(reason string, remaining time.Duration) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason, Remaining: remaining}
}

func failure(stage Stage, err error) Outcome {
	return Outcome{Status: StatusError, Stage: stage, Err: err}
}
