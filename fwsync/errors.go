package fwsync

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a sync entry point that requires an
// owner is called without a resolvable user id.
var ErrNotAuthenticated = errors.New("not authenticated")

// RemoteError wraps a failure from the remote store adapter (network,
// auth, quota). Op names the pipeline step that failed.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *RemoteError) Unwrap() error { return e.Err }

// StoreError wraps a failure from the local store adapter (constraint
// violations, I/O).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }
