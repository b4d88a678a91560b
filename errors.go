// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"errors"
	"fmt"
)

// ErrMemory is returned when the node table cannot grow, even after garbage
// collection. The manager stays usable; freeing diagrams and retrying is
// legitimate.
var ErrMemory = errors.New("unable to free memory or resize the node table")

// ErrTimeout is returned when the manager deadline expires during a
// computation. The interrupted call cannot be resumed, only redone.
var ErrTimeout = errors.New("deadline exceeded during apply")

// ErrClosed is returned when using a manager after Close.
var ErrClosed = errors.New("manager is closed")

// errRebuild signals that the node table was garbage collected or rebuilt
// while a recursion was in flight. It never escapes the top-level retry loop.
var errRebuild = errors.New("node table rebuilt")

// Error returns the error status of the manager. We return an empty string if
// there are no errors.
func (m *Manager) Error() string {
	if m.lasterr == nil {
		return ""
	}
	return m.lasterr.Error()
}

// Errored returns true if there was an error during a computation.
func (m *Manager) Errored() bool {
	return m.lasterr != nil
}

func (m *Manager) seterror(format string, a ...interface{}) error {
	err := fmt.Errorf(format, a...)
	if m.lasterr != nil {
		// both errors stay on the unwrap chain; a latched failure must not
		// hide the kind of a later one
		err = fmt.Errorf("%w; %w", err, m.lasterr)
	}
	m.lasterr = err
	return err
}
