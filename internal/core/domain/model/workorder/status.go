package workorder

import (
	"fmt"

	"mestrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a state machine driven by process completions:
//
//	Planned ──> Started ──> InProgress ──> Completed
//	    │          │            │
//	    └──────────┴────────────┴──> Rejected  (quality gate)
//
// Completed and Rejected are terminal; no transition leaves them.
// The non-terminal status is derived purely from how many routing steps
// have been completed, so the machine is expressed as a function of
// (completed count, routing length) rather than scattered conditionals.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status before any process completion is recorded.
	Planned

	// Started indicates exactly one routing step has been completed.
	Started

	// InProgress indicates more than one step completed, but not all.
	InProgress

	// Completed indicates every routing step has been completed.
	// This is a terminal state.
	Completed

	// Rejected indicates the quality gate rejected the work order.
	// This is a terminal state.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "PLANNED",
		Started:    "STARTED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Rejected:   "REJECTED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:    "PLANNED",
		Started:    "STARTED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Rejected:   "REJECTED",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// ValidateCompleteProcess checks that a process completion may be recorded
// against the current status. Terminal work orders reject further completions.
func (s Status) ValidateCompleteProcess() error {
	if s.IsTerminal() {
		return errs.NewInvalidStateError("work order", s.String())
	}
	return nil
}

// StatusForProgress derives the work order status from the number of
// completed routing steps:
//
//	completed == 1      -> Started
//	1 < completed < len -> InProgress
//	completed == len    -> Completed
//
// The rules apply in that order, so a first completion yields Started even
// on a single-step routing. completedCount must be in [1, totalProcesses].
func StatusForProgress(completedCount, totalProcesses int) (Status, error) {
	if totalProcesses <= 0 || completedCount < 1 || completedCount > totalProcesses {
		return 0, errs.NewValueIsOutOfRangeError("completed count", completedCount, 1, totalProcesses)
	}

	switch {
	case completedCount == 1:
		return Started, nil
	case completedCount < totalProcesses:
		return InProgress, nil
	default:
		return Completed, nil
	}
}
