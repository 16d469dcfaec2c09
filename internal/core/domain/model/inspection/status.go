package inspection

import (
	"fmt"

	"mestrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a quality inspection.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	    │           │
//	    └───────────┴──> Cancelled
//
// An inspection is completed exactly once; Completed and Cancelled accept no
// further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status when an inspection is first created.
	Pending

	// StatusInProgress indicates the inspection is being carried out.
	StatusInProgress

	// StatusCompleted indicates the inspection was finalized.
	// Passed/failed counts and the overall result are immutable from here on.
	StatusCompleted

	// Cancelled indicates the inspection was abandoned before completion.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		Pending:          "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		Cancelled:        "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		Cancelled:        "CANCELLED",
	}
}

// Validate checks if the Status value is valid.
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

// ValidateComplete checks that the inspection may be finalized from the
// current status. Completion is one-shot: completing an already completed or
// cancelled inspection is an error.
func (s Status) ValidateComplete() error {
	if s != Pending && s != StatusInProgress {
		return errs.NewInvalidStateError("inspection", s.String())
	}
	return nil
}
