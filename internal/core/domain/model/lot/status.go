package lot

import (
	"fmt"

	"mestrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a lot.
//
// State transitions:
//
//	Created ──> InProgress ──> Completed ──> Shipped
//	               │
//	               ├──> OnHold
//	               └──> Rejected
//
// Unlike work orders, lot transitions are externally driven by explicit
// status updates; the single automatic rule is Created -> InProgress when
// the first history entry is appended.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a lot is first created.
	Created

	// InProgress indicates at least one process has been applied to the lot.
	InProgress

	// Completed indicates the lot finished production.
	Completed

	// OnHold indicates the lot is suspended pending a decision.
	OnHold

	// Rejected indicates the lot was scrapped for quality reasons.
	Rejected

	// Shipped indicates the lot left the factory.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		OnHold:     "ON_HOLD",
		Rejected:   "REJECTED",
		Shipped:    "SHIPPED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		OnHold:     "ON_HOLD",
		Rejected:   "REJECTED",
		Shipped:    "SHIPPED",
	}
}

// StatusFromString parses a wire status name, e.g. "ON_HOLD".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid lot status", s))
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
