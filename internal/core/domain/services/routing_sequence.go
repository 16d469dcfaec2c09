package services

import (
	"errors"
	"fmt"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"
)

var (
	// ErrOutOfSequence is the sentinel for routing order violations,
	// matchable via errors.Is.
	ErrOutOfSequence = errors.New("process is out of sequence")

	// ErrRoutingExhausted is the sentinel for completions requested beyond
	// the routing length, matchable via errors.Is.
	ErrRoutingExhausted = errors.New("routing is exhausted")
)

// OutOfSequenceError reports that a completion was requested for a process
// other than the next expected routing step. It carries the expected step's
// name so callers can tell operators what to run instead.
type OutOfSequenceError struct {
	ExpectedProcessName string
	RequestedProcessID  kernel.UUID
}

func (e *OutOfSequenceError) Error() string {
	return fmt.Sprintf("%s: current is %s", ErrOutOfSequence, e.ExpectedProcessName)
}

func (e *OutOfSequenceError) Unwrap() error {
	return ErrOutOfSequence
}

// RoutingExhaustedError reports that more completions were requested than the
// routing has steps, including the degenerate empty routing.
type RoutingExhaustedError struct {
	CompletedCount int
	RoutingLength  int
}

func (e *RoutingExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d of %d processes completed", ErrRoutingExhausted, e.CompletedCount, e.RoutingLength)
}

func (e *RoutingExhaustedError) Unwrap() error {
	return ErrRoutingExhausted
}

// RoutingSequence is a domain service enforcing that process completions for
// a work order happen in routing order. It is pure: all decisions derive from
// the routing and the count of already completed steps, both supplied by the
// caller.
//
// Position, not the numeric sequence value, indexes the next expected step,
// so routings with gaps between sequence numbers behave the same as dense
// ones.
type RoutingSequence struct{}

// NewRoutingSequence creates the sequence validation service.
func NewRoutingSequence() RoutingSequence {
	return RoutingSequence{}
}

// NextExpectedProcess returns the routing step at position completedCount in
// ascending sequence order. Fails with a RoutingExhaustedError when every
// step has been completed already, or when the routing is empty.
func (RoutingSequence) NextExpectedProcess(routing []product.Process, completedCount int) (product.Process, error) {
	if completedCount < 0 {
		completedCount = 0
	}
	if completedCount >= len(routing) {
		return product.Process{}, &RoutingExhaustedError{
			CompletedCount: completedCount,
			RoutingLength:  len(routing),
		}
	}
	return routing[completedCount], nil
}

// Validate confirms that requestedProcessID matches the next expected routing
// step. Fails with an OutOfSequenceError naming the expected step when it
// does not.
func (s RoutingSequence) Validate(routing []product.Process, completedCount int, requestedProcessID kernel.UUID) error {
	expected, err := s.NextExpectedProcess(routing, completedCount)
	if err != nil {
		return err
	}

	if !expected.ID().IsEqual(requestedProcessID) {
		return &OutOfSequenceError{
			ExpectedProcessName: expected.Name(),
			RequestedProcessID:  requestedProcessID,
		}
	}
	return nil
}
