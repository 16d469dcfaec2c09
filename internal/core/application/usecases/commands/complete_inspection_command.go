package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrCompleteInspectionCommandIsNotConstructed = errors.New(
	"CompleteInspectionCommand must be created via NewCompleteInspectionCommand constructor",
)

// CompleteInspectionCommand represents a request to finish a quality
// inspection with its overall result. Completion is one-shot: a second
// attempt on the same inspection fails.
type CompleteInspectionCommand struct { //nolint:recvcheck //using for validation
	inspectionID kernel.UUID
	result       inspection.Result

	guard guard.ConstructorGuard
}

// NewCompleteInspectionCommand creates a command to complete an inspection.
// Validates that the inspection identifier and the overall result are valid.
func NewCompleteInspectionCommand(inspectionID kernel.UUID, result inspection.Result) (CompleteInspectionCommand, error) {
	command := CompleteInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInspectionID(inspectionID),
		command.setResult(result),
	); err != nil {
		return CompleteInspectionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInspectionCommandIsNotConstructed)
}

// InspectionID returns the identifier of the inspection to complete.
func (c CompleteInspectionCommand) InspectionID() kernel.UUID {
	return c.inspectionID
}

// Result returns the overall inspection result.
func (c CompleteInspectionCommand) Result() inspection.Result {
	return c.result
}

func (c *CompleteInspectionCommand) setInspectionID(inspectionID kernel.UUID) error {
	if err := inspectionID.Validate(); err != nil {
		return err
	}

	c.inspectionID = inspectionID
	return nil
}

func (c *CompleteInspectionCommand) setResult(result inspection.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}

	c.result = result
	return nil
}
