package equipment

import (
	"errors"
	"fmt"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrEquipmentIsNotConstructed is returned when an Equipment instance was not
// created through the NewEquipment factory method.
var ErrEquipmentIsNotConstructed = errors.New("Equipment must be created via NewEquipment constructor")

// Status is the operational state reported by a piece of equipment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Run indicates the equipment is producing.
	Run

	// Idle indicates the equipment is powered but not producing.
	Idle

	// Stop indicates the equipment is stopped.
	Stop

	// Alarm indicates the equipment raised a fault condition.
	Alarm
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Run:           "RUN",
		Idle:          "IDLE",
		Stop:          "STOP",
		Alarm:         "ALARM",
	}
}

// StatusFromString parses a wire status name, e.g. "ALARM".
func StatusFromString(s string) (Status, error) {
	switch s {
	case "RUN":
		return Run, nil
	case "IDLE":
		return Idle, nil
	case "STOP":
		return Stop, nil
	case "ALARM":
		return Alarm, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid equipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid equipment status", s))
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

// Equipment is a machine on the factory floor: cutting, assembly, packaging,
// or inspection gear. Equipment rows are shared reference data for lot
// history and the source of periodic telemetry samples.
type Equipment struct {
	id            kernel.UUID
	name          string
	location      string
	equipmentType string
	status        Status
	sequence      int

	isConstructed bool
}

// NewEquipment creates a piece of equipment, initially Idle unless a status
// is restored from persistence.
func NewEquipment(id kernel.UUID, name, location, equipmentType string, sequence int) (*Equipment, error) {
	e := &Equipment{
		location:      location,
		equipmentType: equipmentType,
		status:        Idle,
		sequence:      sequence,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEquipment reconstructs an Equipment from persistence.
func RestoreEquipment(
	id kernel.UUID,
	name, location, equipmentType string,
	status Status,
	sequence int,
) (*Equipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	e, err := NewEquipment(id, name, location, equipmentType, sequence)
	if err != nil {
		return nil, err
	}

	e.status = status
	return e, nil
}

// Validate ensures the Equipment instance was properly constructed through NewEquipment.
func (e *Equipment) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEquipmentIsNotConstructed
	}
	return nil
}

// ID returns the equipment's unique identifier.
func (e *Equipment) ID() kernel.UUID {
	return e.id
}

// Name returns the equipment's display name.
func (e *Equipment) Name() string {
	return e.name
}

// Location returns the equipment's floor location.
func (e *Equipment) Location() string {
	return e.location
}

// Type returns the equipment's machine type.
func (e *Equipment) Type() string {
	return e.equipmentType
}

// Status returns the equipment's current operational status.
func (e *Equipment) Status() Status {
	return e.status
}

// Sequence returns the equipment's position on the line.
func (e *Equipment) Sequence() int {
	return e.sequence
}

// SetStatus updates the current operational status, typically from the
// latest telemetry sample.
func (e *Equipment) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Equipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Equipment) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}
