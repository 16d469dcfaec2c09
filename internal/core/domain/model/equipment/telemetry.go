package equipment

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
)

// ErrTelemetryIsNotConstructed is returned when a Telemetry instance was not
// created through the NewTelemetry factory method.
var ErrTelemetryIsNotConstructed = errors.New("Telemetry must be created via NewTelemetry constructor")

// Telemetry is one immutable sample of equipment state: operational status,
// temperature, and production speed at a point in time. The latest sample
// per equipment feeds the dashboard's equipment status summary.
type Telemetry struct {
	id              kernel.UUID
	equipmentID     kernel.UUID
	status          Status
	temperature     float64
	productionSpeed int
	recordedAt      time.Time

	isConstructed bool
}

// NewTelemetry creates a telemetry sample stamped with the given time.
func NewTelemetry(
	id, equipmentID kernel.UUID,
	status Status,
	temperature float64,
	productionSpeed int,
	recordedAt time.Time,
) (*Telemetry, error) {
	t := &Telemetry{
		temperature:     temperature,
		productionSpeed: productionSpeed,
		recordedAt:      recordedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setEquipmentID(equipmentID),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTelemetry reconstructs a Telemetry from persistence.
func RestoreTelemetry(
	id, equipmentID kernel.UUID,
	status Status,
	temperature float64,
	productionSpeed int,
	recordedAt time.Time,
) (*Telemetry, error) {
	return NewTelemetry(id, equipmentID, status, temperature, productionSpeed, recordedAt)
}

// Validate ensures the Telemetry instance was properly constructed through NewTelemetry.
func (t *Telemetry) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTelemetryIsNotConstructed
	}
	return nil
}

// ID returns the sample's unique identifier.
func (t *Telemetry) ID() kernel.UUID {
	return t.id
}

// EquipmentID returns the sampled equipment's identifier.
func (t *Telemetry) EquipmentID() kernel.UUID {
	return t.equipmentID
}

// Status returns the sampled operational status.
func (t *Telemetry) Status() Status {
	return t.status
}

// Temperature returns the sampled temperature in degrees Celsius.
func (t *Telemetry) Temperature() float64 {
	return t.temperature
}

// ProductionSpeed returns the sampled production speed in units per hour.
func (t *Telemetry) ProductionSpeed() int {
	return t.productionSpeed
}

// RecordedAt returns when the sample was taken.
func (t *Telemetry) RecordedAt() time.Time {
	return t.recordedAt
}

func (t *Telemetry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Telemetry) setEquipmentID(equipmentID kernel.UUID) error {
	if err := equipmentID.Validate(); err != nil {
		return err
	}
	t.equipmentID = equipmentID
	return nil
}

func (t *Telemetry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
