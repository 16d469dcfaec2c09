package equipmentrepo

import (
	"time"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EquipmentDTO is the database representation of a production machine.
type EquipmentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Location string
	Type     string
	Status   int
	Sequence int `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (EquipmentDTO) TableName() string {
	return "equipment"
}

// TelemetryDTO is the database representation of an equipment telemetry sample.
type TelemetryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EquipmentID     uuid.UUID `gorm:"type:uuid;index"`
	Status          int
	Temperature     float64
	ProductionSpeed int
	RecordedAt      time.Time `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (TelemetryDTO) TableName() string {
	return "telemetries"
}

func fromDomain(aggregate *equipment.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Location: aggregate.Location(),
		Type:     aggregate.Type(),
		Status:   int(aggregate.Status()),
		Sequence: aggregate.Sequence(),
	}
}

func toDomain(dto EquipmentDTO) (*equipment.Equipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return equipment.RestoreEquipment(
		id,
		dto.Name,
		dto.Location,
		dto.Type,
		equipment.Status(dto.Status),
		dto.Sequence,
	)
}

func telemetryFromDomain(telemetry *equipment.Telemetry) TelemetryDTO {
	return TelemetryDTO{
		ID:              telemetry.ID().Bytes(),
		EquipmentID:     telemetry.EquipmentID().Bytes(),
		Status:          int(telemetry.Status()),
		Temperature:     telemetry.Temperature(),
		ProductionSpeed: telemetry.ProductionSpeed(),
		RecordedAt:      telemetry.RecordedAt(),
	}
}

func telemetryToDomain(dto TelemetryDTO) (*equipment.Telemetry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	equipmentID, err := kernel.UUIDFromBytes(dto.EquipmentID[:])
	if err != nil {
		return nil, err
	}

	return equipment.RestoreTelemetry(
		id,
		equipmentID,
		equipment.Status(dto.Status),
		dto.Temperature,
		dto.ProductionSpeed,
		dto.RecordedAt,
	)
}
