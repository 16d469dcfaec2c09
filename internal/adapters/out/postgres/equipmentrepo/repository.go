package equipmentrepo

import (
	"context"
	"errors"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEquipmentRepository implements EquipmentRepository using GORM.
type GormEquipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEquipmentRepository creates a new GORM equipment repository.
func NewGormEquipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormEquipmentRepository {
	return &GormEquipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new piece of equipment to the database.
func (r *GormEquipmentRepository) Add(ctx context.Context, aggregate *equipment.Equipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a piece of equipment to the database.
func (r *GormEquipmentRepository) Update(ctx context.Context, aggregate *equipment.Equipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EquipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a piece of equipment by ID.
func (r *GormEquipmentRepository) Get(ctx context.Context, id kernel.UUID) (*equipment.Equipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EquipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("equipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every piece of equipment in line order.
func (r *GormEquipmentRepository) GetAll(ctx context.Context) ([]*equipment.Equipment, error) {
	var dtos []EquipmentDTO
	if err := r.db.WithContext(ctx).Order("sequence").Find(&dtos).Error; err != nil {
		return nil, err
	}

	machines := make([]*equipment.Equipment, 0, len(dtos))
	for _, dto := range dtos {
		machine, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		machines = append(machines, machine)
	}

	return machines, nil
}

// GormTelemetryRepository implements TelemetryRepository using GORM.
// Telemetry samples are append-only.
type GormTelemetryRepository struct {
	db *gorm.DB
}

// NewGormTelemetryRepository creates a new GORM telemetry repository.
func NewGormTelemetryRepository(db *gorm.DB) *GormTelemetryRepository {
	return &GormTelemetryRepository{db: db}
}

// Add saves a new telemetry sample to the database.
func (r *GormTelemetryRepository) Add(ctx context.Context, telemetry *equipment.Telemetry) error {
	if err := telemetry.Validate(); err != nil {
		return err
	}

	dto := telemetryFromDomain(telemetry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatestForEquipment retrieves the most recent telemetry sample of a machine.
func (r *GormTelemetryRepository) GetLatestForEquipment(ctx context.Context, equipmentID kernel.UUID) (*equipment.Telemetry, error) {
	if err := equipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto TelemetryDTO
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID.Bytes()).
		Order("recorded_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("equipmentID", equipmentID.String())
		}
		return nil, err
	}

	return telemetryToDomain(dto)
}

// GetAllForEquipment retrieves up to limit recent telemetry samples of a
// machine, newest first.
func (r *GormTelemetryRepository) GetAllForEquipment(ctx context.Context, equipmentID kernel.UUID, limit int) ([]*equipment.Telemetry, error) {
	if err := equipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TelemetryDTO
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID.Bytes()).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	samples := make([]*equipment.Telemetry, 0, len(dtos))
	for _, dto := range dtos {
		sample, toErr := telemetryToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
