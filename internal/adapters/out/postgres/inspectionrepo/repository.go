package inspectionrepo

import (
	"context"
	"errors"
	"time"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInspectionRepository implements InspectionRepository using GORM.
type GormInspectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInspectionRepository creates a new GORM inspection repository.
func NewGormInspectionRepository(db *gorm.DB, tracker aggregateTracker) *GormInspectionRepository {
	return &GormInspectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inspection and its items to the database. A collision
// on the unique inspection number surfaces as an ObjectAlreadyExistsError
// so callers can recount and retry.
func (r *GormInspectionRepository) Add(ctx context.Context, aggregate *inspection.Inspection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("inspection number", dto.InspectionNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing inspection to the database. Items are
// immutable after creation, so only the inspection row is touched.
func (r *GormInspectionRepository) Update(ctx context.Context, aggregate *inspection.Inspection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Items = nil
	result := r.db.WithContext(ctx).Model(&InspectionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inspection with its items by ID.
func (r *GormInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an inspection by ID and locks its row with
// SELECT ... FOR UPDATE until the surrounding transaction ends.
func (r *GormInspectionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error) {
	return r.get(ctx, id, true)
}

func (r *GormInspectionRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*inspection.Inspection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto InspectionDTO
	if err := db.Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inspection", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every inspection, newest first.
func (r *GormInspectionRepository) GetAll(ctx context.Context) ([]*inspection.Inspection, error) {
	var dtos []InspectionDTO
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForLot retrieves the inspections of a lot, newest first.
func (r *GormInspectionRepository) GetAllForLot(ctx context.Context, lotID kernel.UUID) ([]*inspection.Inspection, error) {
	if err := lotID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InspectionDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("lot_id = ?", lotID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountCreatedSince returns how many inspections were created at or after
// the given instant. Used to assign the next daily sequence number.
func (r *GormInspectionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&InspectionDTO{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainSlice(dtos []InspectionDTO) ([]*inspection.Inspection, error) {
	inspections := make([]*inspection.Inspection, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		inspections = append(inspections, aggregate)
	}

	return inspections, nil
}

// GormInspectionStandardRepository implements InspectionStandardRepository using GORM.
type GormInspectionStandardRepository struct {
	db *gorm.DB
}

// NewGormInspectionStandardRepository creates a new GORM inspection standard repository.
func NewGormInspectionStandardRepository(db *gorm.DB) *GormInspectionStandardRepository {
	return &GormInspectionStandardRepository{db: db}
}

// Add saves a new inspection standard to the database.
func (r *GormInspectionStandardRepository) Add(ctx context.Context, standard *inspection.Standard) error {
	if err := standard.Validate(); err != nil {
		return err
	}

	dto := standardFromDomain(standard)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an inspection standard by ID.
func (r *GormInspectionStandardRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Standard, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StandardDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("standard", id.String())
		}
		return nil, err
	}

	return standardToDomain(dto)
}

// GetAll retrieves every inspection standard ordered by code.
func (r *GormInspectionStandardRepository) GetAll(ctx context.Context) ([]*inspection.Standard, error) {
	var dtos []StandardDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	standards := make([]*inspection.Standard, 0, len(dtos))
	for _, dto := range dtos {
		standard, err := standardToDomain(dto)
		if err != nil {
			return nil, err
		}
		standards = append(standards, standard)
	}

	return standards, nil
}
