package lotrepo

import (
	"context"
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLotRepository implements LotRepository using GORM.
type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLotRepository creates a new GORM lot repository.
func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lot to the database. A collision on the unique lot
// number surfaces as an ObjectAlreadyExistsError so callers can recount
// and retry.
func (r *GormLotRepository) Add(ctx context.Context, aggregate *lot.Lot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("lot number", dto.LotNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing lot to the database.
func (r *GormLotRepository) Update(ctx context.Context, aggregate *lot.Lot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LotDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a lot by ID.
func (r *GormLotRepository) Get(ctx context.Context, id kernel.UUID) (*lot.Lot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLotNumber retrieves a lot by its human readable lot number.
func (r *GormLotRepository) GetByLotNumber(ctx context.Context, lotNumber string) (*lot.Lot, error) {
	if lotNumber == "" {
		return nil, errs.NewValueIsRequiredError("lotNumber")
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "lot_number = ?", lotNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lotNumber", lotNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every lot, newest first.
func (r *GormLotRepository) GetAll(ctx context.Context) ([]*lot.Lot, error) {
	var dtos []LotDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForWorkOrder retrieves the lots attached to a work order.
func (r *GormLotRepository) GetAllForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*lot.Lot, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LotDTO
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountCreatedSince returns how many lots were created at or after the
// given instant. Used to assign the next daily sequence number.
func (r *GormLotRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LotDTO{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainSlice(dtos []LotDTO) ([]*lot.Lot, error) {
	lots := make([]*lot.Lot, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lots = append(lots, aggregate)
	}

	return lots, nil
}

// GormLotHistoryRepository implements LotHistoryRepository using GORM.
// Histories are append-only.
type GormLotHistoryRepository struct {
	db *gorm.DB
}

// NewGormLotHistoryRepository creates a new GORM lot history repository.
func NewGormLotHistoryRepository(db *gorm.DB) *GormLotHistoryRepository {
	return &GormLotHistoryRepository{db: db}
}

// Add saves a new lot history record to the database.
func (r *GormLotHistoryRepository) Add(ctx context.Context, history *lot.History) error {
	if err := history.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(history)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForLot retrieves the processing history of a lot, oldest first.
func (r *GormLotHistoryRepository) GetAllForLot(ctx context.Context, lotID kernel.UUID) ([]*lot.History, error) {
	if err := lotID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("lot_id = ?", lotID.Bytes()).
		Order("processed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	histories := make([]*lot.History, 0, len(dtos))
	for _, dto := range dtos {
		history, toErr := historyToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		histories = append(histories, history)
	}

	return histories, nil
}
