package workorderrepo

import (
	"context"
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/workorder"
	"mestrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
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

// Update saves an existing work order to the database.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a work order by ID and locks its row with
// SELECT ... FOR UPDATE until the surrounding transaction ends.
func (r *GormWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(ctx, id, true)
}

func (r *GormWorkOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto WorkOrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every work order ordered by planned start date.
func (r *GormWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Order("planned_start_date").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GormWorkResultRepository implements WorkResultRepository using GORM.
// Work results are append-only.
type GormWorkResultRepository struct {
	db *gorm.DB
}

// NewGormWorkResultRepository creates a new GORM work result repository.
func NewGormWorkResultRepository(db *gorm.DB) *GormWorkResultRepository {
	return &GormWorkResultRepository{db: db}
}

// Add saves a new work result to the database.
func (r *GormWorkResultRepository) Add(ctx context.Context, result *workorder.WorkResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	dto := resultFromDomain(result)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForWorkOrder retrieves the work results of a work order, oldest first.
func (r *GormWorkResultRepository) GetAllForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*workorder.WorkResult, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkResultDTO
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID.Bytes()).
		Order("recorded_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	results := make([]*workorder.WorkResult, 0, len(dtos))
	for _, dto := range dtos {
		result, toErr := resultToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		results = append(results, result)
	}

	return results, nil
}

// CountForWorkOrder returns how many work results a work order has.
func (r *GormWorkResultRepository) CountForWorkOrder(ctx context.Context, workOrderID kernel.UUID) (int, error) {
	if err := workOrderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WorkResultDTO{}).
		Where("work_order_id = ?", workOrderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
