// Package workorderrepo provides data transfer objects and mapping functions
// for work order and work result persistence.
package workorderrepo

import (
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates.
type WorkOrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;index"`
	Quantity         int
	Status           int `gorm:"index"`
	StartTime        *time.Time
	FinishTime       *time.Time
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// WorkResultDTO represents one immutable per-process completion record of a
// work order.
type WorkResultDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	ProcessID   uuid.UUID `gorm:"type:uuid"`
	GoodQty     int
	BadQty      int
	RecordedAt  time.Time
}

// TableName specifies the database table name for work results.
func (WorkResultDTO) TableName() string {
	return "work_results"
}

func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:               aggregate.ID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		Quantity:         aggregate.Quantity(),
		Status:           int(aggregate.Status()),
		StartTime:        aggregate.StartTime(),
		FinishTime:       aggregate.FinishTime(),
		PlannedStartDate: aggregate.PlannedStartDate(),
		PlannedEndDate:   aggregate.PlannedEndDate(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id, productID, dto.Quantity, workorder.Status(dto.Status),
		dto.StartTime, dto.FinishTime, dto.PlannedStartDate, dto.PlannedEndDate,
	)
}

func resultFromDomain(result *workorder.WorkResult) WorkResultDTO {
	return WorkResultDTO{
		ID:          result.ID().Bytes(),
		WorkOrderID: result.WorkOrderID().Bytes(),
		ProcessID:   result.ProcessID().Bytes(),
		GoodQty:     result.GoodQty(),
		BadQty:      result.BadQty(),
		RecordedAt:  result.RecordedAt(),
	}
}

func resultToDomain(dto WorkResultDTO) (*workorder.WorkResult, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workOrderID, err := kernel.UUIDFromBytes(dto.WorkOrderID[:])
	if err != nil {
		return nil, err
	}

	processID, err := kernel.UUIDFromBytes(dto.ProcessID[:])
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkResult(id, workOrderID, processID, dto.GoodQty, dto.BadQty, dto.RecordedAt)
}
