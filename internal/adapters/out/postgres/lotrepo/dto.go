package lotrepo

import (
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"

	"github.com/google/uuid"
)

// LotDTO is the database representation of a production lot.
type LotDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LotNumber   string    `gorm:"uniqueIndex"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID *uuid.UUID
	Quantity    int
	Status      int `gorm:"index"`
	Remarks     string
	CreatedAt   time.Time `gorm:"index"`
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName overrides the default table name used by GORM.
func (LotDTO) TableName() string {
	return "lots"
}

// HistoryDTO is the database representation of a lot processing record.
type HistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LotID          uuid.UUID `gorm:"type:uuid;index"`
	ProcessID      uuid.UUID `gorm:"type:uuid"`
	EquipmentID    uuid.UUID `gorm:"type:uuid"`
	InputQuantity  int
	OutputQuantity int
	DefectQuantity int
	Result         int
	Operator       string
	Remarks        string
	ProcessedAt    time.Time `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (HistoryDTO) TableName() string {
	return "lot_histories"
}

func fromDomain(aggregate *lot.Lot) LotDTO {
	dto := LotDTO{
		ID:          aggregate.ID().Bytes(),
		LotNumber:   aggregate.LotNumber(),
		ProductID:   aggregate.ProductID().Bytes(),
		Quantity:    aggregate.Quantity(),
		Status:      int(aggregate.Status()),
		Remarks:     aggregate.Remarks(),
		CreatedAt:   aggregate.CreatedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}

	if workOrderID := aggregate.WorkOrderID(); workOrderID != nil {
		id := workOrderID.Bytes()
		dto.WorkOrderID = &id
	}

	return dto
}

func toDomain(dto LotDTO) (*lot.Lot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var workOrderID *kernel.UUID
	if dto.WorkOrderID != nil {
		converted, convErr := kernel.UUIDFromBytes(dto.WorkOrderID[:])
		if convErr != nil {
			return nil, convErr
		}
		workOrderID = &converted
	}

	return lot.RestoreLot(
		id,
		dto.LotNumber,
		productID,
		workOrderID,
		dto.Quantity,
		lot.Status(dto.Status),
		dto.Remarks,
		dto.CreatedAt,
		dto.StartedAt,
		dto.CompletedAt,
	)
}

func historyFromDomain(history *lot.History) HistoryDTO {
	return HistoryDTO{
		ID:             history.ID().Bytes(),
		LotID:          history.LotID().Bytes(),
		ProcessID:      history.ProcessID().Bytes(),
		EquipmentID:    history.EquipmentID().Bytes(),
		InputQuantity:  history.InputQuantity(),
		OutputQuantity: history.OutputQuantity(),
		DefectQuantity: history.DefectQuantity(),
		Result:         int(history.Result()),
		Operator:       history.Operator(),
		Remarks:        history.Remarks(),
		ProcessedAt:    history.ProcessedAt(),
	}
}

func historyToDomain(dto HistoryDTO) (*lot.History, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lotID, err := kernel.UUIDFromBytes(dto.LotID[:])
	if err != nil {
		return nil, err
	}

	processID, err := kernel.UUIDFromBytes(dto.ProcessID[:])
	if err != nil {
		return nil, err
	}

	equipmentID, err := kernel.UUIDFromBytes(dto.EquipmentID[:])
	if err != nil {
		return nil, err
	}

	return lot.RestoreHistory(
		id, lotID, processID, equipmentID,
		dto.InputQuantity,
		dto.OutputQuantity,
		dto.DefectQuantity,
		lot.ProcessResult(dto.Result),
		dto.Operator,
		dto.Remarks,
		dto.ProcessedAt,
	)
}
