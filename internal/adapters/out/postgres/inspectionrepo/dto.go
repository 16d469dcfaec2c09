package inspectionrepo

import (
	"time"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InspectionDTO is the database representation of a quality inspection.
type InspectionDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	InspectionNumber string    `gorm:"uniqueIndex"`
	LotID            uuid.UUID `gorm:"type:uuid;index"`
	ProcessID        *uuid.UUID
	Type             int
	Status           int `gorm:"index"`
	Result           *int
	SampleSize       int
	PassedCount      int
	FailedCount      int
	Inspector        string
	Remarks          string
	Items            []ItemDTO `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`
	InspectionDate   *time.Time
	CreatedAt        time.Time `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (InspectionDTO) TableName() string {
	return "inspections"
}

// ItemDTO is the database representation of a single inspection measurement.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InspectionID  uuid.UUID `gorm:"type:uuid;index"`
	StandardID    uuid.UUID `gorm:"type:uuid"`
	MeasuredValue string
	StandardValue string
	Tolerance     string
	Result        int
	Remarks       string
}

// TableName overrides the default table name used by GORM.
func (ItemDTO) TableName() string {
	return "inspection_items"
}

// StandardDTO is the database representation of an inspection standard.
type StandardDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"uniqueIndex"`
	Name           string
	Category       string
	StandardValue  string
	UpperLimit     string
	LowerLimit     string
	Unit           string
	ApplicableType int
	Description    string
	Active         bool
}

// TableName overrides the default table name used by GORM.
func (StandardDTO) TableName() string {
	return "inspection_standards"
}

func fromDomain(aggregate *inspection.Inspection) InspectionDTO {
	dto := InspectionDTO{
		ID:               aggregate.ID().Bytes(),
		InspectionNumber: aggregate.InspectionNumber(),
		LotID:            aggregate.LotID().Bytes(),
		Type:             int(aggregate.Type()),
		Status:           int(aggregate.Status()),
		SampleSize:       aggregate.SampleSize(),
		PassedCount:      aggregate.PassedCount(),
		FailedCount:      aggregate.FailedCount(),
		Inspector:        aggregate.Inspector(),
		Remarks:          aggregate.Remarks(),
		InspectionDate:   aggregate.InspectionDate(),
		CreatedAt:        aggregate.CreatedAt(),
	}

	if processID := aggregate.ProcessID(); processID != nil {
		id := processID.Bytes()
		dto.ProcessID = &id
	}

	if result := aggregate.Result(); result != nil {
		value := int(*result)
		dto.Result = &value
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(item))
	}

	return dto
}

func toDomain(dto InspectionDTO) (*inspection.Inspection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lotID, err := kernel.UUIDFromBytes(dto.LotID[:])
	if err != nil {
		return nil, err
	}

	var processID *kernel.UUID
	if dto.ProcessID != nil {
		converted, convErr := kernel.UUIDFromBytes(dto.ProcessID[:])
		if convErr != nil {
			return nil, convErr
		}
		processID = &converted
	}

	var result *inspection.Result
	if dto.Result != nil {
		value := inspection.Result(*dto.Result)
		result = &value
	}

	items := make([]inspection.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return inspection.RestoreInspection(
		id,
		dto.InspectionNumber,
		lotID,
		processID,
		inspection.Type(dto.Type),
		inspection.Status(dto.Status),
		result,
		dto.SampleSize,
		dto.PassedCount,
		dto.FailedCount,
		dto.Inspector,
		dto.Remarks,
		items,
		dto.InspectionDate,
		dto.CreatedAt,
	)
}

func itemFromDomain(item inspection.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID().Bytes(),
		InspectionID:  item.InspectionID().Bytes(),
		StandardID:    item.StandardID().Bytes(),
		MeasuredValue: item.MeasuredValue(),
		StandardValue: item.StandardValue(),
		Tolerance:     item.Tolerance(),
		Result:        int(item.Result()),
		Remarks:       item.Remarks(),
	}
}

func itemToDomain(dto ItemDTO) (inspection.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inspection.Item{}, err
	}

	inspectionID, err := kernel.UUIDFromBytes(dto.InspectionID[:])
	if err != nil {
		return inspection.Item{}, err
	}

	standardID, err := kernel.UUIDFromBytes(dto.StandardID[:])
	if err != nil {
		return inspection.Item{}, err
	}

	return inspection.RestoreItem(
		id, inspectionID, standardID,
		dto.MeasuredValue,
		dto.StandardValue,
		dto.Tolerance,
		inspection.Result(dto.Result),
		dto.Remarks,
	)
}

func standardFromDomain(standard *inspection.Standard) StandardDTO {
	return StandardDTO{
		ID:             standard.ID().Bytes(),
		Code:           standard.Code(),
		Name:           standard.Name(),
		Category:       standard.Category(),
		StandardValue:  standard.StandardValue(),
		UpperLimit:     standard.UpperLimit(),
		LowerLimit:     standard.LowerLimit(),
		Unit:           standard.Unit(),
		ApplicableType: int(standard.ApplicableType()),
		Description:    standard.Description(),
		Active:         standard.Active(),
	}
}

func standardToDomain(dto StandardDTO) (*inspection.Standard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inspection.RestoreStandard(
		id,
		dto.Code,
		dto.Name,
		dto.Category,
		dto.StandardValue,
		dto.UpperLimit,
		dto.LowerLimit,
		dto.Unit,
		inspection.Type(dto.ApplicableType),
		dto.Description,
		dto.Active,
	)
}
