// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Products are stored across two tables: the
// product row and its routing processes.
package productrepo

import (
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Description string
	Processes   []ProcessDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// ProcessDTO represents one routing step row belonging to a product.
type ProcessDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Sequence  int
}

// TableName specifies the database table name for routing processes.
func (ProcessDTO) TableName() string {
	return "processes"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	routing := aggregate.Routing()
	processes := make([]ProcessDTO, 0, len(routing))
	for _, process := range routing {
		processes = append(processes, ProcessDTO{
			ID:        process.ID().Bytes(),
			ProductID: aggregate.ID().Bytes(),
			Name:      process.Name(),
			Sequence:  process.Sequence(),
		})
	}

	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Processes:   processes,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routing := make([]product.Process, 0, len(dto.Processes))
	for _, processDTO := range dto.Processes {
		process, processErr := processToDomain(processDTO)
		if processErr != nil {
			return nil, processErr
		}
		routing = append(routing, process)
	}

	return product.RestoreProduct(id, dto.Code, dto.Name, dto.Description, routing)
}

func processToDomain(dto ProcessDTO) (product.Process, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Process{}, err
	}

	return product.NewProcess(id, dto.Name, dto.Sequence)
}
