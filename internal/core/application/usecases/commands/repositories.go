// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mestrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// WorkResultRepoFactory provides access to the work result repository within a transaction.
	WorkResultRepoFactory interface {
		WorkResultRepository() ports.WorkResultRepository
	}

	// LotRepoFactory provides access to the lot repository within a transaction.
	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	// LotHistoryRepoFactory provides access to the lot history repository within a transaction.
	LotHistoryRepoFactory interface {
		LotHistoryRepository() ports.LotHistoryRepository
	}

	// InspectionRepoFactory provides access to the inspection repository within a transaction.
	InspectionRepoFactory interface {
		InspectionRepository() ports.InspectionRepository
	}

	// InspectionStandardRepoFactory provides access to the inspection standard
	// repository within a transaction.
	InspectionStandardRepoFactory interface {
		InspectionStandardRepository() ports.InspectionStandardRepository
	}

	// EquipmentRepoFactory provides access to the equipment repository within a transaction.
	EquipmentRepoFactory interface {
		EquipmentRepository() ports.EquipmentRepository
	}

	// TelemetryRepoFactory provides access to the telemetry repository within a transaction.
	TelemetryRepoFactory interface {
		TelemetryRepository() ports.TelemetryRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// WorkOrderUoW manages transactions for work order creation, which must
	// check the referenced product.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
		ProductRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// LotUoW manages transactions for lot creation and status changes.
	// Lot creation checks the referenced product and work order and counts
	// lots created today to derive the next lot number.
	LotUoW interface {
		TxManager
		LotRepoFactory
		ProductRepoFactory
		WorkOrderRepoFactory
	}

	// LotUoWFactory creates new lot unit of work instances.
	LotUoWFactory interface {
		Create() LotUoW
	}

	// TrackingUoW manages transactions for lot history recording, which
	// touches the lot, its history and the referenced process and equipment.
	TrackingUoW interface {
		TxManager
		LotRepoFactory
		LotHistoryRepoFactory
		ProductRepoFactory
		EquipmentRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// ProcessingUoW manages transactions for process completion, which
	// coordinates the work order, its results and the product routing.
	ProcessingUoW interface {
		TxManager
		WorkOrderRepoFactory
		WorkResultRepoFactory
		ProductRepoFactory
	}

	// ProcessingUoWFactory creates new processing unit of work instances.
	ProcessingUoWFactory interface {
		Create() ProcessingUoW
	}

	// InspectionUoW manages transactions for inspection operations.
	// Creation checks the referenced lot and copies standard values into
	// measurement items.
	InspectionUoW interface {
		TxManager
		InspectionRepoFactory
		InspectionStandardRepoFactory
		LotRepoFactory
	}

	// InspectionUoWFactory creates new inspection unit of work instances.
	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// EquipmentUoW manages transactions for equipment and telemetry writes.
	EquipmentUoW interface {
		TxManager
		EquipmentRepoFactory
		TelemetryRepoFactory
	}

	// EquipmentUoWFactory creates new equipment unit of work instances.
	EquipmentUoWFactory interface {
		Create() EquipmentUoW
	}
)
