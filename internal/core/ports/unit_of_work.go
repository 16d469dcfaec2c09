package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// WorkOrderRepository returns a WorkOrderRepository bound to the current transaction.
	WorkOrderRepository() WorkOrderRepository

	// WorkResultRepository returns a WorkResultRepository bound to the current transaction.
	WorkResultRepository() WorkResultRepository

	// LotRepository returns a LotRepository bound to the current transaction.
	LotRepository() LotRepository

	// LotHistoryRepository returns a LotHistoryRepository bound to the current transaction.
	LotHistoryRepository() LotHistoryRepository

	// InspectionRepository returns an InspectionRepository bound to the current transaction.
	InspectionRepository() InspectionRepository

	// InspectionStandardRepository returns an InspectionStandardRepository bound to the current transaction.
	InspectionStandardRepository() InspectionStandardRepository

	// EquipmentRepository returns an EquipmentRepository bound to the current transaction.
	EquipmentRepository() EquipmentRepository

	// TelemetryRepository returns a TelemetryRepository bound to the current transaction.
	TelemetryRepository() TelemetryRepository
}
