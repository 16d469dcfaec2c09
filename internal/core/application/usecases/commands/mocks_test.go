package commands_test

import (
	"context"
	"errors"
	"time"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/core/domain/model/product"
	"mestrack/internal/core/domain/model/workorder"
	"mestrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error { return nil }
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return nil, errNotImplemented
}
func (m *MockProductRepository) GetProcess(ctx context.Context, id kernel.UUID) (product.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return product.Process{}, args.Error(1)
	}
	return args.Get(0).(product.Process), args.Error(1)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Update(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}
func (m *MockWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}
func (m *MockWorkOrderRepository) GetAll(_ context.Context) ([]*workorder.WorkOrder, error) {
	return nil, errNotImplemented
}

type MockWorkResultRepository struct{ mock.Mock }

func (m *MockWorkResultRepository) Add(ctx context.Context, r *workorder.WorkResult) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockWorkResultRepository) GetAllForWorkOrder(_ context.Context, _ kernel.UUID) ([]*workorder.WorkResult, error) {
	return nil, errNotImplemented
}
func (m *MockWorkResultRepository) CountForWorkOrder(ctx context.Context, id kernel.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, l *lot.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLotRepository) Update(ctx context.Context, l *lot.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLotRepository) Get(ctx context.Context, id kernel.UUID) (*lot.Lot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lot.Lot), args.Error(1)
}
func (m *MockLotRepository) GetByLotNumber(_ context.Context, _ string) (*lot.Lot, error) {
	return nil, errNotImplemented
}
func (m *MockLotRepository) GetAll(_ context.Context) ([]*lot.Lot, error) {
	return nil, errNotImplemented
}
func (m *MockLotRepository) GetAllForWorkOrder(_ context.Context, _ kernel.UUID) ([]*lot.Lot, error) {
	return nil, errNotImplemented
}
func (m *MockLotRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockLotHistoryRepository struct{ mock.Mock }

func (m *MockLotHistoryRepository) Add(ctx context.Context, h *lot.History) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockLotHistoryRepository) GetAllForLot(_ context.Context, _ kernel.UUID) ([]*lot.History, error) {
	return nil, errNotImplemented
}

type MockInspectionRepository struct{ mock.Mock }

func (m *MockInspectionRepository) Add(ctx context.Context, i *inspection.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInspectionRepository) Update(ctx context.Context, i *inspection.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.Inspection), args.Error(1)
}
func (m *MockInspectionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.Inspection), args.Error(1)
}
func (m *MockInspectionRepository) GetAll(_ context.Context) ([]*inspection.Inspection, error) {
	return nil, errNotImplemented
}
func (m *MockInspectionRepository) GetAllForLot(_ context.Context, _ kernel.UUID) ([]*inspection.Inspection, error) {
	return nil, errNotImplemented
}
func (m *MockInspectionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockInspectionStandardRepository struct{ mock.Mock }

func (m *MockInspectionStandardRepository) Add(ctx context.Context, s *inspection.Standard) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockInspectionStandardRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Standard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.Standard), args.Error(1)
}
func (m *MockInspectionStandardRepository) GetAll(_ context.Context) ([]*inspection.Standard, error) {
	return nil, errNotImplemented
}

type MockEquipmentRepository struct{ mock.Mock }

func (m *MockEquipmentRepository) Add(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepository) Get(ctx context.Context, id kernel.UUID) (*equipment.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}
func (m *MockEquipmentRepository) GetAll(_ context.Context) ([]*equipment.Equipment, error) {
	return nil, errNotImplemented
}

type MockTelemetryRepository struct{ mock.Mock }

func (m *MockTelemetryRepository) Add(ctx context.Context, t *equipment.Telemetry) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTelemetryRepository) GetLatestForEquipment(_ context.Context, _ kernel.UUID) (*equipment.Telemetry, error) {
	return nil, errNotImplemented
}
func (m *MockTelemetryRepository) GetAllForEquipment(_ context.Context, _ kernel.UUID, _ int) ([]*equipment.Telemetry, error) {
	return nil, errNotImplemented
}

// MockNotifier records published events without delivering them anywhere.
type MockNotifier struct {
	ProgressEvents  []ports.WorkProgressEvent
	EquipmentEvents []ports.EquipmentStatusEvent
	Alerts          []string
	Snapshots       []any
}

func (m *MockNotifier) NotifyWorkProgress(_ context.Context, event ports.WorkProgressEvent) {
	m.ProgressEvents = append(m.ProgressEvents, event)
}
func (m *MockNotifier) NotifyEquipmentUpdate(_ context.Context, event ports.EquipmentStatusEvent) {
	m.EquipmentEvents = append(m.EquipmentEvents, event)
}
func (m *MockNotifier) NotifyAlert(_ context.Context, severity string, message string) {
	m.Alerts = append(m.Alerts, severity+": "+message)
}
func (m *MockNotifier) NotifyDashboard(_ context.Context, snapshot any) {
	m.Snapshots = append(m.Snapshots, snapshot)
}

type MockProcessingUoW struct{ mock.Mock }

func (m *MockProcessingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProcessingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProcessingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProcessingUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}
func (m *MockProcessingUoW) WorkResultRepository() ports.WorkResultRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkResultRepository)
}
func (m *MockProcessingUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProcessingUoWFactory struct{ mock.Mock }

func (m *MockProcessingUoWFactory) Create() commands.ProcessingUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessingUoW)
}

type MockLotUoW struct{ mock.Mock }

func (m *MockLotUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLotUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLotUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLotUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}
func (m *MockLotUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockLotUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockLotUoWFactory struct{ mock.Mock }

func (m *MockLotUoWFactory) Create() commands.LotUoW {
	args := m.Called()
	return args.Get(0).(commands.LotUoW)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}
func (m *MockTrackingUoW) LotHistoryRepository() ports.LotHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.LotHistoryRepository)
}
func (m *MockTrackingUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockTrackingUoW) EquipmentRepository() ports.EquipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EquipmentRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockInspectionUoW struct{ mock.Mock }

func (m *MockInspectionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) InspectionRepository() ports.InspectionRepository {
	args := m.Called()
	return args.Get(0).(ports.InspectionRepository)
}
func (m *MockInspectionUoW) InspectionStandardRepository() ports.InspectionStandardRepository {
	args := m.Called()
	return args.Get(0).(ports.InspectionStandardRepository)
}
func (m *MockInspectionUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

type MockEquipmentUoW struct{ mock.Mock }

func (m *MockEquipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEquipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEquipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEquipmentUoW) EquipmentRepository() ports.EquipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EquipmentRepository)
}
func (m *MockEquipmentUoW) TelemetryRepository() ports.TelemetryRepository {
	args := m.Called()
	return args.Get(0).(ports.TelemetryRepository)
}

type MockEquipmentUoWFactory struct{ mock.Mock }

func (m *MockEquipmentUoWFactory) Create() commands.EquipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.EquipmentUoW)
}
