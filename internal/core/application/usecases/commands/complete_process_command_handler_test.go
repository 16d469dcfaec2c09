package commands_test

import (
	"testing"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"
	"mestrack/internal/core/domain/model/workorder"
	"mestrack/internal/core/domain/services"
	"mestrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRouting(t *testing.T) []product.Process {
	t.Helper()

	cutting, err := product.NewProcess(kernel.NewUUID(), "Cutting", 10)
	require.NoError(t, err)
	assembly, err := product.NewProcess(kernel.NewUUID(), "Assembly", 20)
	require.NoError(t, err)
	packaging, err := product.NewProcess(kernel.NewUUID(), "Packaging", 30)
	require.NoError(t, err)

	return []product.Process{cutting, assembly, packaging}
}

func testProduct(t *testing.T, routing []product.Process) *product.Product {
	t.Helper()

	prod, err := product.RestoreProduct(kernel.NewUUID(), "PRD-001", "Widget", "", routing)
	require.NoError(t, err)
	return prod
}

func TestCompleteProcessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	routing := testRouting(t)
	prod := testProduct(t, routing)

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), prod.ID(), 100, workorder.Started, nil, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCompleteProcessCommand(order.ID(), routing[1].ID(), 8, 2)
	require.NoError(t, err)

	workOrderRepo := new(MockWorkOrderRepository)
	resultRepo := new(MockWorkResultRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProcessingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		workOrderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		uow.On("WorkResultRepository").Return(resultRepo).Once(),
		resultRepo.On("CountForWorkOrder", ctx, order.ID()).Return(1, nil).Once(),
		resultRepo.On("Add", ctx, mock.MatchedBy(func(r *workorder.WorkResult) bool {
			return r.ProcessID().IsEqual(routing[1].ID()) && r.GoodQty() == 8 && r.BadQty() == 2
		})).Return(nil).Once(),
		workOrderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewCompleteProcessCommandHandler(factory, notifier, services.NewQualityGate(0.30))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, workorder.InProgress, order.Status())
	require.Len(t, notifier.ProgressEvents, 1)
	assert.Equal(t, 2, notifier.ProgressEvents[0].CompletedProcesses)
	assert.Equal(t, 3, notifier.ProgressEvents[0].TotalProcesses)
	assert.InDelta(t, 66.67, notifier.ProgressEvents[0].ProgressPercentage, 0.001)
	assert.Equal(t, "IN_PROGRESS", notifier.ProgressEvents[0].Status)
	uow.AssertExpectations(t)
	workOrderRepo.AssertExpectations(t)
	resultRepo.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_LastProcessCompletesOrder(t *testing.T) {
	ctx := t.Context()
	routing := testRouting(t)
	prod := testProduct(t, routing)

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), prod.ID(), 100, workorder.InProgress, nil, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCompleteProcessCommand(order.ID(), routing[2].ID(), 10, 0)
	require.NoError(t, err)

	workOrderRepo := new(MockWorkOrderRepository)
	resultRepo := new(MockWorkResultRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("WorkResultRepository").Return(resultRepo)
	workOrderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil)
	workOrderRepo.On("Update", ctx, order).Return(nil)
	productRepo.On("Get", ctx, prod.ID()).Return(prod, nil)
	resultRepo.On("CountForWorkOrder", ctx, order.ID()).Return(2, nil)
	resultRepo.On("Add", ctx, mock.Anything).Return(nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	h := commands.NewCompleteProcessCommandHandler(factory, notifier, services.NewQualityGate(0.30))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, workorder.Completed, order.Status())
	require.NotNil(t, order.FinishTime())
	require.Len(t, notifier.ProgressEvents, 1)
	assert.InDelta(t, 100.0, notifier.ProgressEvents[0].ProgressPercentage, 0.001)
}

func TestCompleteProcessCommandHandler_Handle_DefectRateExceeded(t *testing.T) {
	ctx := t.Context()
	routing := testRouting(t)
	prod := testProduct(t, routing)

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), prod.ID(), 100, workorder.Planned, nil, nil, nil, nil)
	require.NoError(t, err)

	// 4 bad out of 10 is a 40% defect rate, above the 30% threshold.
	cmd, err := commands.NewCompleteProcessCommand(order.ID(), routing[0].ID(), 6, 4)
	require.NoError(t, err)

	workOrderRepo := new(MockWorkOrderRepository)
	resultRepo := new(MockWorkResultRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("WorkResultRepository").Return(resultRepo)
	workOrderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil)
	workOrderRepo.On("Update", ctx, order).Return(nil)
	productRepo.On("Get", ctx, prod.ID()).Return(prod, nil)
	resultRepo.On("CountForWorkOrder", ctx, order.ID()).Return(0, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	h := commands.NewCompleteProcessCommandHandler(factory, notifier, services.NewQualityGate(0.30))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrDefectRateExceeded)
	assert.Equal(t, workorder.Rejected, order.Status())
	uow.AssertCalled(t, "Commit", ctx)
	resultRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	require.Len(t, notifier.Alerts, 1)
	assert.Contains(t, notifier.Alerts[0], "rejected")
}

func TestCompleteProcessCommandHandler_Handle_OutOfSequence(t *testing.T) {
	ctx := t.Context()
	routing := testRouting(t)
	prod := testProduct(t, routing)

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), prod.ID(), 100, workorder.Planned, nil, nil, nil, nil)
	require.NoError(t, err)

	// Assembly requested while Cutting is still pending.
	cmd, err := commands.NewCompleteProcessCommand(order.ID(), routing[1].ID(), 10, 0)
	require.NoError(t, err)

	workOrderRepo := new(MockWorkOrderRepository)
	resultRepo := new(MockWorkResultRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("WorkResultRepository").Return(resultRepo)
	workOrderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil)
	productRepo.On("Get", ctx, prod.ID()).Return(prod, nil)
	resultRepo.On("CountForWorkOrder", ctx, order.ID()).Return(0, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	h := commands.NewCompleteProcessCommandHandler(factory, notifier, services.NewQualityGate(0.30))
	err = h.Handle(ctx, cmd)

	var seqErr *services.OutOfSequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Equal(t, "Cutting", seqErr.ExpectedProcessName)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, workorder.Planned, order.Status())
}

func TestCompleteProcessCommandHandler_Handle_TerminalWorkOrder(t *testing.T) {
	ctx := t.Context()
	routing := testRouting(t)
	prod := testProduct(t, routing)

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), prod.ID(), 100, workorder.Completed, nil, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCompleteProcessCommand(order.ID(), routing[0].ID(), 10, 0)
	require.NoError(t, err)

	workOrderRepo := new(MockWorkOrderRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	workOrderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	h := commands.NewCompleteProcessCommandHandler(factory, notifier, services.NewQualityGate(0.30))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteProcessCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteProcessCommand{} // not constructed properly
	factory := new(MockProcessingUoWFactory)
	h := commands.NewCompleteProcessCommandHandler(factory, new(MockNotifier), services.NewQualityGate(0.30))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
