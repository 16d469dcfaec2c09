package commands_test

import (
	"testing"
	"time"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingInspection(t *testing.T) *inspection.Inspection {
	t.Helper()

	insp, err := inspection.NewInspection(
		kernel.NewUUID(), "INS-20260901-0001", kernel.NewUUID(), nil,
		inspection.Final, 5, "inspector-1", "", time.Now().UTC())
	require.NoError(t, err)

	results := []inspection.Result{
		inspection.Pass, inspection.Pass, inspection.Fail,
		inspection.Pass, inspection.ConditionalPass,
	}
	for _, result := range results {
		item, itemErr := inspection.NewItem(
			kernel.NewUUID(), insp.ID(), kernel.NewUUID(),
			"10.1", "10.0", "10.5~9.5", result, "")
		require.NoError(t, itemErr)
		require.NoError(t, insp.AddItem(item))
	}

	return insp
}

func TestCompleteInspectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	insp := pendingInspection(t)

	cmd, err := commands.NewCompleteInspectionCommand(insp.ID(), inspection.Pass)
	require.NoError(t, err)

	inspectionRepo := new(MockInspectionRepository)
	uow := new(MockInspectionUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("InspectionRepository").Return(inspectionRepo)
	inspectionRepo.On("GetForUpdate", ctx, insp.ID()).Return(insp, nil)
	inspectionRepo.On("Update", ctx, insp).Return(nil)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCompleteInspectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The read must take the row lock, not a plain read.
	inspectionRepo.AssertCalled(t, "GetForUpdate", ctx, insp.ID())
	inspectionRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)

	assert.Equal(t, inspection.StatusCompleted, insp.Status())
	require.NotNil(t, insp.Result())
	assert.Equal(t, inspection.Pass, *insp.Result())
	// CONDITIONAL_PASS items count toward neither tally.
	assert.Equal(t, 3, insp.PassedCount())
	assert.Equal(t, 1, insp.FailedCount())
	require.NotNil(t, insp.InspectionDate())
}

func TestCompleteInspectionCommandHandler_Handle_SecondCompletionFails(t *testing.T) {
	ctx := t.Context()
	insp := pendingInspection(t)
	require.NoError(t, insp.Complete(inspection.Pass, time.Now().UTC()))

	cmd, err := commands.NewCompleteInspectionCommand(insp.ID(), inspection.Fail)
	require.NoError(t, err)

	inspectionRepo := new(MockInspectionRepository)
	uow := new(MockInspectionUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("InspectionRepository").Return(inspectionRepo)
	inspectionRepo.On("GetForUpdate", ctx, insp.ID()).Return(insp, nil)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCompleteInspectionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	// The first completion's outcome is untouched.
	assert.Equal(t, inspection.Pass, *insp.Result())
}
