package commands_test

import (
	"fmt"
	"testing"
	"time"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingLot(t *testing.T) *lot.Lot {
	t.Helper()

	l, err := lot.NewLot(
		kernel.NewUUID(), "LOT-20260901-0001", kernel.NewUUID(), nil, 100, "", time.Now().UTC())
	require.NoError(t, err)
	return l
}

func TestCreateInspectionCommandHandler_Handle_AssignsDailyNumber(t *testing.T) {
	ctx := t.Context()
	l := existingLot(t)

	cmd, err := commands.NewCreateInspectionCommand(
		kernel.NewUUID(), l.ID(), nil, inspection.Final, 5, "inspector-1", "", nil)
	require.NoError(t, err)

	wantNumber := fmt.Sprintf("INS-%s-0003", time.Now().Format("20060102"))

	lotRepo := new(MockLotRepository)
	inspectionRepo := new(MockInspectionRepository)
	uow := new(MockInspectionUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("LotRepository").Return(lotRepo)
	uow.On("InspectionRepository").Return(inspectionRepo)
	lotRepo.On("Get", ctx, l.ID()).Return(l, nil)
	inspectionRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
	inspectionRepo.On("Add", ctx, mock.MatchedBy(func(i *inspection.Inspection) bool {
		return i.InspectionNumber() == wantNumber && i.Status() == inspection.Pending
	})).Return(nil)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateInspectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inspectionRepo.AssertExpectations(t)
}

func TestCreateInspectionCommandHandler_Handle_RetriesOnceOnNumberCollision(t *testing.T) {
	ctx := t.Context()
	l := existingLot(t)

	cmd, err := commands.NewCreateInspectionCommand(
		kernel.NewUUID(), l.ID(), nil, inspection.Incoming, 10, "inspector-1", "", nil)
	require.NoError(t, err)

	today := time.Now().Format("20060102")
	collidedNumber := fmt.Sprintf("INS-%s-0003", today)
	retriedNumber := fmt.Sprintf("INS-%s-0004", today)

	lotRepo := new(MockLotRepository)
	inspectionRepo := new(MockInspectionRepository)
	uow := new(MockInspectionUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("LotRepository").Return(lotRepo)
	uow.On("InspectionRepository").Return(inspectionRepo)
	lotRepo.On("Get", ctx, l.ID()).Return(l, nil)

	// A concurrent creator took INS-...-0003 between the count and the
	// insert; the recount sees it and the retry lands on -0004.
	inspectionRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()
	inspectionRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()
	inspectionRepo.On("Add", ctx, mock.MatchedBy(func(i *inspection.Inspection) bool {
		return i.InspectionNumber() == collidedNumber
	})).Return(errs.NewObjectAlreadyExistsError("inspection number", collidedNumber)).Once()
	inspectionRepo.On("Add", ctx, mock.MatchedBy(func(i *inspection.Inspection) bool {
		return i.InspectionNumber() == retriedNumber
	})).Return(nil).Once()

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateInspectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inspectionRepo.AssertExpectations(t)
}
