package lotrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mestrack/internal/adapters/out/postgres/lotrepo"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// LotRepositoryIntegrationTestSuite provides integration tests for LotRepository
// using PostgreSQL containers to verify database persistence behavior.
type LotRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *lotrepo.GormLotRepository
	historyRepo *lotrepo.GormLotHistoryRepository
	tracker     *MockAggregateTracker
}

func (suite *LotRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&lotrepo.LotDTO{}, &lotrepo.HistoryDTO{}))
}

func (suite *LotRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE lots, lot_histories").Error)

	// Create fresh repositories and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = lotrepo.NewGormLotRepository(suite.db, suite.tracker)
	suite.historyRepo = lotrepo.NewGormLotHistoryRepository(suite.db)
}

func (suite *LotRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LotRepositoryIntegrationTestSuite) TestAdd_ValidLot_Success() {
	ctx := context.Background()

	testLot := suite.createTestLot("LOT-20260301-0001")
	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Once()

	err := suite.repository.Add(ctx, testLot)
	suite.Require().NoError(err)

	suite.assertLotCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestAdd_DuplicateLotNumber_Fails() {
	ctx := context.Background()

	first := suite.createTestLot("LOT-20260301-0001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same lot number, different ID: the unique-index violation surfaces
	// as the typed already-exists error handlers retry on.
	duplicate := suite.createTestLot("LOT-20260301-0001")
	err := suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	suite.assertLotCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestGet_ExistingLot_ReturnsLot() {
	ctx := context.Background()

	workOrderID := kernel.NewUUID()
	id := kernel.NewUUID()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	originalLot, err := lot.NewLot(id, "LOT-20260301-0002", kernel.NewUUID(), &workOrderID, 100, "first batch", createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalLot).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalLot))

	retrievedLot, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedLot.ID())
	suite.Equal("LOT-20260301-0002", retrievedLot.LotNumber())
	suite.Require().NotNil(retrievedLot.WorkOrderID())
	suite.Equal(workOrderID, *retrievedLot.WorkOrderID())
	suite.Equal(100, retrievedLot.Quantity())
	suite.Equal(lot.Created, retrievedLot.Status())
	suite.Equal("first batch", retrievedLot.Remarks())
	suite.Nil(retrievedLot.StartedAt())
	suite.Nil(retrievedLot.CompletedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestGet_NonExistentLot_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedLot, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedLot)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestGetByLotNumber() {
	ctx := context.Background()

	testLot := suite.createTestLot("LOT-20260301-0007")
	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testLot))

	retrievedLot, err := suite.repository.GetByLotNumber(ctx, "LOT-20260301-0007")
	suite.Require().NoError(err)
	suite.Equal(testLot.ID(), retrievedLot.ID())

	_, err = suite.repository.GetByLotNumber(ctx, "LOT-20260301-9999")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()

	testLot := suite.createTestLot("LOT-20260301-0003")
	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testLot))

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(testLot.SetStatus(lot.InProgress, now))
	suite.Require().NoError(suite.repository.Update(ctx, testLot))

	retrievedLot, err := suite.repository.Get(ctx, testLot.ID())
	suite.Require().NoError(err)
	suite.Equal(lot.InProgress, retrievedLot.Status())
	suite.Require().NotNil(retrievedLot.StartedAt())
	suite.WithinDuration(now, *retrievedLot.StartedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestUpdate_NonExistentLot_ReturnsError() {
	ctx := context.Background()

	nonExistentLot := suite.createTestLot("LOT-20260301-0004")
	err := suite.repository.Update(ctx, nonExistentLot)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestCountCreatedSince_CountsOnlyRecentLots() {
	ctx := context.Background()

	midnight := lot.StartOfDay(time.Now())

	// Two lots today, one yesterday
	suite.addLotCreatedAt("LOT-20260301-0001", midnight.Add(2*time.Hour))
	suite.addLotCreatedAt("LOT-20260301-0002", midnight.Add(8*time.Hour))
	suite.addLotCreatedAt("LOT-20260228-0001", midnight.Add(-3*time.Hour))

	count, err := suite.repository.CountCreatedSince(ctx, midnight)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestGetAllForWorkOrder() {
	ctx := context.Background()

	workOrderID := kernel.NewUUID()
	otherWorkOrderID := kernel.NewUUID()

	suite.addLotForWorkOrder("LOT-20260301-0001", &workOrderID)
	suite.addLotForWorkOrder("LOT-20260301-0002", &workOrderID)
	suite.addLotForWorkOrder("LOT-20260301-0003", &otherWorkOrderID)
	suite.addLotForWorkOrder("LOT-20260301-0004", nil)

	lots, err := suite.repository.GetAllForWorkOrder(ctx, workOrderID)
	suite.Require().NoError(err)
	suite.Len(lots, 2)
	for _, l := range lots {
		suite.Require().NotNil(l.WorkOrderID())
		suite.Equal(workOrderID, *l.WorkOrderID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LotRepositoryIntegrationTestSuite) TestHistory_AddAndGetAllForLot_OrderedByProcessedAt() {
	ctx := context.Background()

	testLot := suite.createTestLot("LOT-20260301-0005")
	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testLot))

	base := time.Now().UTC().Truncate(time.Microsecond)

	// Insert out of order, expect chronological order back
	second := suite.createTestHistory(testLot.ID(), 95, 93, 2, base.Add(time.Hour))
	first := suite.createTestHistory(testLot.ID(), 100, 95, 5, base)
	suite.Require().NoError(suite.historyRepo.Add(ctx, second))
	suite.Require().NoError(suite.historyRepo.Add(ctx, first))

	// History of an unrelated lot must not leak in
	other := suite.createTestHistory(kernel.NewUUID(), 50, 50, 0, base)
	suite.Require().NoError(suite.historyRepo.Add(ctx, other))

	histories, err := suite.historyRepo.GetAllForLot(ctx, testLot.ID())
	suite.Require().NoError(err)
	suite.Require().Len(histories, 2)
	suite.Equal(first.ID(), histories[0].ID())
	suite.Equal(second.ID(), histories[1].ID())
	suite.Equal(100, histories[0].InputQuantity())
	suite.Equal(95, histories[0].OutputQuantity())
	suite.Equal(5, histories[0].DefectQuantity())
	suite.Equal(lot.ProcessPass, histories[0].Result())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestLot creates a basic lot with default values and the given lot number.
func (suite *LotRepositoryIntegrationTestSuite) createTestLot(lotNumber string) *lot.Lot {
	testLot, err := lot.NewLot(
		kernel.NewUUID(),
		lotNumber,
		kernel.NewUUID(),
		nil,
		100,
		"",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testLot
}

// addLotCreatedAt persists a lot with the given creation time.
func (suite *LotRepositoryIntegrationTestSuite) addLotCreatedAt(lotNumber string, createdAt time.Time) {
	testLot, err := lot.NewLot(kernel.NewUUID(), lotNumber, kernel.NewUUID(), nil, 100, "", createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testLot))
}

// addLotForWorkOrder persists a lot optionally attached to a work order.
func (suite *LotRepositoryIntegrationTestSuite) addLotForWorkOrder(lotNumber string, workOrderID *kernel.UUID) {
	testLot, err := lot.NewLot(
		kernel.NewUUID(), lotNumber, kernel.NewUUID(), workOrderID, 100, "",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testLot.ID(), testLot).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testLot))
}

// createTestHistory creates a processing record for the given lot.
func (suite *LotRepositoryIntegrationTestSuite) createTestHistory(
	lotID kernel.UUID, input, output, defects int, processedAt time.Time,
) *lot.History {
	history, err := lot.NewHistory(
		kernel.NewUUID(), lotID, kernel.NewUUID(), kernel.NewUUID(),
		input, output, defects,
		lot.ProcessPass,
		fmt.Sprintf("operator-%d", input), "",
		processedAt,
	)
	suite.Require().NoError(err)
	return history
}

// assertLotCount verifies the number of lots in the database.
func (suite *LotRepositoryIntegrationTestSuite) assertLotCount(expected int) {
	var count int64
	err := suite.db.Model(&lotrepo.LotDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestLotRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LotRepositoryIntegrationTestSuite))
}
