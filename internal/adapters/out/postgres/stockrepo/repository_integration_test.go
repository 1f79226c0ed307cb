package stockrepo_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/pgtest"
	"supplychain/internal/adapters/out/postgres/stockrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/stock"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type StockRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *stockrepo.GormStockRepository
	station    kernel.StationRef
}

func (suite *StockRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	tracker := &MockAggregateTracker{}
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = stockrepo.NewGormStockRepository(database.DB, tracker)

	suite.station, err = kernel.NewStationRef(kernel.NewUUID())
	suite.Require().NoError(err)
}

func (suite *StockRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *StockRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *StockRepositoryIntegrationTestSuite) TestAddAndFind() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	s, err := stock.NewStock(kernel.NewUUID(), suite.station, productID, 7, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, s))

	found, err := suite.repository.Find(ctx, suite.station, productID)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(s.ID()))
	suite.Equal(int64(7), found.Quantity())
}

func (suite *StockRepositoryIntegrationTestSuite) TestAdd_SameStationAndProduct_ReturnsConflict() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	first, err := stock.NewStock(kernel.NewUUID(), suite.station, productID, 1, time.Now())
	suite.Require().NoError(err)
	second, err := stock.NewStock(kernel.NewUUID(), suite.station, productID, 2, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, second)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("stock", conflict.Resource)
}

func (suite *StockRepositoryIntegrationTestSuite) TestFind_Missing_ReturnsNotFound() {
	_, err := suite.repository.Find(context.Background(), suite.station, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpdate_VersionGuard() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	s, err := stock.NewStock(kernel.NewUUID(), suite.station, productID, 10, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	a, err := suite.repository.Find(ctx, suite.station, productID)
	suite.Require().NoError(err)
	b, err := suite.repository.Find(ctx, suite.station, productID)
	suite.Require().NoError(err)

	suite.Require().NoError(a.Decrease(4, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, a))

	suite.Require().NoError(b.Decrease(8, time.Now()))
	err = suite.repository.Update(ctx, b)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModified)

	stored, err := suite.repository.Find(ctx, suite.station, productID)
	suite.Require().NoError(err)
	suite.Equal(int64(6), stored.Quantity())
}

func TestStockRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryIntegrationTestSuite))
}
