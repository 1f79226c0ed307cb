package partnerrepo_test

import (
	"context"
	"testing"

	"supplychain/internal/adapters/out/postgres/partnerrepo"
	"supplychain/internal/adapters/out/postgres/pgtest"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
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

type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *partnerrepo.GormPartnerRepository
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	tracker := &MockAggregateTracker{}
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = partnerrepo.NewGormPartnerRepository(database.DB, tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := context.Background()
	ref, err := kernel.NewStationRef(kernel.NewUUID())
	suite.Require().NoError(err)
	p, err := network.NewPartner(ref, "ST-01", "North depot")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))

	stored, err := suite.repository.Get(ctx, ref)
	suite.Require().NoError(err)
	suite.Equal("ST-01", stored.Code())
	suite.True(stored.IsActive())

	stored.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	stored, err = suite.repository.Get(ctx, ref)
	suite.Require().NoError(err)
	suite.False(stored.IsActive())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_WrongKind_ReturnsNotFound() {
	ctx := context.Background()
	id := kernel.NewUUID()
	station, err := kernel.NewStationRef(id)
	suite.Require().NoError(err)
	p, err := network.NewPartner(station, "ST-02", "South depot")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	supplier, err := kernel.NewSupplierRef(id)
	suite.Require().NoError(err)
	_, err = suite.repository.Get(ctx, supplier)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_ReturnsConflict() {
	ctx := context.Background()
	first, err := kernel.NewSupplierRef(kernel.NewUUID())
	suite.Require().NoError(err)
	second, err := kernel.NewSupplierRef(kernel.NewUUID())
	suite.Require().NoError(err)

	a, err := network.NewPartner(first, "SUP-01", "Acme")
	suite.Require().NoError(err)
	b, err := network.NewPartner(second, "sup-01", "Other")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, a))

	err = suite.repository.Add(ctx, b)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
