package offerrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/offerrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

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

// OfferRepositoryIntegrationTestSuite provides integration tests for
// OfferRepository using PostgreSQL containers.
type OfferRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *offerrepo.GormOfferRepository
	tracker    *MockAggregateTracker
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&offerrepo.OfferDTO{}))
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_offers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = offerrepo.NewGormOfferRepository(suite.db, suite.tracker)
}

func (suite *OfferRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OfferRepositoryIntegrationTestSuite) TestAddAndGetAllForOrder_OldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	base := time.Now().UTC().Truncate(time.Microsecond)
	second := suite.addOffer(ctx, orderID, base.Add(time.Minute))
	first := suite.addOffer(ctx, orderID, base)

	offers, err := suite.repository.GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().Len(offers, 2)
	suite.Equal(first.ID(), offers[0].ID())
	suite.Equal(second.ID(), offers[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestGetActiveForOrder_SkipsResolvedOffers() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	base := time.Now().UTC().Truncate(time.Microsecond)
	declined := suite.addOffer(ctx, orderID, base)
	suite.Require().NoError(declined.Decline())
	suite.Require().NoError(suite.repository.Update(ctx, declined))

	active := suite.addOffer(ctx, orderID, base.Add(time.Minute))

	retrieved, err := suite.repository.GetActiveForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(active.ID(), retrieved.ID())
	suite.Equal(offer.Offered, retrieved.Status())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestGetActiveForOrder_NoneOutstanding_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetActiveForOrder(ctx, kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OfferRepositoryIntegrationTestSuite) TestGetByOrderAndRider() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	base := time.Now().UTC().Truncate(time.Microsecond)
	mine := suite.addOffer(ctx, orderID, base)
	suite.addOffer(ctx, orderID, base.Add(time.Minute))

	retrieved, err := suite.repository.GetByOrderAndRider(ctx, orderID, mine.RiderID())
	suite.Require().NoError(err)
	suite.Equal(mine.ID(), retrieved.ID())

	_, err = suite.repository.GetByOrderAndRider(ctx, orderID, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	accepted := suite.addOffer(ctx, orderID, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, accepted))

	retrieved, err := suite.repository.GetByOrderAndRider(ctx, orderID, accepted.RiderID())
	suite.Require().NoError(err)
	suite.Equal(offer.Accepted, retrieved.Status())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdate_StaleLoadedStatus_ReturnsConflictError() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	stale := suite.addOffer(ctx, orderID, time.Now().UTC().Truncate(time.Microsecond))

	// A concurrent trigger resolves the same offer first.
	winner, err := suite.repository.GetByOrderAndRider(ctx, orderID, stale.RiderID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.Expire())
	suite.Require().NoError(suite.repository.Update(ctx, winner))

	// The stale snapshot still believes the offer is outstanding.
	suite.Require().NoError(stale.Decline())
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrConflict)

	retrieved, err := suite.repository.GetByOrderAndRider(ctx, orderID, stale.RiderID())
	suite.Require().NoError(err)
	suite.Equal(offer.Expired, retrieved.Status())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdate_NonExistentOffer_ReturnsConflictError() {
	ctx := context.Background()

	missing, err := offer.NewOffer(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(missing.Expire())

	err = suite.repository.Update(ctx, missing)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OfferRepositoryIntegrationTestSuite) addOffer(
	ctx context.Context, orderID kernel.UUID, createdAt time.Time,
) *offer.Offer {
	testOffer, err := offer.NewOffer(kernel.NewUUID(), orderID, kernel.NewUUID(), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, testOffer))
	return testOffer
}

func TestOfferRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfferRepositoryIntegrationTestSuite))
}
