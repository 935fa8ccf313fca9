package reservationrepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/reservationrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ReservationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reservationrepo.GormReservationRepository
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&reservationrepo.ReservationDTO{}))
	suite.repository = reservationrepo.NewGormReservationRepository(db, noopTracker{})
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reservations").Error)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestAddUpdateGet() {
	ctx := context.Background()
	r, err := reservation.NewReservation(kernel.NewUUID(), kernel.NewUUID(),
		time.Now().Add(24*time.Hour).UTC(), 6, "birthday", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.ChangeStatus(reservation.Confirmed, "T7", kernel.FreeTransition))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(reservation.Confirmed, got.Status())
	suite.Equal("T7", got.Table())
	suite.Equal(6, got.PartySize())
	suite.Equal("birthday", got.Notes())
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	r, err := reservation.NewReservation(kernel.NewUUID(), kernel.NewUUID(), time.Now(), 2, "", time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(ctx, r), errs.ErrObjectNotFound)
}

func TestReservationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationRepositoryIntegrationTestSuite))
}
