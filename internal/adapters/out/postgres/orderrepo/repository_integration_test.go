package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC().Truncate(time.Microsecond),
		"12 Main St", "no onions")
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_EmptyOrder() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
	suite.Equal("0.00", got.Total().String())
	suite.Equal("12 Main St", got.DeliveryAddress())
	suite.Equal("no onions", got.Notes())
	suite.True(got.IsEmpty())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLineItem_PersistsLineAndTotal() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	pizza, soda := kernel.NewUUID(), kernel.NewUUID()
	line, err := o.AddLine(kernel.NewUUID(), pizza, suite.money("10.00"), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddLineItem(ctx, o, line))
	line, err = o.AddLine(kernel.NewUUID(), soda, suite.money("2.50"), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddLineItem(ctx, o, line))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("22.50", got.Total().String())
	suite.Require().Len(got.Lines(), 2)
	suite.True(got.Lines()[0].MenuItemID().IsEqual(pizza))
	suite.True(got.Lines()[1].MenuItemID().IsEqual(soda))
	suite.Equal("20.00", got.Lines()[0].Subtotal().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLineItem_MissingOrder() {
	o := suite.newOrder()
	line, err := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), suite.money("1.00"), 1)
	suite.Require().NoError(err)

	err = suite.repository.AddLineItem(context.Background(), o, line)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusQuantityAndRemovedLines() {
	ctx := context.Background()
	o := suite.newOrder()
	first, err := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), suite.money("12.50"), 1)
	suite.Require().NoError(err)
	second, err := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), suite.money("3.00"), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeLineQuantity(first.ID(), 3))
	suite.Require().NoError(o.RemoveLine(second.ID()))
	suite.Require().NoError(o.ChangeStatus(order.InPreparation, kernel.FreeTransition))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InPreparation, got.Status())
	suite.Equal("37.50", got.Total().String())
	suite.Require().Len(got.Lines(), 1)
	suite.Equal(3, got.Lines()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder() {
	err := suite.repository.Update(context.Background(), suite.newOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToLines() {
	ctx := context.Background()
	o := suite.newOrder()
	_, err := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), suite.money("5.00"), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o))

	_, err = suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lines int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&lines).Error)
	suite.Zero(lines)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder() {
	err := suite.repository.Delete(context.Background(), suite.newOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidID() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
