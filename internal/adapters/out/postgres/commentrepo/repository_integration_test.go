package commentrepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/commentrepo"
	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingTracker struct {
	ids []kernel.UUID
}

func (t *recordingTracker) TrackAggregate(id kernel.UUID, _ any) {
	t.ids = append(t.ids, id)
}

type CommentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *recordingTracker
	repository *commentrepo.GormCommentRepository
}

func (suite *CommentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&commentrepo.CommentDTO{}))
}

func (suite *CommentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE comments").Error)
	suite.tracker = &recordingTracker{}
	suite.repository = commentrepo.NewGormCommentRepository(suite.db, suite.tracker)
}

func (suite *CommentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CommentRepositoryIntegrationTestSuite) newComment(orderID kernel.UUID) *comment.Comment {
	c, err := comment.NewComment(kernel.NewUUID(), kernel.NewUUID(), orderID, "Lovely risotto", 4, time.Now().UTC())
	suite.Require().NoError(err)
	return c
}

func (suite *CommentRepositoryIntegrationTestSuite) TestAddApproveGet() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	c := suite.newComment(orderID)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	c.Approve()
	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(got.IsApproved())
	suite.Equal(4, got.Rating())
	suite.Equal("Lovely risotto", got.Text())
	suite.Equal(c.CustomerID(), got.CustomerID())

	gotOrder, ok := got.OrderID()
	suite.True(ok)
	suite.Equal(orderID, gotOrder)

	suite.Equal([]kernel.UUID{c.ID(), c.ID()}, suite.tracker.ids)
}

func (suite *CommentRepositoryIntegrationTestSuite) TestWithoutOrder() {
	ctx := context.Background()
	c := suite.newComment(kernel.UUID{})
	suite.Require().NoError(suite.repository.Add(ctx, c))

	var nulls int64
	suite.Require().NoError(suite.db.Table("comments").Where("order_id IS NULL").Count(&nulls).Error)
	suite.Equal(int64(1), nulls)

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	_, ok := got.OrderID()
	suite.False(ok)
}

func (suite *CommentRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	c := suite.newComment(kernel.UUID{})
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(suite.repository.Delete(ctx, c.ID()))

	_, err := suite.repository.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, c.ID()), errs.ErrObjectNotFound)
}

func (suite *CommentRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	suite.Require().ErrorIs(suite.repository.Update(context.Background(), suite.newComment(kernel.UUID{})), errs.ErrObjectNotFound)
}

func TestCommentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CommentRepositoryIntegrationTestSuite))
}
