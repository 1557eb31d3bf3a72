package queries_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/discrepancyrepo"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOpenDiscrepancyQueryHandlerTestSuite exercises the open-case read
// handler against a real PostgreSQL database.
type GetOpenDiscrepancyQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOpenDiscrepancyQueryHandler
	caseRepo  *discrepancyrepo.GormDiscrepancyRepository
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&discrepancyrepo.CaseDTO{}, &discrepancyrepo.ShortageDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOpenDiscrepancyQueryHandler(db)
	suite.caseRepo = discrepancyrepo.NewGormDiscrepancyRepository(db, &mockAggregateTracker{})
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE discrepancy_cases, discrepancy_shortages").Error
	suite.Require().NoError(err)
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) TestHandle_OpenCase_ReturnsCaseWithShortages() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	openCase, err := discrepancy.NewCase(
		kernel.NewUUID(),
		orderID,
		[]discrepancy.Shortage{
			{
				ItemID:           kernel.NewUUID(),
				Description:      "office chair",
				QuantityOrdered:  10,
				QuantityReceived: 8,
			},
			{
				ItemID:           kernel.NewUUID(),
				Description:      "workstation laptop",
				QuantityOrdered:  5,
				QuantityReceived: 4,
			},
		},
		"receiver",
		time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.caseRepo.Add(ctx, openCase))

	query, err := queries.NewGetOpenDiscrepancyQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(openCase.ID(), result.CaseID)
	suite.Equal(orderID, result.OrderID)
	suite.Equal("Reported", result.Status)
	suite.Equal("receiver", result.ReportedBy)

	suite.Require().Len(result.Shortages, 2)
	suite.Equal("office chair", result.Shortages[0].Description)
	suite.Equal(2, result.Shortages[0].Missing)
	suite.Equal("workstation laptop", result.Shortages[1].Description)
	suite.Equal(1, result.Shortages[1].Missing)
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) TestHandle_ResolvedCaseOnly_ReturnsNotFoundError() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	resolvedCase, err := discrepancy.NewCase(
		kernel.NewUUID(),
		orderID,
		[]discrepancy.Shortage{{
			ItemID:           kernel.NewUUID(),
			Description:      "office chair",
			QuantityOrdered:  10,
			QuantityReceived: 8,
		}},
		"receiver",
		time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(resolvedCase.StartReview())
	suite.Require().NoError(resolvedCase.Resolve(
		discrepancy.ActionRedelivery, "vendor ships the missing units next week", "reviewer", time.Now()))
	suite.Require().NoError(suite.caseRepo.Add(ctx, resolvedCase))

	query, err := queries.NewGetOpenDiscrepancyQuery(orderID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) TestHandle_NoCase_ReturnsNotFoundError() {
	query, err := queries.NewGetOpenDiscrepancyQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOpenDiscrepancyQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOpenDiscrepancyQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOpenDiscrepancyQuery constructor")
}

func TestGetOpenDiscrepancyQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenDiscrepancyQueryHandlerTestSuite))
}
