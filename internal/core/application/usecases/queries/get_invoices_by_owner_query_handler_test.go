package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/invoicerepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nullTracker satisfies the repositories' aggregate tracking without
// recording anything; the read-model tests do not care about tracked
// aggregates.
type nullTracker struct{}

func (nullTracker) TrackAggregate(int64, any) {}

type GetInvoicesByOwnerQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetInvoicesByOwnerQueryHandler
	invoiceRepo *invoicerepo.GormInvoiceRepository
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&invoicerepo.InvoiceDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetInvoicesByOwnerQueryHandler(db)
	suite.invoiceRepo = invoicerepo.NewGormInvoiceRepository(db, nullTracker{})
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE invoices RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TestHandle_NoInvoices_ReturnsEmptySlice() {
	actor := suite.clientActor(7)
	query, err := queries.NewGetInvoicesByOwnerQuery(actor, 7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TestHandle_ClientListsOwnInvoices_NewestFirst() {
	now := time.Now()
	suite.addInvoice("FAC-2026-000001", "ENV-001", 7, now.AddDate(0, 0, -2))
	suite.addInvoice("FAC-2026-000002", "ENV-002", 7, now)
	suite.addInvoice("FAC-2026-000003", "ENV-003", 9, now)

	actor := suite.clientActor(7)
	query, err := queries.NewGetInvoicesByOwnerQuery(actor, 7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("FAC-2026-000002", result[0].Number)
	suite.Equal("FAC-2026-000001", result[1].Number)
	for _, inv := range result {
		suite.Equal(int64(7), inv.OwnerID)
	}
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TestHandle_ClientListsAnotherOwner_ReturnsForbidden() {
	suite.addInvoice("FAC-2026-000001", "ENV-001", 9, time.Now())

	actor := suite.clientActor(7)
	query, err := queries.NewGetInvoicesByOwnerQuery(actor, 9)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
	suite.Nil(result)
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TestHandle_OperatorListsAnyOwner() {
	suite.addInvoice("FAC-2026-000001", "ENV-001", 9, time.Now())

	operator, err := kernel.NewActor(1, kernel.RoleOperator)
	suite.Require().NoError(err)
	query, err := queries.NewGetInvoicesByOwnerQuery(operator, 9)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ENV-001", result[0].NaturalKey)
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetInvoicesByOwnerQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetInvoicesByOwnerQuery constructor")
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) clientActor(id int64) kernel.Actor {
	actor, err := kernel.NewActor(id, kernel.RoleClient)
	suite.Require().NoError(err)
	return actor
}

func (suite *GetInvoicesByOwnerQueryHandlerTestSuite) addInvoice(
	number, naturalKey string,
	ownerID int64,
	issueDate time.Time,
) {
	amount, err := kernel.NewMoneyFromFloat(25)
	suite.Require().NoError(err)

	inv, err := invoice.NewInvoice(
		number, naturalKey, "Shipping "+naturalKey,
		amount, ownerID, issueDate, issueDate.AddDate(0, 0, 15),
	)
	suite.Require().NoError(err)

	err = suite.invoiceRepo.Add(context.Background(), inv)
	suite.Require().NoError(err)
}

func TestGetInvoicesByOwnerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetInvoicesByOwnerQueryHandlerTestSuite))
}
