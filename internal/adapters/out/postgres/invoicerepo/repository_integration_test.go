package invoicerepo_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/invoicerepo"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// InvoiceRepositoryIntegrationTestSuite provides integration tests for
// InvoiceRepository using PostgreSQL containers to verify database
// persistence behavior, including the unique constraints the ledger's
// idempotency leans on.
type InvoiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *invoicerepo.GormInvoiceRepository
	tracker    *MockAggregateTracker
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&invoicerepo.InvoiceDTO{}))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE invoices RESTART IDENTITY").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = invoicerepo.NewGormInvoiceRepository(suite.db, suite.tracker)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_ValidInvoice_AssignsIdentity() {
	ctx := context.Background()

	testInvoice := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testInvoice).Once()

	err := suite.repository.Add(ctx, testInvoice)
	suite.Require().NoError(err)

	// Insert assigns the database identity back to the aggregate
	suite.Positive(testInvoice.ID())
	suite.assertInvoiceCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_DuplicateNaturalKey_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Different number, same natural key: the item is already billed
	duplicate := suite.createTestInvoice("FAC-2026-000002", "ENV-001")

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Require().ErrorIs(conflictErr.Cause, gorm.ErrDuplicatedKey)

	suite.assertInvoiceCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same number, different natural key: the losing side of a numbering race
	duplicate := suite.createTestInvoice("FAC-2026-000001", "ENV-002")

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.assertInvoiceCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGet_ExistingInvoice_ReturnsInvoice() {
	ctx := context.Background()

	original := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("FAC-2026-000001", retrieved.Number())
	suite.Equal("ENV-001", retrieved.NaturalKey())
	suite.Equal(invoice.StatusPending, retrieved.Status())
	suite.True(original.Amount().IsEqual(retrieved.Amount()))
	suite.Equal(original.OwnerID(), retrieved.OwnerID())
	suite.Nil(retrieved.ShipmentID())
	suite.Nil(retrieved.ParcelID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGet_NonExistentInvoice_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetByNaturalKeyForUpdate_Found_ReturnsInvoice() {
	ctx := context.Background()

	original := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNaturalKeyForUpdate(ctx, "ENV-001")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("ENV-001", retrieved.NaturalKey())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetByNaturalKeyForUpdate_NotFound_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByNaturalKeyForUpdate(ctx, "ENV-MISSING")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_AmountCorrectionAndSettlement_Persisted() {
	ctx := context.Background()

	original := suite.createTestInvoice("FAC-2026-000001", "ENV-001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	corrected, err := kernel.NewMoneyFromFloat(72.50)
	suite.Require().NoError(err)
	suite.Require().NoError(original.CorrectAmount(corrected))
	suite.Require().NoError(original.MarkPaid())
	suite.Require().NoError(original.AttachShipment(11))

	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(corrected.IsEqual(retrieved.Amount()))
	suite.Equal(invoice.StatusPaid, retrieved.Status())
	suite.Require().NotNil(retrieved.ShipmentID())
	suite.Equal(int64(11), *retrieved.ShipmentID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_NonExistentInvoice_ReturnsError() {
	ctx := context.Background()

	phantom, err := invoice.RestoreInvoice(
		424242,
		"FAC-2026-424242",
		"ENV-424242",
		"Shipping ENV-424242",
		suite.money(55),
		invoice.StatusPending,
		7,
		time.Now(),
		time.Now().AddDate(0, 0, 15),
		nil,
		nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantom)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetAllPendingPastDue_FiltersByStatusAndDueDate() {
	ctx := context.Background()
	now := time.Now()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(3)

	// Pending and past due: picked up
	pastDue := suite.restoreTestInvoice("FAC-2026-000001", "ENV-001",
		invoice.StatusPending, now.AddDate(0, 0, -20), now.AddDate(0, 0, -5))
	suite.Require().NoError(suite.repository.Add(ctx, pastDue))

	// Pending but not yet due: left alone
	current := suite.restoreTestInvoice("FAC-2026-000002", "ENV-002",
		invoice.StatusPending, now, now.AddDate(0, 0, 15))
	suite.Require().NoError(suite.repository.Add(ctx, current))

	// Past due but already paid: left alone
	paid := suite.restoreTestInvoice("FAC-2026-000003", "ENV-003",
		invoice.StatusPaid, now.AddDate(0, 0, -20), now.AddDate(0, 0, -5))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	pending, err := suite.repository.GetAllPendingPastDue(ctx, now)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.Equal("ENV-001", pending[0].NaturalKey())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestCount_GrowsWithInsertions() {
	ctx := context.Background()

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestInvoice("FAC-2026-000001", "ENV-001")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestInvoice("FAC-2026-000002", "ENV-002")))

	count, err = suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestInvoice creates a pending invoice with default values.
func (suite *InvoiceRepositoryIntegrationTestSuite) createTestInvoice(number, naturalKey string) *invoice.Invoice {
	now := time.Now()
	inv, err := invoice.NewInvoice(
		number,
		naturalKey,
		"Shipping "+naturalKey,
		suite.money(55),
		7,
		now,
		now.AddDate(0, 0, 15),
	)
	suite.Require().NoError(err)
	return inv
}

// restoreTestInvoice creates an invoice in the given status with explicit
// dates, bypassing the pending-only constructor. The identity is carried in
// the number suffix so tests stay readable.
func (suite *InvoiceRepositoryIntegrationTestSuite) restoreTestInvoice(
	number, naturalKey string,
	status invoice.Status,
	issueDate, dueDate time.Time,
) *invoice.Invoice {
	inv, err := invoice.NewInvoice(number, naturalKey, "Shipping "+naturalKey, suite.money(55), 7, issueDate, dueDate)
	suite.Require().NoError(err)

	if status != invoice.StatusPending {
		suite.Require().NoError(inv.MarkPaid())
	}
	return inv
}

func (suite *InvoiceRepositoryIntegrationTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.NewMoneyFromFloat(amount)
	suite.Require().NoError(err)
	return m
}

// assertInvoiceCount verifies the number of invoices in the database.
func (suite *InvoiceRepositoryIntegrationTestSuite) assertInvoiceCount(expected int) {
	var count int64
	err := suite.db.Model(&invoicerepo.InvoiceDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestInvoiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryIntegrationTestSuite))
}
