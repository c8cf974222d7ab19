package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AuditStoreTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *AuditStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&auditrepo.EntryDTO{})
	suite.Require().NoError(err)
}

func (suite *AuditStoreTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AuditStoreTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE audit_entries CASCADE").Error)
}

// restoredEntry builds an entry with a fixed ID and timestamp so a test can
// control exactly the fields the store might be tempted to order by.
func (suite *AuditStoreTestSuite) restoredEntry(id string, ts time.Time, details audit.Details) audit.Entry {
	entryID, err := kernel.UUIDFromString(id)
	suite.Require().NoError(err)

	entry, err := audit.RestoreEntry(entryID, audit.Updated, kernel.NewUUID(), ts, details)
	suite.Require().NoError(err)
	return entry
}

func (suite *AuditStoreTestSuite) TestSameTimestampEntriesKeepInsertionOrder() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	ts := time.Now().UTC().Truncate(time.Microsecond)

	// Entry IDs descend while insertion order ascends: ordering by
	// (timestamp, id) would flip them, ordering by seq must not.
	first := suite.restoredEntry("ffffffff-0000-4000-8000-000000000000", ts, audit.Details{"step": "first"})
	second := suite.restoredEntry("00000000-0000-4000-8000-000000000001", ts, audit.Details{"step": "second"})

	err := auditrepo.SaveHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeOrder, []audit.Entry{first})
	suite.Require().NoError(err)
	err = auditrepo.SaveHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeOrder, []audit.Entry{first, second})
	suite.Require().NoError(err)

	history, err := auditrepo.LoadHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeOrder)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("first", history[0].Details()["step"])
	suite.Equal("second", history[1].Details()["step"])
}

func (suite *AuditStoreTestSuite) TestResavingHistoryOnlyInsertsNewEntries() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()

	entry, err := audit.NewEntry(audit.Created, kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	for range 3 {
		err = auditrepo.SaveHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeInventoryItem, []audit.Entry{entry})
		suite.Require().NoError(err)
	}

	history, err := auditrepo.LoadHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeInventoryItem)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(entry.ID(), history[0].ID())
}

func (suite *AuditStoreTestSuite) TestLoadHistoryIsScopedToOwner() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()

	entry, err := audit.NewEntry(audit.Created, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(
		auditrepo.SaveHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeOrder, []audit.Entry{entry}))

	sameIDOtherType, err := auditrepo.LoadHistory(ctx, suite.db, ownerID, auditrepo.OwnerTypeDispatchOrder)
	suite.Require().NoError(err)
	suite.Empty(sameIDOtherType)

	otherOwner, err := auditrepo.LoadHistory(ctx, suite.db, kernel.NewUUID(), auditrepo.OwnerTypeOrder)
	suite.Require().NoError(err)
	suite.Empty(otherOwner)
}

func TestAuditStoreTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStoreTestSuite))
}
