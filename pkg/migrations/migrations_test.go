package migrations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun/migrate"

	"github.com/ecochain/ecochain-api/pkg/ecostore"
	"github.com/ecochain/ecochain-api/pkg/migrations/ecodb"
	mghelper "github.com/ecochain/ecochain-api/pkg/pgutil"
)

var ecoTables = []string{
	"users",
	"eco_actions",
	"governance_proposals",
	"transactions",
	"staking_records",
	"platform_stats",
}

func TestEcoDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ecodb.Migrations)

	// Initialize migration system
	err := migrator.Init(ctx)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// Run all migrations up
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(ecoTables, "bun_migrations") {
		mghelper.AssertTableExists(t, db, table)
	}

	// Unique indexes
	mghelper.AssertUniqueIndex(t, db, "idx_users_wallet_address")
	mghelper.AssertUniqueIndex(t, db, "idx_transactions_transaction_hash")
	mghelper.AssertUniqueIndex(t, db, "idx_platform_stats_date")

	// Secondary indexes
	secondary := []string{
		"idx_users_email",
		"idx_users_eco_score",
		"idx_eco_actions_wallet_address",
		"idx_eco_actions_timestamp",
		"idx_eco_actions_status",
		"idx_eco_actions_action_type",
		"idx_governance_proposals_status",
		"idx_governance_proposals_end_date",
		"idx_governance_proposals_created_at",
		"idx_transactions_from_address",
		"idx_transactions_to_address",
		"idx_transactions_timestamp",
		"idx_staking_records_user_address",
		"idx_staking_records_status",
		"idx_staking_records_end_date",
	}
	for _, idx := range secondary {
		mghelper.AssertIndexExists(t, db, idx)
	}
}

func TestEcoDBMigrations_IndexShapes(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ecodb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	var defs []struct {
		Name string `bun:"indexname"`
		Def  string `bun:"indexdef"`
	}
	err := db.NewSelect().
		TableExpr("pg_indexes").
		Column("indexname", "indexdef").
		Where("schemaname = ?", "public").
		Scan(ctx, &defs)
	if err != nil {
		t.Fatalf("failed to list indexes: %v", err)
	}

	byName := make(map[string]string, len(defs))
	for _, d := range defs {
		byName[d.Name] = d.Def
	}

	checks := map[string]string{
		"idx_users_email":                     "WHERE (email IS NOT NULL)",
		"idx_users_eco_score":                 " DESC)",
		"idx_eco_actions_timestamp":           " DESC)",
		"idx_governance_proposals_created_at": " DESC)",
		"idx_transactions_timestamp":          " DESC)",
	}
	for name, fragment := range checks {
		def, ok := byName[name]
		if !ok {
			t.Errorf("index %s does not exist", name)
			continue
		}
		if !strings.Contains(def, fragment) {
			t.Errorf("index %s: expected %q in definition %q", name, fragment, def)
		}
	}
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ecodb.Migrations)

	// Initialize
	err := migrator.Init(ctx)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// Run migrations first time
	_, err = migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	// Run migrations second time - should not fail
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}

	// Should return zero group (no new migrations)
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "users")
	mghelper.AssertTableExists(t, db, "platform_stats")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ecodb.Migrations)

	err := migrator.Init(ctx)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	_, err = migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	mghelper.AssertTableExists(t, db, "users")
	mghelper.AssertTableExists(t, db, "transactions")

	// Rollback last migration group (all migrations run in one group by Migrate())
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	for _, table := range ecoTables {
		mghelper.AssertTableNotExists(t, db, table)
	}
}

func TestPlatformStats_OneRowPerDate(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ecodb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	first := &ecostore.PlatformStatsDao{ID: uuid.New(), Date: day, TotalUsers: 1}
	if _, err := db.NewInsert().Model(first).Exec(ctx); err != nil {
		t.Fatalf("failed to insert stats row: %v", err)
	}

	second := &ecostore.PlatformStatsDao{ID: uuid.New(), Date: day, TotalUsers: 2}
	if _, err := db.NewInsert().Model(second).Exec(ctx); err == nil {
		t.Fatal("expected a second row for the same date to violate the unique index")
	}

	mghelper.AssertRowCount(t, db, "platform_stats", 1)
}
