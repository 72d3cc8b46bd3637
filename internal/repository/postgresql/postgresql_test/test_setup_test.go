package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
)

// TestDatabaseSetup holds the connection used by repository integration tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. Tests are skipped when it is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolConfig{MaxConns: 4, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.TruncateAllTables(context.Background()); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables removes every row from the schema tables
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"audit_logs",
		"company_holidays",
		"leave_requests",
		"attendances",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// InsertUser creates a user row
func (s *TestDatabaseSetup) InsertUser(ctx context.Context, id, name, role, department string) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO users (id, name, username, email, role, department)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, name, id[:8], id[:8]+"@example.com", role, department)
	return err
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
