package testhelpers

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
)

// TestHelper encapsulates the components integration tests share.
type TestHelper struct {
	T       *testing.T
	Ctx     context.Context
	BaseURL string
	DB      *pgxpool.Pool

	OperatorRepo    repositories.OperatorRepository
	RequirementRepo repositories.RequirementProfileRepository
	Transactor      repositories.Transactor
}

// NewTestHelper connects to DATABASE_URL (optionally from a .env file), applies
// the schema and wires the repositories. BaseURL is read from
// APP_URL_FROM_ANYWHERE and may be empty for repository-only suites.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping database-backed test")
	}

	ctx := context.Background()
	dbPool, err := pgxpool.Connect(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbPool.Close() })

	require.NoError(t, repositories.Migrate(ctx, dbPool), "schema migration failed")

	return &TestHelper{
		T:               t,
		Ctx:             ctx,
		BaseURL:         strings.TrimRight(os.Getenv("APP_URL_FROM_ANYWHERE"), "/"),
		DB:              dbPool,
		OperatorRepo:    repositories.NewOperatorRepository(dbPool),
		RequirementRepo: repositories.NewRequirementProfileRepository(dbPool),
		Transactor:      repositories.NewTransactor(dbPool),
	}
}

// ResetTables empties both tables. Profiles cascade from operators.
func (h *TestHelper) ResetTables() {
	h.T.Helper()
	_, err := h.DB.Exec(h.Ctx, `TRUNCATE operators CASCADE`)
	require.NoError(h.T, err)
}

// CountRows returns the row count of a table.
func (h *TestHelper) CountRows(table string) int {
	h.T.Helper()
	var n int
	err := h.DB.QueryRow(h.Ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(h.T, err)
	return n
}
