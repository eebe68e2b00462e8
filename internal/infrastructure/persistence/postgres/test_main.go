package postgres

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"goggles_shop/internal/config"
)

func TestMain(m *testing.M) {
	// Load .env from project root
	if err := godotenv.Load("../../../../.env"); err != nil {
		log.Println("warning: .env not loaded:", err)
	}

	code := m.Run()
	os.Exit(code)
}

// testPool connects to the configured database and makes sure the schema
// exists. Tests calling it are skipped when no database is reachable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "load config failed")

	pool, err := NewPool(cfg.DB)
	if err != nil {
		t.Skipf("database unreachable, skipping: %v", err)
	}
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, EnsureSchema(ctx, pool), "ensure schema failed")

	return pool
}
