package repository

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/cupcade/vendpay/internal/config"
	"github.com/cupcade/vendpay/internal/db"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	runMigrations(t, database)
	truncateTables(t, database)

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "..", "internal", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	if err != nil {
		t.Logf("migration execution completed (tables may already exist): %v", err)
	}
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{"payments", "idempotency_keys", "tags"}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}

	_, err := database.ExecContext(context.Background(), `
		DELETE FROM accounts;
		INSERT INTO accounts (email, password_hash, customer_id, balance_cents) VALUES
			('alice@example.com', 'test-hash', '844D1532074B04', 1000),
			('bob@example.com', 'test-hash', '844D1532074B04', 300),
			('carol@example.com', 'test-hash', '844D1532074B04', 0);
		DELETE FROM products;
		INSERT INTO products (product_id, name, type, price_cents) VALUES
			('P1', 'Latte', 'latte', 350),
			('P2', 'Espresso', 'espresso', 300),
			('P3', 'Still Water', 'water', 150);
	`)
	if err != nil {
		t.Fatalf("failed to reset seed data: %v", err)
	}
}
