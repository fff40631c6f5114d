package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS usuarios (
			id            BIGSERIAL PRIMARY KEY,
			nome          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			senha         TEXT NOT NULL,
			telefone      TEXT,
			criado_em     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			atualizado_em TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS produtos (
			id            BIGSERIAL PRIMARY KEY,
			nome          TEXT NOT NULL,
			descricao     TEXT,
			preco         NUMERIC(10, 2) NOT NULL,
			estoque       INTEGER NOT NULL DEFAULT 0,
			categoria     TEXT,
			criado_em     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			atualizado_em TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pedidos (
			id            BIGSERIAL PRIMARY KEY,
			usuario_id    BIGINT NOT NULL REFERENCES usuarios(id),
			status        TEXT NOT NULL DEFAULT 'pendente',
			total         NUMERIC(10, 2) NOT NULL DEFAULT 0,
			criado_em     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			atualizado_em TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pedido_itens (
			id         BIGSERIAL PRIMARY KEY,
			pedido_id  BIGINT NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
			produto_id BIGINT NOT NULL,
			quantidade INTEGER NOT NULL,
			preco      NUMERIC(10, 2) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pedidos_usuario_id ON pedidos(usuario_id);
		CREATE INDEX IF NOT EXISTS idx_pedido_itens_pedido_id ON pedido_itens(pedido_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedUsuario inserts one test user and returns its id.
func SeedUsuario(t *testing.T, pool *pgxpool.Pool, nome, email string) int64 {
	t.Helper()

	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO usuarios (nome, email, senha) VALUES ($1, $2, $3) RETURNING id",
		nome, email, "hash-de-teste",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed usuario %s: %v", email, err)
	}
	return id
}

// SeedProdutos inserts test product data into the database.
func SeedProdutos(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	produtos := []struct {
		nome      string
		preco     float64
		estoque   int
		categoria string
	}{
		{"Caderno", 15.90, 10, "papelaria"},
		{"Caneta", 3.50, 100, "papelaria"},
		{"Mochila", 120.00, 5, "acessorios"},
		{"Borracha", 1.20, 50, "papelaria"},
		{"Estojo", 25.00, 8, "acessorios"},
	}

	for _, p := range produtos {
		_, err := pool.Exec(ctx,
			"INSERT INTO produtos (nome, preco, estoque, categoria) VALUES ($1, $2, $3, $4)",
			p.nome, p.preco, p.estoque, p.categoria,
		)
		if err != nil {
			t.Fatalf("failed to seed produto %s: %v", p.nome, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"pedido_itens", "pedidos", "produtos", "usuarios"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
