package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"thoughts-api/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// EnsureSchema crea la tabla de thoughts si no existe. El piso de hearts
// queda declarado también como constraint del store.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS thoughts (
			id         TEXT PRIMARY KEY,
			message    TEXT NOT NULL,
			hearts     INTEGER NOT NULL DEFAULT 0 CHECK (hearts >= 0),
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := pool.Exec(ctx, ddl)
	return err
}
