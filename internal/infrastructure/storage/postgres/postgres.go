package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fieldassets/internal/app/server/config"
	"fieldassets/internal/infrastructure/migration"
	"fieldassets/internal/utils/dates"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New runs pending migrations and opens the connection pool.
func New(cfg *config.Config) (*Storage, error) {
	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

// Nullable column helpers. Zero days and empty strings travel as NULL.

func dayParam(d dates.Day) any {
	if d.IsZero() {
		return nil
	}
	return d.Time()
}

func dayColumn(t *time.Time) dates.Day {
	if t == nil {
		return dates.Day{}
	}
	return dates.FromTime(*t)
}

func textParam(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func textColumn(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
