// Package repository selects the storage backend for the service.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"eventory/internal/domain"
	"eventory/internal/repository/memory"
	"eventory/internal/repository/postgres"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Storage     string
	DatabaseURL string
	Migrate     bool
}

// Repositories bundles the ports the services depend on.
type Repositories struct {
	Events    domain.EventRepository
	Forms     domain.RsvpFormRepository
	Responses domain.RsvpResponseRepository

	db *sqlx.DB
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Repositories, error) {
	switch cfg.Storage {
	case StorageMemory, "":
		logger.Info("using in-memory storage")
		s := memory.New()
		return &Repositories{Events: s.Events(), Forms: s.Forms(), Responses: s.Responses()}, nil
	case StoragePostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if cfg.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate database: %w", err)
			}
			logger.Info("database schema applied")
		}
		logger.Info("connected to postgres")
		return &Repositories{
			Events:    postgres.NewEventRepository(db),
			Forms:     postgres.NewRsvpFormRepository(db),
			Responses: postgres.NewRsvpResponseRepository(db),
			db:        db,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
