package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cybershield-academy/internal/domain"
)

// ModuleLoader loads module content JSONB from Postgres.
type ModuleLoader struct {
	pool *pgxpool.Pool
}

func NewModuleLoader(pool *pgxpool.Pool) *ModuleLoader {
	return &ModuleLoader{pool: pool}
}

func (l *ModuleLoader) LoadModule(ctx context.Context, moduleID string) (domain.Module, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM modules WHERE id=$1`, moduleID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Module{}, domain.ErrModuleNotFound
	}
	if err != nil {
		return domain.Module{}, &domain.TransientError{Op: "load module", Err: err}
	}
	var module domain.Module
	if err := json.Unmarshal(raw, &module); err != nil {
		return domain.Module{}, fmt.Errorf("unmarshal module: %w", err)
	}
	return module, nil
}
