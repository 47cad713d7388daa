package kpi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists goal overrides in PostgreSQL, for deployments where
// several dashboard instances share one preference store.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects to the database and ensures the overrides table
// exists.
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &PGStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return s, nil
}

func (s *PGStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kpi_goal_overrides (
			project_id           TEXT NOT NULL,
			flowsheet_version_id TEXT NOT NULL,
			metric_key           TEXT NOT NULL,
			goal                 JSONB NOT NULL,
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (project_id, flowsheet_version_id, metric_key)
		)`)
	return err
}

// Ping checks database connectivity.
func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

// Load returns the stored overrides for the scope, empty if none exist.
func (s *PGStore) Load(ctx context.Context, scope Scope) (map[string]Goal, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("goal store: incomplete scope %q", scope.Key())
	}

	rows, err := s.pool.Query(ctx,
		`SELECT metric_key, goal FROM kpi_goal_overrides
		 WHERE project_id = $1 AND flowsheet_version_id = $2`,
		scope.ProjectID, scope.FlowsheetVersionID)
	if err != nil {
		return nil, fmt.Errorf("load goal overrides for %s: %w", scope.Key(), err)
	}
	defer rows.Close()

	goals := make(map[string]Goal)
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan goal override: %w", err)
		}
		var g Goal
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("parse goal override for %s: %w", key, err)
		}
		goals[key] = g
	}
	return goals, rows.Err()
}

// Save replaces the stored overrides for the scope in one transaction.
// Invalid goals are rejected before the transaction starts.
func (s *PGStore) Save(ctx context.Context, scope Scope, goals map[string]Goal) error {
	if err := validateGoals(scope, goals); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save for %s: %w", scope.Key(), err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM kpi_goal_overrides
		 WHERE project_id = $1 AND flowsheet_version_id = $2`,
		scope.ProjectID, scope.FlowsheetVersionID)
	if err != nil {
		return fmt.Errorf("clear goal overrides for %s: %w", scope.Key(), err)
	}

	for key, g := range goals {
		raw, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshal goal for %s: %w", key, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO kpi_goal_overrides (project_id, flowsheet_version_id, metric_key, goal)
			 VALUES ($1, $2, $3, $4)`,
			scope.ProjectID, scope.FlowsheetVersionID, key, raw)
		if err != nil {
			return fmt.Errorf("store goal for %s: %w", key, err)
		}
	}

	return tx.Commit(ctx)
}
