package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/atlas-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT PRIMARY KEY,
	service     TEXT NOT NULL,
	label       TEXT NOT NULL DEFAULT '',
	plant_count INTEGER NOT NULL,
	plants      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_snapshots_service ON snapshots(service);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, service, label string, plants []model.Plant) (*Snapshot, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	plantsJSON, err := json.Marshal(plants)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal plants")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (id, service, label, plant_count, plants, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, service, label, len(plants), plantsJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert snapshot")
	}

	return &Snapshot{
		ID:         id,
		Service:    service,
		Label:      label,
		PlantCount: len(plants),
		CreatedAt:  now,
	}, nil
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, id string) (*Snapshot, []model.Plant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, service, label, plant_count, plants, created_at FROM snapshots WHERE id = $1`, id)
	return scanPostgresSnapshot(row)
}

func (s *PostgresStore) LatestSnapshot(ctx context.Context) (*Snapshot, []model.Plant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, service, label, plant_count, plants, created_at FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanPostgresSnapshot(row)
}

func scanPostgresSnapshot(row pgx.Row) (*Snapshot, []model.Plant, error) {
	var snap Snapshot
	var plantsJSON []byte
	err := row.Scan(&snap.ID, &snap.Service, &snap.Label, &snap.PlantCount, &plantsJSON, &snap.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, eris.Wrap(err, "postgres: scan snapshot")
	}

	var plants []model.Plant
	if err := json.Unmarshal(plantsJSON, &plants); err != nil {
		return nil, nil, eris.Wrap(err, "postgres: unmarshal plants")
	}
	return &snap, plants, nil
}

func (s *PostgresStore) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, service, label, plant_count, created_at FROM snapshots ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list snapshots")
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Service, &snap.Label, &snap.PlantCount, &snap.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan snapshot row")
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate snapshot rows")
	}
	return snaps, nil
}

func (s *PostgresStore) DeleteSnapshot(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete snapshot %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("postgres: snapshot %s not found", id)
	}
	return nil
}
