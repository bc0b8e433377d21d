package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/atlas-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT PRIMARY KEY,
	service     TEXT NOT NULL,
	label       TEXT NOT NULL DEFAULT '',
	plant_count INTEGER NOT NULL,
	plants      TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_snapshots_service ON snapshots(service);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, service, label string, plants []model.Plant) (*Snapshot, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	plantsJSON, err := json.Marshal(plants)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal plants")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, service, label, plant_count, plants, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, service, label, len(plants), string(plantsJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert snapshot")
	}

	return &Snapshot{
		ID:         id,
		Service:    service,
		Label:      label,
		PlantCount: len(plants),
		CreatedAt:  now,
	}, nil
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, id string) (*Snapshot, []model.Plant, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, service, label, plant_count, plants, created_at FROM snapshots WHERE id = ?`, id)
	return scanSQLiteSnapshot(row)
}

func (s *SQLiteStore) LatestSnapshot(ctx context.Context) (*Snapshot, []model.Plant, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, service, label, plant_count, plants, created_at FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanSQLiteSnapshot(row)
}

func scanSQLiteSnapshot(row *sql.Row) (*Snapshot, []model.Plant, error) {
	var snap Snapshot
	var plantsJSON string
	err := row.Scan(&snap.ID, &snap.Service, &snap.Label, &snap.PlantCount, &plantsJSON, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, eris.Wrap(err, "sqlite: scan snapshot")
	}

	var plants []model.Plant
	if err := json.Unmarshal([]byte(plantsJSON), &plants); err != nil {
		return nil, nil, eris.Wrap(err, "sqlite: unmarshal plants")
	}
	return &snap, plants, nil
}

func (s *SQLiteStore) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, service, label, plant_count, created_at FROM snapshots ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list snapshots")
	}
	defer rows.Close() //nolint:errcheck

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Service, &snap.Label, &snap.PlantCount, &snap.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan snapshot row")
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate snapshot rows")
	}
	return snaps, nil
}

func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete snapshot %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: snapshot %s not found", id)
	}
	return nil
}
