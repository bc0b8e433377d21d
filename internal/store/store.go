// Package store persists fetched plant sets as named snapshots so filtering
// and summarizing can run offline without refetching the Atlas services.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/atlas-cli/internal/model"
)

// Snapshot describes one persisted plant set.
type Snapshot struct {
	ID         string    `json:"id"`
	Service    string    `json:"service"`
	Label      string    `json:"label,omitempty"`
	PlantCount int       `json:"plant_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store defines the snapshot persistence interface.
type Store interface {
	SaveSnapshot(ctx context.Context, service, label string, plants []model.Plant) (*Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (*Snapshot, []model.Plant, error)
	LatestSnapshot(ctx context.Context) (*Snapshot, []model.Plant, error)
	ListSnapshots(ctx context.Context) ([]Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a store for the configured driver.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite", "":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	}
	return nil, eris.Errorf("store: unknown driver %q", driver)
}
