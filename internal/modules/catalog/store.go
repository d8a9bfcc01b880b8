// README: Optional Postgres-backed catalog loader (pgx).
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads the catalog from the pois table. Used only when a DSN is
// configured; the embedded dataset is the default source.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadAll reads every POI row. Tags are stored as a text[] column.
func (s *Store) LoadAll(ctx context.Context) ([]Poi, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, region, lat, lon, tags, short
		FROM pois
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query pois: %w", err)
	}
	defer rows.Close()

	var pois []Poi
	for rows.Next() {
		var p Poi
		if err := rows.Scan(&p.ID, &p.Name, &p.Region, &p.Lat, &p.Lon, &p.Tags, &p.Short); err != nil {
			return nil, fmt.Errorf("catalog: scan poi: %w", err)
		}
		pois = append(pois, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read pois: %w", err)
	}
	return pois, nil
}

// NewServiceFromStore loads the catalog once from Postgres.
func NewServiceFromStore(ctx context.Context, store *Store) (*Service, error) {
	pois, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewService(pois)
}
