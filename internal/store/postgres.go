package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// Pool sizing comes from pool_max_conns in connString.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListOfferMappings returns every offer ID per item name for vendor.
func (s *PostgresStore) ListOfferMappings(
	ctx context.Context,
	vendor domain.VendorID,
) (map[string][]string, error) {
	rows, err := s.pool.Query(ctx, queryListOfferMappings, string(vendor))
	if err != nil {
		return nil, fmt.Errorf("querying offer mappings: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var item, offerID string
		if err := rows.Scan(&item, &offerID); err != nil {
			return nil, fmt.Errorf("scanning offer mapping: %w", err)
		}
		out[item] = append(out[item], offerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offer mappings: %w", err)
	}

	return out, nil
}

// UpsertOfferMappings adds the given mappings in one transaction and
// reports how many rows were new. Existing rows are left alone.
func (s *PostgresStore) UpsertOfferMappings(
	ctx context.Context,
	vendor domain.VendorID,
	mappings map[string][]string,
) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	inserted := 0
	for item, ids := range mappings {
		item = domain.NormalizeItemName(item)
		if item == "" {
			continue
		}
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			tag, err := tx.Exec(ctx, queryUpsertOfferMapping, pgx.NamedArgs{
				"vendor":    string(vendor),
				"item_name": item,
				"offer_id":  id,
			})
			if err != nil {
				return 0, fmt.Errorf("upserting offer mapping %q: %w", item, err)
			}
			inserted += int(tag.RowsAffected())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing offer mappings: %w", err)
	}
	return inserted, nil
}

// DeleteOfferMappings removes every offer ID for one item name.
func (s *PostgresStore) DeleteOfferMappings(
	ctx context.Context,
	vendor domain.VendorID,
	itemName string,
) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteOfferMappings, string(vendor), domain.NormalizeItemName(itemName))
	if err != nil {
		return 0, fmt.Errorf("deleting offer mappings: %w", err)
	}
	return tag.RowsAffected(), nil
}

var _ Store = (*PostgresStore)(nil)
