package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
)

// KVSchema creates the table behind PostgresStore.
const KVSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key VARCHAR(64) PRIMARY KEY,
		value TEXT NOT NULL,
		version BIGINT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)
`

// PostgresStore is a KVStore backed by the kv_store table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store over db.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the kv_store table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, KVSchema)
	logQuery(KVSchema, nil, nil, err)
	return err
}

// Get reads the value and version stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, int64, error) {
	const query = `
		SELECT value, version
		FROM kv_store
		WHERE key = $1
	`

	var row struct {
		Value   string `db:"value"`
		Version int64  `db:"version"`
	}
	err := s.db.GetContext(ctx, &row, query, key)
	logQuery(query, []any{key}, row.Version, err)

	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrNotFound
	}
	if err != nil {
		return "", 0, err
	}
	return row.Value, row.Version, nil
}

// Set upserts value and bumps the version.
func (s *PostgresStore) Set(ctx context.Context, key, value string) (int64, error) {
	const query = `
		INSERT INTO kv_store (key, value, version, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, version = kv_store.version + 1, updated_at = NOW()
		RETURNING version
	`

	var version int64
	err := s.db.GetContext(ctx, &version, query, key, value)
	logQuery(query, []any{key}, version, err)

	return version, err
}

// CompareAndSet writes value only if the row is still at version.
// Version 0 inserts and fails if the key already exists.
func (s *PostgresStore) CompareAndSet(ctx context.Context, key, value string, version int64) (int64, error) {
	const insertQuery = `
		INSERT INTO kv_store (key, value, version, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (key) DO NOTHING
		RETURNING version
	`
	const updateQuery = `
		UPDATE kv_store
		SET value = $2, version = version + 1, updated_at = NOW()
		WHERE key = $1 AND version = $3
		RETURNING version
	`

	var (
		next  int64
		err   error
		query string
	)
	if version == 0 {
		query = insertQuery
		err = s.db.GetContext(ctx, &next, query, key, value)
	} else {
		query = updateQuery
		err = s.db.GetContext(ctx, &next, query, key, value, version)
	}
	logQuery(query, []any{key, version}, next, err)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrVersionConflict
	}
	if err != nil {
		return 0, err
	}
	return next, nil
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
