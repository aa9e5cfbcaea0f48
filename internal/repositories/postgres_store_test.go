package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT value, version FROM kv_store WHERE key = $1")).
			WithArgs(KeyFxRate).
			WillReturnRows(sqlmock.NewRows([]string{"value", "version"}).AddRow("1770", 3))

		val, version, err := s.Get(ctx, KeyFxRate)
		assert.NoError(t, err)
		assert.Equal(t, "1770", val)
		assert.Equal(t, int64(3), version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT value, version FROM kv_store").
			WithArgs(KeyUserPin).
			WillReturnError(sql.ErrNoRows)

		_, _, err := s.Get(ctx, KeyUserPin)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT value, version FROM kv_store").
			WithArgs(KeyWallet).
			WillReturnError(errors.New("connection refused"))

		_, _, err := s.Get(ctx, KeyWallet)
		assert.EqualError(t, err, "connection refused")
	})
}

func TestPostgresStore_Set(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("INSERT INTO kv_store .* ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs(KeyWallet, `{"usdt":0,"mwk":0}`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(4))

	version, err := s.Set(context.Background(), KeyWallet, `{"usdt":0,"mwk":0}`)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CompareAndSet(t *testing.T) {
	ctx := context.Background()

	t.Run("first insert", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("INSERT INTO kv_store .* DO NOTHING").
			WithArgs(KeyTransactions, "[]").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

		version, err := s.CompareAndSet(ctx, KeyTransactions, "[]", 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), version)
	})

	t.Run("insert lost the race", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("INSERT INTO kv_store .* DO NOTHING").
			WithArgs(KeyTransactions, "[]").
			WillReturnError(sql.ErrNoRows)

		_, err := s.CompareAndSet(ctx, KeyTransactions, "[]", 0)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("update at expected version", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("UPDATE kv_store SET value = \\$2, version = version \\+ 1").
			WithArgs(KeyTransactions, "[1]", int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(6))

		version, err := s.CompareAndSet(ctx, KeyTransactions, "[1]", 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(6), version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update at stale version", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("UPDATE kv_store").
			WithArgs(KeyTransactions, "[1]", int64(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := s.CompareAndSet(ctx, KeyTransactions, "[1]", 5)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
