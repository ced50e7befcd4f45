package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// sqliteKeyValue is the alternative persistent [KeyValue] backend, selected
// with the "sqlite" storage backend setting. It keeps each key in a row of a
// single kv table instead of a monolithic JSON file, so one mutated
// collection does not rewrite the others on disk.
type sqliteKeyValue struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKeyValue opens (creating if necessary) the sqlite database at
// path and runs the schema migrations for the kv table.
func NewSQLiteKeyValue(path string, log *logger.Logger) (KeyValue, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite storage path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite storage: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteKeyValue{db: db, logger: log}, nil
}

func (s *sqliteKeyValue) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := sq.Select("value").From("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build kv select: %w", err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv select failed")
		return nil, false, fmt.Errorf("select kv value: %w", err)
	}

	return value, true, nil
}

func (s *sqliteKeyValue) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv upsert failed")
		return fmt.Errorf("upsert kv value: %w", err)
	}

	return nil
}

func (s *sqliteKeyValue) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build kv delete: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv delete failed")
		return fmt.Errorf("delete kv value: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *sqliteKeyValue) Close() error {
	return s.db.Close()
}
