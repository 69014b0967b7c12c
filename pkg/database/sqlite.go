package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLiteDB is a single-writer handle pair on one SQLite file.
type SQLiteDB struct {
	Writer *sql.DB
	Reader *sql.DB
}

// NewSQLite opens the database at path. Writes go through a single connection;
// reads use a pool. An in-memory database uses one connection for both.
func NewSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	if path == MemoryPath {
		db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
		if err != nil {
			return nil, fmt.Errorf("open in-memory sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping in-memory sqlite: %w", err)
		}
		return &SQLiteDB{Writer: db, Reader: db}, nil
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(runtime.NumCPU())

	if err := writer.PingContext(ctx); err != nil {
		writer.Close()
		reader.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteDB{Writer: writer, Reader: reader}, nil
}

// Close closes both handles.
func (db *SQLiteDB) Close() error {
	err1 := db.Writer.Close()
	if db.Reader == db.Writer {
		return err1
	}
	err2 := db.Reader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
