package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB обертка над базой истории обработок
type DB struct {
	conn *sql.DB
}

// NewDB создает подключение с настройками по умолчанию
func NewDB(dbPath string) (*DB, error) {
	return NewDBWithConfig(dbPath, DBConfig{})
}

// NewDBWithConfig создает подключение к базе истории и применяет схему
func NewDBWithConfig(dbPath string, config DBConfig) (*DB, error) {
	// Для in-memory SQLite требуется ровно одно соединение, иначе
	// каждое новое соединение получает пустую БД без таблиц
	if isInMemoryDB(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", dbPath, err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %q: %w", dbPath, err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close закрывает подключение
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate применяет схему таблицы jobs
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'running',
		source_files TEXT NOT NULL DEFAULT '',
		sheet TEXT NOT NULL DEFAULT '',
		store_column TEXT NOT NULL DEFAULT '',
		link_column TEXT NOT NULL DEFAULT '',
		key_mode TEXT NOT NULL DEFAULT 'store',
		source_rows INTEGER NOT NULL DEFAULT 0,
		unique_pairs INTEGER NOT NULL DEFAULT 0,
		stores INTEGER NOT NULL DEFAULT 0,
		duplicates_dropped INTEGER NOT NULL DEFAULT 0,
		only_in_a INTEGER NOT NULL DEFAULT 0,
		only_in_b INTEGER NOT NULL DEFAULT 0,
		in_both INTEGER NOT NULL DEFAULT 0,
		result_path TEXT NOT NULL DEFAULT '',
		result_format TEXT NOT NULL DEFAULT 'xlsx',
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		completed_at TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at DESC);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply jobs schema: %w", err)
	}
	return nil
}

func isInMemoryDB(dbPath string) bool {
	return dbPath == ":memory:" || strings.Contains(dbPath, "mode=memory")
}
