package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"workrest/internal/core/model"

	_ "modernc.org/sqlite"
)

// SQLite stores the statistics document in a small SQLite database. Saves
// still replace the whole document, inside one transaction.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (or creates) the database and initializes the schema.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	store := &SQLite{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// Path returns the database location.
func (store *SQLite) Path() string {
	return store.path
}

// Close closes the database connection.
func (store *SQLite) Close() error {
	return store.db.Close()
}

func (store *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS totals (
		id   INTEGER PRIMARY KEY CHECK (id = 1),
		work INTEGER NOT NULL DEFAULT 0,
		rest INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS days (
		day  TEXT PRIMARY KEY,
		work INTEGER NOT NULL DEFAULT 0,
		rest INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS config (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := store.db.Exec(schema)
	return err
}

// Load reads the document. An empty database yields a zero document.
func (store *SQLite) Load() (model.Document, error) {
	doc := model.Document{Days: map[string]model.DayTotals{}}

	err := store.db.QueryRow(`SELECT work, rest FROM totals WHERE id = 1`).Scan(&doc.TotalWork, &doc.TotalRest)
	if err != nil && err != sql.ErrNoRows {
		return model.Document{}, fmt.Errorf("load totals: %w", err)
	}

	rows, err := store.db.Query(`SELECT day, work, rest FROM days`)
	if err != nil {
		return model.Document{}, fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var day model.DayTotals
		if err := rows.Scan(&key, &day.Work, &day.Rest); err != nil {
			return model.Document{}, fmt.Errorf("scan day: %w", err)
		}
		doc.Days[key] = day
	}
	if err := rows.Err(); err != nil {
		return model.Document{}, fmt.Errorf("load days: %w", err)
	}

	config, err := store.loadConfig()
	if err != nil {
		return model.Document{}, err
	}
	doc.Config = config
	return doc, nil
}

func (store *SQLite) loadConfig() (model.Config, error) {
	var config model.Config

	rows, err := store.db.Query(`SELECT key, value FROM config`)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return config, fmt.Errorf("scan config: %w", err)
		}
		// Unparsable values stay zero and are defaulted by the ledger.
		switch key {
		case "work_sec":
			config.WorkSeconds, _ = strconv.Atoi(value)
		case "rest_sec":
			config.RestSeconds, _ = strconv.Atoi(value)
		case "lang":
			config.Language = value
		case "auto_start":
			config.AutoStart, _ = strconv.ParseBool(value)
		}
	}
	return config, rows.Err()
}

// Save replaces the stored document with doc.
func (store *SQLite) Save(doc model.Document) error {
	tx, err := store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO totals (id, work, rest) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET work = excluded.work, rest = excluded.rest`,
		doc.TotalWork, doc.TotalRest,
	); err != nil {
		return fmt.Errorf("save totals: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM days`); err != nil {
		return fmt.Errorf("clear days: %w", err)
	}
	for key, day := range doc.Days {
		if _, err := tx.Exec(`INSERT INTO days (day, work, rest) VALUES (?, ?, ?)`, key, day.Work, day.Rest); err != nil {
			return fmt.Errorf("save day %s: %w", key, err)
		}
	}

	values := map[string]string{
		"work_sec":   strconv.Itoa(doc.Config.WorkSeconds),
		"rest_sec":   strconv.Itoa(doc.Config.RestSeconds),
		"lang":       doc.Config.Language,
		"auto_start": strconv.FormatBool(doc.Config.AutoStart),
	}
	for key, value := range values {
		if _, err := tx.Exec(
			`INSERT INTO config (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("save config %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
