package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// documentKey matches the storage key used by earlier versions of the
// app, so the serialized document survives a reimplementation.
const documentKey = "expenseData"

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	key    TEXT PRIMARY KEY,
	value  TEXT NOT NULL
);
`

// Persister is the persistence contract the Store depends on. Load
// returns the last persisted document, seeding defaults on first run;
// Save overwrites the entire document — no partial or merge semantics.
type Persister interface {
	Load() (Document, error)
	Save(Document) error
}

// Adapter persists the document as serialized JSON in a single-row
// key-value table. SQLite gives us durable, near-instant local writes;
// the document shape stays the wire contract, not the schema.
type Adapter struct {
	db *sql.DB
}

var _ Persister = (*Adapter)(nil)

// Open opens (or creates) the SQLite database at path and ensures the
// schema is at the current version.
func Open(path string) (*Adapter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	ver, err := currentSchemaVersion(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("check schema version: %w", err)
	}
	if ver < schemaVersion {
		if err := migrateSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	return &Adapter{db: db}, nil
}

// Close releases the underlying database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// currentSchemaVersion returns the version from schema_meta, or 0 for
// a fresh database.
func currentSchemaVersion(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_meta'
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var ver int
	err = db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return ver, err
}

func migrateSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM schema_meta"); err != nil {
		return fmt.Errorf("reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("insert schema version: %w", err)
	}
	return nil
}

// Load returns the persisted document. On first run (no row under the
// document key) it seeds the default document, persists it, and
// returns it, so callers always get a complete document.
func (a *Adapter) Load() (Document, error) {
	var raw string
	err := a.db.QueryRow("SELECT value FROM documents WHERE key = ?", documentKey).Scan(&raw)
	if err == sql.ErrNoRows {
		doc := DefaultDocument()
		if err := a.Save(doc); err != nil {
			return Document{}, fmt.Errorf("seed default document: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// Save overwrites the persisted document with doc.
func (a *Adapter) Save(doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = a.db.Exec(`
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, documentKey, string(raw))
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
