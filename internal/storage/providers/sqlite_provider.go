package providers

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const slotsSchemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteSlotStore stores slots as rows of a table in an SQLite database.
// Implements storage.SlotStore.
type SQLiteSlotStore struct {
	conn *sql.DB
}

// OpenSQLiteSlotStore opens (or creates) the SQLite database at the given
// path and applies the schema.
func OpenSQLiteSlotStore(dsn string) (*SQLiteSlotStore, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("could not open db '%s' (%w)", dsn, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not ping db '%s' (%w)", dsn, err)
	}
	if _, err := conn.Exec(slotsSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not apply schema to db '%s' (%w)", dsn, err)
	}
	return &SQLiteSlotStore{conn: conn}, nil
}

// Read returns the data in the given slot, and whether the slot exists.
func (p *SQLiteSlotStore) Read(slot string) ([]byte, bool, error) {
	var data []byte
	err := p.conn.QueryRow(`SELECT data FROM slots WHERE name = ?`, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("could not query slot '%s' (%w)", slot, err)
	}
	return data, true, nil
}

// Write replaces the data in the given slot.
func (p *SQLiteSlotStore) Write(slot string, data []byte) error {
	_, err := p.conn.Exec(
		`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		slot, data,
	)
	if err != nil {
		return fmt.Errorf("could not write slot '%s' (%w)", slot, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (p *SQLiteSlotStore) Close() error {
	return p.conn.Close()
}
