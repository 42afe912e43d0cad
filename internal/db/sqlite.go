package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a local SQLite database. The desktop edition of the tool
// keeps the whole dataset in a single file; the calculator CLI reads it
// directly.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := conn.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	return conn, nil
}
