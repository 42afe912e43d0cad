package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	conn, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(`CREATE TABLE probe (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
}

func TestOpenSQLiteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "data.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatal("expected error for unreachable database path")
	}
}

func TestConnectPostgresBadDSN(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := ConnectPostgres(ctx, "not a valid dsn"); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}
