package backend

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"organizador/internal/config"
	"organizador/internal/kv"
	"organizador/internal/log"
)

func quietFactory() *Factory {
	return NewFactory(log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)}))
}

func TestTypeIsValid(t *testing.T) {
	cases := []struct {
		in Type
		ok bool
	}{
		{Memory, true},
		{SQLite, true},
		{"sheets", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := tc.in.IsValid(); got != tc.ok {
			t.Fatalf("%q expected IsValid=%v, got %v", tc.in, tc.ok, got)
		}
	}
}

func TestFactoryCreateMemory(t *testing.T) {
	result, err := quietFactory().Create(Config{Type: Memory})
	if err != nil {
		t.Fatalf("create memory backend: %v", err)
	}
	if result.Store == nil {
		t.Fatalf("expected a store")
	}
	if result.Cleanup != nil {
		t.Fatalf("memory backend needs no cleanup")
	}
}

func TestFactoryCreateSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "organizador.db")

	result, err := quietFactory().Create(Config{Type: SQLite, SQLiteDBPath: dbPath})
	if err != nil {
		t.Fatalf("create sqlite backend: %v", err)
	}
	defer result.Cleanup()

	if err := result.Store.Set(context.Background(), kv.KeyTasks, []byte("[]")); err != nil {
		t.Fatalf("store should be usable: %v", err)
	}
	if result.Cleanup == nil {
		t.Fatalf("sqlite backend must expose cleanup")
	}
}

func TestFactoryCreateRejectsBadConfig(t *testing.T) {
	if _, err := quietFactory().Create(Config{Type: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend type")
	}
	if _, err := quietFactory().Create(Config{Type: SQLite}); err == nil {
		t.Fatalf("expected error for sqlite backend without a path")
	}
}

func TestFromAppConfig(t *testing.T) {
	appCfg := &config.Config{DataBackend: "sqlite", SQLiteDBPath: "./data/test.db"}

	got := FromAppConfig(appCfg)

	if got.Type != SQLite || got.SQLiteDBPath != "./data/test.db" {
		t.Fatalf("unexpected backend config: %+v", got)
	}
}
