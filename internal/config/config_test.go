package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
				CurrencyCode: "EUR",
				Locale:       "es-ES",
				LogLevel:     "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend:  "memory",
				CurrencyCode: "USD",
				Locale:       "en-US",
				LogLevel:     "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend:  "sheets",
				CurrencyCode: "EUR",
				Locale:       "es-ES",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				CurrencyCode: "EUR",
				Locale:       "es-ES",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "invalid currency code",
			config: Config{
				DataBackend:  "memory",
				CurrencyCode: "euros",
				Locale:       "es-ES",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid currency code 'euros'",
		},
		{
			name: "invalid locale",
			config: Config{
				DataBackend:  "memory",
				CurrencyCode: "EUR",
				Locale:       "not a locale!",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid locale",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend:  "memory",
				CurrencyCode: "EUR",
				Locale:       "es-ES",
				LogLevel:     "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_BACKEND", "SQLITE_DB_PATH", "CURRENCY_CODE", "LOCALE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.DataBackend != "sqlite" {
		t.Fatalf("expected sqlite default backend, got %q", cfg.DataBackend)
	}
	if cfg.CurrencyCode != "EUR" || cfg.Locale != "es-ES" {
		t.Fatalf("expected EUR/es-ES defaults, got %q/%q", cfg.CurrencyCode, cfg.Locale)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info default log level, got %q", cfg.LogLevel)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in  string
		out slog.Level
		ok  bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"WARN", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseLogLevel(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}
