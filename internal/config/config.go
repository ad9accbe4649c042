// Package config loads the curator.yaml workspace configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"daybook/internal/store"
)

// Backends supported for the record and intake stores.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
)

// DefaultPath is where commands look for the workspace config when no
// --config flag is given. A missing file just means defaults.
const DefaultPath = "curator.yaml"

// Config is the workspace configuration.
type Config struct {
	// Backend selects the store implementation: "fs" (default) or "sqlite".
	Backend string `yaml:"backend"`

	// DaysDir and IntakeDir root the filesystem backend.
	DaysDir   string `yaml:"days_dir"`
	IntakeDir string `yaml:"intake_dir"`

	// SQLitePath is the database file for the sqlite backend; both
	// corpora share it under separate tables.
	SQLitePath string `yaml:"sqlite_path"`

	// PublishLeadDays is how far ahead of the publish date the backfill
	// date runs.
	PublishLeadDays int `yaml:"publish_lead_days"`

	// EditorHook, when set, is an argv run after a successful promote
	// with the record's file path appended (filesystem backend only).
	EditorHook []string `yaml:"editor_hook"`
}

// Default returns the configuration used when no curator.yaml exists.
func Default() Config {
	return Config{
		Backend:         BackendFS,
		DaysDir:         "data/days",
		IntakeDir:       "intake",
		SQLitePath:      "daybook.db",
		PublishLeadDays: 14,
	}
}

// Load reads a curator.yaml, filling unset fields from defaults. A
// missing file is not an error; unknown keys and bad values are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Backend != BackendFS && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("config %s: unknown backend %q", path, cfg.Backend)
	}
	if cfg.PublishLeadDays < 0 {
		return Config{}, fmt.Errorf("config %s: publish_lead_days must not be negative", path)
	}
	return cfg, nil
}

// OpenDays opens the curated-record store. The returned closer is a
// no-op for the filesystem backend.
func (c Config) OpenDays() (store.Interface, func() error, error) {
	return c.open(c.DaysDir, "days")
}

// OpenIntake opens the candidate-pool store.
func (c Config) OpenIntake() (store.Interface, func() error, error) {
	return c.open(c.IntakeDir, "intake")
}

func (c Config) open(dir, table string) (store.Interface, func() error, error) {
	switch c.Backend {
	case BackendSQLite:
		s, err := store.OpenSQLite(c.SQLitePath, table)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := store.OpenFS(dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	}
}
