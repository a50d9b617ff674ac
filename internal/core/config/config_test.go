package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Clean environment
	os.Unsetenv("LK_STORE_BACKEND")
	os.Unsetenv("LK_STORE_DATA_DIR")
	os.Unsetenv("LK_STORE_DB_URL")
	os.Unsetenv("LK_CODEX_DEFAULT_LANG")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Store.Backend != "fs" {
			t.Errorf("expected backend fs, got %s", cfg.Store.Backend)
		}
		if cfg.Store.DataDir != "./data" {
			t.Errorf("expected data_dir ./data, got %s", cfg.Store.DataDir)
		}
		if cfg.Codex.MetaPath != "/meta.json" {
			t.Errorf("expected meta_path /meta.json, got %s", cfg.Codex.MetaPath)
		}
		if cfg.Codex.HistoryPrefix != "/History" {
			t.Errorf("expected history_prefix /History, got %s", cfg.Codex.HistoryPrefix)
		}
		if cfg.Codex.CreaturePath != "/Creature.json" {
			t.Errorf("expected creature_path /Creature.json, got %s", cfg.Codex.CreaturePath)
		}
		if cfg.Codex.DropPath != "/CreatureDrop.json" {
			t.Errorf("expected drop_path /CreatureDrop.json, got %s", cfg.Codex.DropPath)
		}
		if cfg.Codex.ItemPath != "/Item.json" {
			t.Errorf("expected item_path /Item.json, got %s", cfg.Codex.ItemPath)
		}
		if cfg.Codex.DefaultLang != "en" {
			t.Errorf("expected default_lang en, got %s", cfg.Codex.DefaultLang)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		os.Setenv("LK_STORE_DATA_DIR", "/srv/snapshots")
		os.Setenv("LK_CODEX_DEFAULT_LANG", "ja")
		defer os.Unsetenv("LK_STORE_DATA_DIR")
		defer os.Unsetenv("LK_CODEX_DEFAULT_LANG")

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Store.DataDir != "/srv/snapshots" {
			t.Errorf("expected data_dir /srv/snapshots, got %s", cfg.Store.DataDir)
		}
		if cfg.Codex.DefaultLang != "ja" {
			t.Errorf("expected default_lang ja, got %s", cfg.Codex.DefaultLang)
		}
	})

	t.Run("db backend requires db_url", func(t *testing.T) {
		os.Setenv("LK_STORE_BACKEND", "db")
		defer os.Unsetenv("LK_STORE_BACKEND")

		_, err := LoadConfig("")
		if err == nil {
			t.Error("expected error for db backend without db_url")
		}
	})

	t.Run("db backend with db_url", func(t *testing.T) {
		os.Setenv("LK_STORE_BACKEND", "db")
		os.Setenv("LK_STORE_DB_URL", "sqlite://./pages.db")
		defer os.Unsetenv("LK_STORE_BACKEND")
		defer os.Unsetenv("LK_STORE_DB_URL")

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Store.DBURL != "sqlite://./pages.db" {
			t.Errorf("expected db_url sqlite://./pages.db, got %s", cfg.Store.DBURL)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		os.Setenv("LK_STORE_BACKEND", "s3")
		defer os.Unsetenv("LK_STORE_BACKEND")

		_, err := LoadConfig("")
		if err == nil {
			t.Error("expected error for unknown backend")
		}
	})

	t.Run("logical paths must be rooted", func(t *testing.T) {
		os.Setenv("LK_CODEX_META_PATH", "meta.json")
		defer os.Unsetenv("LK_CODEX_META_PATH")

		_, err := LoadConfig("")
		if err == nil {
			t.Error("expected error for unrooted meta_path")
		}
	})

	t.Run("default_lang must not be empty", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "config-*.yaml")
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(tmpfile.Name())

		if _, err := tmpfile.Write([]byte("codex:\n  default_lang: \"\"\n")); err != nil {
			t.Fatal(err)
		}
		tmpfile.Close()

		if _, err := LoadConfig(tmpfile.Name()); err == nil {
			t.Error("expected error for empty default_lang")
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.yaml")
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
