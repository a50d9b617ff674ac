package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults matching DefaultConfig
	v.SetDefault("store.backend", "fs")
	v.SetDefault("store.data_dir", "./data")
	v.SetDefault("store.db_url", "")
	v.SetDefault("codex.meta_path", "/meta.json")
	v.SetDefault("codex.history_prefix", "/History")
	v.SetDefault("codex.creature_path", "/Creature.json")
	v.SetDefault("codex.drop_path", "/CreatureDrop.json")
	v.SetDefault("codex.item_path", "/Item.json")
	v.SetDefault("codex.default_lang", "en")

	// Bind environment variables with LK_ prefix
	v.SetEnvPrefix("LK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Store: StoreConfig{
			Backend: v.GetString("store.backend"),
			DataDir: v.GetString("store.data_dir"),
			DBURL:   v.GetString("store.db_url"),
		},
		Codex: CodexConfig{
			MetaPath:      v.GetString("codex.meta_path"),
			HistoryPrefix: v.GetString("codex.history_prefix"),
			CreaturePath:  v.GetString("codex.creature_path"),
			DropPath:      v.GetString("codex.drop_path"),
			ItemPath:      v.GetString("codex.item_path"),
			DefaultLang:   v.GetString("codex.default_lang"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks backend selection and logical path shape.
func validateConfig(cfg *Config) error {
	switch cfg.Store.Backend {
	case "fs":
		if cfg.Store.DataDir == "" {
			return fmt.Errorf("data_dir must be set for the fs backend")
		}
	case "db":
		if cfg.Store.DBURL == "" {
			return fmt.Errorf("db_url must be set for the db backend")
		}
	default:
		return fmt.Errorf("backend must be fs or db, got %q", cfg.Store.Backend)
	}

	paths := []struct {
		name string
		path string
	}{
		{"meta_path", cfg.Codex.MetaPath},
		{"history_prefix", cfg.Codex.HistoryPrefix},
		{"creature_path", cfg.Codex.CreaturePath},
		{"drop_path", cfg.Codex.DropPath},
		{"item_path", cfg.Codex.ItemPath},
	}
	for _, p := range paths {
		if !strings.HasPrefix(p.path, "/") {
			return fmt.Errorf("%s must start with /, got %q", p.name, p.path)
		}
	}

	if cfg.Codex.DefaultLang == "" {
		return fmt.Errorf("default_lang must not be empty")
	}
	return nil
}
