// Package config provides configuration management for lorekeeper commands.
package config

// StoreConfig selects where snapshot documents are read from.
// Backend "fs" serves them from DataDir; "db" serves them from the
// page mirror at DBURL.
type StoreConfig struct {
	Backend string
	DataDir string
	DBURL   string
}

// CodexConfig names the well-known logical paths of a snapshot set.
// All paths are rooted ("/Creature.json"); HistoryPrefix is the root
// under which versioned snapshots live.
type CodexConfig struct {
	MetaPath      string
	HistoryPrefix string
	CreaturePath  string
	DropPath      string
	ItemPath      string
	DefaultLang   string
}

// Config holds configuration for the lorekeeper CLI.
type Config struct {
	Store StoreConfig
	Codex CodexConfig
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "fs",
			DataDir: "./data",
		},
		Codex: CodexConfig{
			MetaPath:      "/meta.json",
			HistoryPrefix: "/History",
			CreaturePath:  "/Creature.json",
			DropPath:      "/CreatureDrop.json",
			ItemPath:      "/Item.json",
			DefaultLang:   "en",
		},
	}
}
