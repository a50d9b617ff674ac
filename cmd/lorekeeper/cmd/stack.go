package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kagimura/lorekeeper/internal/core/config"
	"github.com/kagimura/lorekeeper/internal/core/db"
	"github.com/kagimura/lorekeeper/internal/creature"
	"github.com/kagimura/lorekeeper/internal/history"
	"github.com/kagimura/lorekeeper/internal/provenance"
	"github.com/kagimura/lorekeeper/internal/query"
	"github.com/kagimura/lorekeeper/internal/snapshot"
	"github.com/kagimura/lorekeeper/internal/types"
)

// stack wires the resolution components for one command invocation.
type stack struct {
	cfg      *config.Config
	database *sqlx.DB
	store    *snapshot.Store
	engine   *query.Engine
	registry *provenance.Registry
	history  *history.Resolver
	creature *creature.Resolver
}

// buildStack loads configuration, applies flag overrides, and
// assembles the resolution pipeline on the selected backend.
func buildStack() (*stack, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dataDir != "" {
		cfg.Store.Backend = "fs"
		cfg.Store.DataDir = dataDir
	}
	if dbURL != "" {
		cfg.Store.Backend = "db"
		cfg.Store.DBURL = dbURL
	}

	s := &stack{cfg: cfg}

	source, err := s.buildSource()
	if err != nil {
		return nil, err
	}

	s.store = snapshot.NewStore(source, snapshot.WithLogger(logger))
	s.engine = query.NewEngine(s.store)
	s.registry = provenance.NewRegistry(source, cfg.Codex.MetaPath)
	s.history = history.NewResolver(s.engine, s.registry, cfg.Codex.HistoryPrefix)
	s.creature = creature.NewResolver(s.engine, creature.Paths{
		Creature: cfg.Codex.CreaturePath,
		Drop:     cfg.Codex.DropPath,
		Item:     cfg.Codex.ItemPath,
	})
	return s, nil
}

func (s *stack) buildSource() (snapshot.Source, error) {
	switch s.cfg.Store.Backend {
	case "fs":
		return snapshot.NewDirSource(s.cfg.Store.DataDir), nil
	case "db":
		database, err := db.Open(s.cfg.Store.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		queries, err := db.LoadQueries(database)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to load queries: %w", err)
		}
		s.database = database
		return snapshot.NewDBSource(queries), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedBackend, s.cfg.Store.Backend)
	}
}

// Close releases the mirror connection when the db backend is in use.
func (s *stack) Close() {
	if s.database != nil {
		s.database.Close()
	}
}
