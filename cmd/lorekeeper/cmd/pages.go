package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kagimura/lorekeeper/internal/core/config"
	"github.com/kagimura/lorekeeper/internal/core/db"
	"github.com/kagimura/lorekeeper/internal/snapshot"
	"github.com/spf13/cobra"
)

var pagesDir string

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage the snapshot page mirror",
}

var pagesLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load snapshot files from a directory into the mirror",
	RunE:  runPagesLoad,
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mirrored pages",
	RunE:  runPagesList,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(pagesLoadCmd)
	pagesCmd.AddCommand(pagesListCmd)

	pagesLoadCmd.Flags().StringVar(&pagesDir, "dir", "", "directory of snapshot .json files")
	pagesLoadCmd.MarkFlagRequired("dir")
}

// openMirror connects to the page mirror named by --db-url, falling
// back to store.db_url from the config file.
func openMirror() (*sqlx.DB, *db.Queries, error) {
	target := dbURL
	if target == "" {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		target = cfg.Store.DBURL
	}
	if target == "" {
		return nil, nil, fmt.Errorf("--db-url required (or store.db_url in config)")
	}

	database, err := db.Open(target)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	queries, err := db.LoadQueries(database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return database, queries, nil
}

// runPagesLoad mirrors every .json file below --dir, keyed by its
// normalized path relative to the directory root.
func runPagesLoad(cmd *cobra.Command, args []string) error {
	database, queries, err := openMirror()
	if err != nil {
		return err
	}
	defer database.Close()

	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	count := 0

	err = filepath.WalkDir(pagesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		rel, err := filepath.Rel(pagesDir, path)
		if err != nil {
			return err
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		logical := snapshot.Normalize(filepath.ToSlash(rel))
		if _, err := queries.Exec("upsert-page", logical, string(body), fetchedAt); err != nil {
			return fmt.Errorf("failed to store %s: %w", logical, err)
		}
		count++
		logger.Debug("page mirrored", "path", logical, "bytes", len(body))
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("pages loaded", "dir", pagesDir, "pages", count)
	return nil
}

type pageInfo struct {
	Path  string `db:"path" json:"path"`
	Bytes int64  `db:"bytes" json:"bytes"`
}

func runPagesList(cmd *cobra.Command, args []string) error {
	database, queries, err := openMirror()
	if err != nil {
		return err
	}
	defer database.Close()

	var pages []pageInfo
	if err := queries.Select("list-pages", &pages); err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}
	return printJSON(pages)
}
