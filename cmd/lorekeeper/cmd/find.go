package cmd

import (
	"fmt"
	"strings"

	"github.com/kagimura/lorekeeper/internal/types"
	"github.com/spf13/cobra"
)

var (
	findFile  string
	findField string
	findValue string
	findFold  bool
	findAll   bool
	findAnyOf string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find entries in a snapshot document by field value",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findFile, "file", "", "logical snapshot path, e.g. /Creature.json")
	findCmd.Flags().StringVar(&findField, "field", "id", "dotted field path to match")
	findCmd.Flags().StringVar(&findValue, "value", "", "value to match against")
	findCmd.Flags().BoolVar(&findFold, "fold", false, "case-insensitive match for string fields")
	findCmd.Flags().BoolVar(&findAll, "all", false, "return every matching entry")
	findCmd.Flags().StringVar(&findAnyOf, "any-of", "", "comma-separated field priority list, overrides --field")
	findCmd.MarkFlagRequired("file")
	findCmd.MarkFlagRequired("value")
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.Close()

	if findAll {
		entries := s.engine.FindAllByField(findFile, findField, findValue, findFold)
		logger.Info("find completed", "file", findFile, "field", findField, "matches", len(entries))
		return printJSON(entries)
	}

	var entry types.Entry
	if findAnyOf != "" {
		entry, err = s.engine.FindByAnyField(findFile, splitList(findAnyOf), findValue, findFold)
	} else {
		entry, err = s.engine.FindByField(findFile, findField, findValue, findFold)
	}
	if err != nil {
		return fmt.Errorf("no matching entry in %s: %w", findFile, err)
	}
	return printJSON(entry)
}

// splitList parses a comma-separated flag value, dropping empty parts.
func splitList(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
