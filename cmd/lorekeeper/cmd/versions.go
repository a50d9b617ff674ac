package cmd

import (
	"github.com/kagimura/lorekeeper/internal/provenance"
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List known snapshot versions and provenance rules",
	RunE:  runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.registry.Load(); err != nil {
		logger.Warn("provenance metadata unavailable, output degraded", "err", err)
	}

	return printJSON(struct {
		Versions []string          `json:"versions"`
		Rules    []provenance.Rule `json:"rules"`
	}{
		Versions: s.registry.Versions(),
		Rules:    s.registry.Rules(),
	})
}
