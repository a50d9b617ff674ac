package cmd

import (
	"github.com/spf13/cobra"
)

var (
	historyFile      string
	historyID        string
	historyFieldPath string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Walk an entity across snapshot versions",
}

var historyFieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Per-version values of a single field",
	RunE:  runHistoryField,
}

var historyObjectCmd = &cobra.Command{
	Use:   "object",
	Short: "Per-version entries with introduced-field provenance",
	RunE:  runHistoryObject,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyFieldCmd)
	historyCmd.AddCommand(historyObjectCmd)

	historyCmd.PersistentFlags().StringVar(&historyFile, "file", "", "logical snapshot path, e.g. /Creature.json")
	historyCmd.PersistentFlags().StringVar(&historyID, "id", "", "entity id")
	historyCmd.MarkPersistentFlagRequired("file")
	historyCmd.MarkPersistentFlagRequired("id")

	historyFieldCmd.Flags().StringVar(&historyFieldPath, "path", "", "dotted field path, e.g. stats.atk")
	historyFieldCmd.MarkFlagRequired("path")
}

func runHistoryField(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.registry.Load(); err != nil {
		logger.Warn("provenance metadata unavailable, no versions to walk", "err", err)
	}

	timeline := s.history.FieldHistory(historyFile, historyID, historyFieldPath)
	logger.Info("field history resolved", "file", historyFile, "id", historyID, "field", historyFieldPath, "versions", len(timeline))
	return printJSON(timeline)
}

func runHistoryObject(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.registry.Load(); err != nil {
		logger.Warn("provenance metadata unavailable, no versions to walk", "err", err)
	}

	timeline := s.history.ObjectHistory(historyFile, historyID)
	logger.Info("object history resolved", "file", historyFile, "id", historyID, "versions", len(timeline))
	return printJSON(timeline)
}
