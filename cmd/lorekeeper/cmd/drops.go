package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kagimura/lorekeeper/internal/types"
	"github.com/spf13/cobra"
)

var (
	dropsCreature string
	dropsLang     string
	dropsOut      string
)

var dropsCmd = &cobra.Command{
	Use:   "drops",
	Short: "Resolve a creature's drop tables into level brackets",
	RunE:  runDrops,
}

func init() {
	rootCmd.AddCommand(dropsCmd)
	dropsCmd.Flags().StringVar(&dropsCreature, "creature", "", "creature id")
	dropsCmd.Flags().StringVar(&dropsLang, "lang", "", "display language (defaults to codex.default_lang)")
	dropsCmd.Flags().StringVar(&dropsOut, "out", "", "write the report to a file instead of stdout")
	dropsCmd.MarkFlagRequired("creature")
}

// dropsReport is the upload artifact for one resolution run. The
// generated_at timestamp comes from the run id, so report and logs
// agree on when the run started.
type dropsReport struct {
	RunID       types.RunID          `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Creature    types.CreatureRecord `json:"creature"`
	Drops       []types.LevelBracket `json:"drops"`
}

func runDrops(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.Close()

	lang := dropsLang
	if lang == "" {
		lang = s.cfg.Codex.DefaultLang
	}

	record, err := s.creature.ResolveCreature(dropsCreature)
	if err != nil {
		return fmt.Errorf("creature %s: %w", dropsCreature, err)
	}

	drops := s.creature.ResolveDrops(dropsCreature, lang)
	if drops == nil {
		drops = []types.LevelBracket{}
	}
	logger.Info("drops resolved", "creature", dropsCreature, "lang", lang, "brackets", len(drops))

	report := dropsReport{
		RunID:       runID,
		GeneratedAt: types.RunIDTime(runID).UTC(),
		Creature:    record,
		Drops:       drops,
	}

	if dropsOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(dropsOut, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", "path", dropsOut)
		return nil
	}
	return printJSON(report)
}
