package cli

import (
	"fmt"

	"github.com/SscSPs/procurement_tracker/internal/platform/config"
	"github.com/SscSPs/procurement_tracker/pkg/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or roll back schema migrations",
	Long:  "up applies every pending migration; down rolls back the most recent one.",
	Args:  cobra.ExactArgs(1),
	ValidArgs: []string{
		string(database.Up),
		string(database.Down),
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := database.Direction(args[0])
		if dir != database.Up && dir != database.Down {
			return fmt.Errorf("unknown direction %q, expected up or down", args[0])
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		changed, err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, dir, logger())
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s migrated %s\n", color.New(color.FgGreen).Sprint("✓"), dir)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", color.New(color.FgYellow).Sprint("no change"))
		}
		return nil
	},
}

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	return migrateCmd
}
