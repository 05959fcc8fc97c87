package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shenikar/crime_stats/pkg/migrator"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply all pending migrations for the incidents and neighborhoods tables.
The source defaults to MIGRATIONS_PATH (file://migrations).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			if source == "" {
				source = cfg.MigrationsPath
			}
			return migrator.Up(cfg.DatabaseURL, source, log)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "migrations source URL (overrides MIGRATIONS_PATH)")
	return cmd
}
