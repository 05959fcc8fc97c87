package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shenikar/crime_stats/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crimectl",
		Short: "crimectl - maintenance and reporting for the crime statistics service",
		Long: `crimectl applies database migrations, imports the city open-data CSV files
and prints dashboard reports from the terminal.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
