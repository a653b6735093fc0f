package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/procurement_tracker/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "procurement",
		Short: "Operator tooling for the procurement tracker",
		Long: `procurement runs schema migrations and lets an administrator inspect orders,
cancel them and mark reception confirmations without going through the HTTP API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.OrderCmd())
	rootCmd.AddCommand(cli.ReceptionCmd())
	rootCmd.AddCommand(cli.TokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
