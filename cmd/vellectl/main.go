package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mariveldt/velle/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "vellectl",
		Short:         "Admin tasks for a Velle instance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join("data", "velle.db"), "path to the sqlite database")

	resetCmd := &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Generate a temporary password for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunResetPassword(dbPath, args[0])
		},
	}
	rootCmd.AddCommand(resetCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
