package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	migrateDryRun bool

	migrateCmd = &cobra.Command{
		Use:   "migrate <src> <dst>",
		Short: "Relocate a layout subtree with a single move",
		Args:  cobra.ExactArgs(2),
		Run:   migrate,
	}
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Log the intended move without touching the filesystem")

	rootCmd.AddCommand(migrateCmd)
}

func migrate(_ *cobra.Command, args []string) {
	if err := newManager().Migrate(args[0], args[1], migrateDryRun); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate")
	}
}
