package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treekit/treekit/config"
)

var (
	cleanupArgs struct {
		profile string
		yes     bool
	}

	cleanupCmd = &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every layout entry, children first",
		Run:   cleanup,
	}
)

func init() {
	cleanupCmd.Flags().StringVar(&cleanupArgs.profile, "profile", "", "Path to the layout profile file")
	cleanupCmd.MarkFlagRequired("profile")
	cleanupCmd.Flags().BoolVar(&cleanupArgs.yes, "yes", false, "Skip the interactive confirmation prompt")

	rootCmd.AddCommand(cleanupCmd)
}

func cleanup(*cobra.Command, []string) {
	profile, err := config.Load(cleanupArgs.profile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load profile")
	}

	confirm := cleanupArgs.yes
	if !confirm {
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete all layout entries under %s?", profile.Root),
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			logrus.WithError(err).Fatal("Failed to read confirmation")
		}
	}

	// the manager enforces the gate again; an unconfirmed call deletes
	// nothing
	if err := newManager().Cleanup(profile.Root, profile.Layout, confirm); err != nil {
		logrus.WithError(err).Fatal("Failed to clean up layout")
	}

	if confirm {
		logrus.WithField("base", profile.Root).Info("Layout cleaned up")
	}
}
