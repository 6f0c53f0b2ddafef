package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treekit/treekit/config"
)

var (
	validateProfile string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check that every layout entry exists on disk",
		Run:   validateLayout,
	}
)

func init() {
	validateCmd.Flags().StringVar(&validateProfile, "profile", "", "Path to the layout profile file")
	validateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(validateCmd)
}

func validateLayout(*cobra.Command, []string) {
	profile, err := config.Load(validateProfile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load profile")
	}

	if err := newManager().Validate(profile.Root, profile.Layout); err != nil {
		logrus.WithError(err).Fatal("Layout validation failed")
	}

	logrus.WithField("base", profile.Root).Info("Layout validated")
}
