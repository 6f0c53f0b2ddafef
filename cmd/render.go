package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treekit/treekit/config"
	"github.com/treekit/treekit/tree"
)

var (
	renderProfile string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print a tree summary of the layout",
		Run:   render,
	}
)

func init() {
	renderCmd.Flags().StringVar(&renderProfile, "profile", "", "Path to the layout profile file")
	renderCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(renderCmd)
}

func render(*cobra.Command, []string) {
	profile, err := config.Load(renderProfile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load profile")
	}

	if logColorDisabled {
		color.NoColor = true
	}

	fmt.Println(color.CyanString(profile.Root))
	fmt.Print(tree.Summary(profile.Layout))
}
