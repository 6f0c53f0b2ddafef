package cmd

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treekit/treekit/config"
)

var (
	pathsProfile string

	pathsCmd = &cobra.Command{
		Use:   "paths",
		Short: "Print the flattened key-to-path map of the layout",
		Run:   paths,
	}
)

func init() {
	pathsCmd.Flags().StringVar(&pathsProfile, "profile", "", "Path to the layout profile file")
	pathsCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(pathsCmd)
}

func paths(*cobra.Command, []string) {
	profile, err := config.Load(pathsProfile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load profile")
	}

	flat, err := newManager().FlatPaths(profile.Root, profile.Layout, profile.Separator)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to flatten layout")
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, flat[key])
	}
}
