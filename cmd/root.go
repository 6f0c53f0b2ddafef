package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/treekit/treekit/storage"
	"github.com/treekit/treekit/tree"
)

var (
	logLevel         string
	logColorDisabled bool

	existsCacheSize   int
	existsCacheExpiry time.Duration

	rootCmd = &cobra.Command{
		Use:   "treekit",
		Short: "Declaratively materialize, validate, tear down and relocate directory layouts",
		PersistentPreRun: func(*cobra.Command, []string) {
			initLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logrus.InfoLevel.String(), "Log level")
	rootCmd.PersistentFlags().BoolVar(&logColorDisabled, "log-color-disabled", false, "Force to disable colorful logs")
	rootCmd.PersistentFlags().IntVar(&existsCacheSize, "exists-cache-size", 0, "Cache existence checks with an LRU of this size (0 disables)")
	rootCmd.PersistentFlags().DurationVar(&existsCacheExpiry, "exists-cache-expiry", time.Minute, "Expiry of cached existence checks")
}

func initLog() {
	formatter := logrus.TextFormatter{
		FullTimestamp: true,
	}

	if logColorDisabled {
		formatter.DisableColors = true
	} else {
		formatter.ForceColors = true
	}

	logrus.SetFormatter(&formatter)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).WithField("level", logLevel).Fatal("Failed to parse log level")
	}

	logrus.SetLevel(level)
}

// newManager builds a layout manager over the local filesystem, optionally
// decorated with an existence cache.
func newManager() *tree.Manager {
	var adapter storage.Adapter = storage.NewLocal()
	if existsCacheSize > 0 {
		adapter = storage.NewCached(adapter, storage.CachedConfig{
			CacheSize: existsCacheSize,
			Expiry:    existsCacheExpiry,
		})
	}

	return tree.NewManager(adapter)
}

// Execute is the command line entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
