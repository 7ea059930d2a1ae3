package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/catalog"
	"github.com/agenthub-labs/agenthub/internal/branding"
	"github.com/agenthub-labs/agenthub/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains a local registry of AI agent descriptors
(identity, capabilities, endpoints, pricing) and lets you register, validate,
and discover agents from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// openStore returns the catalog store at the configured location, honoring
// a configured schema override.
func openStore() *catalog.Store {
	if shape := config.SchemaPath(); shape != "" {
		return catalog.NewStoreWithShape(config.CatalogPath(), shape)
	}
	return catalog.NewStore(config.CatalogPath())
}
