package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the agent registry",
	Long: `Create the AgentHub home directory and an empty agent catalog.

Init is idempotent: an existing valid catalog is left untouched. A catalog
that cannot be read is replaced with a fresh empty document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDir(); err != nil {
			return err
		}

		store := openStore()
		if err := store.Initialize(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized agent registry at %s\n", store.Path())
		return nil
	},
}
