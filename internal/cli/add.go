package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/manifest"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <manifest>",
	Short: "Register an agent from a manifest file",
	Long: `Register a new agent in the catalog from a YAML (or JSON) manifest.

The manifest describes a single agent: id, name, version, description,
capabilities, endpoints, and optional tags and pricing. The agent id must
not already be registered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}

		// A malformed version is worth flagging but is not a registration
		// error; the catalog shape has the final say.
		if err := manifest.CheckVersion(agent.Version); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		store := openStore()
		if err := store.AddAgent(agent); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added agent %s (%s v%s)\n", agent.ID, agent.Name, agent.Version)
		return nil
	},
}
