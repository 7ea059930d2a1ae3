package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/catalog"
)

var (
	updateName         string
	updateVersion      string
	updateDescription  string
	updateCapabilities []string
	updateTags         []string
	updateAPI          string
	updateWebSocket    string
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New display name")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "New version")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCmd.Flags().StringSliceVar(&updateCapabilities, "capabilities", nil, "Replace capabilities (comma-separated)")
	updateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "Replace tags (comma-separated)")
	updateCmd.Flags().StringVar(&updateAPI, "api", "", "New API endpoint URL")
	updateCmd.Flags().StringVar(&updateWebSocket, "websocket", "", "New WebSocket endpoint URL")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a registered agent",
	Long: `Update one or more fields of a registered agent.

Only the fields named by flags change; everything else keeps its current
value. The updated catalog is schema-checked before it is saved, so an
update that would corrupt the catalog is rejected without touching disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		store := openStore()

		var patch catalog.AgentPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("version") {
			patch.Version = &updateVersion
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescription
		}
		if cmd.Flags().Changed("capabilities") {
			patch.Capabilities = &updateCapabilities
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = &updateTags
		}

		// Endpoints replace wholesale in a patch, so merge flag values over
		// the agent's current endpoints rather than dropping the one not
		// named.
		if cmd.Flags().Changed("api") || cmd.Flags().Changed("websocket") {
			current, ok, err := store.GetAgent(id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no agent with id %q", id)
			}
			endpoints := current.Endpoints
			if cmd.Flags().Changed("api") {
				endpoints.API = updateAPI
			}
			if cmd.Flags().Changed("websocket") {
				endpoints.WebSocket = updateWebSocket
			}
			patch.Endpoints = &endpoints
		}

		if err := store.UpdateAgent(id, patch); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated agent %s\n", id)
		return nil
	},
}
