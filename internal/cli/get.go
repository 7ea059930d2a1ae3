package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var getJSON bool

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a registered agent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()

		agent, ok, err := store.GetAgent(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no agent with id %q", args[0])
		}

		if getJSON {
			data, err := json.MarshalIndent(agent, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:           %s\n", agent.ID)
		fmt.Fprintf(out, "Name:         %s\n", agent.Name)
		fmt.Fprintf(out, "Version:      %s\n", agent.Version)
		fmt.Fprintf(out, "Description:  %s\n", agent.Description)
		fmt.Fprintf(out, "Capabilities: %s\n", strings.Join(agent.Capabilities, ", "))
		if len(agent.Tags) > 0 {
			fmt.Fprintf(out, "Tags:         %s\n", strings.Join(agent.Tags, ", "))
		}
		fmt.Fprintf(out, "API:          %s\n", agent.Endpoints.API)
		if agent.Endpoints.WebSocket != "" {
			fmt.Fprintf(out, "WebSocket:    %s\n", agent.Endpoints.WebSocket)
		}
		if agent.Pricing != nil {
			fmt.Fprintf(out, "Pricing:      %s\n", agent.Pricing.Model)
			units := make([]string, 0, len(agent.Pricing.Rates))
			for unit := range agent.Pricing.Rates {
				units = append(units, unit)
			}
			sort.Strings(units)
			for _, unit := range units {
				fmt.Fprintf(out, "  %s: %g\n", unit, agent.Pricing.Rates[unit])
			}
		}
		return nil
	},
}
