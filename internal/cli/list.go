package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/catalog"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered agents",
	Long:  `List every agent in the catalog in registration order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()

		agents, err := store.ListAgents()
		if err != nil {
			return err
		}

		if len(agents) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No agents registered yet.")
			return nil
		}

		if listJSON {
			return printAgentsJSON(cmd, agents)
		}
		return printAgentsTable(cmd, agents)
	},
}

func printAgentsTable(cmd *cobra.Command, agents []catalog.Agent) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tCAPABILITIES")
	for _, a := range agents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Version, strings.Join(a.Capabilities, ","))
	}
	return w.Flush()
}

func printAgentsJSON(cmd *cobra.Command, agents []catalog.Agent) error {
	data, err := json.MarshalIndent(agents, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
