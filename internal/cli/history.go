package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/config"
	"github.com/agenthub-labs/agenthub/internal/history"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded searches")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent discovery searches",
	Long:  `Show the local log of recent discovery searches, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hist := history.Open(config.HistoryPath())
		defer hist.Close()

		if !hist.Enabled() {
			fmt.Fprintln(cmd.OutOrStdout(), "Search history is unavailable.")
			return nil
		}

		if historyClear {
			if err := hist.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared.")
			return nil
		}

		entries, err := hist.Recent(historyLimit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No searches recorded yet.")
			return nil
		}

		if historyJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WHEN\tQUERY\tCATEGORIES\tTAGS\tRESULTS")
		for _, e := range entries {
			query := e.Query
			if query == "" {
				query = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				query,
				dashJoin(e.Categories),
				dashJoin(e.Tags),
				e.Results,
			)
		}
		return w.Flush()
	},
}

func dashJoin(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}
