package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/discovery"
	"github.com/agenthub-labs/agenthub/internal/config"
	"github.com/agenthub-labs/agenthub/internal/history"
)

var (
	searchCategories []string
	searchTags       []string
	searchPage       int
	searchLimit      int
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Discover agents in the catalog",
	Long: `Search the catalog for agents.

The query matches agent names (case-insensitive substring). Use --category
to require a capability and --tag to require a tag; repeating a filter flag
matches any of its values, while different filters must all hold. Results
come back a page at a time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchCategories, "category", nil, "Filter by capability (repeatable, matches any)")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "Filter by tag (repeatable, matches any)")
	searchCmd.Flags().IntVar(&searchPage, "page", discovery.DefaultPage, "Result page (1-based)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", discovery.DefaultLimit, "Results per page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := discovery.Query{
		Categories: searchCategories,
		Tags:       searchTags,
		Page:       searchPage,
		Limit:      searchLimit,
	}
	if len(args) > 0 {
		query.Text = args[0]
	}

	engine := discovery.NewEngine(openStore(), config.RateLimit())

	start := time.Now()
	result, err := engine.Search(query)
	if err != nil {
		return err
	}

	// Log the search locally. History never makes search fail.
	hist := history.Open(config.HistoryPath())
	defer hist.Close()
	hist.Record(history.Entry{
		Query:      query.Text,
		Categories: query.Categories,
		Tags:       query.Tags,
		Results:    result.Total,
		TookMS:     time.Since(start).Milliseconds(),
	})

	if searchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if result.Total == 0 {
		msg := "No agents found"
		if query.Text != "" {
			msg += fmt.Sprintf(" matching %q", query.Text)
		}
		if len(searchCategories) > 0 {
			msg += fmt.Sprintf(" with --category=%v", searchCategories)
		}
		if len(searchTags) > 0 {
			msg += fmt.Sprintf(" with --tag=%v", searchTags)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tDESCRIPTION")
	for _, a := range result.Items {
		desc := a.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Version, desc)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d: %d of %d agent(s)", result.Page, len(result.Items), result.Total)
	if result.HasMore {
		fmt.Fprintf(cmd.OutOrStdout(), " (more available, try --page %d)", result.Page+1)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
