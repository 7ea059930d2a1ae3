package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/config"
	"github.com/agenthub-labs/agenthub/internal/history"
	"github.com/agenthub-labs/agenthub/schema"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the AgentHub installation",
	Long:  `Run diagnostic checks on the AgentHub home directory, catalog, schema, and search history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		// Home directory.
		home := config.Dir()
		if info, err := os.Stat(home); err != nil {
			fmt.Fprintf(out, "[WARN] home directory %s missing (run '%s init')\n", home, rootCmd.Name())
		} else if !info.IsDir() {
			fmt.Fprintf(out, "[FAIL] %s exists but is not a directory\n", home)
			failed = true
		} else {
			fmt.Fprintf(out, "[ OK ] home directory %s\n", home)
		}

		// Config file is optional.
		if _, err := os.Stat(config.FilePath()); err != nil {
			fmt.Fprintf(out, "[INFO] no config file at %s (defaults in effect)\n", config.FilePath())
		} else {
			fmt.Fprintf(out, "[ OK ] config file %s\n", config.FilePath())
		}

		// Schema override, when configured, must load.
		if shape := config.SchemaPath(); shape != "" {
			if _, err := schema.NewFromFile(shape); err != nil {
				fmt.Fprintf(out, "[FAIL] schema override %s: %v\n", shape, err)
				failed = true
			} else {
				fmt.Fprintf(out, "[ OK ] schema override %s\n", shape)
			}
		}

		// Catalog document.
		if !checkCatalog(out) {
			failed = true
		}

		// Search history database.
		hist := history.Open(config.HistoryPath())
		if hist.Enabled() {
			fmt.Fprintf(out, "[ OK ] search history %s\n", hist.Path())
		} else {
			fmt.Fprintf(out, "[WARN] search history unavailable at %s\n", hist.Path())
		}
		hist.Close()

		// Rate limit settings.
		rl := config.RateLimit()
		if rl.Window <= 0 || rl.MaxRequests <= 0 {
			fmt.Fprintf(out, "[FAIL] discovery rate limit misconfigured (window %v, max %d)\n", rl.Window, rl.MaxRequests)
			failed = true
		} else {
			fmt.Fprintf(out, "[ OK ] discovery rate limit %d requests per %v\n", rl.MaxRequests, rl.Window)
		}

		if failed {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

// checkCatalog reports on the catalog document without mutating it.
func checkCatalog(out io.Writer) bool {
	path := config.CatalogPath()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "[WARN] catalog %s unreadable (run '%s init')\n", path, rootCmd.Name())
		return true
	}

	validator, err := newValidator()
	if err != nil {
		fmt.Fprintf(out, "[FAIL] loading schema: %v\n", err)
		return false
	}

	result, err := validator.Validate(data)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] catalog %s is not valid JSON: %v\n", path, err)
		return false
	}
	if !result.Valid {
		fmt.Fprintf(out, "[FAIL] catalog %s: %s\n", path, result.Message())
		return false
	}

	fmt.Fprintf(out, "[ OK ] catalog %s\n", path)
	return true
}
