package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/config"
	"github.com/agenthub-labs/agenthub/schema"
)

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Validate against an alternate JSON Schema file")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog document against the schema",
	Long: `Validate a catalog document against the agent catalog JSON Schema.

Without arguments the configured catalog is checked. Pass a file to check
a document somewhere else, and --schema to use an alternate schema.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.CatalogPath()
		if len(args) > 0 {
			path = args[0]
		}

		validator, err := newValidator()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading catalog %s: %w", path, err)
		}

		result, err := validator.Validate(data)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "[ OK ] %s is a valid agent catalog\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[FAIL] %d validation issue(s):\n", len(result.Violations))
		for _, v := range result.Violations {
			if v.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", v.Path, v.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", v.Message)
			}
		}
		return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Violations))
	},
}

// newValidator picks the schema source: the --schema flag wins, then the
// configured override, then the embedded shape.
func newValidator() (*schema.Validator, error) {
	if validateSchemaPath != "" {
		return schema.NewFromFile(validateSchemaPath)
	}
	if configured := config.SchemaPath(); configured != "" {
		return schema.NewFromFile(configured)
	}
	return schema.New()
}
