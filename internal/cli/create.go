package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/agenthub-labs/agenthub/internal/scaffold"
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	createName         string
	createVersion      string
	createDescription  string
	createCapabilities []string
	createTags         []string
	createAPI          string
	createOutput       string
)

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Display name (default: the id)")
	createCmd.Flags().StringVar(&createVersion, "version", "0.1.0", "Initial version")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Short description")
	createCmd.Flags().StringSliceVar(&createCapabilities, "capability", nil, "Capability (repeatable)")
	createCmd.Flags().StringSliceVar(&createTags, "tag", nil, "Tag (repeatable)")
	createCmd.Flags().StringVar(&createAPI, "api", "", "API endpoint URL")
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Output file (default: ./<id>.yaml)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Scaffold a starter agent manifest",
	Long: `Create a starter agent manifest from the built-in template.

Examples:
  agenthub create translator --name Translator --capability translate
  agenthub create echo -o manifests/echo.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !idPattern.MatchString(id) {
			return fmt.Errorf("invalid agent id %q: must be lowercase letters, digits, and hyphens", id)
		}

		data := scaffold.NewManifestData(id)
		if createName != "" {
			data.Name = createName
		}
		if cmd.Flags().Changed("version") {
			data.Version = createVersion
		}
		if createDescription != "" {
			data.Description = createDescription
		}
		if len(createCapabilities) > 0 {
			data.Capabilities = createCapabilities
		}
		if len(createTags) > 0 {
			data.Tags = createTags
		}
		if createAPI != "" {
			data.API = createAPI
		}

		output := createOutput
		if output == "" {
			output = id + ".yaml"
		}

		result, err := scaffold.Generate(data, output)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.Path)
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintf(cmd.OutOrStdout(), "  1. Edit %s and point endpoints.api at the real agent\n", result.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "  2. Run '%s add %s' to register it\n", rootCmd.Name(), result.Path)
		return nil
	},
}
