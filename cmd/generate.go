package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/s0up4200/hvrctl/gen"
)

var genOpts gen.Options

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Go client bindings from an OpenAPI document",
	Long: `Generate one Go method per operation of the hub server's OpenAPI document.

Method names are derived from the verb and path. A function mapping file
overrides names per path and verb, or skips an operation with "skip".
Generated files replace any *.gen.go files left in the output directory.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	RunE:              runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genOpts.SpecPath, "spec", "api/openapi.yaml", "OpenAPI document")
	generateCmd.Flags().StringVar(&genOpts.MappingPath, "mapping", "", "function mapping file")
	generateCmd.Flags().StringVarP(&genOpts.OutDir, "out", "o", "hvr", "output directory")
	generateCmd.Flags().StringVar(&genOpts.Package, "package", "hvr", "Go package name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.Info().
		Str("spec", genOpts.SpecPath).
		Str("mapping", genOpts.MappingPath).
		Msg("Generating client bindings")

	result, err := gen.NewGenerator(afero.NewOsFs(), logger).Run(genOpts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for _, path := range result.Removed {
		fmt.Printf("- removed %s\n", path)
	}
	fmt.Printf("✓ Generated %d endpoint methods in %d files under %s\n",
		result.Endpoints, len(result.Files), genOpts.OutDir)

	return nil
}
