package commands

import (
	"github.com/spf13/cobra"

	"github.com/objschema/objschema/internal/codegen"
)

// NewGenCommand creates the gen command.
func NewGenCommand() *cobra.Command {
	var pkg, outDir string

	cmd := &cobra.Command{
		Use:   "gen <file>",
		Short: "Generate Go model structs from a schema document",
		Example: `  objschema gen schema.yaml
  objschema gen schema.yaml --package zoo --out-dir internal/zoo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}

			result, err := db.ParseFile(args[0])
			if err != nil {
				return err
			}
			defer result.Release()

			if outDir == "" {
				source, err := codegen.GenerateModels(result, pkg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(source)
				return err
			}

			filename, err := codegen.WriteModels(result, pkg, outDir)
			if err != nil {
				return err
			}
			printf(cmd.ErrOrStderr(), "Create file: %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "package", codegen.DefaultPackage, "Go package name of the generated file")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory to write the generated file to (default: stdout)")
	return cmd
}
