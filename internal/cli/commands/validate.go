package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate schema documents",
		Long: `Parse every schema document and report whether it is valid.

Documents are YAML, JSON or TOML, chosen by file extension.`,
		Example: `  objschema validate schema.yaml
  objschema validate models/*.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				result, err := db.ParseFile(path)
				if err != nil {
					failed++
					printf(cmd.ErrOrStderr(), "FAIL  %v\n", err)
					continue
				}
				printf(cmd.OutOrStdout(), "ok    %s (%d object types)\n", path, len(result.Schema))
				result.Release()
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
			}
			return nil
		},
	}
}
