package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/objschema/objschema/loader"
)

// NewDictCommand creates the dict command.
func NewDictCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dict <file> <object-type> <values>",
		Short: "Name positional values by the properties of an object type",
		Long: `Read values as a JSON array and print them as a JSON object keyed by the
property names of the object type, in declaration order.`,
		Example: `  objschema dict schema.yaml Person '[1, "Ada", null]'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}

			values, err := loader.Decode([]byte(args[2]), loader.JSON)
			if err != nil {
				return err
			}

			result, err := db.ParseFile(args[0])
			if err != nil {
				return err
			}
			defer result.Release()

			dict, err := result.Dict(args[1], values)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dict)
		},
	}
}
