package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display objschema version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			printf(cmd.OutOrStdout(), "objschema v%s\n", version)
			printf(cmd.OutOrStdout(), "Object schema parser and validator\n")
		},
	}
}
