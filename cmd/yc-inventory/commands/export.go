package commands

import (
	"github.com/spf13/cobra"

	"github.com/inhuman/yc-inventory/cmd/yc-inventory/handlers"
)

// Export returns the command writing a static YAML inventory.
func Export() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory as a static Ansible YAML file",
		Example: `  # Print to stdout
  yc-inventory export

  # Write to a file
  yc-inventory export -o ~/ansible/inventory.yml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Export(cmd.Context(), cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, - or empty for stdout")

	return cmd
}
