// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/inhuman/yc-inventory/cmd/yc-inventory/handlers"
)

// Root returns the root command. It implements the Ansible dynamic inventory
// protocol: exactly one of --list or --host is required.
func Root() *cobra.Command {
	var (
		list bool
		host string
	)

	cmd := &cobra.Command{
		Use:   "yc-inventory (--list | --host NAME)",
		Short: "Ansible dynamic inventory for Yandex Cloud compute instances",
		Long: `Ansible dynamic inventory for Yandex Cloud compute instances.

Hosts are grouped by availability zone and by their ansible_group label.

Environment:
  TF_VAR_yc_iam_token or YC_TOKEN        IAM token (yc iam create-token)
  TF_VAR_yc_folder_id or YC_FOLDER_ID    folder to list instances from
  YC_INVENTORY_LOG                       log level on stderr (default WARN)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return handlers.List(cmd.Context(), cmd.OutOrStdout())
			}
			return handlers.Host(cmd.Context(), cmd.OutOrStdout(), host)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "output to stdout a JSON object that contains all the groups to be managed")
	cmd.Flags().StringVar(&host, "host", "", "output to stdout a JSON object, either empty or containing variables")
	cmd.MarkFlagsMutuallyExclusive("list", "host")
	cmd.MarkFlagsOneRequired("list", "host")

	cmd.AddCommand(Export())
	cmd.AddCommand(Version())

	return cmd
}
