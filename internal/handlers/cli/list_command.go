package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all stored aliases.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, aliasManagementService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	aliasManagementService ports.AliasManagementService,
) error {
	out := cmd.OutOrStdout()
	aliases := aliasManagementService.ListAliases(cmd.Context())

	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases stored yet. Add one with 'aliasbar set <alias> <destination>'."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Stored Aliases (%d):", len(aliases))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Destination"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Destination})
	}
	table.Render()
	return nil
}
