package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <alias>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := args[0]
			// The lookup only picks the message; it fails open, so the delete always runs.
			_, found := aliasManagementService.GetAlias(cmd.Context(), name)
			if err := aliasManagementService.RemoveAlias(cmd.Context(), name); err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No alias named '%s'; nothing to remove.", name)))
				printNearMatches(out, name, aliasManagementService.ListAliases(cmd.Context()))
				return nil
			}
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Removed alias %s", ui.AliasNameColor(name))))
			return nil
		},
	}
	return cmd
}
