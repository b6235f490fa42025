package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewClearCommand creates the 'clear' subcommand.
func NewClearCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored alias.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			count := len(aliasManagementService.ListAliases(cmd.Context()))
			if count == 0 {
				fmt.Fprintln(out, ui.InfoColor("No aliases to clear."))
				return nil
			}

			if !yes {
				confirmed, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete all %d aliases? (yes/no): ", count))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, ui.InfoColor("Aborted. No aliases were removed."))
					return nil
				}
			}

			if err := aliasManagementService.ClearAliases(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Removed %d alias(es).", count)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	return cmd
}
