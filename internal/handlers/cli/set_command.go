package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSetCommand creates the 'set' subcommand.
func NewSetCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <alias> <destination>",
		Short: "Create or update an alias.",
		Long:  `Stores the alias with the given destination, replacing any previous destination.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			created, err := aliasManagementService.SetAlias(cmd.Context(), args[0], args[1])
			if err != nil {
				if errors.Is(err, alias.ErrInvalidArgument) {
					return fmt.Errorf("alias and destination must both be non-empty: %w", err)
				}
				return err
			}

			verb := "Updated"
			if created {
				verb = "Created"
			}
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%s alias %s -> %s", verb, ui.AliasNameColor(args[0]), ui.AliasDestColor(args[1]))))
			return nil
		},
	}
	return cmd
}
