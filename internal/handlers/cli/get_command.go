package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/spf13/cobra"
)

// ErrAliasNotFound is returned by 'get' so the process exits non-zero.
var ErrAliasNotFound = errors.New("alias not found")

// NewGetCommand creates the 'get' subcommand.
func NewGetCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <alias>",
		Short: "Print the destination of an alias.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, found := aliasManagementService.GetAlias(cmd.Context(), args[0])
			if !found {
				printNearMatches(cmd.ErrOrStderr(), args[0], aliasManagementService.ListAliases(cmd.Context()))
				return fmt.Errorf("%w: %s", ErrAliasNotFound, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), destination)
			return nil
		},
	}
	return cmd
}
