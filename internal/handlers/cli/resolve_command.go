package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(resolutionService ports.ResolutionService) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "resolve <text...>",
		Short: "Resolve submitted input to its destination.",
		Long: `Classifies the input the way the address bar does on submit and prints
the destination. Arguments are joined with single spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := resolutionService.Commit(cmd.Context(), strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, result.Destination)
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", ui.KindColor(result.Kind), ui.AliasDestColor(result.Destination))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the destination.")
	return cmd
}
