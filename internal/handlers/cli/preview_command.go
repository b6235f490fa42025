package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the 'preview' subcommand.
func NewPreviewCommand(resolutionService ports.ResolutionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Show the live suggestions for partially typed input.",
		Long: `Prints what submitting the input would do right now, followed by every
other alias whose name starts with the input. With no input, every alias is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreviewCmd(cmd, args, resolutionService)
		},
	}
	return cmd
}

func runPreviewCmd(cmd *cobra.Command, args []string, resolutionService ports.ResolutionService) error {
	out := cmd.OutOrStdout()
	preview := resolutionService.Preview(cmd.Context(), strings.Join(args, " "))

	fmt.Fprintf(out, "%s %s\n", ui.KindColor(preview.Default.Kind), ui.AliasDestColor(preview.Default.Destination))
	if preview.Description != "" {
		fmt.Fprintln(out, ui.DetailColor(preview.Description))
	}

	if len(preview.Suggestions) == 0 {
		return nil
	}
	fmt.Fprintln(out, ui.HeaderColor("\nOther matching aliases:"))
	for i, s := range preview.Suggestions {
		fmt.Fprintf(out, "%s %s %s\n",
			ui.ListItemColor(fmt.Sprintf("%d.", i+1)),
			ui.AliasNameColor(s.Alias),
			ui.AliasDestColor(s.Destination))
	}
	return nil
}
