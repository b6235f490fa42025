package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// selectViaFZF is swapped out in tests so selection falls back to numeric input.
var selectViaFZF = selectAliasesViaFZF

// NewAddPredefinedCommand creates the command for adding predefined aliases.
func NewAddPredefinedCommand(managementSvc ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-predefined",
		Short: "Interactively add aliases from the predefined starter set.",
		Long: `Loads the predefined aliases (bundled, or from predefined.path in the config),
drops the ones you already have, lets you pick which to add, and stores them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			in := bufio.NewReader(cmd.InOrStdin())

			validAliases, allLoadedAliases, err := fetchAndFilterPredefined(cmd, managementSvc)
			if err != nil {
				return err
			}

			if len(allLoadedAliases) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No predefined aliases found. Check predefined.path in your config."))
				return nil
			}

			if len(validAliases) == 0 {
				fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d predefined aliases were found, but all of them already exist or are invalid.", len(allLoadedAliases))))
				return nil
			}

			fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d predefined aliases. %d are available for selection:", len(allLoadedAliases), len(validAliases))))

			var selected []alias.Alias
			var selectionErr error

			fzfSelected, fzfErr := selectViaFZF(validAliases)
			switch {
			case fzfErr == nil:
				selected = fzfSelected
			case errors.Is(fzfErr, ErrFZFNotFound):
				fmt.Fprintln(out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
				selected, selectionErr = selectAliasesNumerically(in, out, validAliases)
			case errors.Is(fzfErr, ErrFZFCancelled):
				fmt.Fprintln(out, ui.InfoColor("Selection cancelled via fzf. No aliases will be added."))
				return nil
			default:
				fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", fzfErr)))
				selected, selectionErr = selectAliasesNumerically(in, out, validAliases)
			}

			if selectionErr != nil {
				return fmt.Errorf("error during alias selection: %w", selectionErr)
			}

			if len(selected) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be added."))
				return nil
			}

			confirmed, err := confirmFrom(in, out, fmt.Sprintf("\nAdd these %d selected aliases? (yes/no): ", len(selected)))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, ui.InfoColor("Aborted. No aliases were added."))
				return nil
			}

			outcome := addPredefinedAliases(cmd, selected, managementSvc)
			printAddPredefinedOutcome(out, outcome, len(allLoadedAliases)-len(validAliases))
			return nil
		},
	}
	return cmd
}
