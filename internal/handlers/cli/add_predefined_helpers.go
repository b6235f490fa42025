package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type addOutcome struct {
	added   int
	updated int
	failed  int
}

func fetchAndFilterPredefined(cmd *cobra.Command, managementSvc ports.AliasManagementService) ([]alias.Alias, []alias.Alias, error) {
	validAliases, allLoadedAliases, err := managementSvc.GetFilteredPredefinedAliases(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get filtered predefined aliases: %w", err)
	}
	return validAliases, allLoadedAliases, nil
}

func addPredefinedAliases(cmd *cobra.Command, selected []alias.Alias, managementSvc ports.AliasManagementService) addOutcome {
	var outcome addOutcome
	for _, pa := range selected {
		created, err := managementSvc.SetAlias(cmd.Context(), pa.Name, pa.Destination)
		switch {
		case err != nil:
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error adding predefined alias '%s': %v", pa.Name, err)))
			outcome.failed++
		case created:
			outcome.added++
		default:
			// Another writer created it between filtering and now.
			outcome.updated++
		}
	}
	return outcome
}

func printAddPredefinedOutcome(out io.Writer, outcome addOutcome, skippedExisting int) {
	if outcome.added > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("\n%d predefined alias(es) added.", outcome.added)))
	}
	if outcome.updated > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d alias(es) already existed and were overwritten.", outcome.updated)))
	}
	if skippedExisting > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d predefined alias(es) were skipped because they already exist or are invalid.", skippedExisting)))
	}
	if outcome.failed > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d alias(es) failed to add (see details above).", outcome.failed)))
	}
	if outcome.added == 0 && outcome.updated == 0 {
		fmt.Fprintln(out, ui.WarningColor("\nNo predefined aliases were added."))
	}
}
