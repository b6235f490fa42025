package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/spf13/cobra"
)

var (
	resolutionCommands = map[string]bool{"resolve": true, "preview": true}
	managementCommands = map[string]bool{
		"set": true, "get": true, "list": true, "remove": true, "clear": true, "add-predefined": true,
	}
)

func NewRootCommand(
	version string,
	resolutionService ports.ResolutionService,
	managementService ports.AliasManagementService,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aliasbar",
		Short: "aliasbar turns address-bar input into a destination.",
		Long: `aliasbar resolves what you type into an address bar: URLs open directly,
your own aliases expand to their destinations, port numbers go to localhost,
arithmetic is evaluated, and everything else becomes a web search.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if resolutionService == nil && resolutionCommands[cmd.Name()] {
				return fmt.Errorf("resolution service not initialized for command %s", cmd.Name())
			}
			if managementService == nil && managementCommands[cmd.Name()] {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewResolveCommand(resolutionService))
	rootCmd.AddCommand(NewPreviewCommand(resolutionService))
	rootCmd.AddCommand(NewSetCommand(managementService))
	rootCmd.AddCommand(NewGetCommand(managementService))
	rootCmd.AddCommand(NewListCommand(managementService))
	rootCmd.AddCommand(NewRemoveCommand(managementService))
	rootCmd.AddCommand(NewClearCommand(managementService))
	rootCmd.AddCommand(NewAddPredefinedCommand(managementService))

	return rootCmd
}
