package commands

import (
	"retire-mcs/internal/simulation"

	"github.com/spf13/cobra"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default market assumptions as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), simulation.DefaultMarketParameters())
		},
	}
}
