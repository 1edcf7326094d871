package cli

import (
	"github.com/spf13/cobra"

	"cycleops/internal/domain"
)

// environmentsCmd lists the available environments
var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List all of the available environments",
}

var environmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available environments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		environments, err := a.Environments.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(environments) == 0 {
			return &domain.NotFoundError{Message: "no environments available"}
		}
		headers, rows := environmentRows(environments)
		return a.render(environments, headers, rows)
	},
}

func init() {
	environmentsCmd.AddCommand(environmentsListCmd)
}
