package cli

import (
	"github.com/spf13/cobra"

	"cycleops/internal/domain"
)

// unitsCmd lists the available catalog units
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List all of the available units",
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		units, err := a.Units.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(units) == 0 {
			return &domain.NotFoundError{Message: "no units available"}
		}
		headers, rows := unitRows(units)
		return a.render(units, headers, rows)
	},
}

func init() {
	unitsCmd.AddCommand(unitsListCmd)
}
