package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cycleops/internal/domain"
	"cycleops/internal/service"
)

// hostgroupsCmd groups all hostgroup management commands
var hostgroupsCmd = &cobra.Command{
	Use:   "hostgroups",
	Short: "Manage your hostgroups",
}

var hostgroupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available hostgroups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		groups, err := a.Hostgroups.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			return &domain.NotFoundError{Message: "no hostgroups available"}
		}
		headers, rows := hostgroupRows(groups)
		return a.render(groups, headers, rows)
	},
}

var hostgroupsRetrieveCmd = &cobra.Command{
	Use:   "retrieve <hostgroup>",
	Short: "Retrieve the hostgroup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		group, err := a.Hostgroups.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		headers, rows := hostgroupRows([]domain.Hostgroup{*group})
		return a.render(group, headers, rows)
	},
}

var hostgroupsCreateFlags struct {
	name          string
	environmentID int
	hostIDs       []int
}

var hostgroupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a hostgroup with the specified option values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		err := a.Hostgroups.Create(cmd.Context(), service.HostgroupParams{
			Name:          hostgroupsCreateFlags.name,
			EnvironmentID: hostgroupsCreateFlags.environmentID,
			HostIDs:       hostgroupsCreateFlags.hostIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Hostgroup %s has been created", hostgroupsCreateFlags.name))
		return nil
	},
}

var hostgroupsUpdateFlags struct {
	name          string
	environmentID int
	hostIDs       []int
}

var hostgroupsUpdateCmd = &cobra.Command{
	Use:   "update <hostgroup>",
	Short: "Update the hostgroup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Hostgroups.Update(cmd.Context(), args[0], service.HostgroupParams{
			Name:          hostgroupsUpdateFlags.name,
			EnvironmentID: hostgroupsUpdateFlags.environmentID,
			HostIDs:       hostgroupsUpdateFlags.hostIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Hostgroup %s has been updated", args[0]))
		return nil
	},
}

var hostgroupsDeleteCmd = &cobra.Command{
	Use:   "delete <hostgroup>",
	Short: "Delete the hostgroup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		if err := a.Hostgroups.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Hostgroup %s has been deleted", args[0]))
		return nil
	},
}

func init() {
	hostgroupsCmd.AddCommand(hostgroupsListCmd, hostgroupsRetrieveCmd, hostgroupsCreateCmd, hostgroupsUpdateCmd, hostgroupsDeleteCmd)

	cf := hostgroupsCreateCmd.Flags()
	cf.StringVar(&hostgroupsCreateFlags.name, "name", "", "name of the hostgroup")
	cf.IntVar(&hostgroupsCreateFlags.environmentID, "environment-id", 0, "ID of the environment")
	cf.IntSliceVar(&hostgroupsCreateFlags.hostIDs, "host-id", nil, "ID of a host (repeatable)")
	_ = hostgroupsCreateCmd.MarkFlagRequired("name")

	uf := hostgroupsUpdateCmd.Flags()
	uf.StringVar(&hostgroupsUpdateFlags.name, "name", "", "name of the hostgroup")
	uf.IntVar(&hostgroupsUpdateFlags.environmentID, "environment-id", 0, "ID of the environment")
	uf.IntSliceVar(&hostgroupsUpdateFlags.hostIDs, "host-id", nil, "ID of a host (repeatable)")
}
