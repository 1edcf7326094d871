package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cycleops/internal/domain"
	"cycleops/internal/service"
)

// hostsCmd groups all host management commands
var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Manage your hosts",
}

var hostsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available hosts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		hosts, err := a.Hosts.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(hosts) == 0 {
			return &domain.NotFoundError{Message: "no hosts available"}
		}
		headers, rows := hostRows(hosts)
		return a.render(hosts, headers, rows)
	},
}

var hostsRetrieveCmd = &cobra.Command{
	Use:   "retrieve <host>",
	Short: "Retrieve the host with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		host, err := a.Hosts.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		headers, rows := hostRows([]domain.Host{*host})
		return a.render(host, headers, rows)
	},
}

var hostsCreateFlags struct {
	name          string
	ip            string
	environmentID int
	jumpHost      string
	hostgroupIDs  []int
}

var hostsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a host with the specified option values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		err := a.Hosts.Create(cmd.Context(), service.HostParams{
			Name:          hostsCreateFlags.name,
			IP:            hostsCreateFlags.ip,
			EnvironmentID: hostsCreateFlags.environmentID,
			JumpHost:      hostsCreateFlags.jumpHost,
			HostgroupIDs:  hostsCreateFlags.hostgroupIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Host %s has been created", hostsCreateFlags.name))
		return nil
	},
}

var hostsUpdateFlags struct {
	name          string
	ip            string
	environmentID int
	jumpHost      string
	hostgroupIDs  []int
}

var hostsUpdateCmd = &cobra.Command{
	Use:   "update <host>",
	Short: "Update the host with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Hosts.Update(cmd.Context(), args[0], service.HostParams{
			Name:          hostsUpdateFlags.name,
			IP:            hostsUpdateFlags.ip,
			EnvironmentID: hostsUpdateFlags.environmentID,
			JumpHost:      hostsUpdateFlags.jumpHost,
			HostgroupIDs:  hostsUpdateFlags.hostgroupIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Host %s has been updated", args[0]))
		return nil
	},
}

var hostsDeleteCmd = &cobra.Command{
	Use:   "delete <host>",
	Short: "Delete the host with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		if err := a.Hosts.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Host %s has been deleted", args[0]))
		return nil
	},
}

func init() {
	hostsCmd.AddCommand(hostsListCmd, hostsRetrieveCmd, hostsCreateCmd, hostsUpdateCmd, hostsDeleteCmd)

	cf := hostsCreateCmd.Flags()
	cf.StringVar(&hostsCreateFlags.name, "name", "", "name of the host")
	cf.StringVar(&hostsCreateFlags.ip, "ip", "", "IP of the host")
	cf.IntVar(&hostsCreateFlags.environmentID, "environment-id", 0, "ID of the environment")
	cf.StringVar(&hostsCreateFlags.jumpHost, "jump-host", "false", "whether the host is a jump host (true, false)")
	cf.IntSliceVar(&hostsCreateFlags.hostgroupIDs, "hostgroup-id", nil, "ID of a hostgroup (repeatable)")
	_ = hostsCreateCmd.MarkFlagRequired("name")
	_ = hostsCreateCmd.MarkFlagRequired("ip")
	_ = hostsCreateCmd.MarkFlagRequired("environment-id")

	uf := hostsUpdateCmd.Flags()
	uf.StringVar(&hostsUpdateFlags.name, "name", "", "name of the host")
	uf.StringVar(&hostsUpdateFlags.ip, "ip", "", "IP of the host")
	uf.IntVar(&hostsUpdateFlags.environmentID, "environment-id", 0, "ID of the environment")
	uf.StringVar(&hostsUpdateFlags.jumpHost, "jump-host", "", "whether the host is a jump host (true, false)")
	uf.IntSliceVar(&hostsUpdateFlags.hostgroupIDs, "hostgroup-id", nil, "ID of a hostgroup (repeatable)")
}
