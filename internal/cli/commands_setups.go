package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"cycleops/internal/domain"
	"cycleops/internal/service"
)

// setupsCmd groups all setup management and deployment commands
var setupsCmd = &cobra.Command{
	Use:   "setups",
	Short: "Manage your setups and deployments",
}

var setupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available setups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		setups, err := a.Setups.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(setups) == 0 {
			return &domain.NotFoundError{Message: "no setups available"}
		}
		headers, rows := setupRows(setups)
		return a.render(setups, headers, rows)
	},
}

var setupsRetrieveCmd = &cobra.Command{
	Use:   "retrieve <setup>",
	Short: "Retrieve the setup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		setup, err := a.Setups.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		headers, rows := setupRows([]domain.Setup{*setup})
		return a.render(setup, headers, rows)
	},
}

var setupsCreateFlags struct {
	name          string
	stackID       int
	environmentID int
	hostIDs       []int
	hostgroupIDs  []int
	serviceIDs    []int
}

var setupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a setup with the specified option values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		err := a.Setups.Create(cmd.Context(), service.SetupParams{
			Name:          setupsCreateFlags.name,
			StackID:       setupsCreateFlags.stackID,
			EnvironmentID: setupsCreateFlags.environmentID,
			HostIDs:       setupsCreateFlags.hostIDs,
			HostgroupIDs:  setupsCreateFlags.hostgroupIDs,
			ServiceIDs:    setupsCreateFlags.serviceIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Setup %s has been created", setupsCreateFlags.name))
		return nil
	},
}

var setupsUpdateFlags struct {
	name          string
	stackID       int
	environmentID int
	hostIDs       []int
	hostgroupIDs  []int
	serviceIDs    []int
}

var setupsUpdateCmd = &cobra.Command{
	Use:   "update <setup>",
	Short: "Update the setup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Setups.Update(cmd.Context(), args[0], service.SetupParams{
			Name:          setupsUpdateFlags.name,
			StackID:       setupsUpdateFlags.stackID,
			EnvironmentID: setupsUpdateFlags.environmentID,
			HostIDs:       setupsUpdateFlags.hostIDs,
			HostgroupIDs:  setupsUpdateFlags.hostgroupIDs,
			ServiceIDs:    setupsUpdateFlags.serviceIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Setup %s has been updated", args[0]))
		return nil
	},
}

var setupsDeleteCmd = &cobra.Command{
	Use:   "delete <setup>",
	Short: "Delete the setup with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		if err := a.Setups.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Setup %s has been deleted", args[0]))
		return nil
	},
}

var setupsDeployFlags struct {
	wait bool
}

var setupsDeployCmd = &cobra.Command{
	Use:   "deploy <setup>",
	Short: "Deploy the setup with the given ID or name",
	Long: `Deploy the setup with the given ID or name.

With --wait, the command polls the created deployment job until it reaches a
terminal state and exits non-zero if the deployment fails or times out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		job, err := a.Setups.Deploy(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Setup %s has been queued for deployment (job %d)", args[0], job.ID))

		if !setupsDeployFlags.wait {
			return nil
		}

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Waiting for deployment..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
		)
		job, err = a.Waiter.Wait(cmd.Context(), job.ID, func(j *domain.Job) {
			bar.Describe(fmt.Sprintf("Deployment %s...", j.Status))
		})
		_ = bar.Finish()
		a.Terminal.Println()

		if err != nil {
			a.Terminal.Error(err.Error())
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Setup %s has been deployed", args[0]))
		return nil
	},
}

func init() {
	setupsCmd.AddCommand(setupsListCmd, setupsRetrieveCmd, setupsCreateCmd, setupsUpdateCmd, setupsDeleteCmd, setupsDeployCmd)

	cf := setupsCreateCmd.Flags()
	cf.StringVar(&setupsCreateFlags.name, "name", "", "name of the setup")
	cf.IntVar(&setupsCreateFlags.stackID, "stack-id", 0, "ID of the stack")
	cf.IntVar(&setupsCreateFlags.environmentID, "environment-id", 0, "ID of the environment")
	cf.IntSliceVar(&setupsCreateFlags.hostIDs, "host-id", nil, "ID of a host (repeatable)")
	cf.IntSliceVar(&setupsCreateFlags.hostgroupIDs, "hostgroup-id", nil, "ID of a hostgroup (repeatable)")
	cf.IntSliceVar(&setupsCreateFlags.serviceIDs, "service-id", nil, "ID of a service (repeatable)")
	_ = setupsCreateCmd.MarkFlagRequired("name")

	uf := setupsUpdateCmd.Flags()
	uf.StringVar(&setupsUpdateFlags.name, "name", "", "name of the setup")
	uf.IntVar(&setupsUpdateFlags.stackID, "stack-id", 0, "ID of the stack")
	uf.IntVar(&setupsUpdateFlags.environmentID, "environment-id", 0, "ID of the environment")
	uf.IntSliceVar(&setupsUpdateFlags.hostIDs, "host-id", nil, "ID of a host (repeatable)")
	uf.IntSliceVar(&setupsUpdateFlags.hostgroupIDs, "hostgroup-id", nil, "ID of a hostgroup (repeatable)")
	uf.IntSliceVar(&setupsUpdateFlags.serviceIDs, "service-id", nil, "ID of a service (repeatable)")

	setupsDeployCmd.Flags().BoolVar(&setupsDeployFlags.wait, "wait", false, "wait for the deployment to finish")
}
