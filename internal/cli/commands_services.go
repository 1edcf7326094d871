package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cycleops/internal/domain"
	"cycleops/internal/service"
)

// servicesCmd groups all service management commands
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage your services",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available services",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		services, err := a.Services.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(services) == 0 {
			return &domain.NotFoundError{Message: "no services available"}
		}
		headers, rows := serviceRows(services)
		return a.render(services, headers, rows)
	},
}

var servicesRetrieveCmd = &cobra.Command{
	Use:   "retrieve <service>",
	Short: "Retrieve the service with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		svc, err := a.Services.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		headers, rows := serviceRows([]domain.Service{*svc})
		return a.render(svc, headers, rows)
	},
}

var servicesCreateFlags struct {
	name        string
	description string
	unitID      int
	variables   []string
}

var servicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service with the specified option values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		// Variable tokens are validated before any request is issued.
		vars, err := service.ParseAssignments(servicesCreateFlags.variables)
		if err != nil {
			return err
		}
		err = a.Services.Create(cmd.Context(), service.ServiceParams{
			Name:        servicesCreateFlags.name,
			Description: servicesCreateFlags.description,
			UnitID:      servicesCreateFlags.unitID,
		}, vars)
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Service %s has been created", servicesCreateFlags.name))
		return nil
	},
}

var servicesUpdateFlags struct {
	name        string
	description string
	unitID      int
	variables   []string
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update <service>",
	Short: "Update the service with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		vars, err := service.ParseAssignments(servicesUpdateFlags.variables)
		if err != nil {
			return err
		}
		err = a.Services.Update(cmd.Context(), args[0], service.ServiceParams{
			Name:        servicesUpdateFlags.name,
			Description: servicesUpdateFlags.description,
			UnitID:      servicesUpdateFlags.unitID,
		}, vars)
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Service %s has been updated", args[0]))
		return nil
	},
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete <service>",
	Short: "Delete the service with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		if err := a.Services.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Service %s has been deleted", args[0]))
		return nil
	},
}

var servicesCreateContainerFlags struct {
	name  string
	image string
	ports []string
	env   []string
}

var servicesCreateContainerCmd = &cobra.Command{
	Use:   "create-container <service>",
	Short: "Append a container to the service's variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Services.CreateContainer(cmd.Context(), args[0], service.ContainerParams{
			Name:  servicesCreateContainerFlags.name,
			Image: servicesCreateContainerFlags.image,
			Ports: servicesCreateContainerFlags.ports,
			Env:   servicesCreateContainerFlags.env,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Container %s has been added to service %s", servicesCreateContainerFlags.name, args[0]))
		return nil
	},
}

var servicesUpdateContainerFlags struct {
	name  string
	image string
	ports []string
	env   []string
}

var servicesUpdateContainerCmd = &cobra.Command{
	Use:   "update-container <service>",
	Short: "Update a named container inside the service's variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Services.UpdateContainer(cmd.Context(), args[0], service.ContainerParams{
			Name:  servicesUpdateContainerFlags.name,
			Image: servicesUpdateContainerFlags.image,
			Ports: servicesUpdateContainerFlags.ports,
			Env:   servicesUpdateContainerFlags.env,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Container %s of service %s has been updated", servicesUpdateContainerFlags.name, args[0]))
		return nil
	},
}

func init() {
	servicesCmd.AddCommand(servicesListCmd, servicesRetrieveCmd, servicesCreateCmd, servicesUpdateCmd,
		servicesDeleteCmd, servicesCreateContainerCmd, servicesUpdateContainerCmd)

	cf := servicesCreateCmd.Flags()
	cf.StringVar(&servicesCreateFlags.name, "name", "", "name of the service")
	cf.StringVar(&servicesCreateFlags.description, "description", "", "description of the service")
	cf.IntVar(&servicesCreateFlags.unitID, "unit-id", 0, "ID of the unit")
	cf.StringArrayVar(&servicesCreateFlags.variables, "variable", nil, "variable key-value pair (e.g. containers.0.image=nginx:1.23)")
	_ = servicesCreateCmd.MarkFlagRequired("name")
	_ = servicesCreateCmd.MarkFlagRequired("unit-id")

	uf := servicesUpdateCmd.Flags()
	uf.StringVar(&servicesUpdateFlags.name, "name", "", "name of the service")
	uf.StringVar(&servicesUpdateFlags.description, "description", "", "description of the service")
	uf.IntVar(&servicesUpdateFlags.unitID, "unit-id", 0, "ID of the unit")
	uf.StringArrayVar(&servicesUpdateFlags.variables, "variable", nil, "variable key-value pair (e.g. containers.0.image=nginx:1.23)")

	ccf := servicesCreateContainerCmd.Flags()
	ccf.StringVar(&servicesCreateContainerFlags.name, "name", "", "name of the container")
	ccf.StringVar(&servicesCreateContainerFlags.image, "image", "", "container image reference")
	ccf.StringArrayVar(&servicesCreateContainerFlags.ports, "port", nil, "port mapping (e.g. 80:80, repeatable)")
	ccf.StringArrayVar(&servicesCreateContainerFlags.env, "env", nil, "environment entry KEY=VALUE (repeatable)")
	_ = servicesCreateContainerCmd.MarkFlagRequired("name")
	_ = servicesCreateContainerCmd.MarkFlagRequired("image")

	ucf := servicesUpdateContainerCmd.Flags()
	ucf.StringVar(&servicesUpdateContainerFlags.name, "name", "", "name of the container")
	ucf.StringVar(&servicesUpdateContainerFlags.image, "image", "", "container image reference")
	ucf.StringArrayVar(&servicesUpdateContainerFlags.ports, "port", nil, "port mapping (e.g. 80:80, repeatable)")
	ucf.StringArrayVar(&servicesUpdateContainerFlags.env, "env", nil, "environment entry KEY=VALUE (repeatable)")
	_ = servicesUpdateContainerCmd.MarkFlagRequired("name")
}
