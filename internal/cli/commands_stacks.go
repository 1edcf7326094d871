package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cycleops/internal/domain"
	"cycleops/internal/service"
)

// stacksCmd groups all stack management commands
var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Manage your stacks",
}

var stacksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all of the available stacks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		stacks, err := a.Stacks.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(stacks) == 0 {
			return &domain.NotFoundError{Message: "no stacks available"}
		}
		headers, rows := stackRows(stacks)
		return a.render(stacks, headers, rows)
	},
}

var stacksRetrieveCmd = &cobra.Command{
	Use:   "retrieve <stack>",
	Short: "Retrieve the stack with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		stack, err := a.Stacks.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		headers, rows := stackRows([]domain.Stack{*stack})
		return a.render(stack, headers, rows)
	},
}

var stacksCreateFlags struct {
	name        string
	description string
	unitIDs     []int
}

var stacksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a stack with the specified option values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		err := a.Stacks.Create(cmd.Context(), service.StackParams{
			Name:        stacksCreateFlags.name,
			Description: stacksCreateFlags.description,
			UnitIDs:     stacksCreateFlags.unitIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Stack %s has been created", stacksCreateFlags.name))
		return nil
	},
}

var stacksUpdateFlags struct {
	name        string
	description string
	unitIDs     []int
}

var stacksUpdateCmd = &cobra.Command{
	Use:   "update <stack>",
	Short: "Update the stack with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		err := a.Stacks.Update(cmd.Context(), args[0], service.StackParams{
			Name:        stacksUpdateFlags.name,
			Description: stacksUpdateFlags.description,
			UnitIDs:     stacksUpdateFlags.unitIDs,
		})
		if err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Stack %s has been updated", args[0]))
		return nil
	},
}

var stacksDeleteCmd = &cobra.Command{
	Use:   "delete <stack>",
	Short: "Delete the stack with the given ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := App(cmd)
		if err := a.Stacks.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.Terminal.Success(fmt.Sprintf("Stack %s has been deleted", args[0]))
		return nil
	},
}

func init() {
	stacksCmd.AddCommand(stacksListCmd, stacksRetrieveCmd, stacksCreateCmd, stacksUpdateCmd, stacksDeleteCmd)

	cf := stacksCreateCmd.Flags()
	cf.StringVar(&stacksCreateFlags.name, "name", "", "name of the stack")
	cf.StringVar(&stacksCreateFlags.description, "description", "", "description of the stack")
	cf.IntSliceVar(&stacksCreateFlags.unitIDs, "unit-id", nil, "ID of a unit (repeatable)")
	_ = stacksCreateCmd.MarkFlagRequired("name")

	uf := stacksUpdateCmd.Flags()
	uf.StringVar(&stacksUpdateFlags.name, "name", "", "name of the stack")
	uf.StringVar(&stacksUpdateFlags.description, "description", "", "description of the stack")
	uf.IntSliceVar(&stacksUpdateFlags.unitIDs, "unit-id", nil, "ID of a unit (repeatable)")
}
