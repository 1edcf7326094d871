// Package cli provides the command-line interface for cycleops
package cli

// init registers all resource command groups on the root command
func init() {
	rootCmd.AddCommand(hostsCmd, hostgroupsCmd, servicesCmd, stacksCmd, setupsCmd, unitsCmd, environmentsCmd)
}
