package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hubsCmd represents the hubs command
var hubsCmd = &cobra.Command{
	Use:   "hubs",
	Short: "Inspect hubs on the hub server",
}

var hubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hubs, optionally filtered",
	Long: `List the hubs defined on the hub server.

Each hub is matched by name, with its properties available as variables:
  hvrctl hubs list --filter 'istartsWith(name, "prod")'
  hvrctl hubs list --preset production`,
	Args: cobra.NoArgs,
	RunE: runHubsList,
}

var hubsGetCmd = &cobra.Command{
	Use:   "get HUB",
	Short: "Show one hub",
	Args:  cobra.ExactArgs(1),
	RunE:  runHubsGet,
}

func init() {
	rootCmd.AddCommand(hubsCmd)
	hubsCmd.AddCommand(hubsListCmd)
	hubsCmd.AddCommand(hubsGetCmd)

	addFilterFlags(hubsListCmd)
}

func runHubsList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	hubs, err := client.GetHubs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list hubs: %w", err)
	}

	hubs, err = filters.Apply(cmd.Context(), f, hubs)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), hubs)
}

func runHubsGet(cmd *cobra.Command, args []string) error {
	hub, err := client.GetHubsHub(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get hub '%s': %w", args[0], err)
	}
	return printResult(cmd.OutOrStdout(), hub)
}
