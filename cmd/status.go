package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/hvrctl/filter"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hub server status",
	Long:  `Test the connection to the hub server and display its clock, hubs and licenses.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fmt.Printf("Testing connection to hub server at %s...\n", client.BaseURL())

	start := time.Now()
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("✓ Login successful! (%s)\n", time.Since(start).Round(time.Millisecond))

	var clock, hubs, licenses any
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clock, err = client.GetHubserverClock(ctx)
		if err != nil {
			return fmt.Errorf("failed to get server clock: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		hubs, err = client.GetHubs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list hubs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		licenses, err = client.GetLicenses(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list licenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("\nHub Server Status:\n")
	fmt.Printf("- Clock: %v\n", clock)

	hubNames := names(hubs)
	fmt.Printf("- Total hubs: %d\n", len(hubNames))
	for _, name := range hubNames {
		fmt.Printf("  • %s\n", name)
	}

	fmt.Printf("- Total licenses: %d\n", len(names(licenses)))

	return nil
}

// names lists the member names of an object result, or the positions of
// a list result
func names(result any) []string {
	items, err := filter.Items(result)
	if err != nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		if item.Name != "" {
			out[i] = item.Name
		} else {
			out[i] = fmt.Sprint(item.Index)
		}
	}
	return out
}
