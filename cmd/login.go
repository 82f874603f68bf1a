package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the hub server",
	Long:  `Log in with the configured credentials (or through setup mode) and report when the issued token expires.`,
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	fmt.Printf("Logging in to %s...\n", client.BaseURL())

	tok, err := client.TokenSource(cmd.Context()).Token()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	if client.SetupMode() {
		fmt.Println("- Mode: setup")
	} else {
		fmt.Printf("- User: %s\n", cfg.Hub.Username)
	}
	fmt.Printf("- Token expires: %s (in %s)\n",
		tok.Expiry.Local().Format(time.RFC3339),
		time.Until(tok.Expiry).Round(time.Second))

	return nil
}
