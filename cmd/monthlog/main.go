// monthlog is a command-line client for the Monthlog API.
//
// Usage:
//
//	monthlog cities
//	monthlog city seoul
//	monthlog login --email me@example.com --password ...
//	monthlog submit --city seoul -f contribution.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3318"

var (
	version   = "dev"
	outputFmt string
	apiURL    string
	token     string
	verbose   bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monthlog",
		Short: "Browse cities and contribute to Monthlog",
		Long: `monthlog talks to a Monthlog API server.

It lists the city catalog, shows per-city stats, and submits contributions
described in YAML or JSON files. Only fields that differ from the empty form
are sent.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("MONTHLOG_API_URL", defaultAPIURL), "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("MONTHLOG_TOKEN"), "Session token")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")

	// Add subcommands
	rootCmd.AddCommand(citiesCmd())
	rootCmd.AddCommand(cityCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(signupCmd())
	rootCmd.AddCommand(submitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
