package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func citiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List the city catalog",
		Long: `List every city known to the API with its slug and id.

Examples:
  # List cities
  monthlog cities

  # Output as YAML
  monthlog cities -o yaml`,
		Args: cobra.NoArgs,
		RunE: runCities,
	}

	return cmd
}

func runCities(cmd *cobra.Command, args []string) error {
	catalog, err := newClient().FetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	return outputResult(cmd.OutOrStdout(), catalog, outputFmt)
}

func cityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city [slug]",
		Short: "Show a city with aggregated stats",
		Long: `Show one city and the stats computed from its contributions.

Examples:
  monthlog city chiang-mai`,
		Args: cobra.ExactArgs(1),
		RunE: runCity,
	}

	return cmd
}

func runCity(cmd *cobra.Command, args []string) error {
	detail, err := newClient().GetCity(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("city %s: %w", args[0], err)
	}

	return outputResult(cmd.OutOrStdout(), detail, outputFmt)
}
