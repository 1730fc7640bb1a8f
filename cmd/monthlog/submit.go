package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/danielhkuo/monthlog/client"
	"github.com/danielhkuo/monthlog/form"
	"github.com/danielhkuo/monthlog/schema"
)

func submitCmd() *cobra.Command {
	var (
		city    string
		file    string
		dryRun  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a contribution for a city",
		Long: `Submit a contribution described in a YAML or JSON file.

The file uses the form's field names grouped by category. Fields left out
or set to their empty value are not sent.

Examples:
  # Submit digital and cost answers for Seoul
  monthlog submit --city seoul -f seoul.yaml

  # Show the payload that would be sent
  monthlog submit --city seoul -f seoul.yaml --dry-run

Example file:
  cityDigital:
    digital_satisfaction_score: 8
    wifi_access:
      rating: 4
  cityCost:
    monthly_rent: 850
    currency: USD`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if city == "" {
				return errors.New("--city is required")
			}
			if file == "" {
				return errors.New("-f is required")
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			values, err := loadContribution(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			if dryRun {
				if err := schema.Validate(values); err != nil {
					return describeError(err)
				}
				payload, err := values.Payload()
				if err != nil {
					return err
				}
				return outputResult(cmd.OutOrStdout(), payload, outputFmt)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			session := form.NewSession(city, newClient(),
				form.WithValues(values),
				form.WithLogger(cliLogger()),
			)
			defer session.Close()

			resp, err := session.Submit(ctx)
			if err != nil {
				return describeError(err)
			}
			return outputResult(cmd.OutOrStdout(), resp, outputFmt)
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "City slug (see 'monthlog cities')")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Contribution file (YAML or JSON)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload without sending it")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Give up after this long")

	return cmd
}

// loadContribution parses a YAML or JSON contribution file on top of the
// empty form. Unknown fields are rejected.
func loadContribution(data []byte) (schema.Contribution, error) {
	c := schema.DefaultContribution()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return schema.Contribution{}, err
	}
	return c, nil
}

// describeError expands validation failures to one field per line
func describeError(err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("contribution is invalid:\n  %s", strings.Join(verr.Messages(), "\n  "))
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Details) > 0 {
		return fmt.Errorf("%w:\n  %s", err, strings.Join(apiErr.Details, "\n  "))
	}
	return err
}
