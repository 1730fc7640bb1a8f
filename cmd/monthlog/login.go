package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/monthlog/models"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session and print its token",
		Long: `Log in and print the session token.

Export the token as MONTHLOG_TOKEN (or pass --token) so later submissions are
linked to your account.

Examples:
  monthlog login --email me@example.com --password hunter22`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			user, err := newClient().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return outputResult(cmd.OutOrStdout(), user, outputFmt)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func signupCmd() *cobra.Command {
	var req models.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and print its session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" || req.Password == "" {
				return errors.New("--email and --password are required")
			}
			user, err := newClient().Signup(cmd.Context(), req)
			if err != nil {
				return err
			}
			return outputResult(cmd.OutOrStdout(), user, outputFmt)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&req.Nickname, "nickname", "", "Display name (defaults to the email name)")

	return cmd
}
