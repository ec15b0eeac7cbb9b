package cli

import (
	"errors"
	"fmt"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *options) *cobra.Command {
	var (
		email    string
		password string
		register bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			credentials := models.Credentials{Email: email, Password: password}
			signIn := a.auth.Login
			if register {
				signIn = a.auth.Register
			}
			result := signIn(cmd.Context(), credentials)
			if !result.OK() {
				return result.Error()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", result.Value.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	cmd.Flags().BoolVar(&register, "register", false, "create the account instead of signing in")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if st := a.auth.Logout(); st.Error != "" {
				return errors.New(st.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.auth.Ensure(cmd.Context())
			if !st.IsAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", st.User.Email, st.User.ID)
			return nil
		},
	}
}
