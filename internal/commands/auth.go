package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/moodlog/internal/cli"
	"github.com/terraincognita07/moodlog/internal/client"
	"github.com/terraincognita07/moodlog/internal/session"
)

func addLogin(topLevel *cobra.Command, rt *runtime) {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session on this machine",
		Example: `
moodlog login --email mina@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := rt.readPassword()
			if err != nil && !errors.Is(err, cli.ErrEmptyInput) {
				return err
			}

			result, err := rt.api.Login(cmd.Context(), strings.TrimSpace(email), password)
			if err != nil {
				rt.printer.AlertError(loginAlertKey(err), err)
				return reported(err)
			}

			if err := rt.sessions.Save(session.Session{
				Token:    result.Token,
				UserID:   result.UserID,
				Username: result.Username,
				Email:    result.Email,
			}); err != nil {
				return err
			}

			name := result.Username
			if name == "" {
				name = result.Email
			}
			rt.printer.Println("auth.login_success", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	topLevel.AddCommand(cmd)
}

func loginAlertKey(err error) string {
	if errors.Is(err, client.ErrMissingCredentials) {
		return "auth.missing_credentials"
	}
	return alertKeyFor(err, "auth.login_failed")
}

func addLogout(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.sessions.Clear(); err != nil {
				return err
			}
			rt.printer.Println("auth.logout_success")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command, rt *runtime) {
	input := client.RegisterInput{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Example: `
moodlog register --email mina@example.com --username mina
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := rt.readPassword()
			if err != nil && !errors.Is(err, cli.ErrEmptyInput) {
				return err
			}
			input.Password = password

			if _, err := rt.api.Register(cmd.Context(), input); err != nil {
				key := alertKeyFor(err, "auth.register_failed")
				if errors.Is(err, client.ErrMissingCredentials) {
					key = "auth.missing_credentials"
				}
				rt.printer.AlertError(key, err)
				return reported(err)
			}
			rt.printer.Println("auth.register_success")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Username, "username", "", "display name")
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := rt.sessions.Load()
			if err != nil {
				rt.printer.Println("auth.not_logged_in")
				return reported(err)
			}
			rt.printer.Println("auth.whoami", current.Username, current.Email, current.UserID)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func (rt *runtime) readPassword() (string, error) {
	return cli.ReadPassword(rt.printer.T("prompt.password"), rt.in, rt.out)
}
