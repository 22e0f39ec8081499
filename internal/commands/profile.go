package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func addProfile(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-name NAME",
		Short: "Change the display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := rt.api.UpdateUsername(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				rt.printer.AlertError(alertKeyFor(err, "profile.failed"), err)
				return reported(err)
			}
			if err := rt.sessions.SetUsername(profile.Username); err != nil {
				return err
			}
			rt.printer.Println("profile.updated", profile.Username)
			return nil
		},
	})

	topLevel.AddCommand(cmd)
}
