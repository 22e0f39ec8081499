package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/moodlog/internal/client"
)

func addStats(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count recorded emotions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := rt.api.FetchEmotionStats(cmd.Context())
			if err != nil {
				rt.printer.AlertError(alertKeyFor(err, "stats.failed"), err)
				return reported(err)
			}
			rt.printer.PrintStats(stats)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

// alertKeyFor picks the alert for a non-calendar failure: missing session,
// unreachable server, or the command's own key.
func alertKeyFor(err error, fallback string) string {
	var transportErr *client.TransportError
	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		return "calendar.missing_user"
	case errors.As(err, &transportErr):
		return "auth.network"
	default:
		return fallback
	}
}
