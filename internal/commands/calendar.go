package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/moodlog/internal/client"
)

func addCalendar(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "List and edit daily entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCalendar(cmd, rt)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every recorded day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCalendar(cmd, rt)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show DATE",
		Short: "Select a day and show what is stored for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := rt.model()
			if err := model.Load(cmd.Context()); err != nil {
				return reported(err)
			}
			buffer := model.SelectDate(args[0])
			rt.printer.Println("calendar.selected", buffer.Date)
			if buffer.Comment == "" && buffer.Emoji == "" {
				rt.printer.Println("calendar.empty")
				return nil
			}
			rt.printer.PrintEntries([]client.CalendarEntry{{Date: buffer.Date, Comment: buffer.Comment, Emoji: buffer.Emoji}}, buffer.Date)
			return nil
		},
	})

	var comment, emoji string
	save := &cobra.Command{
		Use:   "save DATE",
		Short: "Record the emotion and comment for a day",
		Example: `
moodlog calendar save 2024-05-01 --emoji 😢 --comment "tired"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := rt.sessions.UserID()
			date := args[0]
			if err := rt.model().SaveEntry(cmd.Context(), userID, date, comment, emoji); err != nil {
				return reported(err)
			}
			rt.printer.Println("calendar.saved", date)
			return nil
		},
	}
	save.Flags().StringVar(&comment, "comment", "", "short note for the day")
	save.Flags().StringVar(&emoji, "emoji", "", "emotion emoji, optional")
	cmd.AddCommand(save)

	cmd.AddCommand(&cobra.Command{
		Use:   "comment DATE TEXT...",
		Short: "Replace only the comment of a recorded day",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if err := rt.model().UpdateComment(cmd.Context(), date, strings.Join(args[1:], " ")); err != nil {
				return reported(err)
			}
			rt.printer.Println("calendar.comment_updated", date)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "delete DATE",
		Aliases: []string{"rm"},
		Short:   "Delete the entry of a day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if err := rt.model().DeleteEntry(cmd.Context(), date); err != nil {
				return reported(err)
			}
			rt.printer.Println("calendar.deleted", date)
			return nil
		},
	})

	topLevel.AddCommand(cmd)
}

func listCalendar(cmd *cobra.Command, rt *runtime) error {
	model := rt.model()
	if err := model.Load(cmd.Context()); err != nil {
		return reported(err)
	}
	rt.printer.PrintEntries(model.Entries(), "")
	return nil
}
