package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type reminderLine struct {
	ID       string `json:"id"`
	DogID    string `json:"dogId"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	DDay     string `json:"dDay"`
}

func newRemindersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "List today's pending reminders by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			today := a.Store.GetTodayReminders()
			items := make([]reminderLine, 0, len(today))
			lines := make([]string, 0, len(today))
			for _, r := range today {
				item := reminderLine{
					ID:       r.ID,
					DogID:    r.DogID,
					Title:    r.Title,
					Priority: string(r.Priority),
					DDay:     a.Store.DDay(r.DueDate),
				}
				items = append(items, item)
				lines = append(lines, fmt.Sprintf("[%s] %-6s %s", item.DDay, item.Priority, item.Title))
			}
			if len(lines) == 0 {
				lines = append(lines, "no reminders for today")
			}
			return newFormatter(cmd, rootOpts).success(items, lines...)
		},
	}
}
