package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/models"
	"github.com/dvora/yoman/internal/output"
)

var noteCmd = &cobra.Command{
	Use:   "note [text]",
	Short: "Add to today's note",
	Long: `Append a line to today's note, creating the day if needed.

With --replace, today's existing note is overwritten instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		replace, _ := cmd.Flags().GetBool("replace")

		engine := newEngine()

		if replace {
			day := todayDay(engine.Days())
			if day == nil {
				// no day yet, an append creates it with just this text
				if err := engine.AddDayNote(text); err != nil {
					output.Error("%v", err)
					return err
				}
			} else {
				engine.SetPending(day.ID, text)
				if err := engine.SaveDayNote(day.ID); err != nil {
					output.Error("%v", err)
					return err
				}
			}
			output.Success("note replaced")
			return nil
		}

		if err := engine.AddDayNote(text); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("note added")
		return nil
	},
}

// todayDay finds today's day in the snapshot, or nil.
func todayDay(days []models.Day) *models.Day {
	today := time.Now().Format("2006-01-02")
	for i := range days {
		if days[i].Date.Format("2006-01-02") == today {
			return &days[i]
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.Flags().Bool("replace", false, "Replace today's note instead of appending")
}
