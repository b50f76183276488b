package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the lesson running right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveGroup(cmd)
		if err != nil {
			return err
		}

		tt, err := fetchTimetable(url)
		if err != nil {
			return err
		}

		a := schedule.NewEngine().CurrentLesson(tt)
		switch a.Kind {
		case schedule.KindOutsideBellSchedule:
			fmt.Println("Break time, or the school day is over.")
		case schedule.KindDayNotInTimetable:
			fmt.Println("It's the weekend.")
		case schedule.KindNoLessons:
			fmt.Println("No lesson is running right now.")
		default:
			fmt.Printf("Lesson %d is on now:\n  %s  %s\n", a.Period, a.Entries[0].TimeLabel, a.Entries[0].Lesson)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.Flags().StringP("group", "g", "", "Schedule page URL of the group to query")
}
