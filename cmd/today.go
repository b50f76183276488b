package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveGroup(cmd)
		if err != nil {
			return err
		}

		tt, err := fetchTimetable(url)
		if err != nil {
			return err
		}

		printAnswer(schedule.NewEngine().LessonsForToday(tt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringP("group", "g", "", "Schedule page URL of the group to query")
}

func printAnswer(a schedule.Answer) {
	switch a.Kind {
	case schedule.KindDayNotInTimetable:
		fmt.Println("That day is not in the timetable (weekend?).")
	case schedule.KindNoLessons:
		fmt.Printf("%s:\nNo lessons.\n", a.Day)
	default:
		fmt.Printf("%s:\n", a.Day)
		for _, e := range a.Entries {
			fmt.Printf("  %s  %s\n", e.TimeLabel, e.Lesson)
		}
	}
}
