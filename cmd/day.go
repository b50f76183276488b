package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Print the lessons for one weekday",
	Long:  "Print the lessons for a weekday given as --day 0..4 (0 = Monday) or by its Polish name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveGroup(cmd)
		if err != nil {
			return err
		}

		dayIndex, _ := cmd.Flags().GetInt("day")
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			dayIndex = -1
			for i, dn := range schedule.DayNames {
				if dn == name {
					dayIndex = i
					break
				}
			}
			if dayIndex < 0 {
				return fmt.Errorf("unknown day name %q", name)
			}
		}

		tt, err := fetchTimetable(url)
		if err != nil {
			return err
		}

		printAnswer(schedule.LessonsForDay(tt, dayIndex))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringP("group", "g", "", "Schedule page URL of the group to query")
	dayCmd.Flags().IntP("day", "d", 0, "Day index, 0 = Monday .. 4 = Friday")
	dayCmd.Flags().StringP("name", "n", "", "Day name (e.g. Wtorek); overrides --day")
}
