package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weekly timetable to an ICS file",
	Long:  "Export the current week's timetable for a group to an ICS calendar file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveGroup(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		tt, err := fetchTimetable(url)
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(tt, time.Now(), file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported the week to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("group", "g", "", "Schedule page URL of the group to export")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
