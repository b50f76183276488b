package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List all known groups and their schedule URLs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := scraper.NewDirectory()
		if err != nil {
			return err
		}

		var groups []scraper.Group
		var fetchErr error

		_ = spinner.New().
			Title("Fetching the group list...").
			Action(func() {
				groups, fetchErr = dir.Groups()
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch groups: %w", fetchErr)
		}

		if len(groups) == 0 {
			fmt.Println("No groups found. The plan index page may have changed.")
			return nil
		}

		for _, g := range groups {
			fmt.Printf("%-12s %s\n", g.Title, g.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
