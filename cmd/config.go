package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/config"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
	"github.com/Dima111000/shedule-zsm-1/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shedule-zsm-1 configuration",
	Long:  "View or edit your local settings, like the default group used by the query commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setGroup, _ := cmd.Flags().GetString("set-group")
		if setGroup != "" {
			dir, err := scraper.NewDirectory()
			if err != nil {
				return err
			}
			groups, err := dir.Groups()
			if err != nil {
				return fmt.Errorf("could not fetch the group list: %w", err)
			}

			var match *scraper.Group
			for i, g := range groups {
				if strings.EqualFold(g.Title, setGroup) || g.URL == setGroup {
					match = &groups[i]
					break
				}
			}
			if match == nil {
				return fmt.Errorf("no group matching %q; run 'shedule-zsm-1 groups' to see the list", setGroup)
			}

			cfg.GroupTitle = match.Title
			cfg.GroupURL = match.URL
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default group saved: %s (%s)\n", match.Title, match.URL)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-group", "s", "", "Set the default group by title or schedule URL")
}
