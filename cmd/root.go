package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/config"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

var rootCmd = &cobra.Command{
	Use:   "shedule-zsm-1",
	Short: "A Telegram bot and CLI for ZSM nr 1 Bydgoszcz timetables",
	Long: `shedule-zsm-1 scrapes the ZSM nr 1 Bydgoszcz schedule pages and answers
timetable queries: lessons for a day, today's lessons, and the lesson
running right now. It works as a CLI, a TUI, and a Telegram bot.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveGroup returns the schedule URL to query: the --group flag when
// given, otherwise the saved default from the config file.
func resolveGroup(cmd *cobra.Command) (string, error) {
	url, _ := cmd.Flags().GetString("group")
	if url != "" {
		return url, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.GroupURL == "" {
		return "", fmt.Errorf("no group selected: pass --group or run 'shedule-zsm-1 config'")
	}
	return cfg.GroupURL, nil
}

// fetchTimetable downloads the timetable behind a spinner.
func fetchTimetable(url string) (*scraper.Timetable, error) {
	client := scraper.NewClient()

	var tt *scraper.Timetable
	var err error

	_ = spinner.New().
		Title("Fetching timetable...").
		Action(func() {
			tt, err = client.FetchTimetable(url)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable: %w", err)
	}
	return tt, nil
}
