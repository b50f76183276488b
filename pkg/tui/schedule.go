package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/Dima111000/shedule-zsm-1/pkg/bells"
	"github.com/Dima111000/shedule-zsm-1/pkg/config"
	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

// RunScheduleTUI runs the interactive flow for one query action:
// "today", "day", "current" or "bells".
func RunScheduleTUI(action string) error {
	if action == "bells" {
		fmt.Println(accentStyle.Render("Bell schedule"))
		for i, iv := range bells.All() {
			fmt.Printf("%d. %s\n", i+1, iv)
		}
		return nil
	}

	groupURL, groupTitle, err := pickGroup()
	if err != nil {
		return err
	}

	dayIndex := -1
	if action == "day" {
		var picked int
		var dayOptions []huh.Option[int]
		for i, name := range schedule.DayNames {
			dayOptions = append(dayOptions, huh.NewOption(name, i))
		}
		dayForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("Which day?").
					Options(dayOptions...).
					Value(&picked),
			),
		).WithTheme(GetTheme())
		if err := dayForm.Run(); err != nil {
			return err
		}
		dayIndex = picked
	}

	client := scraper.NewClient()
	var tt *scraper.Timetable
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching timetable for %s...", groupTitle)).
		Action(func() {
			tt, fetchErr = client.FetchTimetable(groupURL)
		}).
		Run()

	if fetchErr != nil {
		return fetchErr
	}

	engine := schedule.NewEngine()
	switch action {
	case "day":
		printAnswer(schedule.LessonsForDay(tt, dayIndex))
	case "current":
		printCurrent(engine.CurrentLesson(tt))
	default:
		printAnswer(engine.LessonsForToday(tt))
	}

	return nil
}

// pickGroup returns the group to query: the saved default if one exists,
// otherwise an interactive picker over the live group list.
func pickGroup() (url, title string, err error) {
	cfg, _ := config.Load()
	if cfg != nil && cfg.GroupURL != "" {
		return cfg.GroupURL, cfg.GroupTitle, nil
	}

	dir, err := scraper.NewDirectory()
	if err != nil {
		return "", "", err
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
		return "", "", fmt.Errorf("failed to fetch groups: %w", fetchErr)
	}
	if len(groups) == 0 {
		fmt.Println(errorStyle.Render("No groups found on the plan index page!"))
		return "", "", fmt.Errorf("empty group list")
	}

	var groupOptions []huh.Option[string]
	for _, g := range groups {
		groupOptions = append(groupOptions, huh.NewOption(g.Title, g.URL))
	}

	groupForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick your group").
				Description("Start typing to filter.").
				Options(groupOptions...).
				Value(&url).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := groupForm.Run(); err != nil {
		return "", "", err
	}

	for _, g := range groups {
		if g.URL == url {
			title = g.Title
			break
		}
	}
	return url, title, nil
}

func printAnswer(a schedule.Answer) {
	switch a.Kind {
	case schedule.KindDayNotInTimetable:
		fmt.Println(dimStyle.Render("That day is not in the timetable (weekend?)."))
	case schedule.KindNoLessons:
		fmt.Println(accentStyle.Render(a.Day))
		fmt.Println(dimStyle.Render("No lessons."))
	default:
		fmt.Println(accentStyle.Render(a.Day))
		for _, e := range a.Entries {
			fmt.Printf("%s  %s\n", dimStyle.Render(e.TimeLabel), e.Lesson)
		}
	}
}

func printCurrent(a schedule.Answer) {
	switch a.Kind {
	case schedule.KindOutsideBellSchedule:
		fmt.Println(dimStyle.Render("Break time, or the school day is over."))
	case schedule.KindDayNotInTimetable:
		fmt.Println(dimStyle.Render("It's the weekend."))
	case schedule.KindNoLessons:
		fmt.Println(dimStyle.Render("No lesson is running right now."))
	default:
		fmt.Println(accentStyle.Render(fmt.Sprintf("Lesson %d is on now:", a.Period)))
		fmt.Printf("%s  %s\n", dimStyle.Render(a.Entries[0].TimeLabel), a.Entries[0].Lesson)
	}
}
