package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/Dima111000/shedule-zsm-1/pkg/config"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Default Group", "group"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "group":
			err = runSetGroupTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("Current configuration:"))
			fmt.Printf("  Default group: %s\n", orUnset(cfg.GroupTitle))
			fmt.Printf("  Group URL:     %s\n", orUnset(cfg.GroupURL))
			fmt.Printf("  Accent color:  %s\n", orUnset(cfg.AccentColor))
		}

		if err != nil {
			return err
		}
	}
}

func runSetGroupTUI(cfg *config.AppConfig) error {
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
		return fmt.Errorf("no groups found on the plan index page")
	}

	var selectedURL string
	var groupOptions []huh.Option[string]
	for _, g := range groups {
		opt := huh.NewOption(g.Title, g.URL)
		if g.URL == cfg.GroupURL {
			opt = opt.Selected(true)
		}
		groupOptions = append(groupOptions, opt)
	}

	groupForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick your default group").
				Description("Start typing to filter.").
				Options(groupOptions...).
				Value(&selectedURL).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := groupForm.Run(); err != nil {
		return err
	}

	for _, g := range groups {
		if g.URL == selectedURL {
			cfg.GroupTitle = g.Title
			cfg.GroupURL = g.URL
			break
		}
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Default group saved: " + cfg.GroupTitle))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var color string

	colorForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Blue (default)", "33"),
					huh.NewOption("Purple", "99"),
					huh.NewOption("Green", "42"),
					huh.NewOption("Orange", "208"),
					huh.NewOption("Pink", "205"),
				).
				Value(&color),
		),
	).WithTheme(GetTheme())

	if err := colorForm.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Accent color saved."))
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return dimStyle.Render("(not set)")
	}
	return s
}
