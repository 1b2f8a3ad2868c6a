package app

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/deepwork/internal/session"
)

// promptCreate asks for the details of a new session. Values already set on
// params are offered as defaults.
func promptCreate(params session.CreateParams) (session.CreateParams, error) {
	var goal string
	if params.Goal != nil {
		goal = *params.Goal
	}

	if params.ScheduledDuration <= 0 {
		params.ScheduledDuration = defaultDuration
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you working on?").
				Value(&params.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyTitle
					}

					return nil
				}),
			huh.NewInput().
				Title("Goal for this session (optional)").
				Value(&goal),
			huh.NewSelect[int]().
				Title("Scheduled duration").
				Options(durationOptions(params.ScheduledDuration)...).
				Value(&params.ScheduledDuration),
		),
	)

	if err := form.Run(); err != nil {
		return params, errPrompt.Wrap(err)
	}

	if strings.TrimSpace(goal) != "" {
		params.Goal = &goal
	}

	return params, nil
}

func durationOptions(selected int) []huh.Option[int] {
	minutes := []int{25, 45, 60, 90, 120}
	if !slices.Contains(minutes, selected) {
		minutes = append([]int{selected}, minutes...)
	}

	opts := make([]huh.Option[int], 0, len(minutes))

	for _, m := range minutes {
		opt := huh.NewOption(strconv.Itoa(m)+" minutes", m)
		if m == selected {
			opt = opt.Selected(true)
		}

		opts = append(opts, opt)
	}

	return opts
}
