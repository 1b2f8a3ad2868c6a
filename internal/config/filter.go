package config

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
)

// FilterOptions holds the raw values of the history filtering flags.
type FilterOptions struct {
	Period string
	Since  string
	Until  string
	Status []string
}

// Filter builds a metrics filter from the flags of the current command.
func Filter(ctx *cli.Context, now time.Time) (metrics.Filter, error) {
	return ParseFilter(FilterOptions{
		Period: ctx.String("period"),
		Since:  ctx.String("since"),
		Until:  ctx.String("until"),
		Status: ctx.StringSlice("status"),
	}, now)
}

// ParseFilter resolves periods and human-readable dates relative to now.
// An explicit --since or --until takes precedence over the period bounds.
func ParseFilter(opts FilterOptions, now time.Time) (metrics.Filter, error) {
	var f metrics.Filter

	if opts.Period != "" {
		period := timeutil.Period(strings.ToLower(opts.Period))
		if !slices.Contains(timeutil.PeriodCollection, period) {
			return f, errInvalidPeriod.Fmt(periodList())
		}

		if period != timeutil.PeriodAllTime {
			f.Since = timeutil.RoundToStart(now.AddDate(0, 0, timeutil.Range[period]))
			f.Until = timeutil.RoundToEnd(now)

			if period == timeutil.PeriodYesterday {
				f.Until = timeutil.RoundToEnd(f.Since)
			}
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	if opts.Since != "" {
		d, err := dateparser.Parse(cfg, opts.Since)
		if err != nil {
			return f, errInvalidDate.Wrap(err).Fmt(opts.Since)
		}

		f.Since = d.Time
	}

	if opts.Until != "" {
		d, err := dateparser.Parse(cfg, opts.Until)
		if err != nil {
			return f, errInvalidDate.Wrap(err).Fmt(opts.Until)
		}

		f.Until = d.Time
	}

	if !f.Since.IsZero() && !f.Until.IsZero() && !f.Since.Before(f.Until) {
		return f, errInvalidDateRange
	}

	for _, raw := range opts.Status {
		for _, s := range strings.Split(raw, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}

			status, err := models.ParseStatus(s)
			if err != nil {
				return f, err
			}

			f.Statuses = append(f.Statuses, status)
		}
	}

	return f, nil
}

func periodList() string {
	names := make([]string, 0, len(timeutil.PeriodCollection))
	for _, p := range timeutil.PeriodCollection {
		names = append(names, string(p))
	}

	return strings.Join(names, ", ")
}
