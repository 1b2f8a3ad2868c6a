// Package ui renders coloured terminal output.
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/deepwork/models"
)

// DarkTheme selects the light colour variants that read well on dark
// terminals.
var DarkTheme bool

func pick(light, dark pterm.Color, a any) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return pick(pterm.FgGreen, pterm.FgLightGreen, a)
}

func Cyan(a any) string {
	return pick(pterm.FgCyan, pterm.FgLightCyan, a)
}

func Yellow(a any) string {
	return pick(pterm.FgYellow, pterm.FgLightYellow, a)
}

func Magenta(a any) string {
	return pick(pterm.FgMagenta, pterm.FgLightMagenta, a)
}

func Red(a any) string {
	return pick(pterm.FgRed, pterm.FgLightRed, a)
}

func Highlight(a any) string {
	return pick(pterm.FgBlack, pterm.FgLightWhite, a)
}

// Status colours a session status by outcome.
func Status(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return Green(s)
	case models.StatusOverdue:
		return Yellow(s)
	case models.StatusInterrupted:
		return Red(s)
	case models.StatusActive:
		return Cyan(s)
	case models.StatusPaused:
		return Magenta(s)
	default:
		return string(s)
	}
}
