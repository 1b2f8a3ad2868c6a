package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table. The first row is the header.
func PrintTable(data [][]string, w io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// PrintFields writes label/value pairs as a two column table without a
// header.
func PrintFields(fields [][]string, w io.Writer) error {
	str, err := pterm.DefaultTable.WithData(fields).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
