package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/models"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	err := PrintTable([][]string{
		{"ID", "Title"},
		{"1", "Write tests"},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Write tests")
}

func TestStatusKeepsText(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	for _, s := range models.Statuses {
		assert.Equal(t, string(s), Status(s))
	}
}
