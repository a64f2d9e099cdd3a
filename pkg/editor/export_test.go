package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
)

func TestExportFileName(t *testing.T) {
	date := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "meeting-summary-2026-08-31.md", ExportFileName(ExportMarkdown, date))
	assert.Equal(t, "meeting-summary-2026-08-31.txt", ExportFileName(ExportText, date))
}

func TestExportContentIsUnmodified(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	summary := "**Summary**\n- item one\n"

	for _, format := range []string{ExportMarkdown, ExportText} {
		name, data, err := Export(summary, format, date)
		require.NoError(t, err)
		assert.Equal(t, summary, string(data))
		assert.Contains(t, name, "meeting-summary-2026-08-31")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, err := Export("text", "pdf", time.Now())
	require.Error(t, err)
	assert.True(t, lerrors.IsUnsupportedFormat(err))
}
