package editor

import (
	"fmt"
	"time"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
)

// Export formats for summary downloads.
const (
	ExportMarkdown = "md"
	ExportText     = "txt"
)

// ExportFileName returns the download artifact name for the given format
// and date, e.g. meeting-summary-2026-08-31.md
func ExportFileName(format string, date time.Time) string {
	return fmt.Sprintf("meeting-summary-%s.%s", date.Format("2006-01-02"), format)
}

// Export returns the artifact name and content for a summary download.
// The content is the raw summary text unmodified in both formats.
func Export(summary, format string, date time.Time) (name string, data []byte, err error) {
	switch format {
	case ExportMarkdown, ExportText:
		return ExportFileName(format, date), []byte(summary), nil
	default:
		return "", nil, fmt.Errorf("%w: export format %q", lerrors.ErrUnsupportedFormat, format)
	}
}
