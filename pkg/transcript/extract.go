package transcript

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
)

// PlaceholderNotice is returned as the transcript text for binary document
// uploads. Real PDF/DOCX extraction is out of scope; the user is asked to
// paste the text instead.
const PlaceholderNotice = "[Text extraction from this file type is not supported yet. " +
	"Please paste the transcript text directly.]"

// Extract reads an uploaded transcript file and returns its plain text form.
// The format is chosen from the filename extension:
//   - .vtt          WebVTT cue parsing
//   - .txt          timestamped transcript lines, falling back to raw text
//   - .pdf/.doc(x)  placeholder notice, no real extraction
//
// Anything else is rejected with ErrUnsupportedFormat.
func Extract(filename string, r io.Reader) (*Transcript, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".vtt":
		return ParseVTT(r)

	case ".txt":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		parsed, err := ParseTXT(strings.NewReader(string(data)))
		if err != nil {
			return nil, err
		}
		if len(parsed.Segments) > 0 {
			return parsed, nil
		}
		// No timestamped lines matched: treat the upload as raw text.
		return FromText(string(data)), nil

	case ".pdf", ".doc", ".docx":
		return &Transcript{
			Segments: make([]Segment, 0),
			Speakers: make([]string, 0),
			Text:     PlaceholderNotice,
			Format:   "placeholder",
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", lerrors.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// FromText wraps pasted or raw transcript text without any parsing.
func FromText(text string) *Transcript {
	return &Transcript{
		Segments: make([]Segment, 0),
		Speakers: make([]string, 0),
		Text:     strings.TrimSpace(text),
		Format:   "plain",
	}
}
