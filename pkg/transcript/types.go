// Package transcript extracts plain text from uploaded meeting transcripts.
// WebVTT and timestamped plain-text formats are parsed into segments; binary
// document formats get a placeholder message, not real extraction.
package transcript

// Segment is a single spoken chunk of a transcript.
type Segment struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
	StartMs int    `json:"start_ms"`
	EndMs   int    `json:"end_ms"`
}

// Transcript is the result of parsing an uploaded transcript file.
type Transcript struct {
	Segments        []Segment `json:"segments"`
	Speakers        []string  `json:"speakers"`
	DurationSeconds int       `json:"duration_seconds"`
	Text            string    `json:"text"`
	Format          string    `json:"format"` // "vtt", "txt", "plain", "placeholder"
}
