package transcript

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// WebVTT parsing regular expressions
var (
	// Matches cue header: 1 "Speaker Name" (speaker_id) or just: 1 "" (0)
	vttCueHeaderRegex = regexp.MustCompile(`^\d+\s+"([^"]*)"(?:\s+\((\d+)\))?`)

	// Matches timing line: 00:00:05.579 --> 00:00:06.858
	vttTimingRegex = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}\.\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2}\.\d{3})`)
)

// ParseVTT parses a WebVTT format transcript.
func ParseVTT(r io.Reader) (*Transcript, error) {
	scanner := bufio.NewScanner(r)
	result := &Transcript{
		Segments: make([]Segment, 0),
		Speakers: make([]string, 0),
		Format:   "vtt",
	}

	seen := make(map[string]bool)
	var text strings.Builder

	var current *Segment
	var lastEndMs int

	flush := func() {
		if current != nil && current.Text != "" {
			result.Segments = append(result.Segments, *current)
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and the WEBVTT header
		if line == "" || line == "WEBVTT" {
			continue
		}

		if matches := vttCueHeaderRegex.FindStringSubmatch(line); matches != nil {
			flush()
			current = &Segment{Speaker: matches[1]}

			// Track unique speakers (skip empty speaker names)
			if current.Speaker != "" && !seen[current.Speaker] {
				seen[current.Speaker] = true
				result.Speakers = append(result.Speakers, current.Speaker)
			}
			continue
		}

		if matches := vttTimingRegex.FindStringSubmatch(line); matches != nil {
			startMs := parseVTTTimestamp(matches[1])
			endMs := parseVTTTimestamp(matches[2])
			if current != nil {
				current.StartMs = startMs
				current.EndMs = endMs
			}
			if endMs > lastEndMs {
				lastEndMs = endMs
			}
			continue
		}

		// Anything else is cue text
		if current != nil {
			if current.Text != "" {
				current.Text += " "
			}
			current.Text += line

			if text.Len() > 0 {
				text.WriteString("\n")
			}
			if current.Speaker != "" {
				text.WriteString(current.Speaker + ": ")
			}
			text.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	result.DurationSeconds = lastEndMs / 1000
	result.Text = text.String()

	return result, nil
}

// parseVTTTimestamp parses a VTT timestamp (HH:MM:SS.mmm) to milliseconds.
func parseVTTTimestamp(ts string) int {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	secParts := strings.Split(parts[2], ".")
	seconds, _ := strconv.Atoi(secParts[0])
	milliseconds := 0
	if len(secParts) > 1 {
		milliseconds, _ = strconv.Atoi(secParts[1])
	}

	return hours*3600000 + minutes*60000 + seconds*1000 + milliseconds
}
