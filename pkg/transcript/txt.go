package transcript

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Matches transcript line: 0:11 : Speaker Name : Text content
var txtLineRegex = regexp.MustCompile(`^(\d+):(\d{2})\s*:\s*([^:]+?)\s*:\s*(.+)$`)

// ParseTXT parses a timestamped plain text transcript.
// Format: minutes:seconds : Speaker Name : text
func ParseTXT(r io.Reader) (*Transcript, error) {
	scanner := bufio.NewScanner(r)
	result := &Transcript{
		Segments: make([]Segment, 0),
		Speakers: make([]string, 0),
		Format:   "txt",
	}

	seen := make(map[string]bool)
	var text strings.Builder
	var lastMs int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		matches := txtLineRegex.FindStringSubmatch(line)
		if matches == nil {
			// Skip malformed lines
			continue
		}

		minutes, _ := strconv.Atoi(matches[1])
		seconds, _ := strconv.Atoi(matches[2])
		speaker := strings.TrimSpace(matches[3])
		content := strings.TrimSpace(matches[4])

		ms := (minutes*60 + seconds) * 1000
		result.Segments = append(result.Segments, Segment{
			Speaker: speaker,
			Text:    content,
			StartMs: ms,
			EndMs:   ms, // this format carries no end times
		})

		if !seen[speaker] {
			seen[speaker] = true
			result.Speakers = append(result.Speakers, speaker)
		}

		if ms > lastMs {
			lastMs = ms
		}

		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(speaker + ": " + content)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	result.DurationSeconds = lastMs / 1000
	result.Text = text.String()

	return result, nil
}
