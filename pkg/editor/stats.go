package editor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Markdown-ish structure patterns used for derived statistics.
var (
	// sectionRegex matches a line that is a bold-marker section header, e.g. **Key Points**
	sectionRegex = regexp.MustCompile(`(?m)^\*\*[^*\n]+\*\*`)

	// actionItemRegex matches a bulleted line, the action-item convention in summaries.
	actionItemRegex = regexp.MustCompile(`(?m)^\s*[-*•]\s+\S`)
)

// Stats holds derived statistics over a summary text. All values are pure
// functions of the input; nothing here is stored state.
type Stats struct {
	Words       int `json:"words"`
	Chars       int `json:"chars"`
	Lines       int `json:"lines"`
	Sections    int `json:"sections"`
	ActionItems int `json:"action_items"`
}

// ComputeStats derives word, character, line, section, and action-item
// counts from text.
func ComputeStats(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Words:       len(strings.Fields(text)),
		Chars:       utf8.RuneCountInString(text),
		Lines:       strings.Count(text, "\n") + 1,
		Sections:    len(sectionRegex.FindAllString(text, -1)),
		ActionItems: len(actionItemRegex.FindAllString(text, -1)),
	}
}
