package share

import (
	"fmt"
	"html"
	"strings"
)

// Layout describes a named fixed email layout. The catalog is configuration,
// not runtime state.
type Layout struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// Layout keys.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// layouts is the static email layout catalog.
var layouts = map[string]Layout{
	FormatText: {
		Key:     FormatText,
		Label:   "Plain Text",
		Content: "Summary as unadorned text",
	},
	FormatMarkdown: {
		Key:     FormatMarkdown,
		Label:   "Markdown",
		Content: "Summary with markdown markers preserved",
	},
	FormatHTML: {
		Key:     FormatHTML,
		Label:   "HTML",
		Content: "Summary wrapped in a minimal HTML shell",
	},
}

// layoutOrder fixes the catalog listing order for the UI.
var layoutOrder = []string{FormatText, FormatMarkdown, FormatHTML}

// Layouts returns the email layout catalog in display order.
func Layouts() []Layout {
	out := make([]Layout, 0, len(layoutOrder))
	for _, key := range layoutOrder {
		out = append(out, layouts[key])
	}
	return out
}

// LookupLayout returns the layout for key.
func LookupLayout(key string) (Layout, bool) {
	l, ok := layouts[key]
	return l, ok
}

// DefaultSubject is used when the request carries no subject.
const DefaultSubject = "Meeting Summary"

// Compose builds the outgoing email from a validated request.
func Compose(req Request) Email {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultSubject
	}

	note := strings.TrimSpace(req.Body)
	summary := strings.TrimSpace(req.Summary)

	var body, contentType string
	switch req.Format {
	case FormatHTML:
		contentType = "text/html"
		var b strings.Builder
		b.WriteString("<html><body>\n")
		if note != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(note))
		}
		if summary != "" {
			fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(summary))
		}
		b.WriteString("</body></html>\n")
		body = b.String()

	default: // FormatText, FormatMarkdown: markers pass through unchanged
		contentType = "text/plain"
		switch {
		case note != "" && summary != "":
			body = note + "\n\n---\n\n" + summary
		case note != "":
			body = note
		default:
			body = summary
		}
	}

	return Email{
		To:          req.Recipients,
		Subject:     subject,
		ContentType: contentType,
		Body:        body,
	}
}
