// Package share emails a meeting summary to a list of recipients through an
// SMTP transport. Requests are validated up front; one email is sent per
// share, with all recipients on the same message.
package share

// Request holds the inputs for sharing a summary by email.
type Request struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
	Body       string   `json:"body,omitempty"`
	Format     string   `json:"format"`
	Summary    string   `json:"summary"`
}

// Result reports a completed share.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Recipients int    `json:"recipients"`
	Format     string `json:"format"`
}

// Email is a composed message ready for the transport.
type Email struct {
	To          []string
	Subject     string
	ContentType string // "text/plain" or "text/html"
	Body        string
}
