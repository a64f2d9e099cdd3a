package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
)

// previewLines is how many transcript lines feed the mock summary.
const previewLines = 5

// Request holds the inputs for a summary generation.
type Request struct {
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt,omitempty"`
	Model      string `json:"model"`
	Template   string `json:"template"`
}

// Result is a generated summary.
type Result struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Model       string    `json:"model"`
	Template    string    `json:"template"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator builds mock summaries with a configurable artificial delay.
type Generator struct {
	delay time.Duration
	log   logging.Logger
	now   func() time.Time
}

// NewGenerator creates a Generator. The delay simulates inference latency
// and is cancellable through the request context.
func NewGenerator(delay time.Duration, log logging.Logger) *Generator {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Generator{
		delay: delay,
		log:   log,
		now:   time.Now,
	}
}

// Generate validates the request, waits out the artificial delay, and
// returns the templated summary.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, fmt.Errorf("%w: transcript is empty", lerrors.ErrValidation)
	}

	model, ok := LookupModel(req.Model)
	if !ok {
		return nil, fmt.Errorf("model %q: %w", req.Model, lerrors.ErrNotFound)
	}

	tmpl, ok := LookupTemplate(req.Template)
	if !ok {
		return nil, fmt.Errorf("template %q: %w", req.Template, lerrors.ErrNotFound)
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	summary := buildSummary(tmpl, model, req)
	result := &Result{
		ID:          uuid.NewString(),
		Summary:     summary,
		Model:       model.Key,
		Template:    tmpl.Key,
		GeneratedAt: g.now(),
	}

	g.log.WithContext(ctx).Info("summary generated",
		logging.F("summary_id", result.ID),
		logging.F("model", model.Key),
		logging.F("template", tmpl.Key),
		logging.F("chars", len(summary)),
	)

	return result, nil
}

// buildSummary is the fixed per-template string concatenation over the
// first transcript lines.
func buildSummary(tmpl Template, model Model, req Request) string {
	lines := firstLines(req.Transcript, previewLines)

	var b strings.Builder
	switch tmpl.Key {
	case TemplateDetailed:
		b.WriteString("**Detailed Meeting Notes**\n\n")
		writePromptLine(&b, req.Prompt)
		b.WriteString("**Discussion**\n")
		for i, line := range lines {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		}
		b.WriteString("\n**Decisions**\n")
		b.WriteString("- Decisions were captured from the discussion above\n")
		b.WriteString("\n**Action Items**\n")
		b.WriteString("- Owners to confirm next steps before the following session\n")

	case TemplateActionItems:
		b.WriteString("**Action Items**\n\n")
		writePromptLine(&b, req.Prompt)
		for _, line := range lines {
			fmt.Fprintf(&b, "- Follow up: %s\n", line)
		}

	case TemplateExecutive:
		b.WriteString("**Executive Brief**\n\n")
		writePromptLine(&b, req.Prompt)
		b.WriteString(strings.Join(lines, " "))
		b.WriteString("\n\nOverall the meeting reached its stated objectives.\n")

	default: // TemplateStandard
		b.WriteString("**Meeting Summary**\n\n")
		writePromptLine(&b, req.Prompt)
		b.WriteString("**Key Points**\n")
		for _, line := range lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n**Action Items**\n")
		b.WriteString("- Review the summary and share with attendees\n")
	}

	fmt.Fprintf(&b, "\n_Generated by %s (%s template)_\n", model.Label, tmpl.Label)
	return b.String()
}

// writePromptLine echoes the optional free-form prompt into the summary header.
func writePromptLine(b *strings.Builder, prompt string) {
	if strings.TrimSpace(prompt) == "" {
		return
	}
	fmt.Fprintf(b, "Focus: %s\n\n", strings.TrimSpace(prompt))
}

// firstLines returns up to n non-empty trimmed lines from text.
func firstLines(text string, n int) []string {
	out := make([]string, 0, n)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
