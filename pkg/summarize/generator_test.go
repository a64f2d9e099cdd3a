package summarize

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
)

const sampleTranscript = `Alice: welcome everyone to the weekly sync
Bob: thanks, let's start with the roadmap
Alice: Q3 planning is nearly final
Carol: budget review is scheduled for Friday
Bob: we still need a decision on the vendor
Dave: I'll take the vendor follow-up
Alice: great, anything else?`

func newTestGenerator() *Generator {
	return NewGenerator(0, logging.NewNopLogger())
}

func TestGenerateStandardTemplate(t *testing.T) {
	g := newTestGenerator()

	result, err := g.Generate(context.Background(), Request{
		Transcript: sampleTranscript,
		Model:      "lumio-pro",
		Template:   TemplateStandard,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "lumio-pro", result.Model)
	assert.Equal(t, TemplateStandard, result.Template)
	assert.Contains(t, result.Summary, "**Meeting Summary**")
	assert.Contains(t, result.Summary, "**Key Points**")

	// Only the first five transcript lines feed the summary.
	assert.Contains(t, result.Summary, "welcome everyone")
	assert.Contains(t, result.Summary, "decision on the vendor")
	assert.NotContains(t, result.Summary, "vendor follow-up")
}

func TestGenerateEachTemplateHasDistinctLayout(t *testing.T) {
	g := newTestGenerator()

	headers := map[string]string{
		TemplateStandard:    "**Meeting Summary**",
		TemplateDetailed:    "**Detailed Meeting Notes**",
		TemplateActionItems: "**Action Items**",
		TemplateExecutive:   "**Executive Brief**",
	}

	for key, header := range headers {
		t.Run(key, func(t *testing.T) {
			result, err := g.Generate(context.Background(), Request{
				Transcript: sampleTranscript,
				Model:      "lumio-swift",
				Template:   key,
			})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(result.Summary, header))
		})
	}
}

func TestGeneratePromptEchoed(t *testing.T) {
	g := newTestGenerator()

	result, err := g.Generate(context.Background(), Request{
		Transcript: sampleTranscript,
		Prompt:     "highlight budget topics",
		Model:      "lumio-max",
		Template:   TemplateStandard,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Summary, "Focus: highlight budget topics")
}

func TestGenerateEmptyTranscript(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), Request{
		Transcript: "   \n  ",
		Model:      "lumio-pro",
		Template:   TemplateStandard,
	})
	require.Error(t, err)
	assert.True(t, lerrors.IsValidation(err))
}

func TestGenerateUnknownModel(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), Request{
		Transcript: sampleTranscript,
		Model:      "gpt-unknown",
		Template:   TemplateStandard,
	})
	require.Error(t, err)
	assert.True(t, lerrors.IsNotFound(err))
}

func TestGenerateUnknownTemplate(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), Request{
		Transcript: sampleTranscript,
		Model:      "lumio-pro",
		Template:   "haiku",
	})
	require.Error(t, err)
	assert.True(t, lerrors.IsNotFound(err))
}

func TestGenerateDelayCancellable(t *testing.T) {
	g := NewGenerator(5*time.Second, logging.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.Generate(ctx, Request{
		Transcript: sampleTranscript,
		Model:      "lumio-pro",
		Template:   TemplateStandard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCatalogOrder(t *testing.T) {
	ms := Models()
	require.Len(t, ms, 3)
	assert.Equal(t, "lumio-swift", ms[0].Key)

	ts := Templates()
	require.Len(t, ts, 4)
	assert.Equal(t, TemplateStandard, ts[0].Key)
	assert.Equal(t, TemplateExecutive, ts[3].Key)

	_, ok := LookupModel("lumio-pro")
	assert.True(t, ok)
	_, ok = LookupTemplate("nope")
	assert.False(t, ok)
}
