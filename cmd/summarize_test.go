package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
)

func writeTranscript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewSummarizeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCommandText(t *testing.T) {
	path := writeTranscript(t, "notes.txt",
		"0:05 : Alice : We agreed to ship the beta on Friday.\n"+
			"1:10 : Bob : QA signs off on Thursday.\n")

	out, err := runCommand(t, path, "--no-delay")
	require.NoError(t, err)

	assert.Contains(t, out, "**Meeting Summary**")
	assert.Contains(t, out, "ship the beta on Friday")
	assert.Contains(t, out, "Speakers: Alice, Bob")
}

func TestSummarizeCommandJSON(t *testing.T) {
	path := writeTranscript(t, "notes.txt", "Plain transcript body with no timestamps.\n")

	out, err := runCommand(t, path, "--no-delay", "--output", "json", "--template", "executive")
	require.NoError(t, err)

	var result summarize.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, summarize.TemplateExecutive, result.Template)
	assert.NotEmpty(t, result.ID)
	assert.Contains(t, result.Summary, "**Executive Brief**")
}

func TestSummarizeCommandPromptEcho(t *testing.T) {
	path := writeTranscript(t, "notes.txt", "Budget discussion for Q4.\n")

	out, err := runCommand(t, path, "--no-delay", "--prompt", "focus on budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Focus: focus on budget")
}

func TestSummarizeCommandUnknownTemplate(t *testing.T) {
	path := writeTranscript(t, "notes.txt", "Some notes.\n")

	_, err := runCommand(t, path, "--no-delay", "--template", "haiku")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "haiku")
}

func TestSummarizeCommandUnsupportedFile(t *testing.T) {
	path := writeTranscript(t, "notes.mp3", "binary-ish")

	_, err := runCommand(t, path, "--no-delay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mp3")
}

func TestSummarizeCommandPlaceholderForPDF(t *testing.T) {
	path := writeTranscript(t, "notes.pdf", "%PDF-1.4 fake")

	out, err := runCommand(t, path, "--no-delay")
	require.NoError(t, err)
	assert.Contains(t, out, "not supported yet")
}

func TestSummarizeCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "missing.txt"), "--no-delay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening transcript")
}
