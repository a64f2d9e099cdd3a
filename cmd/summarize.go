package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/transcript"
)

// NewSummarizeCommand creates the summarize command for one-shot local use.
func NewSummarizeCommand() *cobra.Command {
	var (
		model        string
		template     string
		prompt       string
		outputFormat string
		noDelay      bool
	)

	cmd := &cobra.Command{
		Use:   "summarize <transcript-file>",
		Short: "Generate a summary from a transcript file",
		Long: `Generate a templated summary from a local transcript file without
starting the server. Supports .vtt and .txt transcripts; PDF and Word
uploads get a placeholder message.

Examples:
  lumio summarize standup.vtt
  lumio summarize notes.txt --template action-items
  lumio summarize notes.txt --template executive --prompt "focus on budget"
  lumio summarize notes.txt --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening transcript: %w", err)
			}
			defer f.Close()

			parsed, err := transcript.Extract(path, f)
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			delay := 750 * time.Millisecond
			if noDelay {
				delay = 0
			}
			generator := summarize.NewGenerator(delay, logging.NewNopLogger())

			result, err := generator.Generate(cmd.Context(), summarize.Request{
				Transcript: parsed.Text,
				Prompt:     prompt,
				Model:      model,
				Template:   template,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if strings.EqualFold(outputFormat, "json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintln(out, result.Summary)
			if len(parsed.Speakers) > 0 {
				fmt.Fprintf(out, "Speakers: %s\n", strings.Join(parsed.Speakers, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", summarize.DefaultModel, "mock model to attribute the summary to")
	cmd.Flags().StringVarP(&template, "template", "t", summarize.TemplateStandard, "summary template (standard, detailed, action-items, executive)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "optional focus prompt echoed into the summary")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text or json)")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "skip the simulated generation delay")

	return cmd
}
