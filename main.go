// Package main provides the lumio CLI entry point.
// lumio is the backend service for a browser-based meeting-notes assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iim-amit/AmitKumar-Lumio/cmd"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/buildinfo"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lumio",
	Short: "Lumio - meeting-notes assistant service",
	Long: `lumio is the backend for a browser-based meeting-notes assistant.

It serves mock summary generation and email sharing over HTTP for the
web client, and offers local one-shot summarization of transcript files.

COMMON WORKFLOWS:
  Run the server:     lumio serve
  Summarize a file:   lumio summarize standup.vtt --template action-items
  First-time setup:   lumio config init  →  lumio config set smtp.host ...
                      →  lumio config set-smtp-password

DISCOVERY:
  lumio <command> --help    Subcommands, flags, and examples
  lumio version             Build information`,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(c *cobra.Command, args []string) error {
		info := buildinfo.Get("lumio")
		fmt.Fprintf(c.OutOrStdout(), "lumio %s\n", buildinfo.String())
		fmt.Fprintf(c.OutOrStdout(), "  go: %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd.NewServeCommand())
	rootCmd.AddCommand(cmd.NewSummarizeCommand())
	rootCmd.AddCommand(cmd.NewConfigCommand())
}

func main() {
	// Set up signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
