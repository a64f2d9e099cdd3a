package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/credentials"
)

// NewConfigCommand creates the config command with its subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lumio configuration",
		Long: `Manage the lumio configuration file (~/.lumio/config.yaml).

Examples:
  lumio config show
  lumio config init
  lumio config set smtp.host smtp.example.com
  lumio config set generate_delay 2s
  lumio config set-smtp-password`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetSMTPPasswordCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			path, _ := config.ConfigPath()
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)

			data, err := config.RenderYAML(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureConfigDir(); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}

			path, _ := config.ConfigPath()
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save the config file.

Supported keys:
  listen_address    HTTP bind address (host:port)
  generate_delay    Artificial generation delay (e.g. 1500ms, 2s)
  allowed_origin    CORS origin for the browser client
  history_trigger   Edit-history checkpoint character delta
  smtp.host         SMTP server hostname
  smtp.port         SMTP server port
  smtp.username     SMTP authentication user
  smtp.sender       From address for shared summaries
  smtp.starttls     true/false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			if err := applyConfigValue(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validating config: %w", err)
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// applyConfigValue updates a single config field addressed by its YAML key.
func applyConfigValue(cfg *config.ServiceConfig, key, value string) error {
	switch strings.ToLower(key) {
	case "listen_address":
		cfg.ListenAddress = value
	case "generate_delay":
		delay, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		cfg.GenerateDelay = delay
	case "shutdown_grace":
		grace, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		cfg.ShutdownGrace = grace
	case "allowed_origin":
		cfg.AllowedOrigin = value
	case "history_trigger":
		trigger, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		cfg.HistoryTrigger = trigger
	case "smtp.host":
		cfg.SMTP.Host = value
	case "smtp.port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		cfg.SMTP.Port = port
	case "smtp.username":
		cfg.SMTP.Username = value
	case "smtp.sender":
		cfg.SMTP.Sender = value
	case "smtp.starttls":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		cfg.SMTP.StartTLS = enabled
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

func newConfigSetSMTPPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-smtp-password",
		Short: "Store the SMTP password in the system keyring",
		Long: `Prompt for the SMTP password and store it in the system keyring
(macOS Keychain, Windows Credential Manager, Linux Secret Service).

The password never touches the config file. For headless deployments use
the LUMIO_SMTP_PASSWORD environment variable instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "SMTP password: ")
			passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			password := strings.TrimSpace(string(passwordBytes))
			if password == "" {
				return fmt.Errorf("no password provided")
			}

			provider := credentials.NewKeyringProvider()
			if err := provider.Set(password); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Password stored in %s\n", provider.Description())
			return nil
		},
	}
}
