// Package config provides configuration management for the lumio meeting-notes service.
// It supports loading configuration from YAML files, environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultListenAddress  = "localhost:8080"
	DefaultGenerateDelay  = 1500 * time.Millisecond
	DefaultShutdownGrace  = 10 * time.Second
	DefaultSenderAddress  = "notes@lumio.app"
	DefaultSMTPPort       = 587
	DefaultConfigDir      = ".lumio"
	DefaultConfigFile     = "config.yaml"
	DefaultAllowedOrigin  = "*"
	DefaultHistoryTrigger = 10
)

// SMTPConfig holds outbound mail transport settings.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string `yaml:"host,omitempty"`

	// Port is the SMTP server port (default: 587).
	Port int `yaml:"port,omitempty"`

	// Username is the SMTP authentication user. The password is never stored
	// in the config file; it comes from the system keyring or LUMIO_SMTP_PASSWORD.
	Username string `yaml:"username,omitempty"`

	// Sender is the fixed From address for all outgoing summaries.
	Sender string `yaml:"sender,omitempty"`

	// StartTLS enables STARTTLS negotiation (default: true when a host is set).
	StartTLS bool `yaml:"starttls"`
}

// IsConfigured returns true if SMTP is configured with required fields.
func (c *SMTPConfig) IsConfigured() bool {
	return c != nil && c.Host != ""
}

// GetPort returns the SMTP port, defaulting to 587.
func (c *SMTPConfig) GetPort() int {
	if c == nil || c.Port == 0 {
		return DefaultSMTPPort
	}
	return c.Port
}

// GetSender returns the sender address, defaulting to the fixed service address.
func (c *SMTPConfig) GetSender() string {
	if c == nil || c.Sender == "" {
		return DefaultSenderAddress
	}
	return c.Sender
}

// ServiceConfig holds the lumio service configuration settings.
type ServiceConfig struct {
	// ListenAddress is the HTTP bind address (host:port).
	ListenAddress string `yaml:"listen_address"`

	// GenerateDelay is the artificial delay applied to mock summary generation.
	GenerateDelay time.Duration `yaml:"generate_delay"`

	// ShutdownGrace is how long in-flight requests get to finish on shutdown.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`

	// AllowedOrigin is the CORS origin allowed for the browser client.
	AllowedOrigin string `yaml:"allowed_origin,omitempty"`

	// HistoryTrigger is the buffer length delta that forces an edit-history checkpoint.
	HistoryTrigger int `yaml:"history_trigger,omitempty"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`

	// JSONLogs switches log output from console format to JSON.
	JSONLogs bool `yaml:"json_logs,omitempty"`

	// SMTP contains the outbound mail transport settings.
	SMTP SMTPConfig `yaml:"smtp"`
}

// DefaultConfig returns a ServiceConfig with default values.
func DefaultConfig() *ServiceConfig {
	return &ServiceConfig{
		ListenAddress:  DefaultListenAddress,
		GenerateDelay:  DefaultGenerateDelay,
		ShutdownGrace:  DefaultShutdownGrace,
		AllowedOrigin:  DefaultAllowedOrigin,
		HistoryTrigger: DefaultHistoryTrigger,
		SMTP: SMTPConfig{
			Port:     DefaultSMTPPort,
			Sender:   DefaultSenderAddress,
			StartTLS: true,
		},
	}
}

// ConfigDir returns the configuration directory path.
// Uses $LUMIO_CONFIG_DIR if set, otherwise ~/.lumio
func ConfigDir() (string, error) {
	if dir := os.Getenv("LUMIO_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the service configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.lumio/config.yaml or $LUMIO_CONFIG_DIR/config.yaml)
// 3. Environment variables (LUMIO_LISTEN_ADDRESS, LUMIO_SMTP_HOST, ...)
func LoadConfig() (*ServiceConfig, error) {
	cfg := DefaultConfig()

	// Try to load from config file.
	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Overlay environment variables.
	loadFromEnv(cfg)

	// Validate the configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *ServiceConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// We need a temp struct for unmarshaling durations as strings, and
	// pointer fields where absence must not clobber a non-zero default.
	type smtpFile struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Sender   string `yaml:"sender"`
		StartTLS *bool  `yaml:"starttls"`
	}
	type configFile struct {
		ListenAddress  string   `yaml:"listen_address"`
		GenerateDelay  string   `yaml:"generate_delay"`
		ShutdownGrace  string   `yaml:"shutdown_grace"`
		AllowedOrigin  string   `yaml:"allowed_origin"`
		HistoryTrigger int      `yaml:"history_trigger"`
		Debug          bool     `yaml:"debug"`
		JSONLogs       bool     `yaml:"json_logs"`
		SMTP           smtpFile `yaml:"smtp"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.ListenAddress != "" {
		cfg.ListenAddress = fileCfg.ListenAddress
	}
	if fileCfg.GenerateDelay != "" {
		delay, err := time.ParseDuration(fileCfg.GenerateDelay)
		if err != nil {
			return fmt.Errorf("parsing generate_delay: %w", err)
		}
		cfg.GenerateDelay = delay
	}
	if fileCfg.ShutdownGrace != "" {
		grace, err := time.ParseDuration(fileCfg.ShutdownGrace)
		if err != nil {
			return fmt.Errorf("parsing shutdown_grace: %w", err)
		}
		cfg.ShutdownGrace = grace
	}
	if fileCfg.AllowedOrigin != "" {
		cfg.AllowedOrigin = fileCfg.AllowedOrigin
	}
	if fileCfg.HistoryTrigger != 0 {
		cfg.HistoryTrigger = fileCfg.HistoryTrigger
	}
	if fileCfg.SMTP.Host != "" {
		cfg.SMTP.Host = fileCfg.SMTP.Host
	}
	if fileCfg.SMTP.Port != 0 {
		cfg.SMTP.Port = fileCfg.SMTP.Port
	}
	if fileCfg.SMTP.Username != "" {
		cfg.SMTP.Username = fileCfg.SMTP.Username
	}
	if fileCfg.SMTP.Sender != "" {
		cfg.SMTP.Sender = fileCfg.SMTP.Sender
	}
	if fileCfg.SMTP.StartTLS != nil {
		cfg.SMTP.StartTLS = *fileCfg.SMTP.StartTLS
	}
	cfg.Debug = fileCfg.Debug
	cfg.JSONLogs = fileCfg.JSONLogs

	return nil
}

// loadFromEnv overlays environment variables onto the configuration.
func loadFromEnv(cfg *ServiceConfig) {
	if v := os.Getenv("LUMIO_LISTEN_ADDRESS"); v != "" {
		cfg.ListenAddress = v
	}

	if v := os.Getenv("LUMIO_GENERATE_DELAY"); v != "" {
		if delay, err := time.ParseDuration(v); err == nil {
			cfg.GenerateDelay = delay
		}
	}

	if v := os.Getenv("LUMIO_SHUTDOWN_GRACE"); v != "" {
		if grace, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownGrace = grace
		}
	}

	if v := os.Getenv("LUMIO_ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}

	if v := os.Getenv("LUMIO_HISTORY_TRIGGER"); v != "" {
		if trigger, err := strconv.Atoi(v); err == nil {
			cfg.HistoryTrigger = trigger
		}
	}

	if v := os.Getenv("LUMIO_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}

	if v := os.Getenv("LUMIO_JSON_LOGS"); v == "true" || v == "1" {
		cfg.JSONLogs = true
	}

	// SMTP environment variables.
	if v := os.Getenv("LUMIO_SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}

	if v := os.Getenv("LUMIO_SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}

	if v := os.Getenv("LUMIO_SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}

	if v := os.Getenv("LUMIO_SMTP_SENDER"); v != "" {
		cfg.SMTP.Sender = v
	}

	if v := os.Getenv("LUMIO_SMTP_STARTTLS"); v == "false" || v == "0" {
		cfg.SMTP.StartTLS = false
	}
}

// Validate checks that the configuration is valid.
func (c *ServiceConfig) Validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address is required")
	}

	if c.GenerateDelay < 0 {
		return fmt.Errorf("generate_delay must not be negative")
	}

	if c.HistoryTrigger <= 0 {
		return fmt.Errorf("history_trigger must be positive")
	}

	if c.SMTP.IsConfigured() && !strings.Contains(c.SMTP.GetSender(), "@") {
		return fmt.Errorf("smtp sender %q is not an email address", c.SMTP.Sender)
	}

	return nil
}

// RenderYAML converts the configuration to its file form, with durations
// serialized as strings.
func RenderYAML(cfg *ServiceConfig) ([]byte, error) {
	type configFile struct {
		ListenAddress  string     `yaml:"listen_address"`
		GenerateDelay  string     `yaml:"generate_delay"`
		ShutdownGrace  string     `yaml:"shutdown_grace"`
		AllowedOrigin  string     `yaml:"allowed_origin,omitempty"`
		HistoryTrigger int        `yaml:"history_trigger,omitempty"`
		Debug          bool       `yaml:"debug,omitempty"`
		JSONLogs       bool       `yaml:"json_logs,omitempty"`
		SMTP           SMTPConfig `yaml:"smtp,omitempty"`
	}

	fileCfg := configFile{
		ListenAddress:  cfg.ListenAddress,
		GenerateDelay:  cfg.GenerateDelay.String(),
		ShutdownGrace:  cfg.ShutdownGrace.String(),
		AllowedOrigin:  cfg.AllowedOrigin,
		HistoryTrigger: cfg.HistoryTrigger,
		Debug:          cfg.Debug,
		JSONLogs:       cfg.JSONLogs,
		SMTP:           cfg.SMTP,
	}

	data, err := yaml.Marshal(&fileCfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *ServiceConfig) error {
	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("getting config directory: %w", err)
	}

	// Ensure config directory exists.
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)

	data, err := RenderYAML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
