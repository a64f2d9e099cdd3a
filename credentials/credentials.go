// Package credentials provides secure storage for the lumio SMTP password.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	// keyringService is the service name used in the system keyring.
	keyringService = "lumio"
	// keyringUser is the account name under which the SMTP password is stored.
	keyringUser = "smtp-password"
	// envVar is the environment variable override for CI and headless deployments.
	envVar = "LUMIO_SMTP_PASSWORD"
)

// ErrKeyringUnavailable indicates the system keyring is not available.
var ErrKeyringUnavailable = errors.New("system keyring unavailable")

// ErrNotStored indicates no SMTP password has been stored yet.
var ErrNotStored = errors.New("smtp password not stored")

// SecretProvider is an interface for obtaining the SMTP password.
type SecretProvider interface {
	// Get returns the stored SMTP password.
	Get() (string, error)

	// Set stores a new SMTP password, replacing any existing one.
	Set(password string) error

	// Delete removes the stored SMTP password.
	Delete() error

	// Description returns a human-readable description of the storage mechanism.
	Description() string
}

// KeyringProvider stores the SMTP password in the system keyring
// (macOS Keychain, Windows Credential Manager, Linux Secret Service).
type KeyringProvider struct {
	mu sync.Mutex
}

// NewKeyringProvider creates a new KeyringProvider.
func NewKeyringProvider() *KeyringProvider {
	return &KeyringProvider{}
}

// Get retrieves the SMTP password from the system keyring.
func (p *KeyringProvider) Get() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	secret, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotStored
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// Set stores the SMTP password in the system keyring.
func (p *KeyringProvider) Set(password string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := keyring.Set(keyringService, keyringUser, password); err != nil {
		return fmt.Errorf("%w: storing password: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// Delete removes the SMTP password from the system keyring.
func (p *KeyringProvider) Delete() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := keyring.Delete(keyringService, keyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotStored
		}
		return fmt.Errorf("%w: deleting password: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// Description returns a description of this provider.
func (p *KeyringProvider) Description() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS Keychain"
	case "windows":
		return "Windows Credential Manager"
	default:
		return "System Keyring (Secret Service)"
	}
}

// EnvProvider reads the SMTP password from an environment variable.
// This is primarily for CI environments and containerized deployments.
type EnvProvider struct {
	envVar string
}

// NewEnvProvider creates a new EnvProvider that reads the password from the given env var.
func NewEnvProvider(envVar string) *EnvProvider {
	return &EnvProvider{envVar: envVar}
}

// Get returns the password from the environment variable.
func (p *EnvProvider) Get() (string, error) {
	secret := os.Getenv(p.envVar)
	if secret == "" {
		return "", fmt.Errorf("%w: environment variable %s not set", ErrNotStored, p.envVar)
	}
	return secret, nil
}

// Set is not supported for environment-based secrets.
func (p *EnvProvider) Set(password string) error {
	return errors.New("cannot store password in environment provider")
}

// Delete is not supported for environment-based secrets.
func (p *EnvProvider) Delete() error {
	return errors.New("cannot delete password from environment provider")
}

// Description returns a description of this provider.
func (p *EnvProvider) Description() string {
	return fmt.Sprintf("Environment variable (%s)", p.envVar)
}

// GetDefaultProvider returns the appropriate secret provider for the current environment.
// Priority:
// 1. LUMIO_SMTP_PASSWORD environment variable (for CI/containers)
// 2. System keyring (macOS Keychain, Windows Credential Manager, Linux Secret Service)
func GetDefaultProvider() SecretProvider {
	if os.Getenv(envVar) != "" {
		return NewEnvProvider(envVar)
	}
	return NewKeyringProvider()
}
