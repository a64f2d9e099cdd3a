package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("%w: recipients list is empty", ErrValidation)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	err := fmt.Errorf("template %q: %w", "bogus", ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestIsTransport(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")
	err := fmt.Errorf("%w: %v", ErrTransport, inner)
	assert.True(t, IsTransport(err))
}

func TestIsUnsupportedFormat(t *testing.T) {
	err := fmt.Errorf("%w: .xlsx", ErrUnsupportedFormat)
	assert.True(t, IsUnsupportedFormat(err))
	assert.False(t, IsInvalidState(err))
}

func TestNilError(t *testing.T) {
	assert.False(t, IsValidation(nil))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsTransport(nil))
}
