package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringProviderRoundTrip(t *testing.T) {
	keyring.MockInit()

	p := NewKeyringProvider()

	// Nothing stored yet.
	_, err := p.Get()
	assert.ErrorIs(t, err, ErrNotStored)

	require.NoError(t, p.Set("hunter2"))

	secret, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)

	require.NoError(t, p.Delete())
	_, err = p.Get()
	assert.ErrorIs(t, err, ErrNotStored)
}

func TestKeyringProviderDeleteMissing(t *testing.T) {
	keyring.MockInit()

	p := NewKeyringProvider()
	assert.ErrorIs(t, p.Delete(), ErrNotStored)
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("LUMIO_TEST_SMTP_PASSWORD", "s3cret")

	p := NewEnvProvider("LUMIO_TEST_SMTP_PASSWORD")
	secret, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)

	assert.Error(t, p.Set("nope"))
	assert.Error(t, p.Delete())
	assert.Contains(t, p.Description(), "LUMIO_TEST_SMTP_PASSWORD")
}

func TestEnvProviderMissing(t *testing.T) {
	p := NewEnvProvider("LUMIO_TEST_UNSET_VAR")
	_, err := p.Get()
	assert.ErrorIs(t, err, ErrNotStored)
}

func TestGetDefaultProviderPrefersEnv(t *testing.T) {
	t.Setenv("LUMIO_SMTP_PASSWORD", "from-env")

	p := GetDefaultProvider()
	secret, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret)
}
