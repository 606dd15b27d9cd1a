package document

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Defaults(t *testing.T) {
	t.Parallel()

	settings := Settings{}

	assert.True(t, settings.SetDefaults())
	assert.False(t, settings.SetDefaults())
	assert.Equal(t, DefaultCacheTTL, settings.CacheTTL)
	require.NoError(t, settings.Validate())
	assert.Equal(t, 30*time.Second, settings.TTL())
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		ttl     string
		wantErr bool
	}{
		{name: "minutes", ttl: "5m", wantErr: false},
		{name: "compound", ttl: "1h30m", wantErr: false},
		{name: "zero", ttl: "0s", wantErr: true},
		{name: "negative", ttl: "-10s", wantErr: true},
		{name: "no unit", ttl: "10", wantErr: true},
		{name: "empty", ttl: "", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			settings := Settings{CacheTTL: testCase.ttl}

			err := settings.Validate()
			if testCase.wantErr {
				require.ErrorIs(t, err, ErrInvalidCacheTTL)
			} else {
				require.NoError(t, err)
				assert.Positive(t, settings.TTL())
			}
		})
	}
}

func TestSettings_TTLUnparsable(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Settings{CacheTTL: "soon"}.TTL())
}

func TestCheckTarget(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckTarget(reflect.TypeFor[Settings]()))
	require.NoError(t, CheckTarget(reflect.TypeFor[*Settings]()))
	require.NoError(t, CheckTarget(reflect.TypeFor[map[string]any]()))
	require.Error(t, CheckTarget(reflect.TypeFor[[]Settings]()))
	require.Error(t, CheckTarget(nil))
}
