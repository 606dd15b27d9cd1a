package config_test

import (
	"errors"
	"io"
	"testing"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string
}

func TestFound(t *testing.T) {
	t.Parallel()

	outcome := config.Found(&sample{Name: "x"})

	assert.Equal(t, config.OutcomePresent, outcome.Kind())
	assert.True(t, outcome.IsPresent())
	require.NoError(t, outcome.Err())
	assert.Equal(t, "x", outcome.Value().Name)
}

func TestFound_NilIsNeverPresent(t *testing.T) {
	t.Parallel()

	var nilSample *sample

	var nilMap map[string]string

	testCases := []struct {
		name    string
		outcome config.Outcome[any]
	}{
		{name: "untyped nil", outcome: config.Found[any](nil)},
		{name: "nil pointer", outcome: config.Found[any](nilSample)},
		{name: "nil map", outcome: config.Found[any](nilMap)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, testCase.outcome.IsFailed())
			require.ErrorIs(t, testCase.outcome.Err(), config.ErrFailure)
			assert.NotErrorIs(t, testCase.outcome.Err(), config.ErrAbsent)
		})
	}
}

func TestAbsent(t *testing.T) {
	t.Parallel()

	outcome := config.Absent[*sample]("api not configured")

	assert.Equal(t, config.OutcomeAbsent, outcome.Kind())
	assert.Nil(t, outcome.Value())
	require.ErrorIs(t, outcome.Err(), config.ErrAbsent)
	assert.NotErrorIs(t, outcome.Err(), config.ErrFailure)
	assert.Contains(t, outcome.Err().Error(), "api not configured")
}

func TestFailed_PlainError(t *testing.T) {
	t.Parallel()

	outcome := config.Failed[*sample](io.ErrUnexpectedEOF)

	assert.True(t, outcome.IsFailed())
	require.ErrorIs(t, outcome.Err(), config.ErrFailure)
	require.ErrorIs(t, outcome.Err(), io.ErrUnexpectedEOF)
	assert.Equal(t, config.KindFailure, config.KindOf(outcome.Err()))
}

func TestFailed_KeepsKind(t *testing.T) {
	t.Parallel()

	cause := config.NewError(config.KindInvalidTargetType, "not a struct", nil)

	direct := config.Failed[any](cause)
	require.ErrorIs(t, direct.Err(), config.ErrInvalidTargetType)

	wrapped := config.Failed[any](errors.Join(errors.New("context"), cause))
	require.ErrorIs(t, wrapped.Err(), config.ErrInvalidTargetType)
	assert.Equal(t, config.KindInvalidTargetType, config.KindOf(wrapped.Err()))
}

func TestFailed_NeverAbsent(t *testing.T) {
	t.Parallel()

	outcome := config.Failed[any](config.Absent[any]("gone").Err())

	assert.True(t, outcome.IsFailed())
	assert.False(t, outcome.IsAbsent())
	assert.Equal(t, config.KindFailure, config.KindOf(outcome.Err()))
	assert.NotErrorIs(t, outcome.Err(), config.ErrAbsent)

	viaFailf := config.Failf[any](config.KindAbsent, nil, "gone")
	assert.True(t, viaFailf.IsFailed())
	assert.Equal(t, config.KindFailure, config.KindOf(viaFailf.Err()))
}

func TestFailed_NilError(t *testing.T) {
	t.Parallel()

	outcome := config.Failed[any](nil)

	assert.True(t, outcome.IsFailed())
	require.Error(t, outcome.Err())
}

func TestOutcome_ZeroValueIsFailed(t *testing.T) {
	t.Parallel()

	var outcome config.Outcome[string]

	assert.Equal(t, config.OutcomeFailed, outcome.Kind())
	assert.True(t, outcome.IsFailed())
	require.ErrorIs(t, outcome.Err(), config.ErrFailure)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	present := config.Convert[*sample](config.Found[any](&sample{Name: "a"}))
	require.True(t, present.IsPresent())
	assert.Equal(t, "a", present.Value().Name)

	mismatch := config.Convert[*sample](config.Found[any]("a string"))
	require.True(t, mismatch.IsFailed())
	assert.Contains(t, mismatch.Err().Error(), "string")

	absent := config.Convert[*sample](config.Absent[any]("none"))
	assert.True(t, absent.IsAbsent())

	failed := config.Convert[*sample](config.Failed[any](io.EOF))
	require.True(t, failed.IsFailed())
	require.ErrorIs(t, failed.Err(), io.EOF)
}

func TestErase(t *testing.T) {
	t.Parallel()

	erased := config.Erase(config.Found(&sample{Name: "b"}))
	require.True(t, erased.IsPresent())

	value, ok := erased.Value().(*sample)
	require.True(t, ok)
	assert.Equal(t, "b", value.Name)

	assert.True(t, config.Erase(config.Absent[int]("none")).IsAbsent())
	assert.True(t, config.Erase(config.Failed[int](io.EOF)).IsFailed())
}

func TestError_Format(t *testing.T) {
	t.Parallel()

	err := config.NewError(config.KindDiscovery, "instantiating provider \"x\"", io.EOF)

	assert.Equal(t, "config: instantiating provider \"x\": EOF", err.Error())
	require.ErrorIs(t, err, config.ErrDiscovery)
	require.ErrorIs(t, err, io.EOF)
	assert.NotErrorIs(t, err, config.ErrFailure)

	bare := config.NewError(config.KindAbsent, "", nil)
	assert.Equal(t, "config: absent", bare.Error())
}
