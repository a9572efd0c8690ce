package modlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "modlog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("modlog: already prefixed")
	assert.Equal(t, "modlog: already prefixed", err.Error())

	// Wrapping keeps the sentinel reachable
	err = fmtErrorf("%w: bad", ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCombineErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	assert.NoError(t, combineErrors(nil, nil))
	assert.Same(t, errA, combineErrors(errA, nil))
	assert.Same(t, errB, combineErrors(nil, errB))

	combined := combineErrors(errA, errB)
	assert.Equal(t, "a; b", combined.Error())
	assert.ErrorIs(t, combined, errA)
	assert.ErrorIs(t, combined, errB)
}
