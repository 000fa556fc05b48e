package logsetup_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ytsaurus.tech/library/go/core/log"

	"github.com/vbrozik/vb.utils/library/go/logsetup"
)

func TestLevel(t *testing.T) {
	for _, tc := range []struct {
		verbosity int
		expected  log.Level
	}{
		{verbosity: -5, expected: log.FatalLevel},
		{verbosity: -2, expected: log.FatalLevel},
		{verbosity: -1, expected: log.ErrorLevel},
		{verbosity: 0, expected: log.WarnLevel},
		{verbosity: 1, expected: log.InfoLevel},
		{verbosity: 2, expected: log.DebugLevel},
		{verbosity: 3, expected: log.TraceLevel},
		{verbosity: 10, expected: log.TraceLevel},
	} {
		assert.Equal(t, tc.expected, logsetup.Level(tc.verbosity), "verbosity %d", tc.verbosity)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	l := logsetup.NewWriter(&buf, 0)
	l.Info("hidden")
	l.Warn("shown", log.String("key", "value"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "value")
}

func TestNewWriterVerbose(t *testing.T) {
	var buf bytes.Buffer

	l := logsetup.NewWriter(&buf, 2)
	l.Debug("details")

	assert.Contains(t, buf.String(), "details")
}

func TestNew(t *testing.T) {
	l, err := logsetup.New(1)
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.NotPanics(t, func() { logsetup.Must(-1) })
}
