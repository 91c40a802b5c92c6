package configfile

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	testCases := []struct {
		kind     Kind
		expected string
	}{
		{kind: Success, expected: ""},
		{kind: Unopened, expected: ""},
		{kind: NotFound, expected: "Couldn't find the config.txt file!\n"},
		{kind: IsDirectory, expected: "Found config.txt but it is a directory, couldn't read it\n"},
		{kind: Busy, expected: "Filesystem under heavy load, can't complete reading configuration file\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Report(&buf, Outcome{Kind: tc.kind, Path: DefaultPath}))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fs.ErrClosed }

func TestReportWriteError(t *testing.T) {
	err := Report(failingWriter{}, Outcome{Kind: NotFound})
	assert.True(t, errors.Is(err, fs.ErrClosed))

	// Nothing to write, nothing to fail.
	assert.NoError(t, Report(failingWriter{}, Outcome{Kind: Success}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "busy", Busy.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Empty(t, Kind(42).Message())
}
