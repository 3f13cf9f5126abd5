package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []Severity{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel} {
		assert.Equal(t, level, ParseLevel(level.Name()))
	}
	assert.Equal(t, WarningLevel, ParseLevel("WARNING"))
	assert.Equal(t, Severity(0), ParseLevel("loud"))
	assert.Equal(t, "none", Severity(0xFF).Name())
}

// Not parallel: the level and default handler are process wide.
func TestLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)

	require.NoError(t, Start("warning"))
	assert.Equal(t, WarningLevel, GetLogLevel())

	warnings := TotalWarningLogLines()
	Info("hidden")
	Infof("hidden %s", "too")
	Warningf("resize of %s is slow", "apple-icon.png")
	Error("write failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "resize of apple-icon.png is slow")
	assert.Contains(t, out, "write failed")
	assert.Equal(t, warnings+1, TotalWarningLogLines())

	SetLogLevel(TraceLevel)
	Tracef("Trace %s", "f")
	Debug("Debug")
	Critical("Critical")
	assert.Contains(t, buf.String(), "Trace f")
	assert.Contains(t, buf.String(), "Critical")

	require.Error(t, Start("loud"))
	assert.Equal(t, InfoLevel, GetLogLevel())
}
