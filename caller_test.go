package conlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCallerContext(t *testing.T) {
	sink := &recordingSink{}
	facade := New(enabledAt(LevelTrace), WithSink(sink))

	facade.Logger("mod").Info("m")

	require.Len(t, sink.infos, 1)
	last, ok := sink.infos[0][len(sink.infos[0])-1].(string)
	require.True(t, ok)
	// The default provider lands on this test function's frame.
	assert.True(t, strings.HasPrefix(last, "conlog.TestDefaultCallerContext:"),
		"unexpected caller context: %q", last)
}

func TestTrimFrameDecoration(t *testing.T) {
	assert.Equal(t, "main.go:10:5", trimFrameDecoration("  at main.go:10:5"))
	assert.Equal(t, "app.js:3:1", trimFrameDecoration("handleClick@app.js:3:1"))
	assert.Equal(t, "plain frame", trimFrameDecoration("plain frame"))
	assert.Equal(t, "", trimFrameDecoration("   "))
}

func TestCallerFromStack(t *testing.T) {
	// Line 0 of a runtime stack dump is the goroutine header.
	got := CallerFromStack(0)()
	assert.True(t, strings.HasPrefix(got, "goroutine"), "got %q", got)

	// Out-of-range offsets degrade to an empty string.
	assert.Equal(t, "", CallerFromStack(100000)())
	assert.Equal(t, "", CallerFromStack(-1)())
}
