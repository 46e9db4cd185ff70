package zerosink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LixenWraith/conlog"
)

func TestChannelLevelMapping(t *testing.T) {
	var buf bytes.Buffer
	sink := New(zerolog.New(&buf))

	sink.Info("a")
	sink.Warn("b")
	sink.Error("c")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[2], `"level":"error"`)
}

func TestJoinsValueSequence(t *testing.T) {
	var buf bytes.Buffer
	sink := New(zerolog.New(&buf))

	sink.Info("[db]", "slow query", 120, true)

	assert.Contains(t, buf.String(), `"message":"[db] slow query 120 true"`)
}

func TestThroughFacade(t *testing.T) {
	var buf bytes.Buffer
	facade := conlog.New(
		&conlog.Config{Console: &conlog.ConsoleConfig{
			Enabled: conlog.Ptr(true),
			Level:   conlog.Ptr(conlog.LevelWarn),
		}},
		conlog.WithSink(New(zerolog.New(&buf))),
		conlog.WithCallerFunc(func() string { return "ctx" }),
	)
	log := facade.Logger("net")

	log.Info("dropped")
	log.Warn("retrying", 2)

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"message":"[net] retrying 2 ctx"`)
}
