package conlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedConsoleSink() (*ConsoleSink, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	sink := &ConsoleSink{Stdout: &stdout, Stderr: &stderr}
	return sink, &stdout, &stderr
}

func TestConsoleSinkRouting(t *testing.T) {
	sink, stdout, stderr := newBufferedConsoleSink()

	sink.Info("hello")
	sink.Warn("careful")
	sink.Error("boom")

	assert.Contains(t, stdout.String(), "hello")
	assert.NotContains(t, stdout.String(), "careful")
	assert.Contains(t, stderr.String(), "careful")
	assert.Contains(t, stderr.String(), "boom")
}

func TestConsoleSinkTags(t *testing.T) {
	sink, stdout, stderr := newBufferedConsoleSink()

	sink.Info("m")
	sink.Warn("m")
	sink.Error("m")

	assert.True(t, strings.HasPrefix(stdout.String(), "INFO "))
	assert.Contains(t, stderr.String(), "WARN ")
	assert.Contains(t, stderr.String(), "ERROR ")
}

func TestConsoleSinkPlainOutput(t *testing.T) {
	sink, stdout, stderr := newBufferedConsoleSink()

	sink.Info("plain-info")
	sink.Error("plain-error")

	assert.NotContains(t, stdout.String(), "\033[")
	assert.NotContains(t, stderr.String(), "\033[")
}

func TestConsoleSinkHeterogeneousValues(t *testing.T) {
	sink, stdout, _ := newBufferedConsoleSink()

	sink.Info("[db]", "slow query", 120, true, nil)

	assert.Equal(t, "INFO [db] slow query 120 true <nil>\n", stdout.String())
}

func TestConsoleSinkNilWriter(t *testing.T) {
	sink := &ConsoleSink{}
	assert.NotPanics(t, func() {
		sink.Info("m")
		sink.Warn("m")
		sink.Error("m")
	})
}

func TestConsoleSinkThroughFacade(t *testing.T) {
	sink, stdout, stderr := newBufferedConsoleSink()
	facade := New(enabledAt(LevelTrace), WithSink(sink), WithCallerFunc(fixedCaller))
	log := facade.Logger("db")

	log.Debug("details")
	log.Warn("careful")

	assert.Equal(t, "INFO [db] details ctx\n", stdout.String())
	assert.Equal(t, "WARN [db] careful ctx\n", stderr.String())
}
