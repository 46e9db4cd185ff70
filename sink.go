package conlog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Sink receives the emitted value sequences, one per-channel operation for
// the three console channels. Implementations must accept heterogeneous
// values and perform their own rendering; the facade never inspects the
// values it forwards here.
type Sink interface {
	Info(values ...any)
	Warn(values ...any)
	Error(values ...any)
}

// ConsoleSink writes the info channel to stdout and the warn and error
// channels to stderr, each line tagged with its channel name.
type ConsoleSink struct {
	// Colorize enables ANSI color on the channel tags.
	Colorize bool

	// Injection points for testing outputs.
	Stdout io.Writer
	Stderr io.Writer
}

// NewConsoleSink returns a console sink with colorized channel tags writing
// to the process's stdout and stderr.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		Colorize: true,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

var (
	infoTag  = color.New(color.FgGreen).Sprint("INFO")
	warnTag  = color.New(color.FgYellow).Sprint("WARN")
	errorTag = color.New(color.FgRed).Sprint("ERROR")
)

// Info implements the Sink interface.
func (s *ConsoleSink) Info(values ...any) {
	s.write(s.Stdout, infoTag, "INFO", values)
}

// Warn implements the Sink interface.
func (s *ConsoleSink) Warn(values ...any) {
	s.write(s.Stderr, warnTag, "WARN", values)
}

// Error implements the Sink interface.
func (s *ConsoleSink) Error(values ...any) {
	s.write(s.Stderr, errorTag, "ERROR", values)
}

func (s *ConsoleSink) write(w io.Writer, coloredTag, plainTag string, values []any) {
	if w == nil {
		return
	}
	tag := plainTag
	if s.Colorize {
		tag = coloredTag
	}
	fmt.Fprintln(w, append([]any{tag}, values...)...)
}
