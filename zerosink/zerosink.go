// Package zerosink adapts a zerolog.Logger to the conlog Sink contract so
// facade output can join an existing zerolog pipeline.
package zerosink

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LixenWraith/conlog"
)

// Sink forwards the facade's three channels to the matching zerolog levels.
type Sink struct {
	log zerolog.Logger
}

var _ conlog.Sink = (*Sink)(nil)

// New returns a sink writing through the given zerolog logger.
func New(log zerolog.Logger) *Sink {
	return &Sink{log: log}
}

// Info implements the conlog.Sink interface.
func (s *Sink) Info(values ...any) {
	s.log.Info().Msg(join(values))
}

// Warn implements the conlog.Sink interface.
func (s *Sink) Warn(values ...any) {
	s.log.Warn().Msg(join(values))
}

// Error implements the conlog.Sink interface.
func (s *Sink) Error(values ...any) {
	s.log.Error().Msg(join(values))
}

// join renders the heterogeneous value sequence the way a console would:
// space-separated, one line.
func join(values []any) string {
	return strings.TrimSuffix(fmt.Sprintln(values...), "\n")
}
