package conlog

import "fmt"

// Level names a severity. Levels are ordered trace < debug < info < warn <
// error; the order is realized through strictly increasing integer ranks so
// threshold filtering reduces to a single comparison.
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// rankSilent sits above every named rank. It is the rank of any level string
// the facade does not recognize, so an unknown threshold suppresses all
// named levels instead of failing validation.
const rankSilent = int(^uint32(0) >> 1)

// rank returns the filtering rank of the level. Unknown levels rank as the
// silent sentinel.
func (l Level) rank() int {
	switch l {
	case LevelTrace:
		return 0
	case LevelDebug:
		return 1
	case LevelInfo:
		return 2
	case LevelWarn:
		return 3
	case LevelError:
		return 4
	}
	return rankSilent
}

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	return string(l)
}

// ParseLevel returns the Level named by s, or an error when s names no known
// level. The facade itself accepts unknown level strings without error (they
// rank as silent); ParseLevel is for callers who want validation up front.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown level: %q", s)
}
