package conlog

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// CallerFunc supplies the best-effort caller-context string appended as the
// last element of every emitted sequence. An empty return is valid and must
// never be treated as a failure; the annotation is purely diagnostic.
type CallerFunc func() string

// callerSkip steps over the provider itself, the internal emit frame and the
// public logging method to land on the caller's frame.
const callerSkip = 3

// callerContext is the default provider. It formats the frame above the
// public logging method as "package.Function:line", degrading to an empty
// string when no frame is available.
func callerContext() string {
	pc, _, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	// Strip the package path, keep package.Function.
	if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s:%d", name, line)
}

// CallerFromStack returns a provider that selects one line of a raw textual
// stack trace, for hosts whose traces arrive as text rather than program
// counters. The line offset is fixed; a trace with fewer lines degrades to
// an empty string.
func CallerFromStack(line int) CallerFunc {
	return func() string {
		lines := strings.Split(string(debug.Stack()), "\n")
		if line < 0 || line >= len(lines) {
			return ""
		}
		return trimFrameDecoration(lines[line])
	}
}

// trimFrameDecoration strips the leading frame markers found in common
// textual stack formats ("at file:1:2" and "func@file:1:2").
func trimFrameDecoration(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "at ")
	if i := strings.Index(s, "@"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
