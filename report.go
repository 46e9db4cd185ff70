package conlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Reporter is the optional error-reporting capability supplied at
// construction. Capture receives a carrier error wrapping the formatted
// message and a classification tag. Calls are fire-and-forget: the facade
// ignores any outcome and assumes the capability handles its own failures.
type Reporter interface {
	Capture(err error, tag string)
}

// reportTag classifies escalated messages as originating from this facade.
const reportTag = "conlog"

// escalate renders the values of an error-level call into a single message,
// wraps it in a carrier error and hands it to the reporter. Constructing the
// carrier is the last step so nothing here can abort the logging call.
func (f *Facade) escalate(prefix string, values []any) {
	if f.reporter == nil {
		return
	}

	rendered := make([]any, 0, len(values)+1)
	rendered = append(rendered, prefix)
	for _, v := range values {
		rendered = append(rendered, renderValue(v))
	}

	f.reporter.Capture(errors.New(formatMessage(rendered)), reportTag)
}

// renderValue expands composite values into a deep textual dump with no
// depth limit; scalar values pass through unchanged.
func renderValue(v any) any {
	if !isComposite(v) {
		return v
	}
	return strings.TrimRight(spew.Sdump(v), "\n")
}

// isComposite distinguishes values that need structural rendering from those
// that already print as a flat scalar. Values carrying their own textual
// form (error, fmt.Stringer) count as scalars.
func isComposite(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case error, fmt.Stringer:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// formatMessage joins the rendered values the way a console sink would:
// printf-style substitution when the first value after the prefix is a
// recognizable format string, space-joined otherwise.
func formatMessage(values []any) string {
	if len(values) >= 2 {
		if format, ok := values[1].(string); ok && hasFormatVerb(format) {
			return fmt.Sprint(values[0]) + " " + fmt.Sprintf(format, values[2:]...)
		}
	}
	return strings.TrimSuffix(fmt.Sprintln(values...), "\n")
}

// hasFormatVerb reports whether s contains at least one printf verb.
// A literal "%%" is not a verb.
func hasFormatVerb(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] == '%' {
			if s[i+1] == '%' {
				i++
				continue
			}
			return true
		}
	}
	return false
}
