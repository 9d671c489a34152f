package mcpserver

import "github.com/lang-tools/gqlvisit/gqllog"

// traceLogger adapts the engine's diagnostic Debug calls into a flat
// []visitTraceEvent for inclusion in a tool response. It only understands
// the "event" message the engine emits once per dispatched enter/leave
// call; "command" lines (emitted alongside non-Continue commands) are
// skipped since the command itself is already implied by the resulting
// document diff.
type traceLogger struct {
	events *[]visitTraceEvent
	attrs  []any
}

// Debug implements gqllog.Logger.
func (t *traceLogger) Debug(msg string, attrs ...any) {
	if msg != "event" {
		return
	}
	all := append(append([]any{}, t.attrs...), attrs...)
	var ev visitTraceEvent
	for i := 0; i+1 < len(all); i += 2 {
		key, _ := all[i].(string)
		value, _ := all[i+1].(string)
		switch key {
		case "kind":
			ev.Kind = value
		case "phase":
			ev.Phase = value
		case "path":
			ev.Path = value
		}
	}
	*t.events = append(*t.events, ev)
}

// With implements gqllog.Logger.
func (t *traceLogger) With(attrs ...any) gqllog.Logger {
	return &traceLogger{events: t.events, attrs: append(append([]any{}, t.attrs...), attrs...)}
}

var _ gqllog.Logger = (*traceLogger)(nil)
