package main

import (
	"fmt"
	"os"

	"github.com/lang-tools/gqlvisit/gqllog"
)

// stderrTraceLogger prints each diagnostic Debug call from the engine to
// stderr as a single line, for the -trace flag.
type stderrTraceLogger struct {
	attrs []any
}

func newStderrTraceLogger() *stderrTraceLogger {
	return &stderrTraceLogger{}
}

// Debug implements gqllog.Logger.
func (l *stderrTraceLogger) Debug(msg string, attrs ...any) {
	fmt.Fprint(os.Stderr, msg)
	all := append(append([]any{}, l.attrs...), attrs...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(os.Stderr, " %v=%v", all[i], all[i+1])
	}
	fmt.Fprintln(os.Stderr)
}

// With implements gqllog.Logger.
func (l *stderrTraceLogger) With(attrs ...any) gqllog.Logger {
	return &stderrTraceLogger{attrs: append(append([]any{}, l.attrs...), attrs...)}
}

var _ gqllog.Logger = (*stderrTraceLogger)(nil)
