package canopy

import "log"

var (
	defaultLogger Logger = &stdLogger{}
)

var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*stdLogger)(nil)
)

// Logger receives progress lines from the snapshot layer.
type Logger interface {
	Log(format string, args ...interface{})
}

// NopLogger discards everything.
func NopLogger() Logger { return &nopLogger{} }

type nopLogger struct{}

func (n *nopLogger) Log(format string, args ...interface{}) {}

type stdLogger struct{}

func (s *stdLogger) Log(format string, args ...interface{}) {
	if format[len(format)-1] != '\n' {
		format += "\n"
	}
	log.Printf("canopy: "+format, args...)
}
