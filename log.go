package cursorctl

import "io"

// Logging is pluggable via build tags: the default uses log/slog, the
// logprintln tag selects a dependency-free printer for constrained targets,
// and lognone compiles logging out entirely.
var (
	LogOutput io.Writer
	log       Logger
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
