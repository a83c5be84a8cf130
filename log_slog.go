//go:build !lognone && !logprintln

package cursorctl

import (
	"log/slog"
	"os"
)

func init() {
	LogOutput = os.Stdout
	log = slog.Default()
}
