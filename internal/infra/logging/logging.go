package logging

import (
	"log/slog"
)

// Setup setups logger configuration.
func Setup(debug bool) {
	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Initializing debug level logging")
	}
}
