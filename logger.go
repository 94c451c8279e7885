package disguiser

import (
	"log/slog"

	"github.com/mcneja/disguiser/render"
)

// SetLogger sets the logger for this package and its sub-packages. Pass
// nil to disable logging. Logging is disabled by default.
func SetLogger(logger *slog.Logger) { render.SetLogger(logger) }

// Logger returns the configured logger, or a no-op logger if none is set.
func Logger() *slog.Logger { return render.Logger() }
