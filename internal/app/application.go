package app

import (
	"log/slog"

	"steerage.maritimedata.org/internal/appconf"
	"steerage.maritimedata.org/internal/titanic"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, the structured logger, and the
// dataset manager that owns the loaded passenger manifest.
type Application struct {
	Config     appconf.Config
	DataConfig titanic.Config
	Logger     *slog.Logger
	Dataset    *titanic.Manager
}
