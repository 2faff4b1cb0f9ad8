package titanic

import "steerage.maritimedata.org/internal/appconf"

// Config holds the dataset manager's settings.
type Config struct {
	DatasetURL string // URL or local file path of the passenger manifest CSV
	DataPath   string // path to the SQLite mirror (":memory:" in tests)
	Env        appconf.Environment
	Verbose    bool
}
