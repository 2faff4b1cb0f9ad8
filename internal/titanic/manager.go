package titanic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"steerage.maritimedata.org/internal/logging"
	"steerage.maritimedata.org/internal/titanicdb"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LoadState is the tagged state of the one-shot dataset load.
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Manager owns the loaded passenger manifest and provides read-only access
// to it. The manifest is loaded once at startup, held immutable for the
// lifetime of the process, and mirrored into SQLite for keyed lookups.
type Manager struct {
	source      string
	isLocalFile bool
	passengers  []Passenger
	summary     Summary
	state       LoadState
	loadErr     error
	lastUpdated time.Time
	config      Config
	DB          *titanicdb.Client
}

// InitManager performs the one-shot load: fetch, parse, summarize, and
// mirror into the database. On transport failure the manager degrades to
// an empty manifest with no summary, reports StateFailed, and the error is
// returned for logging; the manager itself remains usable.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DatasetURL, "http://") && !strings.HasPrefix(config.DatasetURL, "https://")

	manager := &Manager{
		source:      config.DatasetURL,
		isLocalFile: isLocalFile,
		passengers:  []Passenger{},
		state:       StateLoading,
		config:      config,
	}

	db, err := titanicdb.NewClient(titanicdb.NewConfig(config.DataPath, config.Env, config.Verbose))
	if err != nil {
		manager.state = StateFailed
		manager.loadErr = err
		return manager, fmt.Errorf("error creating dataset database client: %w", err)
	}
	manager.DB = db

	text, err := rawDatasetText(config.DatasetURL, isLocalFile)
	if err != nil {
		manager.state = StateFailed
		manager.loadErr = err
		return manager, err
	}

	manager.setManifest(ParseDataset(text))

	if err := manager.storePassengers(context.Background()); err != nil {
		manager.state = StateFailed
		manager.loadErr = err
		return manager, err
	}

	manager.state = StateReady
	return manager, nil
}

// Shutdown releases the manager's database resources.
func (manager *Manager) Shutdown() {
	if manager.DB != nil {
		_ = manager.DB.Close()
	}
}

func (manager *Manager) Records() []Passenger {
	return manager.passengers
}

// Summary returns the derived statistics, or ok=false when the dataset is
// not in the ready state and no summary exists.
func (manager *Manager) Summary() (Summary, bool) {
	if manager.state != StateReady {
		return Summary{}, false
	}
	return manager.summary, true
}

func (manager *Manager) State() LoadState {
	return manager.state
}

func (manager *Manager) LoadError() error {
	return manager.loadErr
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) setManifest(passengers []Passenger) {
	manager.passengers = passengers
	manager.summary = Summarize(passengers)
	manager.lastUpdated = time.Now()
}

// storePassengers mirrors the parsed manifest into SQLite so the keyed and
// paged lookups run against indexed storage instead of linear scans.
func (manager *Manager) storePassengers(ctx context.Context) error {
	rows := make([]titanicdb.Passenger, len(manager.passengers))
	for i, p := range manager.passengers {
		rows[i] = titanicdb.Passenger{
			ID:       int64(p.ID),
			Survived: int64(p.Survived),
			Pclass:   int64(p.Pclass),
			Name:     p.Name,
			Sex:      p.Sex,
			Age:      titanicdb.ToNullFloat(p.Age),
			SibSp:    int64(p.SibSp),
			Parch:    int64(p.Parch),
			Ticket:   p.Ticket,
			Fare:     titanicdb.ToNullFloat(p.Fare),
			Cabin:    p.Cabin,
			Embarked: p.Embarked,
		}
	}

	return titanicdb.InsertPassengerBatch(manager.DB.DB, rows)
}

// LogStatistics reports the outcome of the load through the structured
// logger.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	attrs := []slog.Attr{
		slog.String("source", manager.source),
		slog.Bool("local_file", manager.isLocalFile),
		slog.String("state", manager.state.String()),
		slog.Int("records", len(manager.passengers)),
		slog.Int("survived", manager.summary.Survived),
		slog.Int("deaths", manager.summary.Deaths),
	}
	if manager.summary.Accuracy != nil {
		attrs = append(attrs, slog.Float64("accuracy_pct", *manager.summary.Accuracy))
	}

	logging.LogOperation(logger, "dataset_loaded", attrs...)
}
