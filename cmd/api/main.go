package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"steerage.maritimedata.org/internal/app"
	"steerage.maritimedata.org/internal/appconf"
	"steerage.maritimedata.org/internal/logging"
	"steerage.maritimedata.org/internal/restapi"
	"steerage.maritimedata.org/internal/titanic"
	"steerage.maritimedata.org/internal/webui"
)

func main() {
	var (
		port       int
		envFlag    string
		apiKeys    string
		rateLimit  int
		datasetURL string
		dataPath   string
		verbose    bool
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeys, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second allowed per API key (negative disables limiting)")
	flag.StringVar(&datasetURL, "dataset-url", "https://web.stanford.edu/class/archive/cs/cs109/cs109.1166/stuff/titanic.csv", "URL or local path of the passenger manifest CSV")
	flag.StringVar(&dataPath, "data-path", "steerage.db", "Path to the SQLite mirror (\":memory:\" for ephemeral)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(envFlag),
		RateLimit: rateLimit,
	}
	if apiKeys != "" {
		cfg.ApiKeys = strings.Split(apiKeys, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	dataConfig := titanic.Config{
		DatasetURL: datasetURL,
		DataPath:   dataPath,
		Env:        cfg.Env,
		Verbose:    verbose,
	}

	// A failed load is not fatal: the API keeps serving predictions and
	// reports the failed state on the status endpoint.
	manager, err := titanic.InitManager(dataConfig)
	if err != nil {
		logging.LogError(logger, "failed to load passenger manifest", err,
			slog.String("source", datasetURL))
	}
	defer manager.Shutdown()

	manager.LogStatistics(logger)

	application := &app.Application{
		Config:     cfg,
		DataConfig: dataConfig,
		Logger:     logger,
		Dataset:    manager,
	}

	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)

	mux := http.NewServeMux()
	mux.Handle("/api/", router)
	webui.NewWebUI(application).SetWebUIRoutes(mux)

	handler := restapi.NewRequestLoggingMiddleware(logger)(
		api.WithSecurityHeaders(
			restapi.CompressionMiddleware(mux)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
