package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"delaycast.arrivals.org/internal/app"
	"delaycast.arrivals.org/internal/appconf"
	"delaycast.arrivals.org/internal/classifier"
	"delaycast.arrivals.org/internal/logging"
	"delaycast.arrivals.org/internal/reference"
	"delaycast.arrivals.org/internal/restapi"
)

func main() {
	// A missing .env file is fine; flags and real environment variables
	// still apply.
	_ = godotenv.Load()

	var (
		envFlag   string
		port      int
		dataDir   string
		modelPath string
		rateLimit int
	)

	flag.IntVar(&port, "port", envInt("DELAYCAST_PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envStr("DELAYCAST_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&dataDir, "data-dir", envStr("DELAYCAST_DATA_DIR", "data"), "Directory holding the reference tables")
	flag.StringVar(&modelPath, "model-path", envStr("DELAYCAST_MODEL_PATH", "data/model.json"), "Path to the classifier artifact")
	flag.IntVar(&rateLimit, "rate-limit", envInt("DELAYCAST_RATE_LIMIT", 20), "Requests per second per client (0 disables)")
	flag.Parse()

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(envFlag),
		DataDir:   dataDir,
		ModelPath: modelPath,
		RateLimit: rateLimit,
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	refs, err := reference.InitManager(cfg.DataDir)
	if err != nil {
		logging.LogError(logger, "failed to load reference tables", err,
			slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	logging.LogOperation(logger, "reference tables loaded",
		slog.Int("airports", refs.AirportCount()),
		slog.Int("routes", refs.RouteCount()))

	model, err := classifier.LoadModel(cfg.ModelPath)
	if err != nil {
		logging.LogError(logger, "failed to load classifier model", err,
			slog.String("model_path", cfg.ModelPath))
		os.Exit(1)
	}
	logging.LogOperation(logger, "classifier model loaded",
		slog.String("model_version", model.Version()))

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		Refs:   refs,
		Model:  model,
	}

	router := httprouter.New()
	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
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

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
