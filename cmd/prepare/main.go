package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/joho/godotenv"

	"delaycast.arrivals.org/flightdb"
	"delaycast.arrivals.org/internal/appconf"
	"delaycast.arrivals.org/internal/features"
	"delaycast.arrivals.org/internal/logging"
	"delaycast.arrivals.org/internal/reference"
)

// prepare builds the training table: it optionally imports raw flight CSV
// data into the flights database, reads every stored record back out, runs
// the cleaning and feature-engineering pipeline, and writes the resulting
// training rows to a CSV file.
func main() {
	_ = godotenv.Load()

	var (
		envFlag   string
		dbPath    string
		dataDir   string
		importCSV string
		outPath   string
	)

	flag.StringVar(&envFlag, "env", envStr("DELAYCAST_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&dbPath, "db-path", envStr("DELAYCAST_DB_PATH", "data/flights.db"), "Path to the flights SQLite database")
	flag.StringVar(&dataDir, "data-dir", envStr("DELAYCAST_DATA_DIR", "data"), "Directory holding the reference tables")
	flag.StringVar(&importCSV, "import", "", "Raw flight CSV to import before preparing (optional)")
	flag.StringVar(&outPath, "out", "training.csv", "Output path for the training table CSV")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	ctx := context.Background()

	client, err := flightdb.NewClient(flightdb.NewConfig(dbPath, appconf.EnvFlagToEnvironment(envFlag), false))
	if err != nil {
		logging.LogError(logger, "failed to open flights database", err,
			slog.String("db_path", dbPath))
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(client, logger, "flights database")

	if importCSV != "" {
		imported, err := client.ImportFromCSV(ctx, importCSV)
		if err != nil {
			logging.LogError(logger, "failed to import flight CSV", err,
				slog.String("path", importCSV))
			os.Exit(1)
		}
		logging.LogOperation(logger, "flight CSV imported",
			slog.String("path", importCSV),
			slog.Int("records", imported))
	}

	records, err := client.Queries.ListFlights(ctx)
	if err != nil {
		logging.LogError(logger, "failed to read flight records", err)
		os.Exit(1)
	}
	logging.LogOperation(logger, "flight records loaded",
		slog.Int("records", len(records)))

	refs, err := reference.InitManager(dataDir)
	if err != nil {
		logging.LogError(logger, "failed to load reference tables", err,
			slog.String("data_dir", dataDir))
		os.Exit(1)
	}

	rows, skipped, err := features.BuildTrainingRows(records, refs)
	if err != nil {
		logging.LogError(logger, "failed to build training rows", err)
		os.Exit(1)
	}
	logging.LogOperation(logger, "training rows built",
		slog.Int("rows", len(rows)),
		slog.Int("skipped", skipped))

	if len(rows) == 0 {
		logger.Error("no usable training rows; nothing to write")
		os.Exit(1)
	}

	if err := writeTrainingCSV(outPath, rows); err != nil {
		logging.LogError(logger, "failed to write training table", err,
			slog.String("path", outPath))
		os.Exit(1)
	}
	logging.LogOperation(logger, "training table written",
		slog.String("path", outPath),
		slog.Int("rows", len(rows)))
}

func writeTrainingCSV(path string, rows []features.TrainingRow) error {
	names := features.TrainingNames()
	records := make([][]string, 0, len(rows)+1)
	records = append(records, names)
	for _, row := range rows {
		rec := make([]string, 0, len(names))
		for _, v := range row.Vector() {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec = append(rec,
			strconv.FormatFloat(row.SinHour, 'g', -1, 64),
			strconv.FormatFloat(row.CosHour, 'g', -1, 64),
			strconv.FormatFloat(row.SinDay, 'g', -1, 64),
			strconv.FormatFloat(row.CosDay, 'g', -1, 64),
			strconv.Itoa(row.Target),
		)
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return df.Err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	return df.WriteCSV(f)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
