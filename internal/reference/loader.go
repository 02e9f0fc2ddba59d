package reference

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// File names expected inside the reference data directory.
const (
	airportsFile = "airport_coords.csv"
	routesFile   = "route_distances.csv"
	carriersFile = "carriers.csv"
)

// InitManager loads the reference tables from dir. Loading happens once per
// process; a malformed or missing table is a startup failure.
func InitManager(dir string) (*Manager, error) {
	airports, err := loadAirports(filepath.Join(dir, airportsFile))
	if err != nil {
		return nil, err
	}
	distances, err := loadRoutes(filepath.Join(dir, routesFile))
	if err != nil {
		return nil, err
	}
	carriers, err := loadCarriers(filepath.Join(dir, carriersFile))
	if err != nil {
		return nil, err
	}

	return &Manager{
		airports:  airports,
		distances: distances,
		carriers:  carriers,
	}, nil
}

func readFrame(path string, types map[string]series.Type) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close() // nolint:errcheck

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true), dataframe.WithTypes(types))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading %s: %w", filepath.Base(path), df.Err)
	}
	return df, nil
}

// column extracts a named column, surfacing gota's missing-column error.
func column(df dataframe.DataFrame, path, name string) (series.Series, error) {
	col := df.Col(name)
	if col.Err != nil {
		return col, fmt.Errorf("%s: column %q: %w", filepath.Base(path), name, col.Err)
	}
	return col, nil
}

func loadAirports(path string) (map[string]coord, error) {
	df, err := readFrame(path, map[string]series.Type{
		"latitude":  series.Float,
		"longitude": series.Float,
	})
	if err != nil {
		return nil, err
	}

	codes, err := column(df, path, "airport_code")
	if err != nil {
		return nil, err
	}
	lats, err := column(df, path, "latitude")
	if err != nil {
		return nil, err
	}
	lons, err := column(df, path, "longitude")
	if err != nil {
		return nil, err
	}

	airports := make(map[string]coord, df.Nrow())
	codeVals := codes.Records()
	latVals := lats.Float()
	lonVals := lons.Float()
	for i := 0; i < df.Nrow(); i++ {
		code := strings.TrimSpace(codeVals[i])
		if code == "" || math.IsNaN(latVals[i]) || math.IsNaN(lonVals[i]) {
			return nil, fmt.Errorf("%s: row %d: incomplete airport entry", filepath.Base(path), i)
		}
		airports[code] = coord{lat: latVals[i], lon: lonVals[i]}
	}
	return airports, nil
}

func loadRoutes(path string) (map[routeKey]float64, error) {
	df, err := readFrame(path, map[string]series.Type{
		"average_distance": series.Float,
	})
	if err != nil {
		return nil, err
	}

	origins, err := column(df, path, "origin")
	if err != nil {
		return nil, err
	}
	dests, err := column(df, path, "destination")
	if err != nil {
		return nil, err
	}
	dists, err := column(df, path, "average_distance")
	if err != nil {
		return nil, err
	}

	distances := make(map[routeKey]float64, df.Nrow())
	originVals := origins.Records()
	destVals := dests.Records()
	distVals := dists.Float()
	for i := 0; i < df.Nrow(); i++ {
		key := routeKey{
			origin: strings.TrimSpace(originVals[i]),
			dest:   strings.TrimSpace(destVals[i]),
		}
		if key.origin == "" || key.dest == "" || math.IsNaN(distVals[i]) {
			return nil, fmt.Errorf("%s: row %d: incomplete route entry", filepath.Base(path), i)
		}
		// Duplicate routes keep the first observation, matching how the
		// source table was deduplicated.
		if _, exists := distances[key]; !exists {
			distances[key] = distVals[i]
		}
	}
	return distances, nil
}

func loadCarriers(path string) (map[string]string, error) {
	df, err := readFrame(path, nil)
	if err != nil {
		return nil, err
	}

	names, err := column(df, path, "airline_name")
	if err != nil {
		return nil, err
	}
	codes, err := column(df, path, "carrier_code")
	if err != nil {
		return nil, err
	}

	carriers := make(map[string]string, df.Nrow())
	nameVals := names.Records()
	codeVals := codes.Records()
	for i := 0; i < df.Nrow(); i++ {
		name := strings.ToLower(strings.TrimSpace(nameVals[i]))
		code := strings.ToUpper(strings.TrimSpace(codeVals[i]))
		if name == "" || code == "" {
			return nil, fmt.Errorf("%s: row %d: incomplete carrier entry", filepath.Base(path), i)
		}
		carriers[name] = code
	}
	return carriers, nil
}
