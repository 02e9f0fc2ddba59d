package flightdb

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// importBatchSize bounds the records held in memory per insert transaction.
const importBatchSize = 500

// ImportFromCSV loads BTS-style flight records from a CSV file into the
// flights table and returns the number of rows imported.
//
// Empty numeric fields are stored as NULLs, not zeros: the cleaning stage
// needs to tell a missing ARR_DELAY apart from an on-time arrival.
func (c *Client) ImportFromCSV(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("error opening flights CSV: %w", err)
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("error reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{
		"YEAR", "MONTH", "DAY_OF_MONTH", "DAY_OF_WEEK", "CANCELLED",
		"ORIGIN", "DEST", "OP_UNIQUE_CARRIER",
	} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("flights CSV missing column %s", required)
		}
	}

	total := 0
	batch := make([]Flight, 0, importBatchSize)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("error reading CSV row: %w", err)
		}

		flight, err := flightFromCSVRow(row, cols)
		if err != nil {
			return total, err
		}
		batch = append(batch, flight)

		if len(batch) == importBatchSize {
			if err := c.Queries.InsertFlightBatch(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := c.Queries.InsertFlightBatch(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}

	return total, nil
}

func flightFromCSVRow(row []string, cols map[string]int) (Flight, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := requiredInt(field("YEAR"), "YEAR")
	if err != nil {
		return Flight{}, err
	}
	month, err := requiredInt(field("MONTH"), "MONTH")
	if err != nil {
		return Flight{}, err
	}
	dayOfMonth, err := requiredInt(field("DAY_OF_MONTH"), "DAY_OF_MONTH")
	if err != nil {
		return Flight{}, err
	}
	dayOfWeek, err := requiredInt(field("DAY_OF_WEEK"), "DAY_OF_WEEK")
	if err != nil {
		return Flight{}, err
	}

	return Flight{
		Year:       year,
		Month:      month,
		DayOfMonth: dayOfMonth,
		DayOfWeek:  dayOfWeek,
		DepTime:    nullableInt(field("DEP_TIME")),
		ArrTime:    nullableInt(field("ARR_TIME")),
		ArrDelay:   nullableFloat(field("ARR_DELAY")),
		Cancelled:  parseFlag(field("CANCELLED")),
		Origin:     field("ORIGIN"),
		Dest:       field("DEST"),
		Carrier:    field("OP_UNIQUE_CARRIER"),
		Distance:   nullableFloat(field("DISTANCE")),
	}, nil
}

func requiredInt(value, name string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return v, nil
}

// nullableInt parses a possibly-empty numeric field. Source data sometimes
// carries times as floats ("1345.0"); the fractional part is discarded.
func nullableInt(value string) sql.NullInt64 {
	if value == "" {
		return sql.NullInt64{}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(f), Valid: true}
}

func nullableFloat(value string) sql.NullFloat64 {
	if value == "" {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// parseFlag reads a 0/1 flag that may be formatted as a float ("1.00").
func parseFlag(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return f != 0
}
