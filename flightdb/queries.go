package flightdb

import (
	"context"
	"database/sql"
	"fmt"

	"delaycast.arrivals.org/internal/features"
)

// Queries wraps the prepared access paths for the flights table.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// InsertFlightBatch adds flight records to the database in one transaction.
func (q *Queries) InsertFlightBatch(ctx context.Context, flights []Flight) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flights (
			year, month, day_of_month, day_of_week, dep_time, arr_time,
			arr_delay, cancelled, origin, dest, carrier, distance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, f := range flights {
		_, err := stmt.ExecContext(ctx,
			f.Year, f.Month, f.DayOfMonth, f.DayOfWeek, f.DepTime, f.ArrTime,
			f.ArrDelay, f.Cancelled, f.Origin, f.Dest, f.Carrier, f.Distance,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting flight: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ListFlights returns every stored flight as a pipeline record.
func (q *Queries) ListFlights(ctx context.Context) ([]features.Record, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, year, month, day_of_month, day_of_week, dep_time, arr_time,
		       arr_delay, cancelled, origin, dest, carrier, distance
		FROM flights
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying flights: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var records []features.Record
	for rows.Next() {
		var f Flight
		err := rows.Scan(
			&f.ID, &f.Year, &f.Month, &f.DayOfMonth, &f.DayOfWeek, &f.DepTime,
			&f.ArrTime, &f.ArrDelay, &f.Cancelled, &f.Origin, &f.Dest,
			&f.Carrier, &f.Distance,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning flight: %w", err)
		}
		records = append(records, f.ToRecord())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flights: %w", err)
	}

	return records, nil
}

// CountFlightsByOrigin returns the number of stored flights per origin airport.
func (q *Queries) CountFlightsByOrigin(ctx context.Context) (map[string]int64, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT origin, COUNT(*) FROM flights GROUP BY origin;
	`)
	if err != nil {
		return nil, fmt.Errorf("error counting flights: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	counts := make(map[string]int64)
	for rows.Next() {
		var origin string
		var count int64
		if err := rows.Scan(&origin, &count); err != nil {
			return nil, fmt.Errorf("error scanning count: %w", err)
		}
		counts[origin] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}

	return counts, nil
}
