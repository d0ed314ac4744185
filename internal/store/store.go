// Package store persists measurements in SQLite with their exact values and
// canonical unit expressions.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/ucum/internal/measurement"
	"github.com/banshee-data/ucum/internal/monitoring"
	"github.com/banshee-data/ucum/internal/timeutil"
	"github.com/banshee-data/ucum/internal/ucum"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("measurement not found")

// timeLayout is fixed-width so recorded_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	*sql.DB
	clock timeutil.Clock
}

// Record is one stored measurement.
type Record struct {
	ID          uuid.UUID
	Label       string
	Measurement measurement.Measurement
	RecordedAt  time.Time
}

// Open opens (or creates) the database at path. Call MigrateUp before use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}
	return &Store{DB: db, clock: timeutil.RealClock{}}, nil
}

// Record stores m under label and returns the new row.
func (s *Store) Record(ctx context.Context, label string, m measurement.Measurement) (Record, error) {
	r := Record{
		ID:          uuid.New(),
		Label:       label,
		Measurement: m,
		RecordedAt:  s.clock.Now().UTC(),
	}
	_, err := s.ExecContext(ctx,
		`INSERT INTO measurements (id, label, value, unit, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID.String(), r.Label, m.Value().RatString(), m.Unit().String(), r.RecordedAt.Format(timeLayout),
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert measurement: %w", err)
	}
	monitoring.Debugf("store: recorded %s %q = %s", r.ID, label, m)
	return r, nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	row := s.QueryRowContext(ctx,
		`SELECT id, label, value, unit, recorded_at FROM measurements WHERE id = ?`, id.String())
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return r, err
}

// List returns every record ordered by recording time.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.QueryContext(ctx,
		`SELECT id, label, value, unit, recorded_at FROM measurements ORDER BY recorded_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListIn returns every record whose unit is compatible with target,
// converted into target. Incompatible records are skipped.
func (s *Store) ListIn(ctx context.Context, target ucum.Unit) ([]Record, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(all))
	for _, r := range all {
		if !r.Measurement.Unit().IsCompatibleWith(target) {
			monitoring.Debugf("store: skipping %s: %s is not compatible with %s", r.ID, r.Measurement.Unit(), target)
			continue
		}
		converted, err := r.Measurement.ConvertTo(target)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		r.Measurement = converted
		out = append(out, r)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var id, label, value, unit, recordedAt string
	if err := sc.Scan(&id, &label, &value, &unit, &recordedAt); err != nil {
		return Record{}, err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return Record{}, fmt.Errorf("bad id %q: %w", id, err)
	}
	m, err := measurement.NewFromString(value, unit)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: %w", id, err)
	}
	at, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: bad timestamp %q: %w", id, recordedAt, err)
	}
	return Record{ID: uid, Label: label, Measurement: m, RecordedAt: at}, nil
}
