// Package sqlite provides a SQLite-backed family and sample store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/cscmnu/lmfdb/internal/platform/storage/sqlitemigrate"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists families and samples in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// FindFamily returns one family by name.
func (s *Store) FindFamily(ctx context.Context, name string) (storage.FamilyRecord, error) {
	if err := s.ready(ctx); err != nil {
		return storage.FamilyRecord{}, err
	}
	if strings.TrimSpace(name) == "" {
		return storage.FamilyRecord{}, storage.ErrNotFound
	}

	var (
		record    storage.FamilyRecord
		degree    sql.NullInt64
		dimArgs   sql.NullString
		order     sql.NullFloat64
		latexName string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, latex_name, degree, dim_args_default, ord
		   FROM families
		  WHERE name = ?`,
		name,
	).Scan(&record.Name, &latexName, &degree, &dimArgs, &order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.FamilyRecord{}, storage.ErrNotFound
		}
		return storage.FamilyRecord{}, fmt.Errorf("find family: %w", err)
	}

	record.LatexName = latexName
	if degree.Valid {
		value := int(degree.Int64)
		record.Degree = &value
	}
	if order.Valid {
		value := order.Float64
		record.Order = &value
	}
	if dimArgs.Valid && strings.TrimSpace(dimArgs.String) != "" {
		if err := json.Unmarshal([]byte(dimArgs.String), &record.DimArgsDefault); err != nil {
			return storage.FamilyRecord{}, fmt.Errorf("decode dim_args_default for %s: %w", name, err)
		}
	}
	return record, nil
}

// ListFamilyNames returns every family name in insertion order.
func (s *Store) ListFamilyNames(ctx context.Context) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM families ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list family names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list family names: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list family names: %w", err)
	}
	return names, nil
}

// PutFamily inserts a family or updates it in place, keeping its position in
// the natural listing order.
func (s *Store) PutFamily(ctx context.Context, record storage.FamilyRecord) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return fmt.Errorf("family name is required")
	}

	var dimArgs any
	if record.DimArgsDefault != nil {
		encoded, err := json.Marshal(record.DimArgsDefault)
		if err != nil {
			return fmt.Errorf("encode dim_args_default: %w", err)
		}
		dimArgs = string(encoded)
	}
	var degree any
	if record.Degree != nil {
		degree = *record.Degree
	}
	var order any
	if record.Order != nil {
		order = *record.Order
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO families (name, latex_name, degree, dim_args_default, ord)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   latex_name = excluded.latex_name,
		   degree = excluded.degree,
		   dim_args_default = excluded.dim_args_default,
		   ord = excluded.ord`,
		name,
		strings.TrimSpace(record.LatexName),
		degree,
		dimArgs,
		order,
	)
	if err != nil {
		return fmt.Errorf("put family: %w", err)
	}
	return nil
}

// ListSamples returns the samples of one collection matching cond.
func (s *Store) ListSamples(ctx context.Context, collection string, cond storage.Condition) ([]storage.Sample, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	query := `SELECT name, collection, weight, degree, field, is_eigenform, explicit_formula
	            FROM samples
	           WHERE collection = ?`
	params := []any{collection}
	if clause := strings.TrimSpace(cond.Clause); clause != "" {
		query += " AND (" + clause + ")"
		params = append(params, cond.Params...)
	}
	query += " ORDER BY weight ASC, name ASC"

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()

	var samples []storage.Sample
	for rows.Next() {
		var sample storage.Sample
		if err := rows.Scan(
			&sample.Name,
			&sample.Collection,
			&sample.Weight,
			&sample.Degree,
			&sample.Field,
			&sample.IsEigenform,
			&sample.ExplicitFormula,
		); err != nil {
			return nil, fmt.Errorf("list samples: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	return samples, nil
}

// PutSample inserts or updates one sample.
func (s *Store) PutSample(ctx context.Context, sample storage.Sample) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name := strings.TrimSpace(sample.Name)
	collection := strings.TrimSpace(sample.Collection)
	if name == "" {
		return fmt.Errorf("sample name is required")
	}
	if collection == "" {
		return fmt.Errorf("sample collection is required")
	}
	field := strings.TrimSpace(sample.Field)
	if field == "" {
		return fmt.Errorf("sample %q: field is required", name)
	}
	if sample.Degree < 1 {
		return fmt.Errorf("sample %q: degree must be positive", name)
	}
	if sample.Weight < 0 {
		return fmt.Errorf("sample %q: weight must be non-negative", name)
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO samples (name, collection, weight, degree, field, is_eigenform, explicit_formula)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(collection, name) DO UPDATE SET
		   weight = excluded.weight,
		   degree = excluded.degree,
		   field = excluded.field,
		   is_eigenform = excluded.is_eigenform,
		   explicit_formula = excluded.explicit_formula`,
		name,
		collection,
		sample.Weight,
		sample.Degree,
		field,
		sample.IsEigenform,
		sample.ExplicitFormula,
	)
	if err != nil {
		return fmt.Errorf("put sample: %w", err)
	}
	return nil
}

var (
	_ storage.FamilyStore = (*Store)(nil)
	_ storage.SampleStore = (*Store)(nil)
)
