// Package sqlite provides the relational store for locale records.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/portalcentro/centrorag/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LocaleStore = (*Store)(nil)

// Store is a SQLite-backed locale store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the SQLite database at dbPath and runs
// pending migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns locales matching the filter, in unit-number order.
// Both filter fields absent matches all rows.
func (s *Store) Lookup(ctx context.Context, filter domain.LocaleFilter) ([]domain.Locale, error) {
	query := `SELECT numero, nombre_local, piso, metros_cuadrados, monto_arriendo_uf,
		estado, arrendatario, contrato, tiene_bano, tiene_bodega, medidor_luz, source_file
		FROM locales WHERE 1=1`
	var args []any

	if filter.Numero != nil {
		query += " AND numero = ?"
		args = append(args, *filter.Numero)
	}
	if filter.Estado != nil {
		query += " AND estado = ?"
		args = append(args, *filter.Estado)
	}
	query += " ORDER BY numero"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying locales: %w", err)
	}
	defer rows.Close()

	locales := []domain.Locale{}
	for rows.Next() {
		var l domain.Locale
		var nombre, piso, estado, arrendatario, contrato, sourceFile sql.NullString
		var metros sql.NullInt64
		var monto sql.NullFloat64
		var bano, bodega, medidor sql.NullBool

		if err := rows.Scan(
			&l.Numero, &nombre, &piso, &metros, &monto,
			&estado, &arrendatario, &contrato, &bano, &bodega, &medidor, &sourceFile,
		); err != nil {
			return nil, fmt.Errorf("scanning locale row: %w", err)
		}

		l.NombreLocal = nombre.String
		l.Piso = piso.String
		l.MetrosCuadrados = int(metros.Int64)
		l.MontoArriendoUF = monto.Float64
		l.Estado = estado.String
		l.Arrendatario = arrendatario.String
		l.Contrato = contrato.String
		l.TieneBano = bano.Bool
		l.TieneBodega = bodega.Bool
		l.MedidorLuz = medidor.Bool
		l.SourceFile = sourceFile.String

		locales = append(locales, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locale rows: %w", err)
	}

	return locales, nil
}

// Replace inserts or replaces a locale row keyed by its unit number.
func (s *Store) Replace(ctx context.Context, l domain.Locale) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO locales (
			numero, nombre_local, piso, metros_cuadrados, monto_arriendo_uf,
			estado, arrendatario, contrato, tiene_bano, tiene_bodega,
			medidor_luz, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Numero, l.NombreLocal, l.Piso, l.MetrosCuadrados, l.MontoArriendoUF,
		l.Estado, l.Arrendatario, l.Contrato, l.TieneBano, l.TieneBodega,
		l.MedidorLuz, l.SourceFile,
	)
	if err != nil {
		return fmt.Errorf("replacing locale %d: %w", l.Numero, err)
	}
	return nil
}

// migrate runs all pending migrations in filename order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			return fmt.Errorf("migration %s: missing numeric prefix", name)
		}
		if version <= currentVersion {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
