package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rachcampitos/taringuita-inventory/internal"
	"github.com/rachcampitos/taringuita-inventory/internal/units"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  sourcePath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  totalProducts INTEGER NOT NULL,
  totalFamilies INTEGER NOT NULL,
  bySheetJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS run_products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId INTEGER NOT NULL,
  code TEXT NOT NULL,
  name TEXT NOT NULL,
  family TEXT NOT NULL,
  sheet TEXT NOT NULL,
  unitOfMeasure TEXT NOT NULL,
  unitOfOrder TEXT NOT NULL,
  conversionFactor REAL NOT NULL,
  UNIQUE(runId, code),
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_run_products_runId ON run_products(runId);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(traceID, sourcePath, outputPath string, doc internal.SeedDocument) (int64, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	bySheetJSON, _ := json.Marshal(doc.Stats.BySheet)

	result, err := tx.Exec(`
INSERT INTO runs (traceId, sourcePath, outputPath, totalProducts, totalFamilies, bySheetJson)
VALUES (?, ?, ?, ?, ?, ?)
`, traceID, sourcePath, outputPath, doc.Stats.TotalProducts, doc.Stats.TotalFamilies, string(bySheetJSON))
	if err != nil {
		return 0, err
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
INSERT INTO run_products (runId, code, name, family, sheet, unitOfMeasure, unitOfOrder, conversionFactor)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, p := range doc.Products {
		if _, err := stmt.Exec(
			runID, p.Code, p.Name, p.Family, p.Sheet,
			string(p.UnitOfMeasure), string(p.UnitOfOrder), p.ConversionFactor,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, sourcePath, outputPath, totalProducts, totalFamilies, bySheetJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		if err := rows.Scan(
			&row.ID, &row.TraceID, &row.SourcePath, &row.OutputPath,
			&row.TotalProducts, &row.TotalFamilies, &row.BySheetJSON, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(id int) (*internal.RunRow, error) {
	var row internal.RunRow
	err := d.conn.QueryRow(`
SELECT id, traceId, sourcePath, outputPath, totalProducts, totalFamilies, bySheetJson, createdAt
FROM runs WHERE id = ?
`, id).Scan(
		&row.ID, &row.TraceID, &row.SourcePath, &row.OutputPath,
		&row.TotalProducts, &row.TotalFamilies, &row.BySheetJSON, &row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) LatestRunIDs(n int) ([]int, error) {
	rows, err := d.conn.Query(`SELECT id FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (d *DB) GetRunProducts(runID int) ([]internal.Product, error) {
	rows, err := d.conn.Query(`
SELECT code, name, family, sheet, unitOfMeasure, unitOfOrder, conversionFactor
FROM run_products WHERE runId = ? ORDER BY id ASC
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.Product
	for rows.Next() {
		var p internal.Product
		var measure, order string
		if err := rows.Scan(&p.Code, &p.Name, &p.Family, &p.Sheet, &measure, &order, &p.ConversionFactor); err != nil {
			return nil, err
		}
		p.UnitOfMeasure = units.Unit(measure)
		p.UnitOfOrder = units.Unit(order)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
