// Package duck is a record source backed by an in-memory DuckDB.
//
// Files are read with read_json_objects, so both a top-level json array
// and newline-delimited objects load, one row per object.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	_ "github.com/marcboeker/go-duckdb"

	nt "vista/entity"
)

const table = "records"

// Duck holds loaded records.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

// New opens an in-memory database.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

// Close releases the database.
func (dk *Duck) Close() {
	dk.db.Close()
}

// Load reads a json file, replacing any previously loaded records.
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to drop table")
		return
	}

	// row_number follows file order as insertion order is preserved
	create := fmt.Sprintf(`
		CREATE TABLE %s AS
		SELECT
			ROW_NUMBER() OVER () as id,
			json_text::JSON as raw
		FROM read_json_objects('%s', format='auto') AS t(json_text)
	`, table, quote(path))

	_, err = dk.db.ExecContext(ctx, create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path

	count, err := dk.Count(ctx)
	if err != nil {
		return
	}

	dk.logger.Info(ctx, "loaded records", "path", path, "count", count)
	return
}

// Name returns the name of the loaded file.
func (dk *Duck) Name() string {
	return dk.filename
}

// Count returns the number of loaded records.
func (dk *Duck) Count(ctx context.Context) (count int, err error) {

	err = dk.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	err = errors.Wrapf(err, "failed to count records")
	return
}

// Records returns every loaded record in file order.
func (dk *Duck) Records(ctx context.Context) (records []nt.Record, err error) {

	if dk.filename == "" {
		err = errors.New("no file loaded")
		return
	}

	rows, err := dk.db.QueryContext(ctx, fmt.Sprintf("SELECT raw FROM %s ORDER BY id", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	records = []nt.Record{}
	for rows.Next() {
		var raw any
		err = rows.Scan(&raw)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan record")
			return
		}

		var rec nt.Record
		rec, err = decode(raw)
		if err != nil {
			return
		}
		records = append(records, rec)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Keys returns the distinct top-level keys across records, sorted.
func (dk *Duck) Keys(ctx context.Context) (keys []string, err error) {

	rows, err := dk.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT DISTINCT unnest(json_keys(raw)) AS key FROM %s ORDER BY key", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query keys")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		err = rows.Scan(&key)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan key")
			return
		}
		keys = append(keys, key)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

// decode handles the driver returning json either parsed or as text.
func decode(raw any) (rec nt.Record, err error) {

	switch val := raw.(type) {
	case map[string]any:
		rec = val
		return
	case string:
		err = json.Unmarshal([]byte(val), &rec)
	case []byte:
		err = json.Unmarshal(val, &rec)
	default:
		err = errors.Errorf("expected json object from driver, got %T", raw)
		return
	}

	err = errors.Wrapf(err, "failed to decode record")
	return
}

func quote(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
