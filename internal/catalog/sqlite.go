package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// DefaultTable is the table read from SQLite catalogs
const DefaultTable = "gutters"

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidTableName reports whether name can be used as a catalog table
func ValidTableName(name string) bool {
	return tableNameRe.MatchString(name)
}

// ReadSQLite decodes profiles from a table in a SQLite database. The table
// uses the same column names as the CSV catalog.
func ReadSQLite(ctx context.Context, path, table string) ([]*types.Profile, int, error) {
	if table == "" {
		table = DefaultTable
	}
	if !ValidTableName(table) {
		return nil, 0, fmt.Errorf("invalid table name: %q", table)
	}

	dsn, err := sqliteDSN(path, "ro")
	if err != nil {
		return nil, 0, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, 0, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: query %s: %w", path, table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: columns: %w", path, err)
	}
	idx, err := newColumnIndex(cols)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	var profiles []*types.Profile
	dropped := 0
	row := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", path, err)
		}
		for i, v := range values {
			row[i] = ""
			if v.Valid {
				row[i] = v.String
			}
		}
		p, ok := idx.decodeRow(row, path)
		if !ok {
			dropped++
			continue
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, dropped, nil
}

// sqliteDSN builds a file: URI for path with the given open mode. The path
// is made absolute and escaped, so '?' and '#' in file names survive.
func sqliteDSN(path, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := url.URL{Scheme: "file", Path: abs, RawQuery: "mode=" + mode}
	return u.String(), nil
}
