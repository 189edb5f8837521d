package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/set"
)

/*
Adapter is an interface providing the methods
needed to read and write sets on a database.
*/
type Adapter interface {
	// DB returns the database connection pool
	DB() *sql.DB
	// ColumnName takes a table, feature or label name and returns it
	// as a quoted identifier or an error if it cannot be used
	ColumnName(string) (string, error)
	// Placeholder returns the placeholder for the n-th (1-based)
	// parameter of a statement
	Placeholder(n int) string
	// Close closes the database
	Close() error
}

/*
QuoteIdentifier takes a name and returns it between double quotes, or an
error if it is empty or contains a double quote. Both supported dialects
quote identifiers this way.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

/*
ReadSet takes a context, an Adapter, a table name and a feature.Metadata
and returns a set with the feature and label columns of every row of the
table, in the order the database returns them, or an error. NULL values
are not supported.
*/
func ReadSet(ctx context.Context, a Adapter, table string, md *feature.Metadata) (*set.Set, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	columns, err := columnNames(a, md.Columns())
	if err != nil {
		return nil, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), tableName)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	s := &set.Set{Names: md.Names, Types: md.Types}
	values := make([]sql.NullFloat64, len(md.Names))
	var label sql.NullString
	dest := make([]interface{}, 0, len(columns))
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &label)
	for r := 0; rows.Next(); r++ {
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row %d of %s: %v", r, table, err)
		}
		row := make([]float64, len(values))
		for i, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("row %d of %s: NULL value for %s", r, table, md.Names[i])
			}
			row[i] = v.Float64
		}
		if !label.Valid {
			return nil, fmt.Errorf("row %d of %s: NULL value for %s", r, table, md.Label)
		}
		l, err := set.ParseLabel(label.String)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %v", r, table, err)
		}
		s.Features = append(s.Features, row)
		s.Labels = append(s.Labels, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return s, nil
}

/*
WriteSet takes a context, an Adapter, a table name, a label name and a
set and creates the table if it does not exist, inserting the points of
the set in a single transaction. It returns the number of inserted rows
or an error.
*/
func WriteSet(ctx context.Context, a Adapter, table, label string, s *set.Set) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if len(s.Names) != len(s.Types) {
		return 0, fmt.Errorf("set has no feature names")
	}
	columns, err := columnNames(a, append(append([]string(nil), s.Names...), label))
	if err != nil {
		return 0, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return 0, err
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", tableName))
	for _, c := range columns[:len(columns)-1] {
		createStmtBuf.WriteString(fmt.Sprintf("%s REAL NOT NULL, ", c))
	}
	createStmtBuf.WriteString(fmt.Sprintf("%s INTEGER NOT NULL)", columns[len(columns)-1]))
	if _, err = a.DB().ExecContext(ctx, createStmtBuf.String()); err != nil {
		return 0, fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = a.Placeholder(i + 1)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %v", err)
	}
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert statement: %v", err)
	}
	defer stmt.Close()
	args := make([]interface{}, len(columns))
	for i, row := range s.Features {
		for j, v := range row {
			args[j] = v
		}
		args[len(args)-1] = 0
		if s.Labels[i] {
			args[len(args)-1] = 1
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting row %d: %v", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %v", err)
	}
	return s.Len(), nil
}

func columnNames(a Adapter, names []string) ([]string, error) {
	columns := make([]string, len(names))
	for i, n := range names {
		c, err := a.ColumnName(n)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return columns, nil
}
