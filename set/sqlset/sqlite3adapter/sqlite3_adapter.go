/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	"github.com/pbanos/cart/set/sqlset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
Open takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func Open(path string) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	return sqlset.QuoteIdentifier(name)
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
