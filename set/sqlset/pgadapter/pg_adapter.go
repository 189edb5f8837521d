/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/cart/set/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
Open takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func Open(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
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

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (a *adapter) Close() error {
	return a.db.Close()
}
