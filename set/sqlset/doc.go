/*
Package sqlset reads and writes set.Sets from and to SQL
database tables.

A table holds a column per feature, named after it, with
REAL values, and a column for the label with INTEGER values
(1 for true, 0 for false). Reading also accepts labels in
any representation supported by set.ParseLabel.

The dialect specifics are provided by an Adapter: see the
sqlite3adapter and pgadapter subpackages.
*/
package sqlset
