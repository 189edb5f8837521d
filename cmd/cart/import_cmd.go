package main

import (
	"fmt"
	"os"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/set"
	"github.com/pbanos/cart/set/mongoset"
	"github.com/pbanos/cart/set/sqlset"
	"github.com/pbanos/cart/set/sqlset/pgadapter"
	"github.com/pbanos/cart/set/sqlset/sqlite3adapter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

const defaultLabel = "label"

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "import INPUT DATABASE",
		Short: "Import a set into a database",
		Long:  `Import the points of an input set into a table of a SQLite3 (.db) or PostgreSQL database or a MongoDB collection, creating it if needed`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := rootConfig.readSet(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			md, err := rootConfig.metadata()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			count, err := rootConfig.importSet(s, md, args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			log.Info().Int("points", count).Str("database", args[1]).Str("table", rootConfig.table).Msg("Set imported")
		},
	}
}

/*
importSet writes the set to the database, naming the label column after
the metadata, or defaultLabel if md is nil.
*/
func (rcc *rootCmdConfig) importSet(s *set.Set, md *feature.Metadata, database string) (int, error) {
	if md == nil {
		md = &feature.Metadata{Label: defaultLabel, Names: s.Names, Types: s.Types}
	}
	switch src := resolveSource(database); src {
	case sqlite3Source, postgreSQLSource:
		open := sqlite3adapter.Open
		if src == postgreSQLSource {
			open = pgadapter.Open
		}
		a, err := open(database)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		return sqlset.WriteSet(rcc.Context(), a, rcc.table, md.Label, s)
	case mongoDBSource:
		session, err := mgo.Dial(database)
		if err != nil {
			return 0, fmt.Errorf("connecting to %s: %v", database, err)
		}
		defer session.Close()
		c, err := mongoset.Open(session, rcc.table, md)
		if err != nil {
			return 0, err
		}
		return c.WriteSet(rcc.Context(), s)
	default:
		return 0, fmt.Errorf("cannot import into %s: not a database", database)
	}
}
