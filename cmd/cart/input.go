package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/feature/yaml"
	"github.com/pbanos/cart/set"
	"github.com/pbanos/cart/set/csv"
	"github.com/pbanos/cart/set/mongoset"
	"github.com/pbanos/cart/set/npy"
	"github.com/pbanos/cart/set/sqlset"
	"github.com/pbanos/cart/set/sqlset/pgadapter"
	"github.com/pbanos/cart/set/sqlset/sqlite3adapter"
	"github.com/rs/zerolog/log"
	mgo "gopkg.in/mgo.v2"
)

const defaultTable = mongoset.DefaultCollection

type source int

const (
	csvSource source = iota
	sqlite3Source
	postgreSQLSource
	mongoDBSource
	npySource
)

func (s source) String() string {
	switch s {
	case sqlite3Source:
		return "SQLite3"
	case postgreSQLSource:
		return "PostgreSQL"
	case mongoDBSource:
		return "MongoDB"
	case npySource:
		return "npy"
	}
	return "CSV"
}

// resolveSource returns the kind of source an input path or URL points to
func resolveSource(input string) source {
	switch {
	case strings.HasPrefix(input, "postgresql://"), strings.HasPrefix(input, "postgres://"):
		return postgreSQLSource
	case strings.HasPrefix(input, "mongodb://"):
		return mongoDBSource
	case strings.HasSuffix(input, ".db"):
		return sqlite3Source
	case npy.IsNpyPath(input):
		return npySource
	}
	return csvSource
}

// metadata returns the metadata read from the metadata flag, or nil if unset
func (rcc *rootCmdConfig) metadata() (*feature.Metadata, error) {
	if rcc.metadataInput == "" {
		return nil, nil
	}
	log.Debug().Str("path", rcc.metadataInput).Msg("Reading metadata")
	md, err := yaml.ReadMetadataFromFile(rcc.metadataInput)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %v", err)
	}
	return md, nil
}

/*
readSet takes an input path or URL and returns the set it holds. CSV
inputs use the marker layout unless metadata is given, every other
source requires it.
*/
func (rcc *rootCmdConfig) readSet(input string) (*set.Set, error) {
	md, err := rcc.metadata()
	if err != nil {
		return nil, err
	}
	src := resolveSource(input)
	if src != csvSource && md == nil {
		return nil, fmt.Errorf("reading %s input %s: required metadata flag was not set", src, input)
	}
	log.Debug().Stringer("source", src).Str("input", input).Msg("Reading set")
	var s *set.Set
	switch src {
	case sqlite3Source:
		s, err = rcc.readSQLSet(input, md, sqlite3adapter.Open)
	case postgreSQLSource:
		s, err = rcc.readSQLSet(input, md, pgadapter.Open)
	case mongoDBSource:
		s, err = rcc.readMongoDBSet(input, md)
	case npySource:
		if rcc.labelsInput == "" {
			return nil, fmt.Errorf("reading npy input %s: required labels flag was not set", input)
		}
		s, err = npy.ReadSetFromFilePaths(input, rcc.labelsInput, md.Types)
		if err == nil {
			s.Names = md.Names
		}
	default:
		s, err = csv.ReadSetFromFilePath(input, md)
	}
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("reading %s: %v", input, err)
	}
	log.Debug().Int("points", s.Len()).Int("features", len(s.Types)).Msg("Set read")
	return s, nil
}

func (rcc *rootCmdConfig) readSQLSet(input string, md *feature.Metadata, open func(string) (sqlset.Adapter, error)) (*set.Set, error) {
	a, err := open(input)
	if err != nil {
		return nil, err
	}
	defer a.Close()
	return sqlset.ReadSet(rcc.Context(), a, rcc.table, md)
}

func (rcc *rootCmdConfig) readMongoDBSet(input string, md *feature.Metadata) (*set.Set, error) {
	session, err := mgo.Dial(input)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %v", input, err)
	}
	defer session.Close()
	c, err := mongoset.Open(session, rcc.table, md)
	if err != nil {
		return nil, err
	}
	return c.ReadSet(rcc.Context())
}

/*
writeResults writes the result rows to the output flag path, or STDOUT
if unset.
*/
func (rcc *rootCmdConfig) writeResults(rows [][]interface{}) error {
	if rcc.output == "" {
		return csv.WriteResults(os.Stdout, rows)
	}
	f, err := os.Create(rcc.output)
	if err != nil {
		return fmt.Errorf("creating %s: %v", rcc.output, err)
	}
	if err = csv.WriteResults(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
