/*
Package mongoset reads and writes set.Sets from and to
MongoDB collections, with a document per point holding
a field per feature and one for the label.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/set"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the collection used when none is given to Open
const DefaultCollection = "samples"

/*
Collection is a MongoDB collection of points whose fields are described
by a feature.Metadata.
*/
type Collection struct {
	session    *mgo.Session
	collection string
	md         *feature.Metadata
}

/*
Open takes a MongoDB database session, a collection name and a
feature.Metadata and returns a Collection that works on the default
database for that session. It returns an error if the metadata is invalid
or uses names that cannot be document fields.
*/
func Open(session *mgo.Session, collection string, md *feature.Metadata) (*Collection, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	for _, name := range md.Columns() {
		if name == "_id" {
			return nil, fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return nil, fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &Collection{session, collection, md}, nil
}

/*
ReadSet takes a context and returns a set with the points of every
document on the collection or an error. Documents lacking a feature or
the label, or with values that are not numbers or booleans, result in an
error.
*/
func (c *Collection) ReadSet(ctx context.Context) (*set.Set, error) {
	projection := bson.M{"_id": 0}
	for _, name := range c.md.Columns() {
		projection[name] = 1
	}
	s := &set.Set{Names: c.md.Names, Types: c.md.Types}
	var doc bson.M
	iter := c.samples().Find(nil).Select(projection).Iter()
	for i := 0; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		row, label, err := c.parseDocument(doc)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("document %d of %s: %v", i, c.collection, err)
		}
		s.Features = append(s.Features, row)
		s.Labels = append(s.Labels, label)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", c.collection, err)
	}
	return s, nil
}

/*
WriteSet takes a context and a set whose columns follow the collection
metadata and inserts a document per point. It returns the number of
inserted documents or an error.
*/
func (c *Collection) WriteSet(ctx context.Context, s *set.Set) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if len(s.Types) != len(c.md.Types) {
		return 0, fmt.Errorf("set has %d features, collection %d", len(s.Types), len(c.md.Types))
	}
	docs := make([]interface{}, 0, s.Len())
	for i, row := range s.Features {
		docs = append(docs, c.document(row, s.Labels[i]))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := c.samples().Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting into %s: %v", c.collection, err)
	}
	return len(docs), nil
}

func (c *Collection) document(row []float64, label bool) bson.M {
	doc := make(bson.M, len(row)+1)
	for i, name := range c.md.Names {
		doc[name] = row[i]
	}
	doc[c.md.Label] = label
	return doc
}

func (c *Collection) parseDocument(doc bson.M) ([]float64, bool, error) {
	row := make([]float64, len(c.md.Names))
	for i, name := range c.md.Names {
		v, ok := doc[name]
		if !ok {
			return nil, false, fmt.Errorf("missing field %s", name)
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, false, fmt.Errorf("field %s: %v", name, err)
		}
		row[i] = f
	}
	v, ok := doc[c.md.Label]
	if !ok {
		return nil, false, fmt.Errorf("missing field %s", c.md.Label)
	}
	label, err := toLabel(v)
	if err != nil {
		return nil, false, fmt.Errorf("field %s: %v", c.md.Label, err)
	}
	return row, label, nil
}

func (c *Collection) samples() *mgo.Collection {
	return c.session.DB("").C(c.collection)
}

func toFloat(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unsupported value %v of type %T", v, v)
}

func toLabel(v interface{}) (bool, error) {
	switch value := v.(type) {
	case bool:
		return value, nil
	case string:
		return set.ParseLabel(value)
	}
	f, err := toFloat(v)
	if err != nil {
		return false, err
	}
	return f == 1, nil
}
