package feature

import "fmt"

/*
Metadata describes the columns of a data source: the name of the column
holding the labels and the name and type of each feature column, in order.
*/
type Metadata struct {
	Label string
	Names []string
	Types []Type
}

// Validate returns an error if the metadata has no label, no features,
// a different number of names and types or a repeated column name.
func (md *Metadata) Validate() error {
	if md.Label == "" {
		return fmt.Errorf("metadata has no label column")
	}
	if len(md.Names) == 0 {
		return fmt.Errorf("metadata has no features")
	}
	if len(md.Names) != len(md.Types) {
		return fmt.Errorf("metadata has %d feature names and %d types", len(md.Names), len(md.Types))
	}
	seen := map[string]bool{md.Label: true}
	for _, n := range md.Names {
		if seen[n] {
			return fmt.Errorf("metadata column %q is repeated", n)
		}
		seen[n] = true
	}
	return nil
}

// Columns returns the feature column names followed by the label one
func (md *Metadata) Columns() []string {
	return append(append([]string(nil), md.Names...), md.Label)
}
