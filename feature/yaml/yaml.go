/*
Package yaml provides methods to parse feature.Metadata descriptions
from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/cart/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with a metadata description in YAML
and returns the metadata parsed from it or an error.
The YAML is expected to be an object with a label property holding the
name of the label column and a features property. The value for this
should be an object with a property for each feature with its name and
its type (boolean, categorical or continuous) as value. The order of the
features is the order of the columns of the points.
*/
func ReadMetadata(md []byte) (*feature.Metadata, error) {
	document := struct {
		Label    string
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if document.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	result := &feature.Metadata{Label: document.Label}
	for _, item := range document.Features {
		name := fmt.Sprintf("%v", item.Key)
		typeName, ok := item.Value.(string)
		if !ok {
			return nil, fmt.Errorf("invalid type declaration for feature %s of type %T", name, item.Value)
		}
		t, err := feature.ParseType(typeName)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", name, err)
		}
		result.Names = append(result.Names, name)
		result.Types = append(result.Types, t)
	}
	if err = result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %w", filepath, err)
	}
	return metadata, err
}
