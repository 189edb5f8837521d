package yaml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/cart/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadata = `
label: survived
features:
  adult: boolean
  class: categorical
  fare: continuous
  age: real
`

func TestReadMetadata(t *testing.T) {
	md, err := ReadMetadata([]byte(metadata))
	require.NoError(t, err)
	assert.Equal(t, "survived", md.Label)
	assert.Equal(t, []string{"adult", "class", "fare", "age"}, md.Names)
	assert.Equal(t, []feature.Type{feature.Boolean, feature.Categorical, feature.Continuous, feature.Continuous}, md.Types)
	assert.Equal(t, []string{"adult", "class", "fare", "age", "survived"}, md.Columns())
}

func TestReadMetadataErrors(t *testing.T) {
	_, err := ReadMetadata([]byte("label: x\n"))
	assert.EqualError(t, err, "metadata file has no feature information")

	_, err = ReadMetadata([]byte("features:\n  a: boolean\n"))
	assert.EqualError(t, err, "metadata has no label column")

	_, err = ReadMetadata([]byte("label: x\nfeatures:\n  a: ordinal\n"))
	var ute feature.UnknownTypeError
	assert.True(t, errors.As(err, &ute))

	_, err = ReadMetadata([]byte("label: x\nfeatures:\n  a: [1, 2]\n"))
	assert.Error(t, err)

	_, err = ReadMetadata([]byte("label: a\nfeatures:\n  a: boolean\n"))
	assert.EqualError(t, err, `metadata column "a" is repeated`)

	_, err = ReadMetadata([]byte("label: [\n"))
	assert.Error(t, err)
}

func TestReadMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(metadata), 0o600))

	md, err := ReadMetadataFromFile(path)
	require.NoError(t, err)
	assert.Len(t, md.Names, 4)

	_, err = ReadMetadataFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
