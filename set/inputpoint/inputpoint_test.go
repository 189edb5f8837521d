package inputpoint

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pbanos/cart/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRequester struct {
	requested []string
	rejected  []string
	err       error
}

func (cr *countingRequester) RequestValueFor(_ int, name string, _ feature.Type) error {
	cr.requested = append(cr.requested, name)
	return nil
}

func (cr *countingRequester) RejectValueFor(_ int, _ string, value string) error {
	cr.rejected = append(cr.rejected, value)
	return cr.err
}

var types = []feature.Type{feature.Boolean, feature.Categorical, feature.Continuous}

func TestRead(t *testing.T) {
	cr := &countingRequester{}
	r := New(strings.NewReader("true\nred\n2\n 1.5 \n0\n3\n-1\n"), []string{"a", "b"}, types, cr)

	p, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1.5}, p)
	assert.Equal(t, []string{"a", "b", "f2"}, cr.requested)
	assert.Equal(t, []string{"red"}, cr.rejected)

	p, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, -1}, p)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadUnexpectedEOF(t *testing.T) {
	r := New(strings.NewReader("1\n"), nil, types, &countingRequester{})
	_, err := r.Read()
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestReadRejectionError(t *testing.T) {
	stop := errors.New("stop")
	r := New(strings.NewReader("maybe\n"), nil, types, &countingRequester{err: stop})
	_, err := r.Read()
	assert.Equal(t, stop, err)
}

func TestPrompter(t *testing.T) {
	var buf bytes.Buffer
	r := New(strings.NewReader("x\n1\n"), []string{"size"}, []feature.Type{feature.Continuous}, Prompter{&buf})
	p, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, p)
	assert.Equal(t, `size (continuous): invalid value "x" for size, try again: `, buf.String())
}
