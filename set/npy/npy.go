/*
Package npy reads sets from NumPy .npy arrays: a two dimensional array
with a row per point for the features and a one dimensional array for
the labels.
*/
package npy

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/set"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

/*
ReadMatrix takes an io.Reader for a .npy stream with a one or two
dimensional numeric or boolean array and returns it as a matrix. One
dimensional arrays result in a single column matrix.
*/
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	rd, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading npy header: %v", err)
	}
	shape := rd.Header.Descr.Shape
	var rows, cols int
	switch len(shape) {
	case 1:
		rows, cols = shape[0], 1
	case 2:
		rows, cols = shape[0], shape[1]
	default:
		return nil, fmt.Errorf("unsupported array of %d dimensions", len(shape))
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("empty array of shape %v", shape)
	}
	data, err := readFloats(rd)
	if err != nil {
		return nil, err
	}
	if rd.Header.Descr.Fortran {
		m := mat.NewDense(cols, rows, data)
		return mat.DenseCopyOf(m.T()), nil
	}
	return mat.NewDense(rows, cols, data), nil
}

/*
ReadSet takes an io.Reader for the .npy features array, another for the
.npy labels array and the types of the features and returns the set they
hold or an error. A label is true when it is not 0.
*/
func ReadSet(features, labels io.Reader, types []feature.Type) (*set.Set, error) {
	fm, err := ReadMatrix(features)
	if err != nil {
		return nil, fmt.Errorf("reading features: %v", err)
	}
	lm, err := ReadMatrix(labels)
	if err != nil {
		return nil, fmt.Errorf("reading labels: %v", err)
	}
	r, c := fm.Dims()
	lr, lc := lm.Dims()
	if lc != 1 {
		return nil, fmt.Errorf("labels array has %d columns", lc)
	}
	if lr != r {
		return nil, fmt.Errorf("%d feature rows and %d labels", r, lr)
	}
	if c != len(types) {
		return nil, fmt.Errorf("%d feature columns and %d types", c, len(types))
	}
	s := &set.Set{Types: types}
	for i := 0; i < c; i++ {
		s.Names = append(s.Names, fmt.Sprintf("f%d", i))
	}
	for i := 0; i < r; i++ {
		s.Features = append(s.Features, mat.Row(nil, i, fm))
		s.Labels = append(s.Labels, lm.At(i, 0) != 0)
	}
	return s, nil
}

/*
ReadSetFromFilePaths takes the paths of the features and labels .npy
files and the types of the features, opens them and returns the set read
from them with ReadSet.
*/
func ReadSetFromFilePaths(featuresPath, labelsPath string, types []feature.Type) (*set.Set, error) {
	ff, err := os.Open(featuresPath)
	if err != nil {
		return nil, fmt.Errorf("reading features: %v", err)
	}
	defer ff.Close()
	lf, err := os.Open(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("reading labels: %v", err)
	}
	defer lf.Close()
	return ReadSet(ff, lf, types)
}

// IsNpyPath returns whether the path has a .npy extension
func IsNpyPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".npy")
}

func readFloats(rd *npyio.Reader) ([]float64, error) {
	dtype := rd.Header.Descr.Type
	var result []float64
	var err error
	switch strings.TrimLeft(dtype, "<>|=") {
	case "f8":
		err = rd.Read(&result)
	case "f4":
		var data []float32
		if err = rd.Read(&data); err == nil {
			result = convert(len(data), func(i int) float64 { return float64(data[i]) })
		}
	case "i8":
		var data []int64
		if err = rd.Read(&data); err == nil {
			result = convert(len(data), func(i int) float64 { return float64(data[i]) })
		}
	case "i4":
		var data []int32
		if err = rd.Read(&data); err == nil {
			result = convert(len(data), func(i int) float64 { return float64(data[i]) })
		}
	case "u1":
		var data []uint8
		if err = rd.Read(&data); err == nil {
			result = convert(len(data), func(i int) float64 { return float64(data[i]) })
		}
	case "b1":
		var data []bool
		if err = rd.Read(&data); err == nil {
			result = convert(len(data), func(i int) float64 {
				if data[i] {
					return 1
				}
				return 0
			})
		}
	default:
		return nil, fmt.Errorf("unsupported array type %q", dtype)
	}
	if err != nil {
		return nil, fmt.Errorf("reading npy data: %v", err)
	}
	return result, nil
}

func convert(n int, f func(int) float64) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = f(i)
	}
	return result
}
