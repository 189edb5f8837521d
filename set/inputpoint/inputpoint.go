/*
Package inputpoint reads points from an io.Reader one feature value
per line, asking for each value before reading it.
*/
package inputpoint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pbanos/cart/feature"
)

/*
Requester represents a way to ask for feature values and reject the
given values.
*/
type Requester interface {
	RequestValueFor(index int, name string, t feature.Type) error
	RejectValueFor(index int, name string, value string) error
}

/*
Reader reads points whose features are described by a slice of names
and a slice of types.
*/
type Reader struct {
	scanner   *bufio.Scanner
	names     []string
	types     []feature.Type
	requester Requester
}

/*
New takes an io.Reader, the names and types of the features of the points
and a Requester and returns a Reader.
*/
func New(r io.Reader, names []string, types []feature.Type, requester Requester) *Reader {
	return &Reader{bufio.NewScanner(r), names, types, requester}
}

/*
Read returns the next point, requesting each of its feature values with
the Requester and then reading lines until one holds a valid value for
the feature. Boolean features accept 1, 0, true and false, the rest any
number. Invalid lines are rejected with the Requester.

If the reader ends before the first value of a point Read returns io.EOF,
while if it ends in the middle of a point it returns io.ErrUnexpectedEOF.
*/
func (pr *Reader) Read() ([]float64, error) {
	point := make([]float64, len(pr.types))
	for i, t := range pr.types {
		name := pr.name(i)
		if err := pr.requester.RequestValueFor(i, name, t); err != nil {
			return nil, err
		}
		v, err := pr.readValue(i, name, t)
		if err == io.EOF && i > 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		point[i] = v
	}
	return point, nil
}

func (pr *Reader) readValue(i int, name string, t feature.Type) (float64, error) {
	for pr.scanner.Scan() {
		line := strings.TrimSpace(pr.scanner.Text())
		v, err := parseValue(line, t)
		if err == nil {
			return v, nil
		}
		if err = pr.requester.RejectValueFor(i, name, line); err != nil {
			return 0, err
		}
	}
	if err := pr.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

func (pr *Reader) name(i int) string {
	if i < len(pr.names) {
		return pr.names[i]
	}
	return fmt.Sprintf("f%d", i)
}

func parseValue(v string, t feature.Type) (float64, error) {
	if t == feature.Boolean {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return 0, err
		}
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

/*
Prompter is a Requester that writes a prompt for each requested value
and a notice for each rejected one to an io.Writer.
*/
type Prompter struct {
	W io.Writer
}

// RequestValueFor writes a prompt for the feature
func (p Prompter) RequestValueFor(_ int, name string, t feature.Type) error {
	_, err := fmt.Fprintf(p.W, "%s (%v): ", name, t)
	return err
}

// RejectValueFor writes a notice of the invalid value
func (p Prompter) RejectValueFor(_ int, name string, value string) error {
	_, err := fmt.Fprintf(p.W, "invalid value %q for %s, try again: ", value, name)
	return err
}
