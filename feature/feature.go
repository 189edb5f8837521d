package feature

import (
	"fmt"
	"strings"
)

/*
Type represents the kind of values a feature column holds. It is fixed per
column for the lifetime of a training run.
*/
type Type int

const (
	// Boolean features split on whether the value is truthy (non-zero).
	Boolean Type = iota
	// Categorical features split on equality with one of their values.
	Categorical
	// Continuous features split on a threshold: values strictly below it
	// go to the true branch.
	Continuous
)

/*
UnknownTypeError is returned when a type marker or type name cannot be
mapped to a Type.
*/
type UnknownTypeError string

func (ute UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown feature type %q", string(ute))
}

/*
ParseMarker takes one of the single letter markers used on the header row of
data files ('b' for boolean, 'c' for categorical, 'r' for continuous/real)
and returns the corresponding Type or an UnknownTypeError.
*/
func ParseMarker(marker string) (Type, error) {
	switch marker {
	case "b":
		return Boolean, nil
	case "c":
		return Categorical, nil
	case "r":
		return Continuous, nil
	}
	return 0, UnknownTypeError(marker)
}

/*
ParseType takes a type name as used on metadata files and returns the
corresponding Type or an UnknownTypeError. Names are case insensitive
and the marker letters are also accepted.
*/
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool", "b":
		return Boolean, nil
	case "categorical", "category", "c":
		return Categorical, nil
	case "continuous", "real", "r":
		return Continuous, nil
	}
	return 0, UnknownTypeError(name)
}

/*
Marker returns the single letter marker for the type.
*/
func (t Type) Marker() string {
	switch t {
	case Boolean:
		return "b"
	case Categorical:
		return "c"
	case Continuous:
		return "r"
	}
	return "?"
}

func (t Type) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}
