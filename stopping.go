package cart

import "fmt"

// StoppingStrategy holds the configuration
// for when a node must not be split further.
type StoppingStrategy struct {
	// MaxHeight is the maximum number of splits
	// on any path from the root to a leaf. A
	// tree grown with MaxHeight 0 is a single leaf.
	MaxHeight int
	// MinPoints is the minimum number of points
	// each side of a split must have for the
	// split to be considered.
	MinPoints int
}

/*
DefaultStoppingStrategy returns a StoppingStrategy allowing a single split
without constraints on the size of its branches.
*/
func DefaultStoppingStrategy() StoppingStrategy {
	return StoppingStrategy{MaxHeight: 1, MinPoints: 1}
}

// Validate returns an error if the MaxHeight is negative or MinPoints is
// lower than 1.
func (ss StoppingStrategy) Validate() error {
	if ss.MaxHeight < 0 {
		return fmt.Errorf("max height must be 0 or greater, got %d", ss.MaxHeight)
	}
	if ss.MinPoints < 1 {
		return fmt.Errorf("min points must be 1 or greater, got %d", ss.MinPoints)
	}
	return nil
}

/*
Option is a function that alters a StoppingStrategy, to be passed to
NewTree.
*/
type Option func(*StoppingStrategy)

// MaxHeight limits the number of splits from the root to any leaf.
func MaxHeight(h int) Option {
	return func(ss *StoppingStrategy) {
		ss.MaxHeight = h
	}
}

// MinPoints sets the minimum number of points on each side of a split.
func MinPoints(n int) Option {
	return func(ss *StoppingStrategy) {
		ss.MinPoints = n
	}
}
