package statlearn

import (
	"fmt"

	"github.com/pbanos/statlearn/feature"
)

/*
Candidates is an ordered, fixed-arity set of features together with a mask
telling which of them have already been used to split a dataset and are no
longer eligible for selection.
*/
type Candidates struct {
	features []*feature.DiscreteFeature
	used     []bool
}

/*
NewCandidates takes the features in the positional order of the dataset
tuples and returns a set of candidates with none of them used.
*/
func NewCandidates(features ...*feature.DiscreteFeature) *Candidates {
	return &Candidates{
		features: append([]*feature.DiscreteFeature(nil), features...),
		used:     make([]bool, len(features)),
	}
}

// Len returns the number of positions, used or not.
func (c *Candidates) Len() int {
	return len(c.features)
}

/*
Feature takes a position and returns the feature at it or an error wrapping
ErrCandidateOutOfRange.
*/
func (c *Candidates) Feature(i int) (*feature.DiscreteFeature, error) {
	if err := c.check(i); err != nil {
		return nil, err
	}
	return c.features[i], nil
}

/*
Lookup takes a feature name and returns the position of the first candidate
with that name, or -1.
*/
func (c *Candidates) Lookup(name string) int {
	for i, f := range c.features {
		if f.Name() == name {
			return i
		}
	}
	return -1
}

// MarkUsed takes a position and makes its feature no longer eligible.
func (c *Candidates) MarkUsed(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.used[i] = true
	return nil
}

// IsUsed takes a position and reports whether its feature has been used.
func (c *Candidates) IsUsed(i int) (bool, error) {
	if err := c.check(i); err != nil {
		return false, err
	}
	return c.used[i], nil
}

// Remaining returns the number of features still eligible.
func (c *Candidates) Remaining() int {
	var n int
	for _, u := range c.used {
		if !u {
			n++
		}
	}
	return n
}

func (c *Candidates) check(i int) error {
	if i < 0 || i >= len(c.features) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrCandidateOutOfRange, i, len(c.features))
	}
	return nil
}
