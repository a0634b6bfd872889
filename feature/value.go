package feature

import (
	"fmt"
	"strings"
)

/*
Value is a value taken by a discrete feature: the feature it belongs to
plus the index of the value in the feature domain.

Values of different features never compare equal, even when they share
an index, so a generic routine can look for a value among the heterogeneous
values of a Tuple without knowing its shape.
*/
type Value struct {
	feature *DiscreteFeature
	index   int
}

// Feature returns the feature the value belongs to.
func (v Value) Feature() *DiscreteFeature {
	return v.feature
}

// Index returns the position of the value in its feature domain.
func (v Value) Index() int {
	return v.index
}

// Equal reports whether both values belong to the same feature and have the same index.
func (v Value) Equal(o Value) bool {
	return v.feature == o.feature && v.index == o.index
}

func (v Value) String() string {
	if v.feature == nil {
		return fmt.Sprintf("<undefined>(%d)", v.index)
	}
	if v.index >= 0 && v.index < v.feature.Size() {
		return v.feature.availableValues[v.index]
	}
	return fmt.Sprintf("%s(%d)", v.feature.name, v.index)
}

/*
Tuple is an ordered, fixed-arity sequence of values, each one possibly
belonging to a different feature.
*/
type Tuple []Value

// NewTuple returns a tuple with the given values in the given order.
func NewTuple(values ...Value) Tuple {
	return Tuple(append([]Value(nil), values...))
}

/*
FindIndex takes a value and returns the first position of the tuple holding
an equal value, or -1 if there is none. Values of features other than the
one of the searched value never match.
*/
func (t Tuple) FindIndex(v Value) int {
	for i, tv := range t {
		if tv.Equal(v) {
			return i
		}
	}
	return -1
}

/*
ValueFor takes a feature and returns the value the tuple holds for it,
along with a boolean indicating whether any position of the tuple belongs
to that feature.
*/
func (t Tuple) ValueFor(f *DiscreteFeature) (Value, bool) {
	for _, tv := range t {
		if tv.feature == f {
			return tv, true
		}
	}
	return Value{}, false
}

// Equal reports whether both tuples hold equal values at every position.
func (t Tuple) Equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !t[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (t Tuple) String() string {
	parts := make([]string, 0, len(t))
	for _, v := range t {
		parts = append(parts, v.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
