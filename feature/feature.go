/*
Package feature defines discrete features, the values they can take and the
tuples of values that describe a sample.
*/
package feature

import (
	"fmt"
	"strconv"
)

// FeatureError represents an error related with features and their values
type FeatureError string

const (
	// ErrValueOutOfDomain is returned for values that do not belong to the domain of a feature
	ErrValueOutOfDomain = FeatureError("value out of feature domain")
	// ErrUnknownValue is returned when resolving a value name a feature does not define
	ErrUnknownValue = FeatureError("unknown feature value")
)

func (fe FeatureError) Error() string {
	return string(fe)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set. The size of that set is the domain size of
the feature and never changes.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given name whose i-th value is named
after the i-th string.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, append([]string(nil), availableValues...)}
}

/*
NewFeatureWithSize takes a name string and a domain size and returns a
discrete feature whose values are named after their index.
*/
func NewFeatureWithSize(name string, size int) *DiscreteFeature {
	values := make([]string, 0, size)
	for i := 0; i < size; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return &DiscreteFeature{name, values}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

// Size returns the number of values the feature can take.
func (df *DiscreteFeature) Size() int {
	return len(df.availableValues)
}

/*
AvailableValues returns a string slice with the names of the values
available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return append([]string(nil), df.availableValues...)
}

/*
Value takes an index and returns the value of the feature at that index.
The index is not checked against the domain of the feature; use Valid
for that.
*/
func (df *DiscreteFeature) Value(i int) Value {
	return Value{df, i}
}

/*
ValueNamed takes the name of a value and returns the corresponding value of
the feature or an ErrUnknownValue error if the feature has no value with
that name.
*/
func (df *DiscreteFeature) ValueNamed(name string) (Value, error) {
	for i, av := range df.availableValues {
		if av == name {
			return Value{df, i}, nil
		}
	}
	return Value{}, fmt.Errorf("%w %q for feature %s", ErrUnknownValue, name, df.name)
}

/*
Valid receives a value and returns a boolean and an error. When the value
belongs to the feature and its index lies within the feature domain, the
method returns true and nil. Otherwise it returns false and an error
describing the reason.
*/
func (df *DiscreteFeature) Valid(v Value) (bool, error) {
	if v.feature != df {
		return false, fmt.Errorf("%w: value %v does not belong to feature %s", ErrValueOutOfDomain, v, df.name)
	}
	if v.index < 0 || v.index >= df.Size() {
		return false, fmt.Errorf("%w: index %d not in [0, %d) for feature %s", ErrValueOutOfDomain, v.index, df.Size(), df.name)
	}
	return true, nil
}

func (df *DiscreteFeature) String() string {
	return df.name
}
