package feature

import "fmt"

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a tuple and returns a boolean indicating if
the tuple satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() *DiscreteFeature
	SatisfiedBy(Tuple) bool
}

/*
DiscreteCriterion represents a constraint on a discrete feature, a
value it must take.

Its Value method returns the value to which the feature is constrained.
*/
type DiscreteCriterion interface {
	Criterion
	Value() Value
}

type discreteCriterion struct {
	value Value
}

/*
NewDiscreteCriterion takes a value and returns a DiscreteCriterion satisfied
by the tuples holding that value at any position.
*/
func NewDiscreteCriterion(value Value) DiscreteCriterion {
	return &discreteCriterion{value}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (dfc *discreteCriterion) Feature() *DiscreteFeature {
	return dfc.value.feature
}

/*
SatisfiedBy receives a tuple as parameter and returns a boolean indicating if
the tuple satisfies the criterion, that is, if the tuple holds the value of
the criterion.
*/
func (dfc *discreteCriterion) SatisfiedBy(t Tuple) bool {
	return t.FindIndex(dfc.value) >= 0
}

func (dfc *discreteCriterion) Value() Value {
	return dfc.value
}

func (dfc *discreteCriterion) String() string {
	if dfc.value.feature == nil {
		return fmt.Sprintf("undefined feature is %v", dfc.value)
	}
	return fmt.Sprintf("%s is %v", dfc.value.feature.Name(), dfc.value)
}
