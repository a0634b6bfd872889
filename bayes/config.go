package bayes

import "fmt"

/*
Config holds the structural constants of a naive Bayes classifier.
*/
type Config struct {
	// Dims is the number of features of every sample
	Dims int `yaml:"dims"`
	// Classes is the number of classes, labelled 0, 1, ..., Classes-1
	Classes int `yaml:"classes"`
	// MaxFeatureValue is the highest value any feature may take; values range over [0, MaxFeatureValue]
	MaxFeatureValue int `yaml:"maxFeatureValue"`
	// Cardinalities[j] is the number of values the j-th feature may take.
	// When empty every feature is assumed to take MaxFeatureValue values.
	Cardinalities []int `yaml:"cardinalities"`
	// Lambda is the smoothing parameter: 0 for maximum likelihood, 1 for Laplace smoothing
	Lambda float64 `yaml:"lambda"`
}

/*
Validate returns an error wrapping ErrInvalidConfig if the configuration
cannot describe a classifier, or nil otherwise.
*/
func (c Config) Validate() error {
	if c.Dims <= 0 {
		return fmt.Errorf("%w: dims must be positive, got %d", ErrInvalidConfig, c.Dims)
	}
	if c.Classes <= 0 {
		return fmt.Errorf("%w: classes must be positive, got %d", ErrInvalidConfig, c.Classes)
	}
	if c.MaxFeatureValue < 0 {
		return fmt.Errorf("%w: max feature value cannot be negative, got %d", ErrInvalidConfig, c.MaxFeatureValue)
	}
	if c.Lambda < 0 {
		return fmt.Errorf("%w: lambda cannot be negative, got %v", ErrInvalidConfig, c.Lambda)
	}
	if len(c.Cardinalities) == 0 {
		return nil
	}
	if len(c.Cardinalities) != c.Dims {
		return fmt.Errorf("%w: %d cardinalities given for %d dims", ErrInvalidConfig, len(c.Cardinalities), c.Dims)
	}
	for j, s := range c.Cardinalities {
		if s <= 0 {
			return fmt.Errorf("%w: cardinality of feature %d must be positive, got %d", ErrInvalidConfig, j, s)
		}
	}
	return nil
}

func (c Config) cardinalities() []int {
	if len(c.Cardinalities) > 0 {
		return append([]int(nil), c.Cardinalities...)
	}
	result := make([]int, c.Dims)
	for j := range result {
		result[j] = c.MaxFeatureValue
	}
	return result
}
