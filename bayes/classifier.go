/*
Package bayes implements a naive Bayes classifier for samples made of a fixed
number of small non-negative integer features, with Lidstone smoothing of the
estimated probabilities.
*/
package bayes

import (
	"fmt"

	"github.com/pbanos/statlearn/dataset"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Dataset is a dataset of integer feature vectors labelled with a class.
type Dataset = dataset.Dataset[[]int, int]

// ClassifierError represents an error related with a classifier
type ClassifierError string

const (
	// ErrInvalidConfig is returned when a classifier is built with an invalid Config
	ErrInvalidConfig = ClassifierError("invalid classifier configuration")
	// ErrEmptyDataset is returned when a classifier is built on a dataset with no records
	ErrEmptyDataset = ClassifierError("cannot build a classifier on an empty dataset")
	// ErrNotTrained is returned when trying to classify before training
	ErrNotTrained = ClassifierError("classifier has not been trained")
	// ErrDimensionMismatch is returned for feature vectors whose length is not the configured dims
	ErrDimensionMismatch = ClassifierError("feature vector dimension mismatch")
	// ErrFeatureValueOutOfRange is returned for feature values outside [0, MaxFeatureValue]
	ErrFeatureValueOutOfRange = ClassifierError("feature value out of range")
)

func (ce ClassifierError) Error() string {
	return string(ce)
}

/*
Classifier is a naive Bayes classifier. It owns a copy of its training
dataset and the prior and conditional probability tables estimated from it.
*/
type Classifier struct {
	config        Config
	cardinalities []int
	data          *Dataset
	k             int
	prior         []float64
	condition     [][][]float64
	trained       bool
}

/*
New takes a dataset and a configuration and returns an untrained classifier
over a copy of the dataset, or an error if the configuration is invalid, the
dataset is empty or any of its feature vectors does not have cfg.Dims
features. Labels are not validated: records labelled outside [0, Classes)
count towards the dataset size but towards no class.
*/
func New(d *Dataset, cfg Config) (*Classifier, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if d.Size() == 0 {
		return nil, ErrEmptyDataset
	}
	c := &Classifier{
		config:        cfg,
		cardinalities: cfg.cardinalities(),
		data:          dataset.New[[]int, int](),
	}
	for i, r := range d.Records() {
		if len(r.Features) != cfg.Dims {
			return nil, fmt.Errorf("%w: record %d has %d features, expected %d", ErrDimensionMismatch, i, len(r.Features), cfg.Dims)
		}
		if i == 0 || r.Label > c.k {
			c.k = r.Label
		}
		c.data.Insert(append([]int(nil), r.Features...), r.Label)
	}
	c.prior = make([]float64, cfg.Classes)
	c.condition = make([][][]float64, cfg.Classes)
	for k := range c.condition {
		c.condition[k] = make([][]float64, cfg.Dims)
		for j := range c.condition[k] {
			c.condition[k][j] = make([]float64, cfg.MaxFeatureValue+1)
		}
	}
	return c, nil
}

/*
Train estimates the probability tables from the training dataset:

	prior(k) = (Iₖ + λ) / (N + (K+1)λ)
	conditional(k, j, v) = (Iₖⱼᵥ + λ) / (Iₖ + Sⱼλ)

where N is the size of the dataset, K the highest label found in it, Iₖ the
number of records of class k, Iₖⱼᵥ the number of those with value v for
feature j and Sⱼ the cardinality of feature j. A conditional probability
with a zero denominator, for a class without records when λ is 0, is 0.
Training again recomputes the same tables.
*/
func (c *Classifier) Train() {
	n := float64(c.data.Size())
	lambda := c.config.Lambda
	records := c.data.Records()
	for k := 0; k < c.config.Classes; k++ {
		var ik int
		counts := make([][]int, c.config.Dims)
		for j := range counts {
			counts[j] = make([]int, c.config.MaxFeatureValue+1)
		}
		for _, r := range records {
			if r.Label != k {
				continue
			}
			ik++
			for j, v := range r.Features {
				if v >= 0 && v <= c.config.MaxFeatureValue {
					counts[j][v]++
				}
			}
		}
		c.prior[k] = (float64(ik) + lambda) / (n + float64(c.k+1)*lambda)
		for j := 0; j < c.config.Dims; j++ {
			denominator := float64(ik) + float64(c.cardinalities[j])*lambda
			for v := 0; v <= c.config.MaxFeatureValue; v++ {
				if denominator == 0 {
					c.condition[k][j][v] = 0
					continue
				}
				c.condition[k][j][v] = (float64(counts[j][v]) + lambda) / denominator
			}
		}
	}
	c.trained = true
	log.Debug().
		Int("records", c.data.Size()).
		Int("classes", c.config.Classes).
		Int("dims", c.config.Dims).
		Int("k", c.k).
		Float64("lambda", lambda).
		Msg("naive bayes classifier trained")
}

/*
Scores takes a feature vector and returns, for each class k, the product of
its prior probability and the conditional probabilities of every feature
value of the vector given k. It returns ErrNotTrained before training,
ErrDimensionMismatch for vectors without Dims features and
ErrFeatureValueOutOfRange for values outside [0, MaxFeatureValue].
*/
func (c *Classifier) Scores(x []int) ([]float64, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	if len(x) != c.config.Dims {
		return nil, fmt.Errorf("%w: got %d features, expected %d", ErrDimensionMismatch, len(x), c.config.Dims)
	}
	for j, v := range x {
		if v < 0 || v > c.config.MaxFeatureValue {
			return nil, fmt.Errorf("%w: feature %d is %d, not in [0, %d]", ErrFeatureValueOutOfRange, j, v, c.config.MaxFeatureValue)
		}
	}
	scores := make([]float64, c.config.Classes)
	for k := range scores {
		prob := c.prior[k]
		for j, v := range x {
			prob *= c.condition[k][j][v]
		}
		scores[k] = prob
	}
	return scores, nil
}

/*
Predict takes a feature vector and returns the class with the highest score,
ties broken by the lowest class, or the errors described for Scores.
*/
func (c *Classifier) Predict(x []int) (int, error) {
	scores, err := c.Scores(x)
	if err != nil {
		return 0, err
	}
	return floats.MaxIdx(scores), nil
}

/*
PriorProbability returns a copy of the prior probability table, indexed by
class. All its values are 0 before training.
*/
func (c *Classifier) PriorProbability() []float64 {
	return append([]float64(nil), c.prior...)
}

/*
ConditionProbability returns a copy of the conditional probability table,
indexed by class, feature and feature value. All its values are 0 before
training.
*/
func (c *Classifier) ConditionProbability() [][][]float64 {
	result := make([][][]float64, len(c.condition))
	for k := range c.condition {
		result[k] = make([][]float64, len(c.condition[k]))
		for j := range c.condition[k] {
			result[k][j] = append([]float64(nil), c.condition[k][j]...)
		}
	}
	return result
}

// Trained reports whether Train has been called.
func (c *Classifier) Trained() bool {
	return c.trained
}

// K returns the highest label found in the training dataset.
func (c *Classifier) K() int {
	return c.k
}

// Config returns the configuration of the classifier.
func (c *Classifier) Config() Config {
	cfg := c.config
	cfg.Cardinalities = append([]int(nil), c.cardinalities...)
	return cfg
}
