/*
Package entropy computes information-theoretic statistics over datasets of
feature tuples labeled with discrete values: the entropy of a distribution,
the empirical entropy of a dataset, the conditional entropy of a dataset
given a feature and the information gain of a feature.

All logarithms are in base 2, so results are measured in bits.
*/
package entropy

import (
	"fmt"
	"math"

	"github.com/pbanos/statlearn/dataset"
	"github.com/pbanos/statlearn/feature"
	"gonum.org/v1/gonum/stat"
)

// Dataset is a dataset of feature tuples labeled with a discrete value.
type Dataset = dataset.Dataset[feature.Tuple, feature.Value]

// Record is a record of a Dataset.
type Record = dataset.Record[feature.Tuple, feature.Value]

// EntropyError represents an error related with entropy computations
type EntropyError string

/*
ErrEmptyDataset is the error returned when trying to compute a statistic
that is undefined for an empty dataset.
*/
const ErrEmptyDataset = EntropyError("cannot compute entropy of an empty dataset")

func (ee EntropyError) Error() string {
	return string(ee)
}

/*
Entropy takes a probability distribution and returns its entropy:
−Σ pᵢ·log2(pᵢ), where zero probabilities contribute 0. The distribution
is not validated.
*/
func Entropy(p []float64) float64 {
	return stat.Entropy(p) / math.Ln2
}

/*
LabelDistribution takes a dataset and returns the relative frequency of
each label value, indexed by value, over the whole domain of the label
feature. The label feature is the one of the first record's label; a label
belonging to another feature or out of the domain results in an error
wrapping feature.ErrValueOutOfDomain. An empty dataset results in
ErrEmptyDataset.
*/
func LabelDistribution(d *Dataset) ([]float64, error) {
	counts, err := labelCounts(d)
	if err != nil {
		return nil, err
	}
	total := float64(d.Size())
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c) / total
	}
	return p, nil
}

/*
EmpiricalEntropy takes a dataset and returns the entropy of the frequency
distribution of its labels, or ErrEmptyDataset if it holds no records.
*/
func EmpiricalEntropy(d *Dataset) (float64, error) {
	p, err := LabelDistribution(d)
	if err != nil {
		return 0, err
	}
	return Entropy(p), nil
}

/*
ConditionEntropy takes a dataset and a feature and returns the conditional
entropy H(Label | Feature) of the dataset: the empirical entropy of each
subset of records holding the same value for the feature, weighted by its
relative size. Empty subsets contribute nothing.
*/
func ConditionEntropy(d *Dataset, f *feature.DiscreteFeature) (float64, error) {
	p, err := NewPartition(d, f)
	if err != nil {
		return 0, err
	}
	return p.ConditionEntropy, nil
}

/*
InformationGain takes a dataset and a feature and returns the reduction of
the empirical entropy of the dataset obtained by partitioning it on the
feature. For valid inputs the result is never meaningfully negative.
*/
func InformationGain(d *Dataset, f *feature.DiscreteFeature) (float64, error) {
	p, err := NewPartition(d, f)
	if err != nil {
		return 0, err
	}
	return p.InformationGain, nil
}

/*
GainRatio takes a dataset and a feature and returns the information gain of
the feature relative to the empirical entropy of the dataset. It is 0 for
datasets whose records all share the same label.
*/
func GainRatio(d *Dataset, f *feature.DiscreteFeature) (float64, error) {
	p, err := NewPartition(d, f)
	if err != nil {
		return 0, err
	}
	return p.GainRatio(), nil
}

func labelCounts(d *Dataset) ([]int, error) {
	if d.Size() == 0 {
		return nil, ErrEmptyDataset
	}
	first, err := d.Record(0)
	if err != nil {
		return nil, err
	}
	label := first.Label.Feature()
	if label == nil {
		return nil, fmt.Errorf("%w: record 0 has an undefined label", feature.ErrValueOutOfDomain)
	}
	counts := make([]int, label.Size())
	for i, r := range d.Records() {
		if ok, err := label.Valid(r.Label); !ok {
			return nil, fmt.Errorf("label of record %d: %w", i, err)
		}
		counts[r.Label.Index()]++
	}
	return counts, nil
}
