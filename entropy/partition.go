package entropy

import (
	"fmt"

	"github.com/pbanos/statlearn/feature"
)

/*
Partition represents a partition of a dataset according to a feature into
one subset per value of the feature, along with the information it provides
to predict the labels of the dataset.
*/
type Partition struct {
	Feature *feature.DiscreteFeature
	// Criteria[i] is satisfied by the records in Subsets[i]
	Criteria []feature.DiscreteCriterion
	// Subsets[i] holds the records of the dataset with the i-th value of Feature
	Subsets []*Dataset
	// EmpiricalEntropy is the empirical entropy of the partitioned dataset
	EmpiricalEntropy float64
	// ConditionEntropy is the conditional entropy of the partitioned dataset given Feature
	ConditionEntropy float64
	// InformationGain is EmpiricalEntropy minus ConditionEntropy
	InformationGain float64
}

/*
NewPartition takes a dataset and a discrete feature and returns the partition
of the dataset for the given feature or an error. Records are assigned to the
subset of the value of the feature they hold, located by its position in the
record's tuple. ErrEmptyDataset is returned for empty datasets.
*/
func NewPartition(d *Dataset, f *feature.DiscreteFeature) (*Partition, error) {
	if f == nil {
		return nil, fmt.Errorf("partitioning dataset: nil feature")
	}
	sEntropy, err := EmpiricalEntropy(d)
	if err != nil {
		return nil, err
	}
	totalCount := float64(d.Size())
	result := &Partition{
		Feature:          f,
		Criteria:         make([]feature.DiscreteCriterion, 0, f.Size()),
		Subsets:          make([]*Dataset, 0, f.Size()),
		EmpiricalEntropy: sEntropy,
	}
	for c := 0; c < f.Size(); c++ {
		criterion := feature.NewDiscreteCriterion(f.Value(c))
		subset := d.SubsetWith(func(r Record) bool {
			return criterion.SatisfiedBy(r.Features)
		})
		result.Criteria = append(result.Criteria, criterion)
		result.Subsets = append(result.Subsets, subset)
		if subset.Size() == 0 {
			continue
		}
		subsetEntropy, err := EmpiricalEntropy(subset)
		if err != nil {
			return nil, fmt.Errorf("partitioning on %v: %w", criterion, err)
		}
		result.ConditionEntropy += subsetEntropy * float64(subset.Size()) / totalCount
	}
	result.InformationGain = result.EmpiricalEntropy - result.ConditionEntropy
	return result, nil
}

/*
GainRatio returns the information gain of the partition relative to the
empirical entropy of the partitioned dataset, or 0 if that entropy is 0.
*/
func (p *Partition) GainRatio() float64 {
	if p.EmpiricalEntropy == 0 {
		return 0
	}
	return p.InformationGain / p.EmpiricalEntropy
}

func (p *Partition) String() string {
	return fmt.Sprintf("%s: H(D|A)=%.3f g(D,A)=%.3f", p.Feature.Name(), p.ConditionEntropy, p.InformationGain)
}
