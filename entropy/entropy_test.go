package entropy

import (
	"errors"
	"math"
	"testing"

	"github.com/pbanos/statlearn/dataset"
	"github.com/pbanos/statlearn/feature"
	"github.com/pbanos/statlearn/internal/textbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func loan(t *testing.T) *textbook.Loan {
	t.Helper()
	l, err := textbook.LoanApplications()
	require.NoError(t, err)
	return l
}

func TestEntropy(t *testing.T) {
	testCases := []struct {
		name     string
		p        []float64
		expected float64
	}{
		{"one-hot", []float64{0, 1, 0}, 0},
		{"single certain outcome", []float64{1}, 0},
		{"fair coin", []float64{0.5, 0.5}, 1},
		{"fair die with 4 faces", []float64{0.25, 0.25, 0.25, 0.25}, 2},
		{"zeros are skipped", []float64{0.5, 0, 0.5, 0}, 1},
		{"loan labels", []float64{9.0 / 15, 6.0 / 15}, 0.9709505944546686},
		{"empty", nil, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Entropy(tc.p), tolerance)
		})
	}
}

func TestEntropyIsNonNegative(t *testing.T) {
	distributions := [][]float64{
		{0.1, 0.2, 0.7},
		{0.999, 0.001},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.05, 0.05, 0.1, 0.2, 0.6},
	}
	for _, p := range distributions {
		assert.GreaterOrEqual(t, Entropy(p), 0.0, "distribution %v", p)
	}
}

func TestEmpiricalEntropy(t *testing.T) {
	l := loan(t)
	h, err := EmpiricalEntropy(l.Dataset)
	require.NoError(t, err)
	assert.InDelta(t, 0.9709505944546686, h, tolerance)

	p, err := LabelDistribution(l.Dataset)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9.0 / 15, 6.0 / 15}, p, tolerance)
	assert.Equal(t, Entropy(p), h)
}

func TestEmptyDataset(t *testing.T) {
	l := loan(t)
	empty := dataset.New[feature.Tuple, feature.Value]()

	_, err := EmpiricalEntropy(empty)
	assert.True(t, errors.Is(err, ErrEmptyDataset))
	_, err = LabelDistribution(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ConditionEntropy(empty, l.Features[0])
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = InformationGain(empty, l.Features[0])
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = GainRatio(empty, l.Features[0])
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = MajorityClass(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, ok := SameClass(empty)
	assert.False(t, ok)
}

func TestInvalidLabels(t *testing.T) {
	yes := feature.NewDiscreteFeature("Category", []string{"Yes", "No"})
	other := feature.NewDiscreteFeature("Other", []string{"a", "b"})
	x := feature.NewFeatureWithSize("x", 2)

	testCases := []struct {
		name   string
		labels []feature.Value
	}{
		{"label out of domain", []feature.Value{yes.Value(0), yes.Value(2)}},
		{"labels of different features", []feature.Value{yes.Value(0), other.Value(1)}},
		{"undefined label", []feature.Value{{}, yes.Value(0)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := dataset.New[feature.Tuple, feature.Value]()
			for _, l := range tc.labels {
				d.Insert(feature.NewTuple(x.Value(0)), l)
			}
			_, err := EmpiricalEntropy(d)
			assert.ErrorIs(t, err, feature.ErrValueOutOfDomain)
		})
	}
}

func TestConditionEntropyAndInformationGain(t *testing.T) {
	l := loan(t)
	testCases := []struct {
		feature          string
		conditionEntropy float64
		gain             float64
	}{
		{"Age", 0.8879430945988998, 0.08300749985576883},
		{"Work", 0.6473003963031124, 0.32365019815155616},
		{"House", 0.5509775004326938, 0.4199730940219748},
		{"Credit", 0.6079610319175832, 0.36298956253708536},
	}
	for _, tc := range testCases {
		t.Run(tc.feature, func(t *testing.T) {
			f := l.Feature(tc.feature)
			require.NotNil(t, f)

			ce, err := ConditionEntropy(l.Dataset, f)
			require.NoError(t, err)
			assert.InDelta(t, tc.conditionEntropy, ce, tolerance)

			g, err := InformationGain(l.Dataset, f)
			require.NoError(t, err)
			assert.InDelta(t, tc.gain, g, tolerance)
			assert.GreaterOrEqual(t, g, -tolerance)
		})
	}
}

func TestGainRatio(t *testing.T) {
	l := loan(t)
	r, err := GainRatio(l.Dataset, l.Feature("House"))
	require.NoError(t, err)
	assert.InDelta(t, 0.4325380677663125, r, tolerance)

	pure := l.Dataset.SubsetWith(func(r Record) bool { return r.Label.Index() == 0 })
	r, err = GainRatio(pure, l.Feature("Age"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestInformationGainIsNeverNegative(t *testing.T) {
	l := loan(t)
	subsets := []*Dataset{l.Dataset}
	for _, f := range l.Features {
		p, err := NewPartition(l.Dataset, f)
		require.NoError(t, err)
		for _, s := range p.Subsets {
			if s.Size() > 0 {
				subsets = append(subsets, s)
			}
		}
	}
	for _, s := range subsets {
		for _, f := range l.Features {
			g, err := InformationGain(s, f)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, g, -tolerance, "feature %s on %d records", f.Name(), s.Size())
		}
	}
}

func TestConditionEntropyIgnoresForeignFeatures(t *testing.T) {
	l := loan(t)
	foreign := feature.NewDiscreteFeature("Age", []string{"Young", "Middle", "Old"})

	ce, err := ConditionEntropy(l.Dataset, foreign)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ce, "values of an unrelated feature match no record")

	g, err := InformationGain(l.Dataset, foreign)
	require.NoError(t, err)
	assert.InDelta(t, 0.9709505944546686, g, tolerance)

	_, err = ConditionEntropy(l.Dataset, nil)
	assert.Error(t, err)
}

func TestNewPartition(t *testing.T) {
	l := loan(t)
	house := l.Feature("House")
	p, err := NewPartition(l.Dataset, house)
	require.NoError(t, err)

	assert.Same(t, house, p.Feature)
	require.Len(t, p.Subsets, 2)
	require.Len(t, p.Criteria, 2)
	assert.Equal(t, 6, p.Subsets[0].Size())
	assert.Equal(t, 9, p.Subsets[1].Size())
	for i, s := range p.Subsets {
		for _, r := range s.Records() {
			assert.True(t, p.Criteria[i].SatisfiedBy(r.Features))
		}
	}
	assert.InDelta(t, p.EmpiricalEntropy-p.ConditionEntropy, p.InformationGain, tolerance)
	assert.Equal(t, "House: H(D|A)=0.551 g(D,A)=0.420", p.String())

	label, ok := SameClass(p.Subsets[0])
	assert.True(t, ok)
	assert.Equal(t, "Yes", label.String())
	assert.False(t, math.IsNaN(p.ConditionEntropy))
}

func TestPartitionWithEmptySubsets(t *testing.T) {
	l := loan(t)
	young := l.Dataset.SubsetWith(func(r Record) bool {
		return r.Features.FindIndex(l.Feature("Age").Value(0)) >= 0
	})
	require.Equal(t, 5, young.Size())

	p, err := NewPartition(young, l.Feature("Age"))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Subsets[1].Size())
	assert.Equal(t, 0, p.Subsets[2].Size())
	assert.InDelta(t, p.EmpiricalEntropy, p.ConditionEntropy, tolerance)
	assert.InDelta(t, 0, p.InformationGain, tolerance)
	assert.False(t, math.IsNaN(p.InformationGain))
}

func TestSameAndMajorityClass(t *testing.T) {
	l := loan(t)
	_, ok := SameClass(l.Dataset)
	assert.False(t, ok)

	majority, err := MajorityClass(l.Dataset)
	require.NoError(t, err)
	assert.Equal(t, "Yes", majority.String())

	tie := dataset.New[feature.Tuple, feature.Value]()
	tie.Insert(feature.NewTuple(), l.Label.Value(1))
	tie.Insert(feature.NewTuple(), l.Label.Value(0))
	majority, err = MajorityClass(tie)
	require.NoError(t, err)
	assert.Equal(t, 0, majority.Index(), "ties are broken by the lowest index")

	single := dataset.New[feature.Tuple, feature.Value]()
	single.Insert(feature.NewTuple(), l.Label.Value(1))
	label, ok := SameClass(single)
	assert.True(t, ok)
	assert.Equal(t, 1, label.Index())
}
