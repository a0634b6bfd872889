/*
Package statlearn selects the features on which a decision tree should split
a dataset of discrete feature tuples, according to their information gain.

The entropy computations live in the entropy package; this package ranks the
eligible features of a Candidates set by the information gain of the
partition they induce.
*/
package statlearn

import (
	"sort"

	"github.com/pbanos/statlearn/entropy"
	"github.com/rs/zerolog/log"
)

// SelectionError represents an error related with the selection of features
type SelectionError string

const (
	// ErrNoCandidates is returned when every candidate feature has been used
	ErrNoCandidates = SelectionError("no candidate features left")
	// ErrCandidateOutOfRange is returned for positions outside the candidate set
	ErrCandidateOutOfRange = SelectionError("candidate position out of range")
)

func (se SelectionError) Error() string {
	return string(se)
}

/*
Selection is an eligible candidate feature along with the partition of the
dataset it induces. Index is the position of the feature in the Candidates.
*/
type Selection struct {
	Index int
	*entropy.Partition
}

/*
BestFeature takes a dataset and a set of candidates and returns the eligible
candidate with the highest information gain, ties broken by the lowest
position. ErrNoCandidates is returned when every candidate has been used.
Errors computing the gains, like entropy.ErrEmptyDataset, are returned as is.
*/
func BestFeature(d *entropy.Dataset, c *Candidates) (Selection, error) {
	if c.Remaining() == 0 {
		return Selection{}, ErrNoCandidates
	}
	var best Selection
	for i, f := range c.features {
		if c.used[i] {
			continue
		}
		p, err := entropy.NewPartition(d, f)
		if err != nil {
			return Selection{}, err
		}
		if best.Partition == nil || p.InformationGain > best.InformationGain {
			best = Selection{i, p}
		}
	}
	log.Debug().
		Str("feature", best.Feature.Name()).
		Int("position", best.Index).
		Float64("gain", best.InformationGain).
		Int("remaining", c.Remaining()).
		Msg("selected best feature")
	return best, nil
}

/*
RankFeatures takes a dataset and a set of candidates and returns a selection
for every eligible candidate, sorted by decreasing information gain and then
by increasing position. The first selection is the one BestFeature returns.
ErrNoCandidates is returned when every candidate has been used.
*/
func RankFeatures(d *entropy.Dataset, c *Candidates) ([]Selection, error) {
	if c.Remaining() == 0 {
		return nil, ErrNoCandidates
	}
	result := make([]Selection, 0, c.Remaining())
	for i, f := range c.features {
		if c.used[i] {
			continue
		}
		p, err := entropy.NewPartition(d, f)
		if err != nil {
			return nil, err
		}
		result = append(result, Selection{i, p})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].InformationGain > result[j].InformationGain
	})
	return result, nil
}
