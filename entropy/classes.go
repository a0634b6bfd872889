package entropy

import "github.com/pbanos/statlearn/feature"

/*
SameClass takes a dataset and returns the label shared by all its records
and true, or a zero value and false if the dataset is empty or its records
do not all share the same label.
*/
func SameClass(d *Dataset) (feature.Value, bool) {
	records := d.Records()
	if len(records) == 0 {
		return feature.Value{}, false
	}
	label := records[0].Label
	for _, r := range records[1:] {
		if !r.Label.Equal(label) {
			return feature.Value{}, false
		}
	}
	return label, true
}

/*
MajorityClass takes a dataset and returns its most frequent label, ties
broken by the lowest value index, or ErrEmptyDataset if it is empty.
*/
func MajorityClass(d *Dataset) (feature.Value, error) {
	counts, err := labelCounts(d)
	if err != nil {
		return feature.Value{}, err
	}
	var best int
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	first, _ := d.Record(0)
	return first.Label.Feature().Value(best), nil
}
