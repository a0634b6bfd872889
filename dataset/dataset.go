/*
Package dataset provides an append-only, in-memory collection of labeled
records. It is the container consumed by both the naive Bayes classifier
and the entropy engine.
*/
package dataset

import "fmt"

// DatasetError represents an error related with dataset access
type DatasetError string

/*
ErrIndexOutOfRange is the error returned when trying to access a record
at an index that is not below the size of the dataset.
*/
const ErrIndexOutOfRange = DatasetError("record index out of range")

func (de DatasetError) Error() string {
	return string(de)
}

/*
Record is a pair of a feature vector and a label. Records are never mutated
once inserted into a dataset.
*/
type Record[F, L any] struct {
	Features F
	Label    L
}

/*
Dataset represents an ordered collection of records with features of type
F and labels of type L.

Insertion order is preserved but carries no meaning for the algorithms
working on the dataset. Records cannot be removed or modified after their
insertion. A Dataset is not safe for concurrent use while records are
being inserted.
*/
type Dataset[F, L any] struct {
	records []Record[F, L]
}

/*
New takes an optional list of records and returns a dataset containing
them in the same order.
*/
func New[F, L any](records ...Record[F, L]) *Dataset[F, L] {
	return &Dataset[F, L]{append([]Record[F, L](nil), records...)}
}

/*
Insert takes a feature vector and a label and appends a record with them
to the dataset. No validation is performed on the values: callers must
ensure they lie within their declared domains.
*/
func (d *Dataset[F, L]) Insert(features F, label L) {
	d.records = append(d.records, Record[F, L]{features, label})
}

/*
Record takes an index and returns the record at that position or an
ErrIndexOutOfRange error if the index is negative or not below the
size of the dataset.
*/
func (d *Dataset[F, L]) Record(i int) (Record[F, L], error) {
	if i < 0 || i >= d.Size() {
		var zero Record[F, L]
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, d.Size())
	}
	return d.records[i], nil
}

// Size returns the number of records in the dataset.
func (d *Dataset[F, L]) Size() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

/*
Records returns a slice with the records of the dataset. The slice is
a copy, but the feature vectors are shared with the dataset and must be
treated as read-only.
*/
func (d *Dataset[F, L]) Records() []Record[F, L] {
	if d == nil {
		return nil
	}
	return append([]Record[F, L](nil), d.records...)
}

/*
SubsetWith takes a predicate on records and returns a new dataset with
the records satisfying it, keeping their relative order.
*/
func (d *Dataset[F, L]) SubsetWith(satisfied func(Record[F, L]) bool) *Dataset[F, L] {
	result := &Dataset[F, L]{}
	if d == nil {
		return result
	}
	for _, r := range d.records {
		if satisfied(r) {
			result.records = append(result.records, r)
		}
	}
	return result
}

/*
CountWith takes a predicate on records and returns how many records of
the dataset satisfy it.
*/
func (d *Dataset[F, L]) CountWith(satisfied func(Record[F, L]) bool) int {
	var count int
	if d == nil {
		return count
	}
	for _, r := range d.records {
		if satisfied(r) {
			count++
		}
	}
	return count
}

func (d *Dataset[F, L]) String() string {
	return fmt.Sprintf("%v", d.Records())
}
