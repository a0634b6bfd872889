package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetInsertAndRecord(t *testing.T) {
	d := New[[]int, int]()
	assert.Equal(t, 0, d.Size())

	d.Insert([]int{1, 2}, 0)
	d.Insert([]int{3, 1}, 1)
	require.Equal(t, 2, d.Size())

	r, err := d.Record(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, r.Features)
	assert.Equal(t, 1, r.Label)

	r, err = d.Record(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r.Features)
	assert.Equal(t, 0, r.Label)
}

func TestDatasetRecordOutOfRange(t *testing.T) {
	d := New(Record[string, int]{"a", 0})
	for _, i := range []int{-1, 1, 10} {
		_, err := d.Record(i)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", i)
	}
}

func TestDatasetNilIsEmpty(t *testing.T) {
	var d *Dataset[string, int]
	assert.Equal(t, 0, d.Size())
	assert.Nil(t, d.Records())
	assert.Equal(t, 0, d.SubsetWith(func(Record[string, int]) bool { return true }).Size())
	_, err := d.Record(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDatasetSubsetWith(t *testing.T) {
	d := New(
		Record[string, int]{"a", 0},
		Record[string, int]{"b", 1},
		Record[string, int]{"c", 0},
	)
	s := d.SubsetWith(func(r Record[string, int]) bool { return r.Label == 0 })
	require.Equal(t, 2, s.Size())
	first, err := s.Record(0)
	require.NoError(t, err)
	second, err := s.Record(1)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Features)
	assert.Equal(t, "c", second.Features)
	assert.Equal(t, 3, d.Size(), "subsetting must not modify the original dataset")
	assert.Equal(t, 1, d.CountWith(func(r Record[string, int]) bool { return r.Label == 1 }))
}

func TestDatasetRecordsIsACopy(t *testing.T) {
	d := New(Record[string, int]{"a", 0})
	rs := d.Records()
	rs[0].Label = 7
	r, err := d.Record(0)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Label)
}
