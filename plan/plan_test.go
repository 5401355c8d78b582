package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() File {
	return New(
		[][]Item{
			{NewItem(0, 6), NewItem(2, 4)},
			{NewItem(1, 5), NewItem(3, 5)},
		},
		[]Item{NewItem(4, 12)},
	)
}

func TestFile_String(t *testing.T) {
	assert.Equal(t, "0;6\n2;4\n\n1;5\n3;5\n\n---\n4;12\n", samplePlan().String())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan().String()), 0o644))

	f, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, samplePlan(), f)
	assert.Equal(t, []uint64{10, 10}, f.Fills())
}

func TestFile_Total(t *testing.T) {
	f := samplePlan()

	assert.Equal(t, 5, f.Total(false, false))
	assert.Equal(t, 4, f.Total(true, false))
	assert.Equal(t, 1, f.Total(false, true))
}

func TestFile_Iter(t *testing.T) {
	var sizes []int
	var remainders int

	for bin, isRemainder := range samplePlan().Iter(false, false) {
		sizes = append(sizes, len(bin))
		if isRemainder {
			remainders++
		}
	}

	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, 1, remainders)
}

func TestItemFromString(t *testing.T) {
	item, err := ItemFromString("7;42")
	require.NoError(t, err)
	assert.Equal(t, NewItem(7, 42), item)

	_, err = ItemFromString("7")
	assert.Error(t, err)

	_, err = ItemFromString("a;1")
	assert.Error(t, err)
}
