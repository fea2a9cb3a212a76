package cargu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAccessors(t *testing.T) {
	r, err := Parse(copyCmd{}, []string{"--file", "a", "--force", "--file", "b"})
	require.NoError(t, err)

	assert.True(t, r.Contains("File"))
	assert.True(t, r.Contains("Force"))
	assert.False(t, r.Contains("Count"))
	assert.False(t, r.Contains("NotAField"))

	assert.Equal(t, []interface{}{"a", "b"}, r.All("File"))
	assert.Equal(t, []interface{}{}, r.All("Count"))

	v, err := r.First("File")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = r.First("Count")
	assert.ErrorIs(t, err, ErrNotFound)
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "Count", nerr.Key)

	v, ok := r.TryFirst("Force")
	assert.True(t, ok)
	assert.Equal(t, Flag(true), v)
	_, ok = r.TryFirst("Count")
	assert.False(t, ok)

	assert.Equal(t, []string{"File", "Force"}, r.Keys())
	assert.Equal(t, 2, r.Len())
}

func TestResultAllDoesNotAlias(t *testing.T) {
	r, err := Parse(copyCmd{}, []string{"--file", "a"})
	require.NoError(t, err)
	all := r.All("File")
	all[0] = "changed"
	v, err := r.First("File")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestResultTypedAccessors(t *testing.T) {
	r, err := Parse(copyCmd{}, []string{"--count", "1", "--count", "2"})
	require.NoError(t, err)

	counts, err := All[int](r, "Count")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, counts)

	none, err := All[string](r, "File")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = First[string](r, "Count")
	assert.ErrorIs(t, err, ErrConversion)
	_, err = All[string](r, "Count")
	assert.ErrorIs(t, err, ErrConversion)
	_, err = First[int](r, "File")
	assert.ErrorIs(t, err, ErrNotFound)

	n, ok := TryFirst[int](r, "Count")
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	_, ok = TryFirst[string](r, "Count")
	assert.False(t, ok)
	_, ok = TryFirst[string](r, "File")
	assert.False(t, ok)
}
