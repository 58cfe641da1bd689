package setx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdx-go/stdx/pkg/setx"
)

func TestNewAndBasicOps(t *testing.T) {
	s := setx.New(1, 2, 2, 3)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(4))

	s.Add(4)
	assert.True(t, s.Has(4))

	s.Delete(1)
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Len())
}

func TestFromSliceValues(t *testing.T) {
	s := setx.FromSlice([]string{"a", "b", "a"})
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, s.Values())
}

func TestDiff(t *testing.T) {
	a := setx.New(1, 2, 3, 4)
	b := setx.New(2, 4, 6)

	assert.ElementsMatch(t, []int{1, 3}, a.Diff(b).Values())
	assert.ElementsMatch(t, []int{6}, b.Diff(a).Values())
	assert.Empty(t, a.Diff(a).Values())
}

func TestIntersect(t *testing.T) {
	a := setx.New(1, 2, 3)
	b := setx.New(2, 3, 4, 5)

	got := a.Intersect(b)
	assert.ElementsMatch(t, []int{2, 3}, got.Values())
	// Symmetric regardless of which side is smaller.
	assert.Equal(t, got, b.Intersect(a))
}

func TestUnion(t *testing.T) {
	a := setx.New("x")
	b := setx.New("y", "z")

	assert.ElementsMatch(t, []string{"x", "y", "z"}, a.Union(b).Values())
}

func TestKeysValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	assert.ElementsMatch(t, []string{"a", "b"}, setx.Keys(m))
	assert.ElementsMatch(t, []int{1, 2}, setx.Values(m))
}

func TestKeyBy(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	users := []user{{1, "ann"}, {2, "bob"}}

	byID := setx.KeyBy(users, func(u user) int { return u.ID })

	require.Len(t, byID, 2)
	assert.Equal(t, "ann", byID[1].Name)
	assert.Equal(t, "bob", byID[2].Name)
}

func TestKeySet(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	s := setx.KeySet(m)

	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.Equal(t, 2, s.Len())
}

func TestMapSetInterop(t *testing.T) {
	s := setx.New(1, 2, 3)

	ms := setx.ToMapSet(s)
	assert.Equal(t, 3, ms.Cardinality())
	assert.True(t, ms.Contains(2))

	back := setx.FromMapSet(ms)
	assert.Equal(t, s, back)
}
