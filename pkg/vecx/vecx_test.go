package vecx_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdx-go/stdx/pkg/errx"
	"github.com/stdx-go/stdx/pkg/vecx"
)

func TestMap(t *testing.T) {
	out := vecx.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)
}

func TestMapEmpty(t *testing.T) {
	out := vecx.Map([]int{}, strconv.Itoa)
	assert.Empty(t, out)
}

func TestFilter(t *testing.T) {
	out := vecx.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, out)
}

func TestFlatten(t *testing.T) {
	out := vecx.Flatten([][]int{{1, 2}, {}, {3}, {4, 5}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, out)
}

func TestContains(t *testing.T) {
	assert.True(t, vecx.Contains([]string{"a", "b"}, "b"))
	assert.False(t, vecx.Contains([]string{"a", "b"}, "c"))
	assert.False(t, vecx.Contains([]string{}, "a"))
}

func TestSomeEvery(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	assert.True(t, vecx.Some([]int{1, 2, 3}, isEven))
	assert.False(t, vecx.Some([]int{1, 3, 5}, isEven))
	assert.True(t, vecx.Every([]int{2, 4, 6}, isEven))
	assert.False(t, vecx.Every([]int{2, 3}, isEven))

	// Vacuous truth on the empty slice.
	assert.False(t, vecx.Some([]int{}, isEven))
	assert.True(t, vecx.Every([]int{}, isEven))
}

func TestFirst(t *testing.T) {
	v, ok := vecx.First([]int{7, 8})
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = vecx.First([]int{})
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestFirstX(t *testing.T) {
	v, err := vecx.FirstX([]string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestFirstXEmpty(t *testing.T) {
	_, err := vecx.FirstX([]string{})
	require.Error(t, err)

	var xerr *errx.Error
	require.True(t, errx.As(err, &xerr))
	assert.Equal(t, "VEC_EMPTY", xerr.Code)
	assert.Equal(t, errx.TypeNotFound, xerr.Type)
}

func TestTake(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		n       int
		want    []int
		wantErr bool
	}{
		{name: "fewer than len", in: []int{1, 2, 3}, n: 2, want: []int{1, 2}},
		{name: "exactly len", in: []int{1, 2}, n: 2, want: []int{1, 2}},
		{name: "more than len", in: []int{1, 2}, n: 5, want: []int{1, 2}},
		{name: "zero", in: []int{1, 2}, n: 0, want: []int{}},
		{name: "negative", in: []int{1, 2}, n: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := vecx.Take(tt.in, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				var xerr *errx.Error
				require.True(t, errx.As(err, &xerr))
				assert.Equal(t, "VEC_NEGATIVE_COUNT", xerr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDrop(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		n       int
		want    []int
		wantErr bool
	}{
		{name: "fewer than len", in: []int{1, 2, 3}, n: 1, want: []int{2, 3}},
		{name: "exactly len", in: []int{1, 2}, n: 2, want: []int{}},
		{name: "more than len", in: []int{1, 2}, n: 5, want: []int{}},
		{name: "zero", in: []int{1, 2}, n: 0, want: []int{1, 2}},
		{name: "negative", in: []int{1, 2}, n: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := vecx.Drop(tt.in, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				var xerr *errx.Error
				require.True(t, errx.As(err, &xerr))
				assert.Equal(t, "VEC_NEGATIVE_COUNT", xerr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTakeDropDoNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3}

	taken, err := vecx.Take(in, 2)
	require.NoError(t, err)
	taken[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)

	dropped, err := vecx.Drop(in, 1)
	require.NoError(t, err)
	dropped[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)
}
