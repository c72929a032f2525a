package fp

import (
	"strconv"
	"testing"

	"github.com/hyphengolang/prelude/testing/is"
)

func TestFP(t *testing.T) {
	is := is.New(t)

	vs := []int{1, 2, 3, 4}

	t.Run("fmap", func(t *testing.T) {
		is.Equal(FMap(vs, strconv.Itoa), []string{"1", "2", "3", "4"})
		is.Equal(len(FMap([]int{}, strconv.Itoa)), 0)
	})

	t.Run("filter leaves the input untouched", func(t *testing.T) {
		even := Filter(vs, func(v int) bool { return v%2 == 0 })
		is.Equal(even, []int{2, 4})
		is.Equal(vs, []int{1, 2, 3, 4})
	})

	t.Run("find index", func(t *testing.T) {
		is.Equal(FindIndex(vs, func(v int) bool { return v == 3 }), 2)
		is.Equal(FindIndex(vs, func(v int) bool { return v == 9 }), -1)
	})
}
