package layout

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dim := range [][]int{nil, {}, {0}, {3, -1}, {2, 0, 4}} {
		if _, err := New(dim); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%v) error = %v, want ErrInvalidDimension", dim, err)
		}
	}
}

func TestSpacingAndSize(t *testing.T) {
	l := MustNew(3, 4, 5)

	if got := l.Dim(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("Dim() = %v, want [3 4 5]", got)
	}

	if got := l.Spacing(); !slices.Equal(got, []int{1, 3, 12}) {
		t.Fatalf("Spacing() = %v, want [1 3 12]", got)
	}

	if l.Size() != 60 || l.Rank() != 3 {
		t.Fatalf("Size() = %d, Rank() = %d, want 60, 3", l.Size(), l.Rank())
	}

	if got := l.HyperplaneSize(1); got != 15 {
		t.Fatalf("HyperplaneSize(1) = %d, want 15", got)
	}
}

func TestDimIsCopied(t *testing.T) {
	dim := []int{2, 3}
	l, err := New(dim)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dim[0] = 10
	l.Dim()[1] = 10
	if got := l.Dim(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("Dim() = %v after caller writes, want [2 3]", got)
	}
}

func TestIteratorVisitsEveryPointOnce(t *testing.T) {
	for _, dim := range [][]int{{1}, {7}, {2, 3}, {3, 1, 4}, {2, 2, 2, 2}} {
		t.Run(fmt.Sprint(dim), func(t *testing.T) {
			l := MustNew(dim...)
			seen := make(map[string]bool, l.Size())

			count := 0
			for it := l.Begin(); !it.Done(); it.Next() {
				if it.Index() != count {
					t.Fatalf("Index() = %d, want %d", it.Index(), count)
				}

				if got := l.Index(it.Coordinates()); got != it.Index() {
					t.Fatalf("Index(%v) = %d, want %d", it.Coordinates(), got, it.Index())
				}

				if got := l.Coordinates(it.Index()); !slices.Equal(got, it.Coordinates()) {
					t.Fatalf("Coordinates(%d) = %v, want %v", it.Index(), got, it.Coordinates())
				}

				key := fmt.Sprint(it.Coordinates())
				if seen[key] {
					t.Fatalf("coordinates %s repeated", key)
				}
				seen[key] = true
				count++
			}

			if count != l.Size() {
				t.Fatalf("visited %d points, want %d", count, l.Size())
			}
		})
	}
}

func TestIteratorOdometerOrder(t *testing.T) {
	l := MustNew(2, 3)
	var got [][]int
	for _, c := range l.All() {
		got = append(got, append([]int(nil), c...))
	}

	want := [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	if !slices.EqualFunc(got, want, func(a, b []int) bool { return slices.Equal(a, b) }) {
		t.Fatalf("All() order = %v, want %v", got, want)
	}
}

func TestAllStopsEarly(t *testing.T) {
	l := MustNew(10)
	n := 0
	for i := range l.All() {
		if i == 3 {
			break
		}
		n++
	}

	if n != 3 {
		t.Fatalf("visited %d points before break, want 3", n)
	}
}

func TestNeighbourMirrors(t *testing.T) {
	l := MustNew(5)
	it := l.Begin()

	tests := []struct {
		offset, want int
	}{
		{-1, 1},
		{1, 1},
		{-2, 2},
	}
	for _, tt := range tests {
		if got := l.Neighbour(it, 0, tt.offset); got != tt.want {
			t.Errorf("first node: Neighbour(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}

	for range 4 {
		it.Next()
	}
	if it.Index() != 4 {
		t.Fatalf("Index() = %d, want 4", it.Index())
	}

	tests = []struct {
		offset, want int
	}{
		{1, 3},
		{-1, 3},
		{2, 2},
	}
	for _, tt := range tests {
		if got := l.Neighbour(it, 0, tt.offset); got != tt.want {
			t.Errorf("last node: Neighbour(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestNeighbourStaysInRange(t *testing.T) {
	l := MustNew(4, 3, 2)
	for it := l.Begin(); !it.Done(); it.Next() {
		for axis := 0; axis < l.Rank(); axis++ {
			for _, offset := range []int{-1, 1} {
				n := l.Neighbour(it, axis, offset)
				if n < 0 || n >= l.Size() {
					t.Fatalf("Neighbour(%v, %d, %d) = %d out of range", it.Coordinates(), axis, offset, n)
				}

				c := l.Coordinates(n)
				for k := range c {
					if k != axis && c[k] != it.Coordinate(k) {
						t.Fatalf("Neighbour(%v, %d, %d) moved along axis %d", it.Coordinates(), axis, offset, k)
					}
				}
			}
		}
	}
}

func TestNeighbour2ComposesReflections(t *testing.T) {
	l := MustNew(4, 3)
	it := l.Begin()

	if got, want := l.Neighbour2(it, 0, -1, 1, -1), l.Index([]int{1, 1}); got != want {
		t.Fatalf("Neighbour2 at origin = %d, want %d", got, want)
	}

	corner := l.Index([]int{3, 2})
	if got, want := l.Neighbour2At([]int{3, 2}, corner, 0, 1, 1, 1), l.Index([]int{2, 1}); got != want {
		t.Fatalf("Neighbour2At corner = %d, want %d", got, want)
	}

	if got, want := l.Neighbour2At([]int{1, 1}, l.Index([]int{1, 1}), 0, 1, 1, -1), l.Index([]int{2, 0}); got != want {
		t.Fatalf("Neighbour2At interior = %d, want %d", got, want)
	}
}

func TestPermutationMakesDirectionContiguous(t *testing.T) {
	l := MustNew(3, 4, 2)
	for direction := 0; direction < l.Rank(); direction++ {
		perm := l.Permutation(direction)
		if len(perm) != l.Size() {
			t.Fatalf("direction %d: len = %d, want %d", direction, len(perm), l.Size())
		}

		seen := make([]bool, l.Size())
		for _, p := range perm {
			if seen[p] {
				t.Fatalf("direction %d: index %d repeated", direction, p)
			}
			seen[p] = true
		}

		n := l.DimAt(direction)
		for start := 0; start < l.Size(); start += n {
			first := l.Coordinates(perm[start])
			if first[direction] != 0 {
				t.Fatalf("direction %d: pencil at %d starts at %v", direction, start, first)
			}

			for j := 1; j < n; j++ {
				c := l.Coordinates(perm[start+j])
				if c[direction] != j {
					t.Fatalf("direction %d: entry %d has coordinate %d, want %d", direction, start+j, c[direction], j)
				}

				for k := range c {
					if k != direction && c[k] != first[k] {
						t.Fatalf("direction %d: pencil at %d leaves its line at %v", direction, start, c)
					}
				}
			}
		}
	}
}

func TestPermutationAxisZeroIsIdentity(t *testing.T) {
	l := MustNew(3, 2)
	if got := l.Permutation(0); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("Permutation(0) = %v, want identity", got)
	}
}

func TestNeighbourSinglePointAxis(t *testing.T) {
	l := MustNew(1, 3)
	for it := l.Begin(); !it.Done(); it.Next() {
		for _, offset := range []int{-1, 1} {
			if got := l.Neighbour(it, 0, offset); got != it.Index() {
				t.Fatalf("Neighbour(%v, 0, %d) = %d, want %d", it.Coordinates(), offset, got, it.Index())
			}
		}
	}
}
