package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour []int
		n    int
		ok   bool
	}{
		{"Valid", []int{0, 2, 1, 0}, 3, true},
		{"Trivial", []int{0, 0}, 1, true},
		{"Short", []int{0, 1, 0}, 3, false},
		{"NotClosed", []int{0, 2, 1, 1}, 3, false},
		{"WrongStart", []int{1, 0, 2, 1}, 3, false},
		{"Duplicate", []int{0, 1, 1, 0}, 3, false},
		{"OutOfRange", []int{0, 5, 1, 0}, 3, false},
		{"ZeroRoads", []int{0}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tsp.ErrInvalidTour)
			}
		})
	}
}

// TestTourCost_ByHand sums the terms of the tour 0→1→2→0 on the
// four-junction instance: link 0→1 enters road 1 at junction 2, the link
// 1→2 leaves it at junction 1, and road 2 is left towards 0 from junction 3.
func TestTourCost_ByHand(t *testing.T) {
	lt, err := tsp.NewLinkTable(fourJunctions(t), [][]int{{0}, {1, 2}, {3}})
	require.NoError(t, err)

	cost, entry, exit, err := tsp.TourCost(lt, []int{0, 1, 2, 0})
	require.NoError(t, err)
	// link 0→1: 2; inside road 1: dist(2,1)=3; link 1→2: 1; inside road 2: 0; link 2→0: 8.
	assert.Equal(t, int64(2+3+1+0+8), cost)
	assert.Equal(t, []int{0, 2, 3, 0}, entry)
	assert.Equal(t, []int{0, 1, 3, 0}, exit)

	_, _, _, err = tsp.TourCost(lt, []int{0, 1, 0})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, _, _, err = tsp.TourCost(nil, []int{0, 0})
	assert.ErrorIs(t, err, tsp.ErrNilMatrix)
}

func TestResult_Waypoints(t *testing.T) {
	r := tsp.Result{
		Tour:  []int{0, 1, 2, 0},
		Entry: []int{0, 2, 3, 0},
		Exit:  []int{0, 1, 3, 0},
	}
	assert.Equal(t, []int{0, 2, 1, 3, 3, 0}, r.Waypoints())
	assert.Nil(t, tsp.Result{}.Waypoints())
	assert.Equal(t, []int{0, 0}, tsp.Result{Tour: []int{0, 0}, Entry: []int{0, 0}, Exit: []int{0, 0}}.Waypoints())
}

func TestCopyTour(t *testing.T) {
	src := []int{0, 1, 0}
	dst := tsp.CopyTour(src)
	dst[1] = 9
	assert.Equal(t, []int{0, 1, 0}, src)
	assert.Nil(t, tsp.CopyTour(nil))
}
