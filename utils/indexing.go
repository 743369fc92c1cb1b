package utils

import (
	"sort"
)

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// Subset gathers I[J[0]], I[J[1]], ...
func (I Index) Subset(J Index) (R Index) {
	R = make(Index, len(J))
	for i, j := range J {
		R[i] = I[j]
	}
	return
}

// Argsort returns the stable permutation that sorts I ascending.
func (I Index) Argsort() (perm Index) {
	perm = NewRange(0, len(I)-1)
	sort.SliceStable(perm, func(a, b int) bool {
		return I[perm[a]] < I[perm[b]]
	})
	return
}
