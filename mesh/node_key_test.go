package mesh

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/femcore/utils"
)

func rats(vals ...int64) (R []*big.Rat) {
	for i := 0; i < len(vals); i += 2 {
		R = append(R, big.NewRat(vals[i], vals[i+1]))
	}
	return
}

func TestNodeKeySymmetry(t *testing.T) {
	// The midpoint of the edge (4,9) seen from two cells with different
	// local vertex numbering
	cellA := utils.Index{9, 4, 12}
	cellB := utils.Index{7, 4, 9}
	kA := NewNodeKey(cellA, cellA.Argsort(), rats(1, 2, 1, 2, 0, 1))
	kB := NewNodeKey(cellB, cellB.Argsort(), rats(0, 1, 1, 2, 1, 2))
	assert.Equal(t, 2, kA.Size())
	assert.Equal(t, []int{4, 9}, kA.Vertices())
	assert.True(t, kA.Equal(kB))
	assert.Equal(t, 0, kA.Compare(kB))
	assert.Equal(t, kA.String(), kB.String())
	assert.Equal(t, "4:1/2 9:1/2", kA.String())
}

func TestNodeKeyExactWeights(t *testing.T) {
	cell := utils.Index{0, 1, 2}
	sortOrder := cell.Argsort()
	// 1/3 vs 2/6 are the same rational
	k1 := NewNodeKey(cell, sortOrder, rats(1, 3, 1, 3, 1, 3))
	k2 := NewNodeKey(cell, sortOrder, rats(2, 6, 1, 3, 3, 9))
	assert.True(t, k1.Equal(k2))
	// A perturbation invisible in float64 still separates the keys
	k3 := NewNodeKey(cell, sortOrder, []*big.Rat{
		big.NewRat(1, 3), new(big.Rat).Add(big.NewRat(1, 3), big.NewRat(1, 1<<62)),
		new(big.Rat).Sub(big.NewRat(1, 3), big.NewRat(1, 1<<62)),
	})
	assert.False(t, k1.Equal(k3))
}

func TestNodeKeyCompare(t *testing.T) {
	cell := utils.Index{5, 2, 8}
	sortOrder := cell.Argsort()
	vertex := NewNodeKey(cell, sortOrder, rats(1, 1, 0, 1, 0, 1))
	edgeLow := NewNodeKey(cell, sortOrder, rats(0, 1, 1, 3, 2, 3))
	edgeHigh := NewNodeKey(cell, sortOrder, rats(0, 1, 2, 3, 1, 3))
	edgeOther := NewNodeKey(cell, sortOrder, rats(1, 2, 1, 2, 0, 1))
	assert.Equal(t, 1, vertex.Size())
	assert.Equal(t, -1, vertex.Compare(edgeLow))    // size first
	assert.Equal(t, -1, edgeOther.Compare(edgeLow)) // {2,5} < {2,8}
	assert.Equal(t, -1, edgeLow.Compare(edgeHigh))  // 1/3 < 2/3 at vertex 2
	assert.Equal(t, 1, edgeHigh.Compare(edgeLow))
	assert.False(t, edgeLow.Equal(edgeHigh))
}
