package mesh

import (
	"math/big"
	"strconv"
	"strings"
)

// NodeKey identifies a mesh node by the cell vertices it depends on and its
// exact affine weights with respect to them. Two cells that place a node at
// the same point of a shared face produce equal keys regardless of how each
// cell numbers its vertices.
type NodeKey struct {
	vertices []int      // Global vertex ids, ascending
	weights  []*big.Rat // Nonzero affine weights, matching vertices
}

// NewNodeKey walks the cell's vertices in sortOrder (a permutation of the
// local vertex slots ordering them by global id) and keeps those with a
// nonzero weight in N.
func NewNodeKey(cellVertices, sortOrder []int, N []*big.Rat) (key NodeKey) {
	key.vertices = make([]int, 0, len(sortOrder))
	key.weights = make([]*big.Rat, 0, len(sortOrder))
	for _, j := range sortOrder {
		if N[j].Sign() == 0 {
			continue
		}
		key.vertices = append(key.vertices, cellVertices[j])
		key.weights = append(key.weights, N[j])
	}
	return
}

func (k NodeKey) Size() int { return len(k.vertices) }

func (k NodeKey) Vertices() []int { return k.vertices }

func (k NodeKey) Weights() []*big.Rat { return k.weights }

func (k NodeKey) Equal(o NodeKey) bool {
	return k.Compare(o) == 0
}

// Compare orders keys by size, then vertex sequence, then weight sequence.
func (k NodeKey) Compare(o NodeKey) int {
	if k.Size() != o.Size() {
		if k.Size() < o.Size() {
			return -1
		}
		return 1
	}
	for i, v := range k.vertices {
		if v != o.vertices[i] {
			if v < o.vertices[i] {
				return -1
			}
			return 1
		}
	}
	for i, w := range k.weights {
		if c := w.Cmp(o.weights[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String is canonical: equal keys have equal strings, e.g. "3:1/2 7:1/2".
func (k NodeKey) String() string {
	var sb strings.Builder
	for i, v := range k.vertices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		sb.WriteString(k.weights[i].RatString())
	}
	return sb.String()
}
