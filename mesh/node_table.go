package mesh

import (
	"sort"
)

// NodeTable maps node keys to node indices. It is written by a single
// goroutine during mesh construction and read only afterwards.
type NodeTable struct {
	index map[string]int
	keys  []NodeKey // keys[n] is the key that created node n
}

func NewNodeTable(sizeHint int) *NodeTable {
	return &NodeTable{
		index: make(map[string]int, sizeHint),
		keys:  make([]NodeKey, 0, sizeHint),
	}
}

// Insert returns the node index for key, allocating the next index if the key
// has not been seen.
func (nt *NodeTable) Insert(key NodeKey) (node int, inserted bool) {
	s := key.String()
	var ok bool
	if node, ok = nt.index[s]; ok {
		return
	}
	node = len(nt.keys)
	nt.index[s] = node
	nt.keys = append(nt.keys, key)
	inserted = true
	return
}

func (nt *NodeTable) Lookup(key NodeKey) (node int, ok bool) {
	node, ok = nt.index[key.String()]
	return
}

func (nt *NodeTable) DistinctKeys() int { return len(nt.keys) }

// Key returns the key that created node n.
func (nt *NodeTable) Key(n int) NodeKey { return nt.keys[n] }

// Keys returns the node indices ordered by NodeKey.Compare.
func (nt *NodeTable) Keys() (nodes []int) {
	nodes = make([]int, len(nt.keys))
	for i := range nodes {
		nodes[i] = i
	}
	sort.Slice(nodes, func(a, b int) bool {
		return nt.keys[nodes[a]].Compare(nt.keys[nodes[b]]) < 0
	})
	return
}
