package model

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BlockModel is the immutable in-memory form of a mine instance. It owns the
// precedence relation and the per-block attributes the schedulers consult.
// Construction validates the relation, so downstream code can assume every
// predecessor id exists and the relation is a DAG.
type BlockModel struct {
	ids  []int
	info map[int]Block
	succ map[int][]int
}

// New builds a model from parsed blocks. Duplicate ids are rejected outright;
// references to unknown blocks and cyclic precedence are reported as a
// MalformedPrecedenceError. Predecessor lists have set semantics: repeated
// entries collapse to the first occurrence.
func New(blocks []Block) (*BlockModel, error) {
	m := &BlockModel{
		ids:  make([]int, 0, len(blocks)),
		info: make(map[int]Block, len(blocks)),
		succ: make(map[int][]int),
	}
	for _, b := range blocks {
		if _, dup := m.info[b.ID]; dup {
			return nil, fmt.Errorf("model: duplicate block id %d", b.ID)
		}
		b.Predecessors = dedupe(b.Predecessors)
		m.info[b.ID] = b
		m.ids = append(m.ids, b.ID)
	}
	for _, id := range m.ids {
		b := m.info[id]
		for _, p := range b.Predecessors {
			if p == b.ID {
				return nil, &MalformedPrecedenceError{BlockID: b.ID, Cycle: []int{b.ID}}
			}
			if _, ok := m.info[p]; !ok {
				return nil, &MalformedPrecedenceError{BlockID: b.ID, Pred: p}
			}
			m.succ[p] = append(m.succ[p], b.ID)
		}
	}
	if cyc := m.findCycle(); len(cyc) > 0 {
		return nil, &MalformedPrecedenceError{Cycle: cyc}
	}
	return m, nil
}

// dedupe keeps the first occurrence of each id without touching the input.
func dedupe(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// findCycle topologically sorts the precedence graph and reports the ids of
// the components that prevent an ordering, sorted for stable messages.
func (m *BlockModel) findCycle() []int {
	g := simple.NewDirectedGraph()
	for _, id := range m.ids {
		g.AddNode(simple.Node(id))
	}
	for _, id := range m.ids {
		for _, p := range m.info[id].Predecessors {
			g.SetEdge(g.NewEdge(simple.Node(p), simple.Node(id)))
		}
	}
	_, err := topo.Sort(g)
	if err == nil {
		return nil
	}
	var uo topo.Unorderable
	if !errors.As(err, &uo) {
		return nil
	}
	var ids []int
	for _, comp := range uo {
		for _, n := range comp {
			ids = append(ids, int(n.ID()))
		}
	}
	sort.Ints(ids)
	return ids
}

// Len is the number of blocks in the instance.
func (m *BlockModel) Len() int { return len(m.ids) }

// IDs returns the block ids in instance order. The slice is a copy, callers
// may shuffle it freely.
func (m *BlockModel) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Has reports whether id belongs to the instance.
func (m *BlockModel) Has(id int) bool {
	_, ok := m.info[id]
	return ok
}

// Block returns the full record for id.
func (m *BlockModel) Block(id int) (Block, bool) {
	b, ok := m.info[id]
	return b, ok
}

// Tonnage of the block, zero for unknown ids.
func (m *BlockModel) Tonnage(id int) float64 { return m.info[id].Tonnage }

// Destination code of the block.
func (m *BlockModel) Destination(id int) int { return m.info[id].Destination }

// OreValue of the block.
func (m *BlockModel) OreValue(id int) float64 { return m.info[id].OreValue }

// IsOre reports whether the block is routed to processing.
func (m *BlockModel) IsOre(id int) bool { return m.info[id].IsOre() }

// Predecessors returns the ids that must be extracted before id, in instance
// order. The slice is owned by the model and must not be modified.
func (m *BlockModel) Predecessors(id int) []int { return m.info[id].Predecessors }

// Successors lists the blocks that name id as a predecessor.
func (m *BlockModel) Successors(id int) []int { return m.succ[id] }
