// dawg.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Dictionary: a directed acyclic word
// graph (DAWG) stored as a flat array of 32-bit edges. Each edge
// entry packs four fields:
//
//	bit 31        LAST - last edge in this node's edge list
//	bit 30        TERM - the word ending at this edge is valid
//	bits 22-29    the edge's letter
//	bits 0-21     the node this edge leads to
//
// Node 0 is reserved to mean "no further edges" (a leaf); the
// Dictionary's actual entry point is held in its Root field, which
// is never 0 for a non-empty dictionary.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/exp/slices"
)

// Node indexes into a Dictionary's Edges array, marking the start
// of a contiguous run of edges out of that node.
type Node int

// edge bit layout, see package comment above.
const (
	edgeLastBit     uint32 = 1 << 31
	edgeTermBit     uint32 = 1 << 30
	edgeLetterMask  uint32 = 0xff
	edgeLetterShift        = 22
	edgeNodeMask    uint32 = 0x3fffff
)

func edgeLast(e uint32) bool { return e&edgeLastBit != 0 }
func edgeTerm(e uint32) bool { return e&edgeTermBit != 0 }
func edgeLetter(e uint32) Letter {
	return Letter((e >> edgeLetterShift) & edgeLetterMask)
}
func edgeNode(e uint32) Node { return Node(e & edgeNodeMask) }

func makeEdge(last, term bool, l Letter, n Node) uint32 {
	var e uint32
	if last {
		e |= edgeLastBit
	}
	if term {
		e |= edgeTermBit
	}
	e |= uint32(l) << edgeLetterShift
	e |= uint32(n) & edgeNodeMask
	return e
}

// crossCacheSize bounds the memo table used while recomputing
// cross-check sets; it is sized generously since a single board
// never has more than 225 squares to revisit.
const crossCacheSize = 2048

// Dictionary is an immutable, read-only word list encoded as a DAWG.
// A single Dictionary can safely be shared, read-only, across many
// concurrent Generator searches (see movegen.go); the only mutable
// state it carries is a bounded LRU memoizing repeated prefix
// traversals, guarded by the Dictionary's own mutex (simplelru.LRU
// itself does no locking).
type Dictionary struct {
	Edges []uint32
	Root  Node

	mu    sync.Mutex
	cache *lru.LRU
}

type traverseKey struct {
	n Node
	l Letter
}

// Init prepares the Dictionary's traversal cache. It must be called
// once after Edges/Root are populated, either by LoadDictionary or
// by a hand-built test fixture.
func (d *Dictionary) Init() {
	d.cache, _ = lru.NewLRU(crossCacheSize, nil)
}

// child returns the node reached by following the edge labeled l
// out of n, or false if there is no such edge.
func (d *Dictionary) child(n Node, l Letter) (Node, bool) {
	if n == 0 {
		return 0, false
	}
	key := traverseKey{n, l}
	if d.cache != nil {
		d.mu.Lock()
		v, ok := d.cache.Get(key)
		d.mu.Unlock()
		if ok {
			cn := v.(Node)
			return cn, cn != -1
		}
	}
	cn := Node(-1)
	idx := int(n)
	for {
		e := d.Edges[idx]
		idx++
		if edgeLetter(e) == l {
			cn = edgeNode(e)
			break
		}
		if edgeLast(e) {
			break
		}
	}
	if d.cache != nil {
		d.mu.Lock()
		d.cache.Add(key, cn)
		d.mu.Unlock()
	}
	if cn == -1 {
		return 0, false
	}
	return cn, true
}

// Traverse follows a sequence of letters from node n, returning the
// node reached, or -1 if the sequence has no matching path.
func (d *Dictionary) Traverse(n Node, letters []Letter) Node {
	for _, l := range letters {
		if n == 0 {
			return -1
		}
		child, ok := d.child(n, l)
		if !ok {
			return -1
		}
		n = child
	}
	return n
}

// traverseEdge walks letters from n and returns the last edge taken,
// so callers can inspect its TERM bit without a second walk. ok is
// false if letters is empty or has no matching path.
func (d *Dictionary) traverseEdge(n Node, letters []Letter) (e uint32, ok bool) {
	if len(letters) == 0 {
		return 0, false
	}
	for i, l := range letters {
		if n == 0 {
			return 0, false
		}
		idx := int(n)
		found := false
		for {
			edge := d.Edges[idx]
			idx++
			if edgeLetter(edge) == l {
				found = true
				if i == len(letters)-1 {
					return edge, true
				}
				n = edgeNode(edge)
				break
			}
			if edgeLast(edge) {
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return 0, false
}

// IsWord reports whether the given letter sequence is a complete
// word in the dictionary.
func (d *Dictionary) IsWord(letters []Letter) bool {
	e, ok := d.traverseEdge(d.Root, letters)
	return ok && edgeTerm(e)
}

// edgeList calls fn for every outgoing edge of n, in storage order,
// stopping after the edge with the LAST bit set. It is a no-op for
// the leaf node (n == 0).
func (d *Dictionary) edgeList(n Node, fn func(e uint32)) {
	if n == 0 {
		return
	}
	idx := int(n)
	for {
		e := d.Edges[idx]
		idx++
		fn(e)
		if edgeLast(e) {
			return
		}
	}
}

// CrossCheck returns the set of letters (as an AllSet-style 27-bit
// bitmask) that, when inserted between left and right, complete a
// valid word left+c+right. If both left and right are empty, every
// letter is allowed (AllSet), since there is no cross word to
// satisfy. This mirrors findstats() in the original program: since
// the DAWG only supports forward traversal, every candidate letter
// is tried in turn rather than navigating the cross word backwards.
func (d *Dictionary) CrossCheck(left, right []Letter) uint32 {
	if len(left) == 0 && len(right) == 0 {
		return AllSet
	}
	n := d.Traverse(d.Root, left)
	if n < 0 {
		return 0
	}
	var mask uint32
	d.edgeList(n, func(e uint32) {
		c := edgeLetter(e)
		if len(right) == 0 {
			if edgeTerm(e) {
				mask |= letterSet(c)
			}
			return
		}
		word := make([]Letter, 0, len(left)+1+len(right))
		word = append(word, left...)
		word = append(word, c)
		word = append(word, right...)
		if d.IsWord(word) {
			mask |= letterSet(c)
		}
	})
	return mask
}

// LoadDictionary reads a packed DAWG from r. The wire format is a
// sequence of little-endian uint32 values: the first word is the
// Root node index, followed by the flat edge array.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var rootWord uint32
	if err := binary.Read(r, binary.LittleEndian, &rootWord); err != nil {
		return nil, fmt.Errorf("skrafl: reading dictionary root: %w", err)
	}
	var edges []uint32
	for {
		var w uint32
		if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("skrafl: reading dictionary edges: %w", err)
		}
		edges = append(edges, w)
	}
	d := &Dictionary{Edges: edges, Root: Node(rootWord)}
	d.Init()
	return d, nil
}

// WriteDictionary serializes d in the same format read by
// LoadDictionary, for hosts that build a dictionary once and cache
// it to disk.
func WriteDictionary(w io.Writer, d *Dictionary) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(d.Root)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, d.Edges)
}

// NewDictionaryFromWords builds a Dictionary out of a plain word
// list. It is not a minimized DAWG (no suffix sharing across
// words), just a trie flattened into the same edge-array format:
// enough to exercise Traverse/IsWord/CrossCheck with a correct wire
// layout for tests and small demo dictionaries, without requiring a
// real multi-thousand-word lexicon to ship in this repository
// (dictionary-file provisioning is a host concern).
func NewDictionaryFromWords(words []string) (*Dictionary, error) {
	type trieNode struct {
		children map[Letter]*trieNode
		term     bool
	}
	root := &trieNode{children: map[Letter]*trieNode{}}
	for _, w := range words {
		cur := root
		for i := 0; i < len(w); i++ {
			l, err := LetterFromByte(w[i])
			if err != nil {
				return nil, err
			}
			child, ok := cur.children[l]
			if !ok {
				child = &trieNode{children: map[Letter]*trieNode{}}
				cur.children[l] = child
			}
			cur = child
		}
		cur.term = true
	}

	// Flatten breadth-first so that every node's edge run is
	// contiguous. Node indices are assigned in a first pass (so
	// that forward references can be patched in a second pass),
	// with node 0 reserved as the "no edges" sentinel.
	var edges []uint32
	nodeIndex := map[*trieNode]Node{}
	order := []*trieNode{root}

	sortedLetters := func(n *trieNode) []Letter {
		letters := make([]Letter, 0, len(n.children))
		for l := range n.children {
			letters = append(letters, l)
		}
		slices.Sort(letters)
		return letters
	}

	assigned := map[*trieNode]bool{}
	for i := 0; i < len(order); i++ {
		n := order[i]
		if assigned[n] || len(n.children) == 0 {
			assigned[n] = true
			continue
		}
		assigned[n] = true
		letters := sortedLetters(n)
		if len(edges) == 0 {
			edges = append(edges, 0) // sentinel slot: reserve node 0
		}
		nodeIndex[n] = Node(len(edges))
		base := len(edges)
		for range letters {
			edges = append(edges, 0)
		}
		for i, l := range letters {
			child := n.children[l]
			order = append(order, child)
			edges[base+i] = makeEdge(i == len(letters)-1, child.term, l, 0)
		}
	}

	// Second pass: patch each edge's NODE field now that every
	// node's index is known.
	patched := map[*trieNode]bool{}
	for _, n := range order {
		if patched[n] || len(n.children) == 0 {
			patched[n] = true
			continue
		}
		patched[n] = true
		letters := sortedLetters(n)
		base := int(nodeIndex[n])
		for i, l := range letters {
			child := n.children[l]
			cn := nodeIndex[child] // 0 if child is a leaf
			e := edges[base+i]
			edges[base+i] = (e &^ edgeNodeMask) | (uint32(cn) & edgeNodeMask)
		}
	}

	rootIdx, ok := nodeIndex[root]
	if !ok {
		return nil, fmt.Errorf("skrafl: empty dictionary (no words)")
	}
	d := &Dictionary{Edges: edges, Root: rootIdx}
	d.Init()
	return d, nil
}
