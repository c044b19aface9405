// movegen.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Generator: the Appel-Jacobson anchor
// search that finds the best-scoring legal play for a rack against
// a board. For an empty board it instead runs a plain anagram
// search (ana), since there are no anchors yet to search from.

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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Generator searches a Board for the best-scoring play a Rack can
// make against a Dictionary. A Generator is stateless and safe for
// concurrent use; all mutable search state lives on the stack of
// each search.
type Generator struct {
	Dict *Dictionary
}

// NewGenerator returns a Generator backed by d.
func NewGenerator(d *Dictionary) *Generator {
	return &Generator{Dict: d}
}

// searchAcc accumulates the best play found so far within one
// search (or one worker's share of a search). Once Best.Score
// reaches GoodEnough, legal() stops accepting replacements - a
// candidate must still beat Best.Score to ever be recorded, but a
// "good enough" Best is never displaced, mirroring the original
// program's goodenough cutoff.
type searchAcc struct {
	Best       Play
	GoodEnough int
}

func newSearchAcc(goodEnough int) *searchAcc {
	return &searchAcc{Best: Play{Score: -1}, GoodEnough: goodEnough}
}

// legal is called whenever the search assembles a word that is
// confirmed to be in the dictionary at a given position; it scores
// the play and keeps it if it beats the current best.
func (g *Generator) legal(b *Board, w Word, p Position, o Ori, acc *searchAcc) {
	if acc.Best.Score >= acc.GoodEnough {
		return
	}
	s := score(b, w, p, o)
	if s > acc.Best.Score {
		acc.Best = Play{
			Word: Word{
				Letters: append([]Letter{}, w.Letters...),
				IsBlank: append([]bool{}, w.IsBlank...),
			},
			Pos:   p,
			Ori:   o,
			Score: s,
		}
	}
}

// FindPlay finds the best play available for rack against board.
// On a non-first move, once a play scoring at least goodEnough is
// found it is no longer replaced (see searchAcc and DESIGN.md); the
// first-move search does not consult goodEnough. It returns a
// Play with Score < 0 if no legal play exists at all.
func (g *Generator) FindPlay(b *Board, r *Rack, firstMove bool, goodEnough int) Play {
	if firstMove {
		return g.findFirstMove(r, goodEnough)
	}
	return g.cmoveParallel(b, r, goodEnough)
}

// findFirstMove runs a plain anagram search over the rack, ignoring
// the board, and reports the highest simplescore-ranked word found,
// placed horizontally with its last letter on the centre square.
func (g *Generator) findFirstMove(r *Rack, goodEnough int) Play {
	rack := r.Clone()
	var w Word
	best := Play{Score: -1}
	g.ana(g.Dict.Root, rack, &w, &best)
	best.Pos = Centre
	best.Ori = LR
	return best
}

// ana performs a depth-first search over the dictionary, trying
// every rack letter at every node, and keeps the highest-scoring
// complete word found. Note that, like the original program, it
// does not attempt blank-tile substitution during the first-move
// search - a rack blank simply goes unused until a cross-board
// search is possible.
func (g *Generator) ana(n Node, r *Rack, w *Word, best *Play) {
	if n == 0 {
		return
	}
	g.Dict.edgeList(n, func(e uint32) {
		c := edgeLetter(e)
		if !r.Has(c) {
			return
		}
		r.place(w, c, false)
		if edgeTerm(e) {
			s := simplescore(*w)
			if s > best.Score {
				best.Score = s
				best.Word = Word{
					Letters: append([]Letter{}, w.Letters...),
					IsBlank: append([]bool{}, w.IsBlank...),
				}
			}
		}
		if r.N > 0 {
			g.ana(edgeNode(e), r, w, best)
		}
		r.unplace(w, c, false)
	})
}

// cmoveParallel computes the best play over every anchor square of
// board, fanning the outer column loop out across a worker pool.
// Each worker searches its own columns with its own Rack and Word
// scratch space (the Board and Dictionary are read-only for the
// duration of the search), and results are reduced with the same
// score-beats-current-best, frozen-once-goodEnough rule legal()
// applies within a single worker. See DESIGN.md for the one
// observable difference from a strictly sequential search: a
// worker is never skipped just because another worker already
// reached goodEnough, so the parallel result's score is always >=
// what a sequential scan would have returned, never lower.
func (g *Generator) cmoveParallel(b *Board, r *Rack, goodEnough int) Play {
	workers := runtime.GOMAXPROCS(0)
	if workers > BoardSize {
		workers = BoardSize
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Play, workers)
	eg, _ := errgroup.WithContext(context.Background())
	for wi := 0; wi < workers; wi++ {
		wi := wi
		eg.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = &searchPanicError{rec}
				}
			}()
			acc := newSearchAcc(goodEnough)
			rack := r.Clone()
			var w Word
			for x := 1 + wi; x <= BoardSize; x += workers {
				for y := 1; y <= BoardSize; y++ {
					for _, o := range [2]Ori{LR, UD} {
						g.searchAnchor(b, Position{x, y}, o, rack, &w, acc)
					}
				}
			}
			results[wi] = acc.Best
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic(err)
	}

	best := Play{Score: -1}
	for _, p := range results {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}

type searchPanicError struct{ v any }

func (e *searchPanicError) Error() string { return "skrafl: search worker panicked" }

// searchAnchor is the body of cmove's innermost loop for a single
// (p, o) combination.
func (g *Generator) searchAnchor(b *Board, p Position, o Ori, r *Rack, w *Word, acc *searchAcc) {
	sq := b.Sq(p)
	if !sq.IsAnchor || sq.Cross[Ortho(o)] == 0 {
		return
	}
	w.Letters = w.Letters[:0]
	w.IsBlank = w.IsBlank[:0]

	left := Prev(p, o)
	if b.Sq(left).HasLetter {
		for b.Sq(left).HasLetter {
			left = Prev(left, o)
		}
		left = Next(left, o)
		for b.Sq(left).HasLetter {
			lsq := b.Sq(left)
			w.Letters = append(w.Letters, lsq.Letter)
			w.IsBlank = append(w.IsBlank, false)
			left = Next(left, o)
		}
		n := g.Dict.Traverse(g.Dict.Root, w.Letters)
		if n < 0 {
			return
		}
		g.xright(b, Node(n), p, o, r, w, acc)
		return
	}

	count := 0
	for b.Sq(left).Cross[o] == AllSet && b.Sq(left).Cross[Ortho(o)] == AllSet {
		count++
		left = Prev(left, o)
	}
	g.lr(b, g.Dict.Root, p, count, o, r, w, acc)
}

// lr assembles every possible left part (of up to count letters)
// that can sit to the left of anchor p, recursing through the
// dictionary and the rack in lock-step, and calls xright once for
// every prefix (including the empty one).
func (g *Generator) lr(b *Board, n Node, p Position, count int, o Ori, r *Rack, w *Word, acc *searchAcc) {
	g.xright(b, n, p, o, r, w, acc)

	if count == 0 || r.N <= 1 || n == 0 {
		return
	}
	g.Dict.edgeList(n, func(e uint32) {
		c := edgeLetter(e)
		if r.Count[Blank] > 0 {
			r.place(w, c, true)
			g.lr(b, edgeNode(e), p, count-1, o, r, w, acc)
			r.unplace(w, c, true)
		}
		if r.Count[c] > 0 {
			r.place(w, c, false)
			g.lr(b, edgeNode(e), p, count-1, o, r, w, acc)
			r.unplace(w, c, false)
		}
	})
}

// xright tries to extend the word in w rightward from anchor/cursor
// p, placing one more rack tile that both matches a dictionary edge
// out of n and satisfies p's cross-check mask.
func (g *Generator) xright(b *Board, n Node, p Position, o Ori, r *Rack, w *Word, acc *searchAcc) {
	if r.N == 0 || n == 0 {
		return
	}
	mask := b.Sq(p).Cross[Ortho(o)]
	g.Dict.edgeList(n, func(e uint32) {
		c := edgeLetter(e)
		if mask&letterSet(c) == 0 {
			return
		}
		if r.Count[Blank] > 0 {
			r.place(w, c, true)
			g.xplace(b, e, p, o, r, w, acc)
			r.unplace(w, c, true)
		}
		if r.Count[c] > 0 {
			r.place(w, c, false)
			g.xplace(b, e, p, o, r, w, acc)
			r.unplace(w, c, false)
		}
	})
}

// xplace has just placed a tile using edge e at p. If the next
// square already has a resident tile, it hands off to passover;
// otherwise it checks whether the word-so-far is complete (the TERM
// bit of e) and, regardless, keeps extending right.
func (g *Generator) xplace(b *Board, e uint32, p Position, o Ori, r *Rack, w *Word, acc *searchAcc) {
	next := Next(p, o)
	n := edgeNode(e)
	if b.Sq(next).HasLetter {
		g.passover(b, n, next, o, r, w, acc)
		return
	}
	if edgeTerm(e) {
		g.legal(b, *w, p, o, acc)
	}
	g.xright(b, n, next, o, r, w, acc)
}

// passover walks forward over a run of squares that already have
// resident tiles, following the matching dictionary edge at each
// step without touching the rack. If it reaches a dead end (no
// matching edge) it backs out having disturbed nothing. Otherwise
// it folds the resident letters into w, checks for a complete word,
// keeps extending right past the resident run, and finally removes
// the resident letters from w again.
func (g *Generator) passover(b *Board, n Node, p Position, o Ori, r *Rack, w *Word, acc *searchAcc) {
	var resident Word
	var lastEdge uint32
	cur := n
	pos := p
	for b.Sq(pos).HasLetter {
		if cur == 0 {
			return
		}
		letter := b.Sq(pos).Letter
		found := false
		g.Dict.edgeList(cur, func(e uint32) {
			if found {
				return
			}
			if edgeLetter(e) == letter {
				found = true
				lastEdge = e
			}
		})
		if !found {
			return
		}
		cur = edgeNode(lastEdge)
		resident.Letters = append(resident.Letters, letter)
		resident.IsBlank = append(resident.IsBlank, false)
		pos = Next(pos, o)
	}

	before := Word{
		Letters: append([]Letter{}, w.Letters...),
		IsBlank: append([]bool{}, w.IsBlank...),
	}
	*w = w.appendWord(resident)
	if edgeTerm(lastEdge) {
		g.legal(b, *w, Prev(pos, o), o, acc)
	}
	g.xright(b, cur, pos, o, r, w, acc)
	*w = before
}
