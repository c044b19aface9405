// play.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Play engine: validating a proposed play
// against the board, committing it (placing tiles and incrementally
// recomputing the affected cross-checks and anchors), and the
// cross-check/cross-score maintenance (adjust/findstats) that keeps
// the board ready for the next search.

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

import "fmt"

// Valid reports whether play is a legal move on b, given whether
// this is the first move of the game. It returns nil if the play is
// legal, or an *InvalidPlayError describing the first rule the play
// breaks, in the same order the original program checked them:
// abutment past the word's end, dictionary membership, per-letter
// board bounds and cross-checks, first-move centre coverage,
// anchor attachment, abutment before the word's start, and finally
// that the play actually places at least one new letter.
func Valid(b *Board, dict *Dictionary, play Play, firstMove bool) error {
	p := play.Pos
	after := Next(p, play.Ori)
	if after.InBounds() && b.Sq(after).HasLetter {
		return &InvalidPlayError{"abuts another word"}
	}
	if !dict.IsWord(play.Word.Letters) {
		return &InvalidPlayError{"not a word"}
	}

	var newLetter, crossCentre, hasAnchor bool

	for j := len(play.Word.Letters) - 1; j >= 0; j-- {
		// The original program checked p.x > BLEN here, one past
		// the actual storage bound (BLEN-1). Here every letter must
		// land on a playable square (1-15 on each axis): sentinel
		// border squares and anything beyond them are rejected.
		if !p.InBounds() || p.OnEdge() {
			return &InvalidPlayError{"off the edge"}
		}

		c := play.Word.Letters[j]
		sq := b.Sq(p)

		if sq.IsAnchor {
			hasAnchor = true
		}
		if sq.HasLetter {
			if sq.Letter != c {
				return &InvalidPlayError{fmt.Sprintf(
					"wanted %s, got %s at (%d,%d)", c, sq.Letter, p.X, p.Y)}
			}
		} else {
			newLetter = true
			if !firstMove && sq.Cross[Ortho(play.Ori)]&letterSet(c) == 0 {
				return &InvalidPlayError{fmt.Sprintf(
					"invalid cross word at (%d,%d)", p.X, p.Y)}
			}
		}
		if p == Centre {
			crossCentre = true
		}
		p = Prev(p, play.Ori)
	}

	if firstMove && !crossCentre {
		return &InvalidPlayError{"first move doesn't touch centre square"}
	}
	if !hasAnchor && !firstMove {
		return &InvalidPlayError{"not attached to another word"}
	}
	if b.Sq(p).HasLetter {
		return &InvalidPlayError{"abutting another word"}
	}
	if !newLetter {
		return &InvalidPlayError{"adds no letters"}
	}
	return nil
}

// Commit places play's tiles on the board and incrementally
// recomputes the cross-checks, side scores and anchors that the
// placement affects. The caller must have already validated play
// with Valid (Commit does not re-validate).
func Commit(b *Board, dict *Dictionary, play Play) {
	p := play.Pos
	for j := len(play.Word.Letters) - 1; j >= 0; j-- {
		sq := b.Sq(p)
		if !sq.HasLetter {
			c := play.Word.Letters[j]
			sq.Letter = c
			sq.HasLetter = true
			sq.Special = NotSpecial
			sq.IsAnchor = false
			if play.Word.IsBlank[j] {
				sq.Score = 0
			} else {
				sq.Score = c.Points()
			}
			b.NumTiles++
			adjust(b, dict, p, Ortho(play.Ori))
		}
		p = Prev(p, play.Ori)
	}
	start := Next(p, play.Ori)
	adjust(b, dict, start, play.Ori)
}

// adjust recomputes the stats (cross-check mask, side score,
// anchor flag) at the two empty squares immediately flanking the
// contiguous run of tiles that includes p, in orientation o.
func adjust(b *Board, dict *Dictionary, p Position, o Ori) {
	right := p
	for b.Sq(right).HasLetter {
		right = Next(right, o)
	}
	left := p
	for b.Sq(left).HasLetter {
		left = Prev(left, o)
	}
	findstats(b, dict, left, o)
	findstats(b, dict, right, o)
}

// findstats recomputes the cross-check mask and side score at p,
// assuming p has no tile of its own. It walks the existing run of
// tiles through p along o to gather the left and right word
// fragments, then asks the dictionary which letters could legally
// fill the gap at p to complete a valid word.
func findstats(b *Board, dict *Dictionary, p Position, o Ori) {
	if p.OnEdge() {
		return
	}

	var left []Letter
	side := 0
	scan := Prev(p, o)
	for b.Sq(scan).HasLetter {
		scan = Prev(scan, o)
	}
	scan = Next(scan, o)
	for b.Sq(scan).HasLetter {
		sq := b.Sq(scan)
		left = append(left, sq.Letter)
		side += sq.Score
		scan = Next(scan, o)
	}

	var right []Letter
	scan = Next(p, o)
	for b.Sq(scan).HasLetter {
		sq := b.Sq(scan)
		right = append(right, sq.Letter)
		side += sq.Score
		scan = Next(scan, o)
	}

	sq := b.Sq(p)
	sq.Side[o] = side
	sq.IsAnchor = true
	sq.Cross[o] = dict.CrossCheck(left, right)
}
