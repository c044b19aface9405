// score.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the scoring algorithm: letter and word
// premiums for the main word, cross-word side totals, and the
// bingo bonus for using an entire rack.

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

// Bonus is the extra points awarded for playing all RackSize tiles
// of a rack in a single move (a "bingo").
const Bonus = 50

// RackSize is the number of tiles a rack normally holds.
const RackSize = 7

// simplescore returns the unmultiplied point total of w's letters,
// ignoring the board entirely. It is used by the first-move search
// (movegen.go's ana), which has no established anchor to multiply
// against.
func simplescore(w Word) int {
	total := 0
	for i, l := range w.Letters {
		if !w.IsBlank[i] {
			total += l.Points()
		}
	}
	return total
}

// score computes the full board score of placing w at p with
// orientation o. Only squares without a tile already on them
// contribute letter/word premiums and a cross-word side total;
// squares that already held a tile before this play contribute
// their frozen Score and nothing else. It panics if w places zero
// or more than RackSize new letters, mirroring the original
// program's internal assertion that a play always covers a sane
// number of tiles.
func score(b *Board, w Word, p Position, o Ori) int {
	mul := 1
	total := 0
	sideTotal := 0
	newLetters := 0

	pos := p
	for j := len(w.Letters) - 1; j >= 0; j-- {
		sq := b.Sq(pos)
		var letterScore, side int
		var special Special
		if sq.HasLetter {
			letterScore = sq.Score
		} else {
			newLetters++
			if !w.IsBlank[j] {
				letterScore = w.Letters[j].Points()
			}
			side = sq.Side[Ortho(o)]
			special = sq.Special
		}

		switch special {
		case DoubleLetter:
			letterScore *= 2
		case TripleLetter:
			letterScore *= 3
		}

		if side != 0 {
			side += letterScore
		}

		switch special {
		case DoubleWord:
			side *= 2
			mul *= 2
		case TripleWord:
			side *= 3
			mul *= 3
		}

		total += letterScore
		sideTotal += side
		pos = Prev(pos, o)
	}

	total *= mul
	total += sideTotal

	if newLetters <= 0 || newLetters > RackSize {
		panic("skrafl: play places an impossible number of new letters")
	}
	if newLetters == RackSize {
		total += Bonus
	}
	return total
}
