// board.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Board: a 17x17 grid of Squares in which
// only the inner 15x15 area (coordinates 1-15) is playable. The
// outermost ring (coordinate 0 and 16) is a sentinel border whose
// squares always read as occupied-by-nothing-and-not-playable,
// which lets the move generator walk PREV/NEXT across a board edge
// without a separate bounds check in the hot path.

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

import "strings"

// BLen is the storage size of one side of the Board, including the
// one-square sentinel border on each side.
const BLen = 17

// BoardSize is the number of playable squares on one side.
const BoardSize = 15

// Centre is the centre square, which the first move of a game must
// cover.
var Centre = Position{8, 8}

// Ori is a direction of play: left-to-right or up-and-down.
type Ori int

const (
	LR Ori = iota // horizontal, left to right
	UD            // vertical, top to bottom
)

// Ortho returns the orientation perpendicular to o: a horizontal
// play's cross words run vertically, and vice versa.
func Ortho(o Ori) Ori {
	if o == LR {
		return UD
	}
	return LR
}

func (o Ori) String() string {
	if o == LR {
		return "horizontal"
	}
	return "vertical"
}

// Position is a square's coordinate pair. (0, y) and (16, y) (and
// their column equivalents) are always sentinel border squares.
type Position struct {
	X, Y int
}

// Prev returns the adjacent position one step "back" along o.
func Prev(p Position, o Ori) Position {
	if o == LR {
		return Position{p.X - 1, p.Y}
	}
	return Position{p.X, p.Y - 1}
}

// Next returns the adjacent position one step "forward" along o.
func Next(p Position, o Ori) Position {
	if o == LR {
		return Position{p.X + 1, p.Y}
	}
	return Position{p.X, p.Y + 1}
}

// OnEdge reports whether p lies in the sentinel border.
func (p Position) OnEdge() bool {
	return p.X == 0 || p.Y == 0 || p.X == BLen-1 || p.Y == BLen-1
}

// InBounds reports whether p addresses a storage cell of the
// board's 17x17 array at all (not necessarily a playable one).
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BLen && p.Y >= 0 && p.Y < BLen
}

// Special identifies a premium square.
type Special int

const (
	NotSpecial Special = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

var specialGlyph = [...]byte{'.', 'd', 't', 'D', 'T'}

// Square is a single cell of the Board.
type Square struct {
	// Cross holds a 27-bit allowed-letter bitmask for each
	// orientation: Cross[LR] constrains a letter placed here when
	// playing vertically (it is checked against the horizontal
	// cross word that placement would form), and Cross[UD] the
	// mirror image. An empty, unconstrained square has AllSet in
	// both; a sentinel border square has 0 in both.
	Cross [2]uint32
	// Side holds the pre-computed point total of the cross word
	// resting against this square in each orientation, used by
	// Score to add in cross-word contributions without re-walking
	// the board.
	Side [2]int

	Special   Special
	Letter    Letter
	HasLetter bool
	IsAnchor  bool
	// Score is the point value of the tile on this square, frozen
	// at play time (0 for a blank, regardless of which letter it
	// stands for).
	Score int
}

// Board is the 15x15 (stored as 17x17 with a sentinel border) grid
// of Squares that tiles are played onto.
type Board struct {
	Squares  [BLen][BLen]Square
	NumTiles int
}

// Sq returns a pointer to the square at p. It panics if p is
// outside the board's storage bounds, since every caller in this
// package only ever constructs positions derived from PREV/NEXT
// walks starting on the board.
func (b *Board) Sq(p Position) *Square {
	return &b.Squares[p.X][p.Y]
}

// doubleLetterSquares, tripleLetterSquares, doubleWordSquares and
// tripleWordSquares list the premium squares of one quarter of a
// standard 15x15 board (plus the centre); Init copies that quarter
// into the other three by 90-degree rotation about the centre.
var (
	doubleLetterSquares = []Position{{1, 4}, {4, 1}, {3, 7}, {7, 3}, {8, 4}, {7, 7}}
	tripleLetterSquares = []Position{{2, 6}, {6, 2}, {6, 6}}
	doubleWordSquares   = []Position{{8, 8}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	tripleWordSquares   = []Position{{1, 1}, {8, 1}}
)

// Init resets the Board to an empty starting layout: every playable
// square gets an unconstrained (AllSet) cross-check mask, the
// sentinel border gets a mask of 0 (nothing is ever playable there),
// and the standard premium squares are laid out with the board's
// rotational symmetry.
func (b *Board) Init() {
	*b = Board{}
	for x := 0; x < BLen; x++ {
		for y := 0; y < BLen; y++ {
			sq := &b.Squares[x][y]
			sq.Cross[LR] = AllSet
			sq.Cross[UD] = AllSet
		}
	}
	for j := 0; j < BLen; j++ {
		b.Squares[0][j].Cross = [2]uint32{}
		b.Squares[j][0].Cross = [2]uint32{}
		b.Squares[BLen-1][j].Cross = [2]uint32{}
		b.Squares[j][BLen-1].Cross = [2]uint32{}
	}

	place := func(positions []Position, sp Special) {
		for _, p := range positions {
			b.Sq(p).Special = sp
		}
	}
	place(doubleLetterSquares, DoubleLetter)
	place(tripleLetterSquares, TripleLetter)
	place(doubleWordSquares, DoubleWord)
	place(tripleWordSquares, TripleWord)

	for j := 1; j < 9; j++ {
		for k := 1; k < 8; k++ {
			sp := b.Squares[j][k].Special
			b.Squares[BLen-1-k][j].Special = sp
			b.Squares[BLen-1-j][BLen-1-k].Special = sp
			b.Squares[k][BLen-1-j].Special = sp
		}
	}
}

// NewBoard returns a freshly initialized, empty Board.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// String renders the board as a 15x15 grid, printing each letter
// tile or the glyph of its premium-square type ('.', 'd', 't', 'D',
// 'T').
func (b *Board) String() string {
	var sb strings.Builder
	header := func() {
		sb.WriteString("    ")
		for x := 1; x <= BoardSize; x++ {
			sb.WriteString(" ")
			if x < 10 {
				sb.WriteString(" ")
			}
			sb.WriteString(itoa(x))
		}
		sb.WriteString("\n")
	}
	header()
	for y := 1; y <= BoardSize; y++ {
		sb.WriteString(pad(y))
		for x := 1; x <= BoardSize; x++ {
			sq := b.Sq(Position{x, y})
			sb.WriteString("  ")
			if sq.HasLetter {
				sb.WriteByte(sq.Letter.Byte())
			} else {
				sb.WriteByte(specialGlyph[sq.Special])
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func pad(n int) string {
	s := itoa(n)
	if len(s) < 4 {
		return strings.Repeat(" ", 4-len(s)) + s
	}
	return s
}
