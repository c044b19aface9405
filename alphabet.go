// alphabet.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the letter encoding used throughout the
// package: the 26 lower-case letters a-z are encoded 0-25, and the
// blank tile is encoded as Blank (26). A Letter is a plain byte;
// the package never deals in runes, since the dictionary and board
// formats are both fixed at 27 symbols.

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

// Letter is a single tile value: 0-25 for 'a'-'z', Blank for a
// blank tile.
type Letter byte

// NumLetters is the size of the alphabet, including the blank.
const NumLetters = 27

// Blank is the letter value of a blank tile.
const Blank Letter = 26

// AllSet is a bitmask with all NumLetters bits set - "any letter
// is allowed here". Named after the ONES constant of the original
// C source, which used a 27-bit all-ones mask for the same purpose.
const AllSet uint32 = (1 << NumLetters) - 1

// points holds the score value of each letter, indexed by Letter.
// The blank tile is always worth zero points, even though it can
// stand in for any letter on the board.
var points = [NumLetters]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1,
	1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, 0,
}

// distribution holds the number of tiles of each letter in a
// standard English tile bag. It is not consulted by the move
// generator itself (tile-bag management is a host concern) but is
// kept here because it is part of the same ambient letter table the
// original program ships, and is useful for a host building a bag.
var distribution = [NumLetters]int{
	9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6,
	8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1, 2,
}

// Points returns the score value of a letter.
func (l Letter) Points() int {
	return points[l]
}

// Distribution returns the number of tiles of this letter in a
// standard bag.
func (l Letter) Distribution() int {
	return distribution[l]
}

// Byte returns the ASCII lower-case letter for this Letter, or '?'
// for the blank tile.
func (l Letter) Byte() byte {
	if l == Blank {
		return '?'
	}
	return byte(l) + 'a'
}

// String implements fmt.Stringer for Letter.
func (l Letter) String() string {
	return string(l.Byte())
}

// LetterFromByte converts an ASCII character ('a'-'z', or '?' or
// '_' for the blank) to a Letter. It reports an error for anything
// else.
func LetterFromByte(b byte) (Letter, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return Letter(b - 'a'), nil
	case b == '?' || b == '_':
		return Blank, nil
	default:
		return 0, fmt.Errorf("not a valid tile letter: %q", b)
	}
}

// letterSet returns a bitmask with the bit for l set.
func letterSet(l Letter) uint32 {
	return 1 << uint(l)
}
