// rack.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Rack: the set of tiles a player is
// currently holding, represented as a count per letter (including
// the blank) rather than as individual tile objects, since the
// move generator only ever needs to know how many of each letter
// are available, not which physical tile is which.

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
	"fmt"
	"strings"
)

// Rack holds the counts of each letter a player currently has
// available to play.
type Rack struct {
	Count [NumLetters]int
	N     int
}

// NewRack parses a rack string such as "quiz?e" ('?' or '_' denotes
// a blank tile) into a Rack.
func NewRack(s string) (*Rack, error) {
	r := &Rack{}
	for i := 0; i < len(s); i++ {
		l, err := LetterFromByte(s[i])
		if err != nil {
			return nil, fmt.Errorf("skrafl: invalid rack %q: %w", s, err)
		}
		r.Count[l]++
		r.N++
	}
	return r, nil
}

// Clone returns an independent copy of the rack, so that a
// concurrent search worker can place and unplace tiles on its own
// copy without racing other workers (see movegen.go).
func (r *Rack) Clone() *Rack {
	cp := *r
	return &cp
}

// Has reports whether the rack has at least one tile of letter l.
func (r *Rack) Has(l Letter) bool {
	return r.Count[l] > 0
}

// place removes one tile of letter c from the rack (or, if
// isBlank, one blank standing in for c) and appends it to w.
func (r *Rack) place(w *Word, c Letter, isBlank bool) {
	if isBlank {
		r.Count[Blank]--
	} else {
		r.Count[c]--
	}
	r.N--
	w.Letters = append(w.Letters, c)
	w.IsBlank = append(w.IsBlank, isBlank)
}

// unplace reverses the last place call, returning the tile to the
// rack and popping it off w.
func (r *Rack) unplace(w *Word, c Letter, isBlank bool) {
	if isBlank {
		r.Count[Blank]++
	} else {
		r.Count[c]++
	}
	r.N++
	w.Letters = w.Letters[:len(w.Letters)-1]
	w.IsBlank = w.IsBlank[:len(w.IsBlank)-1]
}

// String renders the rack's tiles in alphabetical order, with
// blanks last as '?'.
func (r *Rack) String() string {
	var sb strings.Builder
	for l := Letter(0); l < Blank; l++ {
		for i := 0; i < r.Count[l]; i++ {
			sb.WriteByte(l.Byte())
		}
	}
	for i := 0; i < r.Count[Blank]; i++ {
		sb.WriteByte('?')
	}
	return sb.String()
}
