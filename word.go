// word.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements Word, the in-progress sequence of letters
// the Generator assembles while searching, and Play, the finished
// result of a search: a scored word at a board position and
// orientation.

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

// Word is a sequence of letters under construction by the
// Generator. Letters[i] is a blank tile standing in for that letter
// iff IsBlank[i].
type Word struct {
	Letters []Letter
	IsBlank []bool
}

// String renders the word's letters, lower-case, ignoring which
// ones are blanks.
func (w Word) String() string {
	b := make([]byte, len(w.Letters))
	for i, l := range w.Letters {
		b[i] = l.Byte()
	}
	return string(b)
}

// ParseWord parses a word string into a Word; a letter followed
// immediately by '_' denotes that the preceding letter is played by
// a blank, e.g. "ab_c" is the three-letter word "abc" with its
// second letter ('b') played from a blank.
func ParseWord(s string) (Word, error) {
	var w Word
	for i := 0; i < len(s); i++ {
		l, err := LetterFromByte(s[i])
		if err != nil {
			return Word{}, fmt.Errorf("skrafl: invalid word %q: %w", s, err)
		}
		blank := false
		if i+1 < len(s) && s[i+1] == '_' {
			blank = true
			i++
		}
		w.Letters = append(w.Letters, l)
		w.IsBlank = append(w.IsBlank, blank)
	}
	return w, nil
}

// appendWord returns a copy of the add word's letters concatenated
// onto w (used by passover in movegen.go, which needs to extend a
// word with a run of resident board letters and later trim them
// back off again).
func (w Word) appendWord(add Word) Word {
	out := Word{
		Letters: append(append([]Letter{}, w.Letters...), add.Letters...),
		IsBlank: append(append([]bool{}, w.IsBlank...), add.IsBlank...),
	}
	return out
}

// Play is a fully specified, scored move: placing Word at Pos, the
// position of the word's LAST letter, running in orientation Ori.
type Play struct {
	Word  Word
	Pos   Position
	Ori   Ori
	Score int
}

// Found reports whether a search produced a play at all.
func (p Play) Found() bool {
	return p.Score >= 0
}

// String renders a play as "(x,y,h|v) score WORD", matching the
// original program's move log line.
func (p Play) String() string {
	oc := byte('h')
	if p.Ori == UD {
		oc = 'v'
	}
	return fmt.Sprintf("(%d,%d,%c) %d %s", p.Pos.X, p.Pos.Y, oc, p.Score, p.Word.String())
}

// StartPos returns the position of the FIRST letter of the play,
// derived by walking backward len(Word.Letters)-1 steps from Pos.
func (p Play) StartPos() Position {
	start := p.Pos
	for i := 0; i < len(p.Word.Letters)-1; i++ {
		start = Prev(start, p.Ori)
	}
	return start
}
