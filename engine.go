// engine.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements Engine, the caller-owned value that bundles
// a Dictionary, a Board, the first-move flag and the goodEnough
// search cutoff, and exposes them as the seven operations a host
// (an interactive command loop, an HTTP handler, a test) needs:
// Init, Reset, SetGoodEnough, FindMove, ScoreMove, MakeMove and
// PrintBoard.

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
	"io"

	"github.com/rs/zerolog"
)

// DefaultGoodEnough is the search cutoff used by a fresh Engine:
// once a play scoring at least this much is found, FindMove stops
// looking for anything better.
const DefaultGoodEnough = 2000

// Engine is a single game's worth of move-generation state: one
// Dictionary (shared, read-only, and safe to reuse across many
// Engines), one Board, and the goodEnough/firstMove knobs that
// shape a search. It is not safe for concurrent use by multiple
// goroutines; a host serving concurrent games should use one Engine
// per game (see cmd/scrabbleapi).
type Engine struct {
	dict       *Dictionary
	gen        *Generator
	board      *Board
	firstMove  bool
	goodEnough int
	log        zerolog.Logger
}

// NewEngine returns an uninitialized Engine that logs through log.
// Call Init before using it.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{goodEnough: DefaultGoodEnough, log: log}
}

// Init loads a dictionary from r and resets the board to a fresh
// game. It must be called before any other Engine method.
func (e *Engine) Init(r io.Reader) error {
	dict, err := LoadDictionary(r)
	if err != nil {
		return &InitializationError{Cause: err}
	}
	e.dict = dict
	e.gen = NewGenerator(dict)
	e.Reset()
	e.log.Info().Int("edges", len(dict.Edges)).Msg("dictionary loaded")
	return nil
}

// Reset clears the board and marks the next move as the first move
// of a new game. The dictionary and goodEnough setting are
// unaffected.
func (e *Engine) Reset() {
	e.board = NewBoard()
	e.firstMove = true
	e.log.Debug().Msg("board reset")
}

// SetGoodEnough changes the search cutoff used by FindMove.
func (e *Engine) SetGoodEnough(n int) {
	e.goodEnough = n
}

// FindMove searches for the best play the given rack can make
// against the current board, returning a NoMoveError if no legal
// play exists.
func (e *Engine) FindMove(rack string) (Play, error) {
	if err := e.requireInit(); err != nil {
		return Play{}, err
	}
	r, err := NewRack(rack)
	if err != nil {
		return Play{}, err
	}
	play := e.gen.FindPlay(e.board, r, e.firstMove, e.goodEnough)
	if !play.Found() {
		return Play{}, &NoMoveError{}
	}
	e.log.Info().
		Str("word", play.Word.String()).
		Int("score", play.Score).
		Msg("found move")
	return play, nil
}

// ScoreMove validates and scores a proposed play without committing
// it to the board.
func (e *Engine) ScoreMove(x, y int, orientation byte, word string) (int, error) {
	if err := e.requireInit(); err != nil {
		return 0, err
	}
	play, err := e.buildPlay(x, y, orientation, word)
	if err != nil {
		return 0, err
	}
	if err := Valid(e.board, e.dict, play, e.firstMove); err != nil {
		return 0, err
	}
	return score(e.board, play.Word, play.Pos, play.Ori), nil
}

// MakeMove validates a proposed play, scores it, and commits it to
// the board if legal.
func (e *Engine) MakeMove(x, y int, orientation byte, word string) error {
	if err := e.requireInit(); err != nil {
		return err
	}
	play, err := e.buildPlay(x, y, orientation, word)
	if err != nil {
		return err
	}
	if err := Valid(e.board, e.dict, play, e.firstMove); err != nil {
		e.log.Warn().Err(err).Str("word", word).Msg("rejected move")
		return err
	}
	play.Score = score(e.board, play.Word, play.Pos, play.Ori)
	Commit(e.board, e.dict, play)
	e.firstMove = false
	e.log.Info().Str("word", word).Int("score", play.Score).Msg("committed move")
	return nil
}

// PrintBoard renders the current board state.
func (e *Engine) PrintBoard() string {
	if e.board == nil {
		return ""
	}
	return e.board.String()
}

func (e *Engine) requireInit() error {
	if e.dict == nil || e.board == nil {
		return &InitializationError{Cause: fmt.Errorf("engine has not been initialized")}
	}
	return nil
}

// buildPlay parses an (x, y, orientation, word) tuple, as accepted
// by ScoreMove/MakeMove, into a Play. orientation is 'h' or 'v'.
func (e *Engine) buildPlay(x, y int, orientation byte, word string) (Play, error) {
	var o Ori
	switch orientation {
	case 'h', 'H':
		o = LR
	case 'v', 'V':
		o = UD
	default:
		return Play{}, fmt.Errorf("skrafl: invalid orientation %q, want 'h' or 'v'", orientation)
	}
	w, err := ParseWord(word)
	if err != nil {
		return Play{}, err
	}
	return Play{Word: w, Pos: Position{x, y}, Ori: o}, nil
}
