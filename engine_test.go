package skrafl

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func newTestEngine(t *testing.T, words ...string) *Engine {
	t.Helper()
	d, err := NewDictionaryFromWords(words)
	if err != nil {
		t.Fatalf("NewDictionaryFromWords: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteDictionary(&buf, d); err != nil {
		t.Fatalf("WriteDictionary: %v", err)
	}
	e := NewEngine(zerolog.Nop())
	if err := e.Init(&buf); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return e
}

func TestEngineRequiresInit(t *testing.T) {
	e := NewEngine(zerolog.Nop())
	if _, err := e.FindMove("cat"); err == nil {
		t.Error("expected an error calling FindMove before Init")
	}
}

func TestEngineFindMoveFirstMove(t *testing.T) {
	e := newTestEngine(t, "cat", "at")
	play, err := e.FindMove("cat")
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if got, want := play.Word.String(), "cat"; got != want {
		t.Errorf("word = %q, want %q", got, want)
	}
}

func TestEngineFindMoveNoLegalMove(t *testing.T) {
	e := newTestEngine(t, "dog")
	if _, err := e.FindMove("cat"); err == nil {
		t.Error("expected NoMoveError for a rack with no usable words")
	}
}

func TestEngineMakeMoveThenFindFollowUp(t *testing.T) {
	e := newTestEngine(t, "cat", "cats")

	if err := e.MakeMove(8, 8, 'h', "cat"); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	play, err := e.FindMove("s")
	if err != nil {
		t.Fatalf("FindMove after MakeMove: %v", err)
	}
	if got, want := play.Word.String(), "cats"; got != want {
		t.Errorf("word = %q, want %q", got, want)
	}
}

func TestEngineScoreMoveDoesNotCommit(t *testing.T) {
	e := newTestEngine(t, "cat")
	score, err := e.ScoreMove(8, 8, 'h', "cat")
	if err != nil {
		t.Fatalf("ScoreMove: %v", err)
	}
	if score <= 0 {
		t.Errorf("score = %d, want a positive score", score)
	}
	// Since ScoreMove must not commit, the board should still accept
	// the same first move for real.
	if err := e.MakeMove(8, 8, 'h', "cat"); err != nil {
		t.Errorf("MakeMove after ScoreMove should still succeed: %v", err)
	}
}

func TestEngineMakeMoveRejectsInvalidPlay(t *testing.T) {
	e := newTestEngine(t, "cat")
	if err := e.MakeMove(3, 3, 'h', "cat"); err == nil {
		t.Error("expected an error for a first move that misses the centre square")
	}
}

func TestEngineResetClearsBoardAndFirstMoveFlag(t *testing.T) {
	e := newTestEngine(t, "cat")
	if err := e.MakeMove(8, 8, 'h', "cat"); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	e.Reset()
	// After Reset, the centre-square-first-move rule applies again.
	if err := e.MakeMove(3, 3, 'h', "cat"); err == nil {
		t.Error("expected Reset to require the centre square again")
	}
	if err := e.MakeMove(8, 8, 'h', "cat"); err != nil {
		t.Errorf("MakeMove at centre after Reset should succeed: %v", err)
	}
}

func TestEngineInvalidOrientation(t *testing.T) {
	e := newTestEngine(t, "cat")
	if _, err := e.ScoreMove(8, 8, 'x', "cat"); err == nil {
		t.Error("expected an error for an invalid orientation byte")
	}
}
