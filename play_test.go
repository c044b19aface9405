package skrafl

import "testing"

func newTestDict(t *testing.T) *Dictionary {
	t.Helper()
	return mustWords(t, "cat", "cats", "car", "at", "tar", "art")
}

func TestValidFirstMoveMustCoverCentre(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()
	w, _ := ParseWord("cat")
	// Placed well away from the centre square.
	play := Play{Word: w, Pos: Position{3, 3}, Ori: LR}
	if err := Valid(b, dict, play, true); err == nil {
		t.Error("expected an error for a first move that misses the centre square")
	}
}

func TestValidFirstMoveThroughCentre(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()
	w, _ := ParseWord("cat")
	// "cat" ending at the centre square, read leftward: c(6) a(7) t(8).
	play := Play{Word: w, Pos: Position{8, 8}, Ori: LR}
	if err := Valid(b, dict, play, true); err != nil {
		t.Errorf("expected a legal first move, got %v", err)
	}
}

func TestValidRejectsNonWord(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()
	w, _ := ParseWord("xyz")
	play := Play{Word: w, Pos: Position{8, 8}, Ori: LR}
	if err := Valid(b, dict, play, true); err == nil {
		t.Error("expected an error for a word not in the dictionary")
	}
}

func TestValidSubsequentMoveMustAttachToAnAnchor(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()
	w, _ := ParseWord("cat")
	play := Play{Word: w, Pos: Position{5, 5}, Ori: LR}
	if err := Valid(b, dict, play, false); err == nil {
		t.Error("expected an error for a non-first move with no anchor")
	}
}

func TestCommitThenValidCrossWord(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()

	first, _ := ParseWord("cat")
	play := Play{Word: first, Pos: Position{8, 8}, Ori: LR}
	if err := Valid(b, dict, play, true); err != nil {
		t.Fatalf("first move should be legal: %v", err)
	}
	Commit(b, dict, play)

	if b.NumTiles != 3 {
		t.Errorf("NumTiles = %d, want 3", b.NumTiles)
	}
	if !b.Sq(Position{6, 8}).HasLetter {
		t.Error("expected a resident tile at the first letter of \"cat\"")
	}

	// "at" crossing down through the 'a' of "cat" (at x=7,y=8) should
	// now be a legal attached play.
	second, _ := ParseWord("at")
	play2 := Play{Word: second, Pos: Position{7, 9}, Ori: UD}
	if err := Valid(b, dict, play2, false); err != nil {
		t.Errorf("expected the cross word \"at\" to be legal, got %v", err)
	}
}

func TestCommitRejectsAbuttingWord(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()

	first, _ := ParseWord("cat")
	play := Play{Word: first, Pos: Position{8, 8}, Ori: LR}
	Commit(b, dict, play)

	// Placing directly after the existing word, in the same
	// orientation, should abut it illegally.
	w, _ := ParseWord("art")
	play2 := Play{Word: w, Pos: Position{11, 8}, Ori: LR}
	if err := Valid(b, dict, play2, false); err == nil {
		t.Error("expected an error for a word abutting an existing word")
	}
}

func TestValidRejectsWrongLetterOverResidentTile(t *testing.T) {
	dict := newTestDict(t)
	b := NewBoard()

	first, _ := ParseWord("cat")
	play := Play{Word: first, Pos: Position{8, 8}, Ori: LR}
	Commit(b, dict, play)

	// "car" played down column 8, ending at (8,9), would need its
	// 'a' at (8,8), which already holds the 't' of "cat".
	w, _ := ParseWord("car")
	play2 := Play{Word: w, Pos: Position{8, 9}, Ori: UD}
	if err := Valid(b, dict, play2, false); err == nil {
		t.Error("expected an error for a play conflicting with a resident tile")
	}
}
