package skrafl

import "testing"

func TestFindPlayFirstMovePicksHighestScoringWord(t *testing.T) {
	dict := mustWords(t, "cat", "at")
	gen := NewGenerator(dict)
	rack, _ := NewRack("cat")

	play := gen.FindPlay(NewBoard(), rack, true, 1000)
	if !play.Found() {
		t.Fatal("expected a first move to be found")
	}
	if got, want := play.Word.String(), "cat"; got != want {
		t.Errorf("first move word = %q, want %q (scores higher than \"at\")", got, want)
	}
	if play.Pos != Centre || play.Ori != LR {
		t.Errorf("first move should be placed at centre, horizontal; got pos=%v ori=%v", play.Pos, play.Ori)
	}
}

func TestFindPlayFirstMoveNoUsableWord(t *testing.T) {
	dict := mustWords(t, "dog")
	gen := NewGenerator(dict)
	rack, _ := NewRack("cat")

	play := gen.FindPlay(NewBoard(), rack, true, 1000)
	if play.Found() {
		t.Errorf("expected no move to be found, got %v", play)
	}
}

func TestFindPlayExtendsExistingWord(t *testing.T) {
	dict := mustWords(t, "cat", "cats")
	gen := NewGenerator(dict)
	b := NewBoard()

	first, _ := ParseWord("cat")
	firstPlay := Play{Word: first, Pos: Centre, Ori: LR}
	if err := Valid(b, dict, firstPlay, true); err != nil {
		t.Fatalf("setting up the board: %v", err)
	}
	Commit(b, dict, firstPlay)

	rack, _ := NewRack("s")
	play := gen.FindPlay(b, rack, false, 1000)
	if !play.Found() {
		t.Fatal("expected to find a move extending \"cat\" to \"cats\"")
	}
	if got, want := play.Word.String(), "cats"; got != want {
		t.Errorf("word = %q, want %q", got, want)
	}
	if got, want := play.Score, 6; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestFindPlayNoLegalMoveReturnsUnfoundPlay(t *testing.T) {
	dict := mustWords(t, "cat")
	gen := NewGenerator(dict)
	b := NewBoard()

	first, _ := ParseWord("cat")
	firstPlay := Play{Word: first, Pos: Centre, Ori: LR}
	Commit(b, dict, firstPlay)

	rack, _ := NewRack("z")
	play := gen.FindPlay(b, rack, false, 1000)
	if play.Found() {
		t.Errorf("expected no legal move for an unusable 'z' tile, got %v", play)
	}
}

func TestAnaDoesNotSubstituteBlanksInFirstMove(t *testing.T) {
	// "at" requires a literal 'a' and 't'; a rack with only a blank
	// and a 't' should not be able to complete it, mirroring the
	// original program's first-move search.
	dict := mustWords(t, "at")
	gen := NewGenerator(dict)
	rack, _ := NewRack("?t")

	play := gen.FindPlay(NewBoard(), rack, true, 1000)
	if play.Found() {
		t.Errorf("expected the first-move search not to use a blank for 'a', got %v", play)
	}
}
