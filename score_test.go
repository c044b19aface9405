package skrafl

import "testing"

func TestSimplescore(t *testing.T) {
	w, _ := ParseWord("cat")
	// c=3, a=1, t=1
	if got, want := simplescore(w), 3+1+1; got != want {
		t.Errorf("simplescore(cat) = %d, want %d", got, want)
	}
}

func TestSimplescoreIgnoresBlanks(t *testing.T) {
	w, _ := ParseWord("c_at")
	if got, want := simplescore(w), 0+1+1; got != want {
		t.Errorf("simplescore(c_at) = %d, want %d", got, want)
	}
}

func TestScorePlainWordNoSpecials(t *testing.T) {
	b := &Board{}
	w, _ := ParseWord("cat")
	got := score(b, w, Position{5, 5}, LR)
	want := 3 + 1 + 1 // c + a + t, no premiums
	if got != want {
		t.Errorf("score(cat) = %d, want %d", got, want)
	}
}

func TestScoreDoubleAndTripleLetter(t *testing.T) {
	b := &Board{}
	b.Sq(Position{3, 5}).Special = DoubleLetter // 'c'
	b.Sq(Position{5, 5}).Special = TripleLetter // 't'
	w, _ := ParseWord("cat")
	got := score(b, w, Position{5, 5}, LR)
	want := 3*2 + 1 + 1*3
	if got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestScoreWordMultipliersCompound(t *testing.T) {
	b := &Board{}
	b.Sq(Position{3, 5}).Special = DoubleWord
	b.Sq(Position{5, 5}).Special = DoubleWord
	w, _ := ParseWord("cat")
	got := score(b, w, Position{5, 5}, LR)
	want := (3 + 1 + 1) * 4 // two double-word squares multiply independently, as in the original
	if got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestScoreFrozenResidentTileIgnoresSpecials(t *testing.T) {
	b := &Board{}
	// Position {3,5} is where 'c' of "cat" lands (see the LR walk in
	// score()); give it a resident tile worth a fixed, frozen score
	// and a premium that must be ignored since the tile predates
	// this play.
	resident := b.Sq(Position{3, 5})
	resident.HasLetter = true
	a, _ := LetterFromByte('a')
	resident.Letter = a
	resident.Score = a.Points()
	resident.Special = TripleWord

	w, _ := ParseWord("cat")
	got := score(b, w, Position{5, 5}, LR)
	tLetter, _ := LetterFromByte('t')
	aLetter, _ := LetterFromByte('a')
	want := tLetter.Points() + aLetter.Points() + resident.Score
	if got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestScoreBingoBonus(t *testing.T) {
	b := &Board{}
	w, _ := ParseWord("abcdefg")
	got := score(b, w, Position{7, 5}, LR)
	want := 0
	letters := "abcdefg"
	for i := 0; i < len(letters); i++ {
		l, _ := LetterFromByte(letters[i])
		want += l.Points()
	}
	want += Bonus
	if got != want {
		t.Errorf("score(abcdefg) = %d, want %d (with bingo bonus)", got, want)
	}
}

func TestScorePanicsOnImpossibleLetterCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected score to panic on an 8-letter new word")
		}
	}()
	b := &Board{}
	w, _ := ParseWord("abcdefgh")
	score(b, w, Position{8, 5}, LR)
}

func TestScoreCrossWordSideContribution(t *testing.T) {
	b := &Board{}
	sq := b.Sq(Position{5, 5})
	sq.Side[Ortho(LR)] = 5 // a pre-existing vertical cross word worth 5
	w, _ := ParseWord("cat")
	got := score(b, w, Position{5, 5}, LR)
	c, _ := LetterFromByte('t')
	want := (3 + 1 + 1) + (5 + c.Points())
	if got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}
