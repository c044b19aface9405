package skrafl

import "testing"

func TestNewRack(t *testing.T) {
	r, err := NewRack("quiz?e")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	if r.N != 6 {
		t.Errorf("N = %d, want 6", r.N)
	}
	q, _ := LetterFromByte('q')
	if !r.Has(q) {
		t.Error("rack should have 'q'")
	}
	if !r.Has(Blank) {
		t.Error("rack should have a blank")
	}
}

func TestNewRackInvalidLetter(t *testing.T) {
	if _, err := NewRack("qu1z"); err == nil {
		t.Error("expected an error for a digit in the rack string")
	}
}

func TestRackCloneIsIndependent(t *testing.T) {
	r, _ := NewRack("cat")
	clone := r.Clone()
	var w Word
	c, _ := LetterFromByte('c')
	clone.place(&w, c, false)
	if clone.N == r.N {
		t.Error("placing a tile on the clone should not affect the original rack's count")
	}
}

func TestRackPlaceUnplaceRoundTrip(t *testing.T) {
	r, _ := NewRack("cat")
	before := *r
	var w Word
	c, _ := LetterFromByte('c')
	r.place(&w, c, false)
	r.unplace(&w, c, false)
	if *r != before {
		t.Errorf("place then unplace should restore the rack, got %+v want %+v", *r, before)
	}
	if len(w.Letters) != 0 {
		t.Errorf("place then unplace should leave the word empty, got %v", w.Letters)
	}
}

func TestRackString(t *testing.T) {
	r, _ := NewRack("dcba?")
	if got, want := r.String(), "abcd?"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
