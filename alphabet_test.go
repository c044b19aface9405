package skrafl

import "testing"

func TestLetterFromByte(t *testing.T) {
	cases := []struct {
		in      byte
		want    Letter
		wantErr bool
	}{
		{'a', 0, false},
		{'z', 25, false},
		{'?', Blank, false},
		{'_', Blank, false},
		{'A', 0, true},
		{'5', 0, true},
	}
	for _, c := range cases {
		got, err := LetterFromByte(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("LetterFromByte(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("LetterFromByte(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("LetterFromByte(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLetterByteRoundTrip(t *testing.T) {
	for b := byte('a'); b <= 'z'; b++ {
		l, err := LetterFromByte(b)
		if err != nil {
			t.Fatalf("LetterFromByte(%q): %v", b, err)
		}
		if l.Byte() != b {
			t.Errorf("Letter(%q).Byte() = %q, want %q", b, l.Byte(), b)
		}
	}
	if Blank.Byte() != '?' {
		t.Errorf("Blank.Byte() = %q, want '?'", Blank.Byte())
	}
}

func TestBlankHasZeroPoints(t *testing.T) {
	if Blank.Points() != 0 {
		t.Errorf("Blank.Points() = %d, want 0", Blank.Points())
	}
}

func TestLetterSetIsOneHot(t *testing.T) {
	a, _ := LetterFromByte('a')
	z, _ := LetterFromByte('z')
	if letterSet(a)&letterSet(z) != 0 {
		t.Error("letterSet(a) and letterSet(z) overlap")
	}
	if letterSet(a)&AllSet == 0 {
		t.Error("letterSet(a) should be a subset of AllSet")
	}
}
