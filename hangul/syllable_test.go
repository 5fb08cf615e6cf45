package hangul

import (
	"testing"
)

func TestDecompose(t *testing.T) {
	s, ok := Decompose('방')
	if !ok {
		t.Fatal("should decompose")
	}
	if s.Lead != LeadBieup || s.Vowel != VowelA || s.Trail != TrailIeung {
		t.Fatalf("got %+v", s)
	}
	if str := s.Lead.String() + s.Vowel.String() + s.Trail.String(); str != "ㅂㅏㅇ" {
		t.Fatalf("got %q", str)
	}

	s, ok = Decompose('하')
	if !ok {
		t.Fatal("should decompose")
	}
	if s.Lead != LeadHieuh || s.Trail != TrailNone {
		t.Fatalf("got %+v", s)
	}
	if s.Trail.String() != " " {
		t.Fatalf("got %q", s.Trail.String())
	}

	s, ok = Decompose('힣')
	if !ok {
		t.Fatal("should decompose")
	}
	if s.Lead != LeadHieuh || s.Vowel != VowelI || s.Trail != TrailHieuh {
		t.Fatalf("got %+v", s)
	}
}

func TestDecomposeOutsideBlock(t *testing.T) {
	for _, r := range []rune{
		0, ' ', 'a', '\n', 'ㄱ', 'ㅏ', 'ᄀ', syllableBase - 1, syllableLast + 1, '日', '😀',
	} {
		if _, ok := Decompose(r); ok {
			t.Fatalf("%U should not decompose", r)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for r := rune(syllableBase); r <= syllableLast; r++ {
		s, ok := Decompose(r)
		if !ok {
			t.Fatalf("%U should decompose", r)
		}
		if got := Compose(s); got != r {
			t.Fatalf("%U: got %U", r, got)
		}
	}
}

func TestComponents(t *testing.T) {
	if n := (Syllable{Lead: LeadIeung, Vowel: VowelA}).Components(); n != 2 {
		t.Fatalf("got %d", n)
	}
	if n := (Syllable{Lead: LeadIeung, Vowel: VowelA, Trail: TrailRieulGiyeok}).Components(); n != 3 {
		t.Fatalf("got %d", n)
	}
}

func TestNormalize(t *testing.T) {
	// conjoining jamo: ᄒ ᅡ
	got := Normalize("\u1112\u1161")
	if got != "하" {
		t.Fatalf("got %q", got)
	}
	if _, ok := Decompose([]rune(got)[0]); !ok {
		t.Fatal("should decompose")
	}
}
