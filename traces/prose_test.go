package traces

import (
	"testing"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/hangul"
)

func TestPushProse(t *testing.T) {
	for trail, expected := range map[hangul.Trail]string{
		hangul.TrailNone:        "0을 '아'에 추가해요.",
		hangul.TrailGiyeok:      "2를 '아'에 추가해요.",
		hangul.TrailDigeut:      "3을 '아'에 추가해요.",
		hangul.TrailSiot:        "3을 '아'에 추가해요.",
		hangul.TrailMieum:       "4를 '아'에 추가해요.",
		hangul.TrailRieul:       "5를 '아'에 추가해요.",
		hangul.TrailBieupSiot:   "6을 '아'에 추가해요.",
		hangul.TrailRieulGiyeok: "7을 '아'에 추가해요.",
		hangul.TrailRieulHieuh:  "8을 '아'에 추가해요.",
		hangul.TrailRieulBieup:  "9를 '아'에 추가해요.",
	} {
		s := hangul.Syllable{
			Lead:  hangul.LeadBieup,
			Vowel: hangul.VowelA,
			Trail: trail,
		}
		got, _ := describe(s, defaultStorage, false)
		if got != expected {
			t.Fatalf("%s: got %q", s, got)
		}
	}
}

func TestStrokesCoverPushTrails(t *testing.T) {
	for trail := hangul.TrailNone; trail <= hangul.TrailHieuh; trail++ {
		if trail == hangul.TrailIeung || trail == hangul.TrailHieuh {
			continue
		}
		if _, ok := strokes[trail]; !ok {
			t.Fatalf("no stroke count for %s", trail)
		}
	}
}

func TestDescribe(t *testing.T) {
	for r, expected := range map[rune]string{
		'다': "'아'에 있는 두 수의 합을 구해요.",
		'타': "'아'에 있는 두 수의 차를 구해요.",
		'따': "'아'에 있는 두 수의 곱을 구해요.",
		'나': "'아'에 있는 두 수를 나눈 값을 구해요.",
		'라': "'아'에 있는 두 수를 나누었을때의 나머지를 구해요.",
		'방': "사용자로 부터 숫자를 입력받아서 '아'에 저장해요.",
		'밯': "사용자로 부터 글자를 입력받아서 아스키 코드로 '아'에 저장해요.",
		'빠': "'아'에 가장 마지막으로 넣은 숫자를 한번 더 넣어요.",
		'파': "'아'에 들어있는 첫번째 숫자와 가장 마지막 숫자를 더해요.",
		'자': "'아' 에서 두개의 수를 꺼내서, 나중에 나온 숫자가 처음 숫자보다 크면 1을, 아니면 0을 저장해요.",
		'망': "'아'에서 숫자를 꺼내 출력해요.",
		'맣': "'아'에서 숫자를 꺼내 아스키 코드로 읽어서 출력해요.",
		'마': "'아'에서 숫자를 꺼내 버려요.",
		'막': "'아'에서 숫자를 꺼내 버려요.",
		'살': "사용할 저장공간을 알으로 변경해요.",
		'싹': "'아'에 있는 값을 악으로 이동해요.",
		'가': nothingMessage,
		'까': nothingMessage,
		'아': nothingMessage,
		'짜': nothingMessage,
		'카': nothingMessage,
	} {
		s, ok := hangul.Decompose(r)
		if !ok {
			t.Fatalf("%c should decompose", r)
		}
		got, _ := describe(s, defaultStorage, false)
		if got != expected {
			t.Fatalf("%c: got %q", r, got)
		}
	}
}

func TestDescribeStorage(t *testing.T) {
	s, _ := hangul.Decompose('상')
	_, next := describe(s, defaultStorage, false)
	if next.Name != "앙" || next.Kind != StorageQueue {
		t.Fatalf("got %+v", next)
	}

	// moving a value keeps the current storage
	s, _ = hangul.Decompose('쌍')
	_, next = describe(s, defaultStorage, false)
	if next != defaultStorage {
		t.Fatalf("got %+v", next)
	}
}

func TestMovement(t *testing.T) {
	for vowel, expected := range map[hangul.Vowel]movement{
		hangul.VowelA:   {dir: dirRight, steps: 1},
		hangul.VowelYa:  {dir: dirRight, steps: 2},
		hangul.VowelEo:  {dir: dirLeft, steps: 1},
		hangul.VowelYeo: {dir: dirLeft, steps: 2},
		hangul.VowelO:   {dir: dirUp, steps: 1},
		hangul.VowelYo:  {dir: dirUp, steps: 2},
		hangul.VowelU:   {dir: dirDown, steps: 1},
		hangul.VowelYu:  {dir: dirDown, steps: 2},
		hangul.VowelI:   {},
		hangul.VowelEu:  {},
		hangul.VowelUi:  {},
		hangul.VowelAe:  {},
	} {
		if got := movementOf(vowel); got != expected {
			t.Fatalf("%s: got %+v", vowel, got)
		}
	}

	move := movementOf(hangul.VowelYo)
	if pos := move.apply(grids.Pos{X: 3, Y: 3}); pos != (grids.Pos{X: 3, Y: 1}) {
		t.Fatalf("got %+v", pos)
	}
	if pos := move.inverted().apply(grids.Pos{X: 3, Y: 3}); pos != (grids.Pos{X: 3, Y: 5}) {
		t.Fatalf("got %+v", pos)
	}
	if s := move.prose(false); s != "커서를 위로 2번 이동해요." {
		t.Fatalf("got %q", s)
	}
	if s := movementOf(hangul.VowelU).prose(true); s != "커서를 아래로 이동해서, " {
		t.Fatalf("got %q", s)
	}
	if s := movementOf(hangul.VowelI).prose(false); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestDescribeWalkerLeads(t *testing.T) {
	for _, r := range []rune{'하', '차'} {
		s, _ := hangul.Decompose(r)
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("%c should panic", r)
				}
			}()
			describe(s, defaultStorage, false)
		}()
	}
}
