package particles

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/auhui/hangul"
)

var ErrNotHangul = errors.New("not a hangul word")

// Object returns the object marker for word, chosen by the trail of its last syllable.
func Object(word string) (string, error) {
	r, _ := utf8.DecodeLastRuneInString(word)
	s, ok := hangul.Decompose(r)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotHangul, word)
	}
	if s.Trail == hangul.TrailNone {
		return "를", nil
	}
	return "을", nil
}

// Direction returns the directional marker for word, chosen by the number
// of components of its first syllable.
func Direction(word string) (string, error) {
	r, _ := utf8.DecodeRuneInString(word)
	s, ok := hangul.Decompose(r)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotHangul, word)
	}
	if s.Components() == 2 {
		return "로", nil
	}
	return "으로", nil
}

func MustObject(word string) string {
	p, err := Object(word)
	if err != nil {
		panic(err)
	}
	return p
}

func MustDirection(word string) string {
	p, err := Direction(word)
	if err != nil {
		panic(err)
	}
	return p
}
