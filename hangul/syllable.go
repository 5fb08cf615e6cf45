package hangul

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3

	trailsPerVowel = int(numTrails)
	trailsPerLead  = int(numVowels) * trailsPerVowel
)

type Syllable struct {
	Lead  Lead
	Vowel Vowel
	Trail Trail
}

func IsSyllable(r rune) bool {
	return syllableBase <= r && r <= syllableLast
}

// Decompose splits a precomposed syllable into its components.
// It reports false for any rune outside the precomposed syllable block.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	offset := int(r - syllableBase)
	return Syllable{
		Lead:  Lead(offset / trailsPerLead),
		Vowel: Vowel(offset / trailsPerVowel % int(numVowels)),
		Trail: Trail(offset % trailsPerVowel),
	}, true
}

func Compose(s Syllable) rune {
	return syllableBase + rune(int(s.Lead)*trailsPerLead+int(s.Vowel)*trailsPerVowel+int(s.Trail))
}

func (s Syllable) String() string {
	return string(Compose(s))
}

// Components counts the phonetic components: 2 for an open syllable, 3 otherwise.
func (s Syllable) Components() int {
	if s.Trail == TrailNone {
		return 2
	}
	return 3
}
