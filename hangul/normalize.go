package hangul

import "golang.org/x/text/unicode/norm"

// Normalize composes conjoining jamo sequences into precomposed syllables,
// so sources saved in NFD decode the same as NFC ones.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
