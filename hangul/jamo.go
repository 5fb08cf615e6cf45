package hangul

// Lead is the initial consonant of a syllable, in Unicode composition order.
type Lead uint8

const (
	LeadGiyeok Lead = iota
	LeadSsangGiyeok
	LeadNieun
	LeadDigeut
	LeadSsangDigeut
	LeadRieul
	LeadMieum
	LeadBieup
	LeadSsangBieup
	LeadSiot
	LeadSsangSiot
	LeadIeung
	LeadJieut
	LeadSsangJieut
	LeadChieut
	LeadKhieukh
	LeadThieuth
	LeadPhieuph
	LeadHieuh

	numLeads
)

var leadJamo = [numLeads]string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

func (l Lead) String() string {
	if l >= numLeads {
		return "?"
	}
	return leadJamo[l]
}

// Vowel is the medial vowel of a syllable.
type Vowel uint8

const (
	VowelA Vowel = iota
	VowelAe
	VowelYa
	VowelYae
	VowelEo
	VowelE
	VowelYeo
	VowelYe
	VowelO
	VowelWa
	VowelWae
	VowelOe
	VowelYo
	VowelU
	VowelWo
	VowelWe
	VowelWi
	VowelYu
	VowelEu
	VowelUi
	VowelI

	numVowels
)

var vowelJamo = [numVowels]string{
	"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ", "ㅙ",
	"ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
}

func (v Vowel) String() string {
	if v >= numVowels {
		return "?"
	}
	return vowelJamo[v]
}

// Trail is the final consonant of a syllable. TrailNone marks an open syllable.
type Trail uint8

const (
	TrailNone Trail = iota
	TrailGiyeok
	TrailSsangGiyeok
	TrailGiyeokSiot
	TrailNieun
	TrailNieunJieut
	TrailNieunHieuh
	TrailDigeut
	TrailRieul
	TrailRieulGiyeok
	TrailRieulMieum
	TrailRieulBieup
	TrailRieulSiot
	TrailRieulThieuth
	TrailRieulPhieuph
	TrailRieulHieuh
	TrailMieum
	TrailBieup
	TrailBieupSiot
	TrailSiot
	TrailSsangSiot
	TrailIeung
	TrailJieut
	TrailChieut
	TrailKhieukh
	TrailThieuth
	TrailPhieuph
	TrailHieuh

	numTrails
)

var trailJamo = [numTrails]string{
	" ", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
	"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// String returns the compatibility jamo, or a single space for TrailNone.
func (t Trail) String() string {
	if t >= numTrails {
		return "?"
	}
	return trailJamo[t]
}
