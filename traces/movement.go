package traces

import (
	"strconv"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/hangul"
)

type direction uint8

const (
	dirNone direction = iota
	dirRight
	dirLeft
	dirUp
	dirDown
)

func (d direction) inverted() direction {
	switch d {
	case dirRight:
		return dirLeft
	case dirLeft:
		return dirRight
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	}
	return d
}

func (d direction) word() string {
	switch d {
	case dirRight:
		return "오른쪽으로"
	case dirLeft:
		return "왼쪽으로"
	case dirUp:
		return "위로"
	case dirDown:
		return "아래로"
	}
	return ""
}

type movement struct {
	dir   direction
	steps int
}

func movementOf(v hangul.Vowel) movement {
	switch v {
	case hangul.VowelA:
		return movement{dirRight, 1}
	case hangul.VowelEo:
		return movement{dirLeft, 1}
	case hangul.VowelO:
		return movement{dirUp, 1}
	case hangul.VowelU:
		return movement{dirDown, 1}
	case hangul.VowelYa:
		return movement{dirRight, 2}
	case hangul.VowelYeo:
		return movement{dirLeft, 2}
	case hangul.VowelYo:
		return movement{dirUp, 2}
	case hangul.VowelYu:
		return movement{dirDown, 2}
	case hangul.VowelAe, hangul.VowelYae, hangul.VowelE, hangul.VowelYe,
		hangul.VowelWa, hangul.VowelWae, hangul.VowelOe, hangul.VowelWo,
		hangul.VowelWe, hangul.VowelWi, hangul.VowelEu, hangul.VowelUi,
		hangul.VowelI:
		return movement{}
	}
	return movement{}
}

func (m movement) inverted() movement {
	m.dir = m.dir.inverted()
	return m
}

func (m movement) moves() bool {
	return m.dir != dirNone && m.steps > 0
}

func (m movement) apply(pos grids.Pos) grids.Pos {
	switch m.dir {
	case dirRight:
		return pos.Add(m.steps, 0)
	case dirLeft:
		return pos.Add(-m.steps, 0)
	case dirUp:
		return pos.Add(0, -m.steps)
	case dirDown:
		return pos.Add(0, m.steps)
	}
	return pos
}

// prose describes the movement; continued selects the clause form used inside branch intros.
func (m movement) prose(continued bool) string {
	if !m.moves() {
		return ""
	}
	ender := "이동해요."
	if continued {
		ender = "이동해서, "
	}
	times := ""
	if m.steps > 1 {
		times = strconv.Itoa(m.steps) + "번 "
	}
	return "커서를 " + m.dir.word() + " " + times + ender
}
