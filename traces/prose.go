package traces

import (
	"fmt"
	"strconv"

	"github.com/reusee/auhui/hangul"
	"github.com/reusee/auhui/particles"
)

const (
	haltMessage      = "프로그램을 종료해요."
	nothingMessage   = "아무것도 하지 않아요."
	repeatedMessage  = "[!] 코드가 반복되었어요."
	tooDeepMessage   = "[!] 분기가 너무 깊어서 더 이상 따라가지 않아요."
	truncatedMessage = "[!] 설명이 너무 길어서 여기서 멈춰요."
	closeMessage     = "}"
)

// strokes maps the trail of a push instruction to the pushed digit.
var strokes = map[hangul.Trail]int{
	hangul.TrailNone:         0,
	hangul.TrailGiyeok:       2,
	hangul.TrailNieun:        2,
	hangul.TrailDigeut:       3,
	hangul.TrailSiot:         3,
	hangul.TrailJieut:        3,
	hangul.TrailKhieukh:      3,
	hangul.TrailSsangGiyeok:  4,
	hangul.TrailGiyeokSiot:   4,
	hangul.TrailMieum:        4,
	hangul.TrailBieup:        4,
	hangul.TrailSsangSiot:    4,
	hangul.TrailChieut:       4,
	hangul.TrailThieuth:      4,
	hangul.TrailPhieuph:      4,
	hangul.TrailRieul:        5,
	hangul.TrailNieunJieut:   5,
	hangul.TrailNieunHieuh:   5,
	hangul.TrailBieupSiot:    6,
	hangul.TrailRieulGiyeok:  7,
	hangul.TrailRieulSiot:    7,
	hangul.TrailRieulHieuh:   8,
	hangul.TrailRieulMieum:   9,
	hangul.TrailRieulBieup:   9,
	hangul.TrailRieulThieuth: 9,
	hangul.TrailRieulPhieuph: 9,
}

var digitWords = [10]string{
	"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구",
}

func pushProse(trail hangul.Trail, storage string) string {
	n := strokes[trail]
	return strconv.Itoa(n) + particles.MustObject(digitWords[n]) + " '" + storage + "'에 추가해요."
}

func quoted(storage string) string {
	return "'" + storage + "'"
}

func thenProse(storage string, cursor string) string {
	return quoted(storage) + " 에서 가져온 수가 0이라면, " + cursor + "아래의 구문을 실행해요. {"
}

func elseProse(cursor string) string {
	return "그렇지 않다면, " + cursor + "아래의 구문을 실행해요. {"
}

// describe renders a non-branching, non-halting instruction.
// It returns the storage that is current after the instruction.
func describe(s hangul.Syllable, current Storage, withKind bool) (string, Storage) {
	name := current.display(withKind)
	q := quoted(name)

	switch s.Lead {

	case hangul.LeadDigeut:
		return q + "에 있는 두 수의 합을 구해요.", current
	case hangul.LeadThieuth:
		return q + "에 있는 두 수의 차를 구해요.", current
	case hangul.LeadSsangDigeut:
		return q + "에 있는 두 수의 곱을 구해요.", current
	case hangul.LeadNieun:
		return q + "에 있는 두 수를 나눈 값을 구해요.", current
	case hangul.LeadRieul:
		return q + "에 있는 두 수를 나누었을때의 나머지를 구해요.", current

	case hangul.LeadBieup:
		switch s.Trail {
		case hangul.TrailIeung:
			return "사용자로 부터 숫자를 입력받아서 " + q + "에 저장해요.", current
		case hangul.TrailHieuh:
			return "사용자로 부터 글자를 입력받아서 아스키 코드로 " + q + "에 저장해요.", current
		}
		return pushProse(s.Trail, name), current

	case hangul.LeadSsangBieup:
		return q + "에 가장 마지막으로 넣은 숫자를 한번 더 넣어요.", current

	case hangul.LeadPhieuph:
		return q + "에 들어있는 첫번째 숫자와 가장 마지막 숫자를 더해요.", current

	case hangul.LeadJieut:
		return q + " 에서 두개의 수를 꺼내서, 나중에 나온 숫자가 처음 숫자보다 크면 1을, 아니면 0을 저장해요.", current

	case hangul.LeadMieum:
		switch s.Trail {
		case hangul.TrailIeung:
			return q + "에서 숫자를 꺼내 출력해요.", current
		case hangul.TrailHieuh:
			return q + "에서 숫자를 꺼내 아스키 코드로 읽어서 출력해요.", current
		}
		return q + "에서 숫자를 꺼내 버려요.", current

	case hangul.LeadSiot:
		next := storageFor(s.Trail)
		kind := ""
		if withKind {
			kind = "(" + next.Kind.String() + ")"
		}
		return "사용할 저장공간을 " + next.Name + kind + particles.MustDirection(next.Name) + " 변경해요.", next

	case hangul.LeadSsangSiot:
		target := storageFor(s.Trail)
		kind := ""
		if withKind {
			kind = target.Kind.String() + " "
		}
		return q + "에 있는 값을 " + kind + target.Name + particles.MustDirection(target.Name) + " 이동해요.", current

	case hangul.LeadHieuh, hangul.LeadChieut:
		// halts and branches are handled by the walker
		panic(fmt.Errorf("describe called on %s", s))

	case hangul.LeadGiyeok, hangul.LeadSsangGiyeok, hangul.LeadIeung,
		hangul.LeadSsangJieut, hangul.LeadKhieukh:
		return nothingMessage, current

	}

	return nothingMessage, current
}
