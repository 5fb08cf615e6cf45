package traces

import (
	"github.com/reusee/auhui/hangul"
)

type StorageKind uint8

const (
	StorageStack StorageKind = iota
	StorageQueue
)

func (k StorageKind) String() string {
	if k == StorageQueue {
		return "큐"
	}
	return "스택"
}

type Storage struct {
	Name string
	Kind StorageKind
}

var defaultStorage = storageFor(hangul.TrailNone)

// storageFor names the storage selected by a trail: 아 plus the trail.
func storageFor(trail hangul.Trail) Storage {
	kind := StorageStack
	if trail == hangul.TrailIeung {
		kind = StorageQueue
	}
	return Storage{
		Name: hangul.Syllable{
			Lead:  hangul.LeadIeung,
			Vowel: hangul.VowelA,
			Trail: trail,
		}.String(),
		Kind: kind,
	}
}

func (s Storage) display(withKind bool) string {
	if !withKind {
		return s.Name
	}
	return s.Name + "(" + s.Kind.String() + ")"
}
