package scoring

import (
	"fmt"
	"strings"
)

// Religion is the declared cultural or religious context of a quote. It is
// carried through to the result and does not change lexicon selection.
type Religion string

const (
	ReligionChristianity Religion = "christianity"
	ReligionIslam        Religion = "islam"
	ReligionJudaism      Religion = "judaism"
	ReligionHinduism     Religion = "hinduism"
	ReligionBuddhism     Religion = "buddhism"
	ReligionSikhism      Religion = "sikhism"
	ReligionJainism      Religion = "jainism"
	ReligionOther        Religion = "other"
)

var religions = []Religion{
	ReligionChristianity,
	ReligionIslam,
	ReligionJudaism,
	ReligionHinduism,
	ReligionBuddhism,
	ReligionSikhism,
	ReligionJainism,
	ReligionOther,
}

// Religions lists the accepted religion values.
func Religions() []Religion {
	return append([]Religion(nil), religions...)
}

// ParseReligion normalizes raw. Empty, "none" and "unspecified" map to ReligionOther.
func ParseReligion(raw string) (Religion, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "none", "unspecified":
		return ReligionOther, nil
	}
	for _, r := range religions {
		if string(r) == v {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown religion %q", ErrInvalidInput, raw)
}
