package fingerprint

import (
	"github.com/firasghr/browserprint/chello"
)

// MatchKind classifies the outcome of Compare.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchSimilar
	MatchExact
)

// MatchResult is the outcome of comparing two specs: Exact, Similar with a
// score in [0,1], or None.
type MatchResult struct {
	Kind  MatchKind
	Score float64
}

// Compare scores similarity between a and b per §4.9's weighted fields:
// cipher list 0.3, extension kind set 0.3, extension order 0.2, curves 0.1,
// signature algorithms 0.1. Exact is returned when every element, including
// order, agrees after GREASE filtering.
func Compare(a, b chello.ClientHelloSpec) MatchResult {
	ac := filterGreaseU16(a.CipherSuites)
	bc := filterGreaseU16(b.CipherSuites)
	ae := filterGreaseU16(a.ExtensionTypeIDsInOrder())
	be := filterGreaseU16(b.ExtensionTypeIDsInOrder())
	acv := filterGreaseU16(a.Curves())
	bcv := filterGreaseU16(b.Curves())
	asig := a.SignatureAlgorithms()
	bsig := b.SignatureAlgorithms()

	if equalOrdered(ac, bc) && equalOrdered(ae, be) && equalOrdered(acv, bcv) && equalOrdered(asig, bsig) {
		return MatchResult{Kind: MatchExact, Score: 1.0}
	}

	score := 0.3*setJaccard(ac, bc) +
		0.3*setJaccard(ae, be) +
		0.2*orderSimilarity(ae, be) +
		0.1*setJaccard(acv, bcv) +
		0.1*setJaccard(asig, bsig)

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	if score == 0 {
		return MatchResult{Kind: MatchNone, Score: 0}
	}
	return MatchResult{Kind: MatchSimilar, Score: score}
}

// NamedSpec pairs a catalog profile name with the spec FindBestMatch scores
// it against.
type NamedSpec struct {
	Name string
	Spec chello.ClientHelloSpec
}

// Match is the winning candidate returned by FindBestMatch.
type Match struct {
	ProfileName string
	Score       float64
}

// FindBestMatch scans candidates linearly; an Exact match dominates any
// Similar match; among Similar matches the highest score wins; ties break
// by lexicographic profile name.
func FindBestMatch(target chello.ClientHelloSpec, candidates []NamedSpec) (Match, bool) {
	var best Match
	bestKind := MatchNone
	found := false

	for _, c := range candidates {
		res := Compare(target, c.Spec)
		if res.Kind == MatchNone {
			continue
		}
		switch {
		case res.Kind == MatchExact && bestKind != MatchExact:
			best = Match{ProfileName: c.Name, Score: res.Score}
			bestKind = MatchExact
			found = true
		case res.Kind == MatchExact && bestKind == MatchExact:
			if c.Name < best.ProfileName {
				best = Match{ProfileName: c.Name, Score: res.Score}
			}
		case bestKind == MatchExact:
			// an Exact candidate already dominates; ignore Similar ones
		case !found || res.Score > best.Score || (res.Score == best.Score && c.Name < best.ProfileName):
			best = Match{ProfileName: c.Name, Score: res.Score}
			bestKind = MatchSimilar
			found = true
		}
	}

	return best, found
}

func equalOrdered(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func setJaccard(a, b []uint16) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	as := toSet(a)
	bs := toSet(b)
	inter := 0
	for v := range as {
		if bs[v] {
			inter++
		}
	}
	union := len(as)
	for v := range bs {
		if !as[v] {
			union++
		}
	}
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

func toSet(vs []uint16) map[uint16]bool {
	m := make(map[uint16]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}
	return m
}

// orderSimilarity scores how close two ordered sequences (restricted to
// their common element set) are to each other, 1.0 for identical order.
func orderSimilarity(a, b []uint16) float64 {
	common := toSet(a)
	bset := toSet(b)
	for v := range common {
		if !bset[v] {
			delete(common, v)
		}
	}
	if len(common) == 0 {
		return 0
	}

	filterTo := func(vs []uint16) []uint16 {
		out := make([]uint16, 0, len(vs))
		for _, v := range vs {
			if common[v] {
				out = append(out, v)
			}
		}
		return out
	}
	af := filterTo(a)
	bf := filterTo(b)

	pos := make(map[uint16]int, len(bf))
	for i, v := range bf {
		pos[v] = i
	}

	matches := 0
	for i, v := range af {
		if p, ok := pos[v]; ok && p == i {
			matches++
		}
	}
	return float64(matches) / float64(len(af))
}
