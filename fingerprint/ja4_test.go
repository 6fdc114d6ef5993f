package fingerprint_test

import (
	"regexp"
	"testing"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/fingerprint"
)

var ja4Grammar = regexp.MustCompile(`^[tq](1[23])[di]\d{2}\d{2}[0-9a-f]{2}_[0-9a-f]{12}_[0-9a-f]{12}$`)

// TestJA4_Chrome133Deterministic covers SPEC_FULL.md §8 scenario 1: ja4 on
// chrome_133 matches the JA4 grammar and is identical across repeated calls.
func TestJA4_Chrome133Deterministic(t *testing.T) {
	profile, err := catalog.Get("chrome_133")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}

	first := fingerprint.JA4(profile.Spec)
	if !ja4Grammar.MatchString(first) {
		t.Fatalf("ja4(chrome_133) = %q, does not match grammar", first)
	}

	for i := 0; i < 100; i++ {
		if got := fingerprint.JA4(profile.Spec); got != first {
			t.Fatalf("JA4 not deterministic on call %d: got %q, want %q", i, got, first)
		}
	}
}

// TestJA4_MatchesGrammarForEveryProfile is the quantified invariant from
// §8: every catalog profile's ja4 string matches the 36/37-char grammar.
func TestJA4_MatchesGrammarForEveryProfile(t *testing.T) {
	for _, p := range catalog.All() {
		got := fingerprint.JA4(p.Spec)
		if !ja4Grammar.MatchString(got) {
			t.Errorf("profile %q: ja4 = %q, does not match grammar", p.Name, got)
		}
	}
}

// TestJA4_SortedInvariantUnderCipherPermutation: the sorted JA4 form must
// not change when the cipher list is permuted (GREASE-filtered set held
// constant); the unsorted JA4_o form must.
func TestJA4_SortedInvariantUnderCipherPermutation(t *testing.T) {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord: 0x0303,
		CipherSuites:     []uint16{0x1301, 0x1302, 0x1303},
		Extensions:       []chello.Extension{{Kind: chello.KindSNI}},
	}
	permuted := chello.ClientHelloSpec{
		TLSVersionRecord: 0x0303,
		CipherSuites:     []uint16{0x1303, 0x1301, 0x1302},
		Extensions:       []chello.Extension{{Kind: chello.KindSNI}},
	}

	if fingerprint.JA4(spec) != fingerprint.JA4(permuted) {
		t.Error("sorted JA4 changed under a cipher-list permutation")
	}
	if fingerprint.JA4O(spec) == fingerprint.JA4O(permuted) {
		t.Error("unsorted JA4_o should differ when cipher order differs")
	}
}
