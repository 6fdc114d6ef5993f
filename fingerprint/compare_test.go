package fingerprint_test

import (
	"testing"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/fingerprint"
)

func TestCompare_SelfIsExact(t *testing.T) {
	for _, p := range catalog.All() {
		res := fingerprint.Compare(p.Spec, p.Spec)
		if res.Kind != fingerprint.MatchExact {
			t.Errorf("profile %q: Compare(s, s).Kind = %v, want MatchExact", p.Name, res.Kind)
		}
		if res.Score != 1.0 {
			t.Errorf("profile %q: Compare(s, s).Score = %v, want 1.0", p.Name, res.Score)
		}
	}
}

func TestCompare_ScoreBounded(t *testing.T) {
	chrome, _ := catalog.Get("chrome_133")
	firefox, _ := catalog.Get("firefox_120")

	res := fingerprint.Compare(chrome.Spec, firefox.Spec)
	if res.Score < 0 || res.Score > 1 {
		t.Errorf("Compare score = %v, want within [0,1]", res.Score)
	}
}

func TestFindBestMatch_ExactSelfMatch(t *testing.T) {
	chrome, _ := catalog.Get("chrome_133")
	candidates := []fingerprint.NamedSpec{
		{Name: chrome.Name, Spec: chrome.Spec},
	}

	match, ok := fingerprint.FindBestMatch(chrome.Spec, candidates)
	if !ok {
		t.Fatal("FindBestMatch found no match against a singleton candidate list containing the target")
	}
	if match.ProfileName != chrome.Name || match.Score != 1.0 {
		t.Errorf("FindBestMatch = %+v, want {%s 1.0}", match, chrome.Name)
	}
}

func TestFindBestMatch_ExactDominatesSimilar(t *testing.T) {
	chrome, _ := catalog.Get("chrome_133")
	firefox, _ := catalog.Get("firefox_120")

	candidates := []fingerprint.NamedSpec{
		{Name: firefox.Name, Spec: firefox.Spec},
		{Name: chrome.Name, Spec: chrome.Spec},
	}

	match, ok := fingerprint.FindBestMatch(chrome.Spec, candidates)
	if !ok || match.ProfileName != chrome.Name {
		t.Errorf("FindBestMatch = %+v, ok=%v, want exact match on %s", match, ok, chrome.Name)
	}
}
