package catalog_test

import (
	"testing"

	"github.com/firasghr/browserprint/catalog"
)

func TestGet_EveryRegisteredProfileRoundTrips(t *testing.T) {
	for _, p := range catalog.All() {
		got, err := catalog.Get(p.Name)
		if err != nil {
			t.Fatalf("Get(%q): %v", p.Name, err)
		}
		if got.Name != p.Name {
			t.Errorf("Get(%q).Name = %q", p.Name, got.Name)
		}
	}
}

func TestGet_UnknownNameReturnsNotFound(t *testing.T) {
	if _, err := catalog.Get("does_not_exist_9000"); err == nil {
		t.Fatal("expected a NotFoundError for an unregistered profile name")
	}
}

func TestRandom_AlwaysReturnsRegisteredProfile(t *testing.T) {
	registered := make(map[string]bool)
	for _, p := range catalog.All() {
		registered[p.Name] = true
	}

	for i := 0; i < 50; i++ {
		p := catalog.Random()
		if !registered[p.Name] {
			t.Fatalf("Random() returned unregistered profile %q", p.Name)
		}
	}
}

func TestRandomByFamily_RespectsFamily(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := catalog.RandomByFamily(catalog.FamilyFirefox)
		if err != nil {
			t.Fatalf("RandomByFamily(FamilyFirefox): %v", err)
		}
		if p.Family != catalog.FamilyFirefox {
			t.Errorf("RandomByFamily(FamilyFirefox) returned family %v", p.Family)
		}
	}
}

func TestAll_ContainsRequiredScenarioProfiles(t *testing.T) {
	want := []string{"chrome_133", "firefox_120", "safari_ios_18_0"}
	for _, name := range want {
		if _, err := catalog.Get(name); err != nil {
			t.Errorf("required profile %q missing from catalog: %v", name, err)
		}
	}
}

func TestAll_SizeNearSixtySix(t *testing.T) {
	n := len(catalog.All())
	if n < 60 || n > 80 {
		t.Errorf("catalog has %d entries, want roughly 66 (spec.md §6)", n)
	}
}
