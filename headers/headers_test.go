package headers_test

import (
	"strings"
	"testing"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
)

// TestRender_SafariIOSOrder covers SPEC_FULL.md §8 scenario 4: the
// safari_ios_18_0 template renders in the order
// Host, Accept, Accept-Language, Accept-Encoding, Connection, User-Agent.
func TestRender_SafariIOSOrder(t *testing.T) {
	p, err := catalog.Get("safari_ios_18_0")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}

	entries := headers.Render(p, headers.Platform{OS: "iOS", Mobile: true, Locale: "en-US"}, "example.test")
	want := []string{"Host", "Accept", "Accept-Language", "Accept-Encoding", "Connection", "User-Agent"}
	if len(entries) != len(want) {
		t.Fatalf("got %d header entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
	if entries[0].Value != "example.test" {
		t.Errorf("Host value = %q, want example.test", entries[0].Value)
	}
}

func TestRender_SubstitutesUserAgentPlaceholder(t *testing.T) {
	p, err := catalog.Get("chrome_133")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}

	entries := headers.Render(p, headers.DefaultPlatform(), "example.test")
	for _, e := range entries {
		if strings.Contains(e.Value, "{user_agent}") || strings.Contains(e.Value, "{host}") {
			t.Errorf("entry %q still carries an unsubstituted placeholder: %q", e.Name, e.Value)
		}
	}
}

func TestRandomLocale_AlwaysProducesWeightedTag(t *testing.T) {
	for i := 0; i < 50; i++ {
		p, _ := catalog.Get("chrome_133")
		entries := headers.Render(p, headers.Platform{OS: "Windows"}, "example.test")
		found := false
		for _, e := range entries {
			if e.Name == "Accept-Language" {
				found = true
				if e.Value == "" {
					t.Error("Accept-Language rendered empty")
				}
			}
		}
		if !found {
			t.Skip("profile has no Accept-Language template entry")
		}
	}
}
