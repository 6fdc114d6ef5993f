package client

import (
	"net/http"
	"testing"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
)

func TestOrderedHeader_AddPreservesOrderAndCasing(t *testing.T) {
	h := &OrderedHeader{}
	h.Add("sec-ch-ua-mobile", "?0")
	h.Add("User-Agent", "test-agent")
	h.Add("Accept", "*/*")

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	want := []string{"sec-ch-ua-mobile", "User-Agent", "Accept"}
	for i, e := range h.entries {
		if e.key != want[i] {
			t.Errorf("entries[%d].key = %q, want %q", i, e.key, want[i])
		}
	}
}

func TestOrderedHeader_SetReplacesFirstAndDropsDuplicates(t *testing.T) {
	h := &OrderedHeader{}
	h.Add("Accept-Language", "en-US")
	h.Add("accept-language", "fr-FR")
	h.Set("ACCEPT-LANGUAGE", "de-DE")

	if got := h.Get("accept-language"); got != "de-DE" {
		t.Errorf("Get() = %q, want de-DE", got)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after Set collapses duplicates", h.Len())
	}
}

func TestOrderedHeader_ApplyToRequestPreservesCasing(t *testing.T) {
	h := &OrderedHeader{}
	h.Add("sec-ch-ua-platform", `"Windows"`)

	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	h.ApplyToRequest(req)

	if _, ok := req.Header["sec-ch-ua-platform"]; !ok {
		t.Error("ApplyToRequest should preserve the exact header key casing, bypassing CanonicalHeaderKey")
	}
}

func TestFromProfile_MatchesProfileHeaderOrder(t *testing.T) {
	p, err := catalog.Get("chrome_133")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}

	h := FromProfile(p, headers.DefaultPlatform(), "example.com")
	if h.Len() != len(p.HeaderTemplate) {
		t.Fatalf("Len() = %d, want %d (one entry per template line)", h.Len(), len(p.HeaderTemplate))
	}
	for i, tmpl := range p.HeaderTemplate {
		if h.entries[i].key != tmpl.Name {
			t.Errorf("entries[%d].key = %q, want %q", i, h.entries[i].key, tmpl.Name)
		}
	}
}
