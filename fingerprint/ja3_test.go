package fingerprint_test

import (
	"testing"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/fingerprint"
)

// TestJA3_GreaseFiltering covers SPEC_FULL.md §8 scenario 6: a spec whose
// cipher and extension lists carry a leading GREASE value must have that
// value excluded from both fields of the JA3 string.
func TestJA3_GreaseFiltering(t *testing.T) {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord: 0x0303,
		CipherSuites:     []uint16{0x0a0a, 0x1301, 0x1302},
		Extensions: []chello.Extension{
			{Kind: chello.KindGrease, GreaseID: 0x0a0a},
			{Kind: chello.KindSNI},
			{Kind: chello.KindALPN, Protocols: []string{"h2"}},
		},
	}

	result := fingerprint.JA3(spec)
	fields := splitJA3(result.JA3)
	if len(fields) != 5 {
		t.Fatalf("JA3 string has %d fields, want 5: %q", len(fields), result.JA3)
	}
	if fields[1] != "4865-4866" {
		t.Errorf("cipher field = %q, want %q", fields[1], "4865-4866")
	}
	if fields[2] != "0-16" {
		t.Errorf("extension field = %q, want %q", fields[2], "0-16")
	}
}

func splitJA3(s string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}
