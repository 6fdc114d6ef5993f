package chello_test

import (
	"testing"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

func chrome133Spec() chello.ClientHelloSpec {
	return chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       []uint16{0x0a0a, tlsdict.TLS_AES_128_GCM_SHA256, tlsdict.TLS_AES_256_GCM_SHA384},
		CompressionMethods: []byte{0x00},
		Extensions: []chello.Extension{
			{Kind: chello.KindGrease},
			{Kind: chello.KindSNI},
			{Kind: chello.KindSupportedVersions, Versions: []uint16{tlsdict.VersionTLS13, tlsdict.VersionTLS12}},
			{Kind: chello.KindSupportedGroups, Groups: []uint16{tlsdict.GroupX25519, tlsdict.GroupSecp256r1}},
			{Kind: chello.KindKeyShare, KeyShares: []chello.KeyShareEntry{{Group: tlsdict.GroupX25519}}},
			{Kind: chello.KindALPN, Protocols: []string{"h2", "http/1.1"}},
			{Kind: chello.KindPadding, TargetRecordLength: chello.PaddingTarget},
		},
	}
}

// TestAssemble_RecordShape covers SPEC_FULL.md §8 scenario 2: assembling
// chrome_133-shaped spec for "www.example.com" yields a record starting
// 0x16 0x03 0x01, with the rendered SNI extension carrying the hostname and
// a 32-byte session id.
func TestAssemble_RecordShape(t *testing.T) {
	out, err := chello.Assemble(chrome133Spec(), "www.example.com")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(out) < 6 {
		t.Fatalf("assembled record too short: %d bytes", len(out))
	}
	if out[0] != 0x16 {
		t.Errorf("record content type = 0x%02x, want 0x16", out[0])
	}
	if out[1] != 0x03 || out[2] != 0x01 {
		t.Errorf("record legacy version = 0x%02x%02x, want 0x0301", out[1], out[2])
	}
	if out[5] != 0x01 {
		t.Errorf("handshake type = 0x%02x, want 0x01 (ClientHello)", out[5])
	}

	body := out[9:] // record_header(5) + handshake_header(4)
	// client_version(2) + random(32) precede the session_id length byte.
	sessionIDLen := body[34]
	if sessionIDLen != 32 {
		t.Errorf("session_id length = %d, want 32", sessionIDLen)
	}

	if !containsBytes(out, []byte("www.example.com")) {
		t.Error("assembled ClientHello does not carry the rendered SNI hostname")
	}
}

func TestAssemble_RejectsOversizedSpec(t *testing.T) {
	spec := chrome133Spec()
	huge := make([]byte, 1<<15)
	spec.Extensions = append(spec.Extensions, chello.Extension{Kind: chello.KindRaw, RawType: 0xfefe, RawBody: huge})

	if _, err := chello.Assemble(spec, "example.test"); err == nil {
		t.Fatal("expected an OversizedSpecError for a body exceeding the 2^14 TLS record limit")
	}
}

func containsBytes(haystack, needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
