package tlsdict_test

import (
	"testing"

	"github.com/firasghr/browserprint/tlsdict"
)

func TestIsGrease_CoversRFC8701Ladder(t *testing.T) {
	for _, v := range tlsdict.GreaseValues() {
		if !tlsdict.IsGrease(v) {
			t.Errorf("IsGrease(0x%04x) = false, want true", v)
		}
		if v&0x0f0f != 0x0a0a {
			t.Errorf("0x%04x does not follow the 0x?a?a GREASE pattern", v)
		}
	}
}

func TestIsGrease_RejectsRealCipherSuite(t *testing.T) {
	if tlsdict.IsGrease(tlsdict.TLS_AES_128_GCM_SHA256) {
		t.Error("TLS_AES_128_GCM_SHA256 incorrectly classified as GREASE")
	}
}

func TestExtensionName_KnownAndUnknown(t *testing.T) {
	if got := tlsdict.ExtensionName(tlsdict.ExtServerName); got != "server_name" {
		t.Errorf("ExtensionName(ExtServerName) = %q, want server_name", got)
	}
	if got := tlsdict.ExtensionName(0xffff); got != "" {
		t.Errorf("ExtensionName(0xffff) = %q, want empty string for an unregistered ID", got)
	}
}
