package catalog

import (
	"fmt"

	"github.com/firasghr/browserprint/chello"
)

// chromeVersions samples the 103-133 range spec.md §6 names. Versions 131
// and later use the post-quantum spec, whose supported_groups and key_share
// lead with the X25519Kyber768 hybrid group; every Chrome entry carries
// ALPS. chrome_133_psk is a separate named entry that reuses chrome_133's
// post-quantum spec unchanged (it carries no pre_shared_key extension).
var chromeVersions = []int{103, 106, 108, 110, 113, 116, 118, 120, 124, 126, 128, 130, 131, 133}

func chromeProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       chromiumCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         chromiumExtensions(true, false),
	}
	pqSpec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       chromiumCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         chromiumExtensions(true, true),
	}

	out := make([]Profile, 0, len(chromeVersions)+1)
	for _, v := range chromeVersions {
		s := spec
		if v >= 131 {
			s = pqSpec
		}
		out = append(out, Profile{
			Name:               fmt.Sprintf("chrome_%d", v),
			Family:             FamilyChrome,
			Spec:               s,
			HTTP2Settings:      chromiumHTTP2Settings(),
			HTTP2PseudoOrder:   chromiumPseudoOrder(),
			HeaderTemplate:     chromiumHeaderTemplate(),
			UserAgentTemplate:  fmt.Sprintf("Mozilla/5.0 ({os}) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36", v),
			SupportsHTTP3:      true,
		})
	}

	out = append(out, Profile{
		Name:              "chrome_133_psk",
		Family:            FamilyChrome,
		Spec:              pqSpec,
		HTTP2Settings:     chromiumHTTP2Settings(),
		HTTP2PseudoOrder:  chromiumPseudoOrder(),
		HeaderTemplate:    chromiumHeaderTemplate(),
		UserAgentTemplate: "Mozilla/5.0 ({os}) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
		SupportsHTTP3:     true,
	})

	return out
}
