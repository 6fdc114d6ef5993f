package catalog

import (
	"fmt"

	"github.com/firasghr/browserprint/chello"
)

var operaVersions = []int{89, 90, 91}

// Opera is Chromium-derived; it reuses Chrome's TLS shape, HTTP/2 settings,
// and header template, and differs only in its own user-agent.
func operaProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       chromiumCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         chromiumExtensions(true, false),
	}

	out := make([]Profile, 0, len(operaVersions))
	for _, v := range operaVersions {
		out = append(out, Profile{
			Name:              fmt.Sprintf("opera_%d", v),
			Family:            FamilyOpera,
			Spec:              spec,
			HTTP2Settings:     chromiumHTTP2Settings(),
			HTTP2PseudoOrder:  chromiumPseudoOrder(),
			HeaderTemplate:    chromiumHeaderTemplate(),
			UserAgentTemplate: fmt.Sprintf("Mozilla/5.0 ({os}) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 OPR/%d.0.0.0", v),
			SupportsHTTP3:     true,
		})
	}
	return out
}
