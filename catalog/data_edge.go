package catalog

import (
	"fmt"

	"github.com/firasghr/browserprint/chello"
)

var edgeVersions = []int{114, 120, 126, 131}

func edgeProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       chromiumCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         chromiumExtensions(true, false),
	}

	out := make([]Profile, 0, len(edgeVersions))
	for _, v := range edgeVersions {
		out = append(out, Profile{
			Name:              fmt.Sprintf("edge_%d", v),
			Family:            FamilyEdge,
			Spec:              spec,
			HTTP2Settings:     chromiumHTTP2Settings(),
			HTTP2PseudoOrder:  chromiumPseudoOrder(),
			HeaderTemplate:    chromiumHeaderTemplate(),
			UserAgentTemplate: fmt.Sprintf("Mozilla/5.0 ({os}) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36 Edg/%d.0.0.0", v, v),
			SupportsHTTP3:     true,
		})
	}
	return out
}
