package catalog

import (
	"fmt"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

var firefoxVersions = []int{102, 105, 109, 112, 115, 118, 120, 123, 126, 128, 130, 132, 134, 135}

func firefoxCiphers() []uint16 {
	return []uint16{
		tlsdict.TLS_AES_128_GCM_SHA256,
		tlsdict.TLS_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_RSA_WITH_AES_128_CBC_SHA,
		tlsdict.TLS_RSA_WITH_AES_256_CBC_SHA,
		tlsdict.TLS_EMPTY_RENEGOTIATION_INFO_SCSV,
	}
}

// firefoxExtensions intentionally omits GREASE: unlike Chromium, mainline
// Firefox does not inject RFC 8701 GREASE values, which is itself one of
// the observable differences a JA3/JA4 classifier keys on.
func firefoxExtensions() []chello.Extension {
	return []chello.Extension{
		sni(),
		extendedMasterSecret(),
		renegotiationInfo(),
		supportedGroups(tlsdict.GroupX25519, tlsdict.GroupSecp256r1, tlsdict.GroupSecp384r1, tlsdict.GroupSecp521r1),
		pointFormats(0x00),
		sessionTicket(),
		alpn("h2", "http/1.1"),
		statusRequest(),
		keyShare(tlsdict.GroupX25519, tlsdict.GroupSecp256r1),
		supportedVersions(tlsdict.VersionTLS13, tlsdict.VersionTLS12),
		sigAlgs(tlsdict.SigEcdsaSecp256r1Sha256, tlsdict.SigEd25519, tlsdict.SigRsaPssRsaeSha256, tlsdict.SigRsaPkcs1Sha256,
			tlsdict.SigEcdsaSecp384r1Sha384, tlsdict.SigRsaPssRsaeSha384, tlsdict.SigRsaPkcs1Sha384,
			tlsdict.SigRsaPssRsaeSha512, tlsdict.SigRsaPkcs1Sha512),
		pskModes(0x01),
		{Kind: chello.KindRaw, RawType: 0x001c, RawBody: []byte{0x40, 0x01}}, // record_size_limit
		padding(),
	}
}

func firefoxHTTP2Settings() []HTTP2Setting {
	return []HTTP2Setting{
		{ID: 0x1, Value: 65536},
		{ID: 0x2, Value: 0},
		{ID: 0x4, Value: 131072},
		{ID: 0x5, Value: 16384},
	}
}

// firefoxPseudoOrder matches scenario 3 in SPEC_FULL.md §8 exactly:
// :method, :path, :authority, :scheme.
func firefoxPseudoOrder() []string {
	return []string{":method", ":path", ":authority", ":scheme"}
}

func firefoxHeaderTemplate() []HeaderTemplate {
	return []HeaderTemplate{
		{Name: "Host", ValueTemplate: "{host}"},
		{Name: "User-Agent", ValueTemplate: "{user_agent}"},
		{Name: "Accept", ValueTemplate: "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"},
		{Name: "Accept-Language", ValueTemplate: "{accept_language}"},
		{Name: "Accept-Encoding", ValueTemplate: "gzip, deflate, br"},
		{Name: "Connection", ValueTemplate: "keep-alive"},
		{Name: "Upgrade-Insecure-Requests", ValueTemplate: "1"},
		{Name: "Sec-Fetch-Dest", ValueTemplate: "document"},
		{Name: "Sec-Fetch-Mode", ValueTemplate: "navigate"},
		{Name: "Sec-Fetch-Site", ValueTemplate: "none"},
		{Name: "Sec-Fetch-User", ValueTemplate: "?1"},
	}
}

func firefoxProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       firefoxCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         firefoxExtensions(),
	}

	out := make([]Profile, 0, len(firefoxVersions))
	for _, v := range firefoxVersions {
		out = append(out, Profile{
			Name:              fmt.Sprintf("firefox_%d", v),
			Family:            FamilyFirefox,
			Spec:              spec,
			HTTP2Settings:     firefoxHTTP2Settings(),
			HTTP2PseudoOrder:  firefoxPseudoOrder(),
			HeaderTemplate:    firefoxHeaderTemplate(),
			UserAgentTemplate: fmt.Sprintf("Mozilla/5.0 ({os_firefox}) Gecko/20100101 Firefox/%d.0", v),
			SupportsHTTP3:     true,
		})
	}
	return out
}
