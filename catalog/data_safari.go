package catalog

import (
	"strings"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

var safariVersions = []string{"15_6_1", "16_0", "16_6", "17_0", "17_4", "17_5", "18_0", "18_5"}

func safariCiphers() []uint16 {
	return []uint16{
		tlsdict.TLS_AES_256_GCM_SHA384,
		tlsdict.TLS_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_RSA_WITH_AES_256_CBC_SHA,
		tlsdict.TLS_RSA_WITH_AES_128_CBC_SHA,
	}
}

func safariExtensions() []chello.Extension {
	return []chello.Extension{
		sni(),
		extendedMasterSecret(),
		renegotiationInfo(),
		sessionTicket(),
		signedCertTimestampExt(),
		statusRequest(),
		alpn("h2", "http/1.1"),
		supportedGroups(tlsdict.GroupX25519, tlsdict.GroupSecp256r1, tlsdict.GroupSecp384r1, tlsdict.GroupSecp521r1),
		pointFormats(0x00),
		supportedVersions(tlsdict.VersionTLS13, tlsdict.VersionTLS12),
		compressCertificate(0x0002),
		keyShare(tlsdict.GroupX25519, tlsdict.GroupSecp256r1),
		pskModes(0x01),
		sigAlgs(tlsdict.SigEcdsaSecp256r1Sha256, tlsdict.SigRsaPssRsaeSha256, tlsdict.SigRsaPkcs1Sha256,
			tlsdict.SigEcdsaSecp384r1Sha384, tlsdict.SigRsaPssRsaeSha384, tlsdict.SigRsaPkcs1Sha384,
			tlsdict.SigRsaPssRsaeSha512, tlsdict.SigRsaPkcs1Sha512, tlsdict.SigEd25519),
	}
}

func signedCertTimestampExt() chello.Extension { return sct() }

func safariHTTP2Settings() []HTTP2Setting {
	return []HTTP2Setting{
		{ID: 0x2, Value: 0},
		{ID: 0x3, Value: 100},
		{ID: 0x4, Value: 6291456},
		{ID: 0x6, Value: 262144},
	}
}

func safariPseudoOrder() []string {
	return []string{":method", ":scheme", ":path", ":authority"}
}

// safariHeaderTemplateH2 is used for the desktop/h2 request path.
func safariHeaderTemplateH2() []HeaderTemplate {
	return []HeaderTemplate{
		{Name: "Host", ValueTemplate: "{host}"},
		{Name: "Accept", ValueTemplate: "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"},
		{Name: "Accept-Language", ValueTemplate: "{accept_language}"},
		{Name: "Accept-Encoding", ValueTemplate: "gzip, deflate, br"},
		{Name: "Connection", ValueTemplate: "keep-alive"},
		{Name: "User-Agent", ValueTemplate: "{user_agent}"},
	}
}

func safariUAMac(version string) string {
	dotted := strings.ReplaceAll(version, "_", ".")
	return "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/" + dotted + " Safari/605.1.15"
}

func safariUAiOS(version string) string {
	dotted := strings.ReplaceAll(version, "_", ".")
	return "Mozilla/5.0 (iPhone; CPU iPhone OS " + version + " like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/" + dotted + " Mobile/15E148 Safari/604.1"
}

func safariProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       safariCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         safariExtensions(),
	}

	out := make([]Profile, 0, len(safariVersions)*2)
	for _, v := range safariVersions {
		out = append(out, Profile{
			Name:              "safari_macos_" + v,
			Family:            FamilySafari,
			Spec:              spec,
			HTTP2Settings:     safariHTTP2Settings(),
			HTTP2PseudoOrder:  safariPseudoOrder(),
			HeaderTemplate:    safariHeaderTemplateH2(),
			UserAgentTemplate: safariUAMac(v),
		})
	}
	for _, v := range safariVersions {
		out = append(out, Profile{
			Name:              "safari_ios_" + v,
			Family:            FamilySafari,
			Spec:              spec,
			HTTP2Settings:     safariHTTP2Settings(),
			HTTP2PseudoOrder:  safariPseudoOrder(),
			HeaderTemplate:    safariIOSHeaderTemplate(),
			UserAgentTemplate: safariUAiOS(v),
		})
	}
	return out
}

// safariIOSHeaderTemplate matches scenario 4 in SPEC_FULL.md §8 exactly:
// Host, Accept, Accept-Language, Accept-Encoding, Connection, User-Agent.
func safariIOSHeaderTemplate() []HeaderTemplate {
	return []HeaderTemplate{
		{Name: "Host", ValueTemplate: "{host}"},
		{Name: "Accept", ValueTemplate: "*/*"},
		{Name: "Accept-Language", ValueTemplate: "{accept_language}"},
		{Name: "Accept-Encoding", ValueTemplate: "gzip, deflate, br"},
		{Name: "Connection", ValueTemplate: "keep-alive"},
		{Name: "User-Agent", ValueTemplate: "{user_agent}"},
	}
}
