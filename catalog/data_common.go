package catalog

import (
	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

// The data_*.go files in this package build the ~66-entry profile catalog
// spec.md §6 calls for. Grounded on the corpus's BrowserProfiles /
// HTTP2ProfilesDB literal tables, which sample a handful of illustrative
// versions per family; this catalog samples a wider version ladder per
// family (rather than every integer point release, which the grounding
// source never does either) to land in the ~66 range while keeping each
// entry genuinely distinct by name, user-agent, and HTTP/2 framing.
//
// Within one family, consecutive browser releases essentially never change
// cipher order or extension order (TLS fingerprints are famously stable
// across point releases — this is exactly why JA3/JA4 works as a browser
// classifier at all); what changes release to release is the version
// number embedded in the user-agent string and, occasionally, the
// supported_versions/key_share groups. This module models that reality
// directly: one ClientHelloSpec template per family/shape, reused across
// every version entry of that shape.

func grease(n int) chello.Extension {
	return chello.Extension{Kind: chello.KindGrease, GreaseID: tlsdict.GreaseValues()[n%16]}
}

func padding() chello.Extension {
	return chello.Extension{Kind: chello.KindPadding, TargetRecordLength: chello.PaddingTarget}
}

func sni() chello.Extension { return chello.Extension{Kind: chello.KindSNI} }

func alpn(protocols ...string) chello.Extension {
	return chello.Extension{Kind: chello.KindALPN, Protocols: protocols}
}

func supportedVersions(vs ...uint16) chello.Extension {
	return chello.Extension{Kind: chello.KindSupportedVersions, Versions: vs}
}

func supportedGroups(groups ...uint16) chello.Extension {
	return chello.Extension{Kind: chello.KindSupportedGroups, Groups: groups}
}

func sigAlgs(schemes ...uint16) chello.Extension {
	return chello.Extension{Kind: chello.KindSignatureAlgorithms, SignatureSchemes: schemes}
}

func keyShare(groups ...uint16) chello.Extension {
	shares := make([]chello.KeyShareEntry, len(groups))
	for i, g := range groups {
		shares[i] = chello.KeyShareEntry{Group: g}
	}
	return chello.Extension{Kind: chello.KindKeyShare, KeyShares: shares}
}

func pskModes(modes ...byte) chello.Extension {
	return chello.Extension{Kind: chello.KindPSKKeyExchangeModes, PSKModes: modes}
}

func pointFormats(formats ...byte) chello.Extension {
	return chello.Extension{Kind: chello.KindSupportedPointFormats, PointFormats: formats}
}

func renegotiationInfo() chello.Extension {
	return chello.Extension{Kind: chello.KindRenegotiationInfo, Opaque: []byte{}}
}

func extendedMasterSecret() chello.Extension {
	return chello.Extension{Kind: chello.KindExtendedMasterSecret}
}

func sessionTicket() chello.Extension {
	return chello.Extension{Kind: chello.KindSessionTicket, Opaque: []byte{}}
}

func statusRequest() chello.Extension {
	return chello.Extension{Kind: chello.KindStatusRequest}
}

func sct() chello.Extension {
	return chello.Extension{Kind: chello.KindSignedCertificateTimestamp}
}

func compressCertificate(algs ...uint16) chello.Extension {
	return chello.Extension{Kind: chello.KindCompressCertificate, CompressionAlgorithms: algs}
}

func applicationSettings(protos ...string) chello.Extension {
	return chello.Extension{Kind: chello.KindApplicationSettings, ALPS: protos}
}

// chromiumCiphers is the cipher order shared by every Chromium-derived
// browser (Chrome, Edge, Opera, Android Chrome, Samsung Internet): GREASE
// first, then the three TLS 1.3 AEAD suites, then the TLS 1.2 ECDHE/RSA
// fallback ladder, ending with the RSA AES-CBC suites. Unlike Firefox's
// list it carries no empty-renegotiation SCSV.
func chromiumCiphers() []uint16 {
	return []uint16{
		tlsdict.GreaseValues()[0],
		tlsdict.TLS_AES_128_GCM_SHA256,
		tlsdict.TLS_AES_256_GCM_SHA384,
		tlsdict.TLS_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_RSA_WITH_AES_128_CBC_SHA,
		tlsdict.TLS_RSA_WITH_AES_256_CBC_SHA,
	}
}

func chromiumExtensions(withALPS bool, withPQ bool) []chello.Extension {
	groups := []uint16{tlsdict.GroupX25519, tlsdict.GroupSecp256r1, tlsdict.GroupSecp384r1}
	if withPQ {
		groups = append([]uint16{tlsdict.GroupX25519Kyber768Draft00}, groups...)
	}
	kshareGroups := []uint16{groups[0], groups[1]}

	exts := []chello.Extension{
		grease(0),
		sni(),
		extendedMasterSecret(),
		renegotiationInfo(),
		supportedGroups(groups...),
		pointFormats(0x00),
		sessionTicket(),
		alpn("h2", "http/1.1"),
		statusRequest(),
		sigAlgs(tlsdict.SigEcdsaSecp256r1Sha256, tlsdict.SigRsaPssRsaeSha256, tlsdict.SigRsaPkcs1Sha256,
			tlsdict.SigEcdsaSecp384r1Sha384, tlsdict.SigRsaPssRsaeSha384, tlsdict.SigRsaPkcs1Sha384,
			tlsdict.SigRsaPssRsaeSha512, tlsdict.SigRsaPkcs1Sha512),
		sct(),
		keyShare(kshareGroups...),
		pskModes(0x01),
		supportedVersions(tlsdict.VersionTLS13, tlsdict.VersionTLS12),
		compressCertificate(0x0002), // brotli
	}
	if withALPS {
		exts = append(exts, applicationSettings("h2"))
	}
	exts = append(exts, grease(1), padding())
	return exts
}

func chromiumHTTP2Settings() []HTTP2Setting {
	return []HTTP2Setting{
		{ID: 0x1, Value: 65536},
		{ID: 0x2, Value: 0},
		{ID: 0x3, Value: 1000},
		{ID: 0x4, Value: 6291456},
		{ID: 0x6, Value: 262144},
	}
}

func chromiumPseudoOrder() []string {
	return []string{":method", ":authority", ":scheme", ":path"}
}

func chromiumHeaderTemplate() []HeaderTemplate {
	return []HeaderTemplate{
		{Name: "Host", ValueTemplate: "{host}"},
		{Name: "sec-ch-ua", ValueTemplate: `"Not_A Brand";v="8", "Chromium";v="{version}", "Google Chrome";v="{version}"`},
		{Name: "sec-ch-ua-mobile", ValueTemplate: "{mobile}"},
		{Name: "sec-ch-ua-platform", ValueTemplate: `"{os}"`},
		{Name: "Upgrade-Insecure-Requests", ValueTemplate: "1"},
		{Name: "User-Agent", ValueTemplate: "{user_agent}"},
		{Name: "Accept", ValueTemplate: "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8"},
		{Name: "Sec-Fetch-Site", ValueTemplate: "none"},
		{Name: "Sec-Fetch-Mode", ValueTemplate: "navigate"},
		{Name: "Sec-Fetch-User", ValueTemplate: "?1"},
		{Name: "Sec-Fetch-Dest", ValueTemplate: "document"},
		{Name: "Accept-Encoding", ValueTemplate: "gzip, deflate, br"},
		{Name: "Accept-Language", ValueTemplate: "{accept_language}"},
	}
}
