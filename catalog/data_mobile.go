package catalog

import (
	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

// okhttpCiphers models the default OkHttp/Conscrypt cipher ladder used by
// most Android app SDK clients (OkHttp4, and the in-app browsers layered
// on top of it such as Nike, Zalando, and MMS's courier app).
func okhttpCiphers() []uint16 {
	return []uint16{
		tlsdict.TLS_AES_128_GCM_SHA256,
		tlsdict.TLS_AES_256_GCM_SHA384,
		tlsdict.TLS_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		tlsdict.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tlsdict.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
		tlsdict.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
	}
}

func okhttpExtensions() []chello.Extension {
	return []chello.Extension{
		sni(),
		extendedMasterSecret(),
		renegotiationInfo(),
		supportedGroups(tlsdict.GroupX25519, tlsdict.GroupSecp256r1, tlsdict.GroupSecp384r1),
		pointFormats(0x00),
		sessionTicket(),
		alpn("h2", "http/1.1"),
		statusRequest(),
		sigAlgs(tlsdict.SigEcdsaSecp256r1Sha256, tlsdict.SigRsaPssRsaeSha256, tlsdict.SigRsaPkcs1Sha256),
		keyShare(tlsdict.GroupX25519),
		supportedVersions(tlsdict.VersionTLS13, tlsdict.VersionTLS12),
		pskModes(0x01),
	}
}

func okhttpHTTP2Settings() []HTTP2Setting {
	return []HTTP2Setting{
		{ID: 0x1, Value: 65536},
		{ID: 0x4, Value: 1048576},
	}
}

func okhttpPseudoOrder() []string {
	return []string{":method", ":path", ":scheme", ":authority"}
}

func okhttpHeaderTemplate() []HeaderTemplate {
	return []HeaderTemplate{
		{Name: "Host", ValueTemplate: "{host}"},
		{Name: "Connection", ValueTemplate: "Keep-Alive"},
		{Name: "Accept-Encoding", ValueTemplate: "gzip"},
		{Name: "User-Agent", ValueTemplate: "{user_agent}"},
	}
}

type mobileSDKEntry struct {
	name string
	ua   string
}

var mobileSDKEntries = []mobileSDKEntry{
	{"okhttp4", "okhttp/4.12.0"},
	{"okhttp4_android12", "okhttp/4.10.0"},
	{"nike_app", "Nike/25.10.0 (Android 13; okhttp/4.11.0)"},
	{"zalando_app", "Zalando/24.8.1 (Android 14; okhttp/4.12.0)"},
	{"mms_app", "MMS-Courier/3.2.0 (Android 12; okhttp/4.9.3)"},
	{"android_webview", "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/131.0.0.0 Mobile Safari/537.36"},
	{"samsung_internet", "Mozilla/5.0 (Linux; Android 14; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/26.0 Chrome/122.0.0.0 Mobile Safari/537.36"},
	{"uc_browser_android", "Mozilla/5.0 (Linux; U; Android 13; en-US) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 UCBrowser/15.5.0.1223 Mobile Safari/537.36"},
	{"whale_browser", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Whale/3.26.0.0 Safari/537.36"},
	{"android_chrome_mobile", "Mozilla/5.0 (Linux; Android 14; Pixel 8 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Mobile Safari/537.36"},
	{"ios_chrome", "Mozilla/5.0 (iPhone; CPU iPhone OS 18_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/131.0.0.0 Mobile/15E148 Safari/604.1"},
	{"facebook_inapp", "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/131.0.0.0 Mobile Safari/537.36 [FB_IAB/FB4A]"},
	{"instagram_inapp", "Mozilla/5.0 (iPhone; CPU iPhone OS 18_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 Instagram 325.0.0"},
}

func mobileProfiles() []Profile {
	spec := chello.ClientHelloSpec{
		TLSVersionRecord:   0x0303,
		CipherSuites:       okhttpCiphers(),
		CompressionMethods: []byte{0x00},
		Extensions:         okhttpExtensions(),
	}

	out := make([]Profile, 0, len(mobileSDKEntries))
	for _, e := range mobileSDKEntries {
		out = append(out, Profile{
			Name:              e.name,
			Family:            FamilyMobile,
			Spec:              spec,
			HTTP2Settings:     okhttpHTTP2Settings(),
			HTTP2PseudoOrder:  okhttpPseudoOrder(),
			HeaderTemplate:    okhttpHeaderTemplate(),
			UserAgentTemplate: e.ua,
		})
	}
	return out
}
