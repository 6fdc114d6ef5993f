// Package tlsdict holds the named TLS constants the rest of the module
// builds ClientHello specs from: cipher suites, extension type IDs,
// signature schemes, supported groups, and the GREASE reserved value set.
//
// Nothing here has behavior beyond equality; every value used elsewhere in
// the module must appear in one of these tables or in Grease.
package tlsdict

// Record and handshake layer constants (TLS 1.2/1.3 wire format).
const (
	RecordTypeHandshake byte = 0x16

	RecordVersionTLS10 uint16 = 0x0301
	LegacyClientHello  uint16 = 0x0303 // client_version field in the ClientHello body

	HandshakeTypeClientHello byte = 0x01
)

// Cipher suite IDs (subset actually emitted by the profile catalog).
const (
	TLS_AES_128_GCM_SHA256       uint16 = 0x1301
	TLS_AES_256_GCM_SHA384       uint16 = 0x1302
	TLS_CHACHA20_POLY1305_SHA256 uint16 = 0x1303

	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256       uint16 = 0xc02b
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256         uint16 = 0xc02f
	TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384       uint16 = 0xc02c
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384         uint16 = 0xc030
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256 uint16 = 0xcca9
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256   uint16 = 0xcca8
	TLS_RSA_WITH_AES_128_GCM_SHA256               uint16 = 0x009c
	TLS_RSA_WITH_AES_256_GCM_SHA384               uint16 = 0x009d
	TLS_RSA_WITH_AES_128_CBC_SHA                  uint16 = 0x002f
	TLS_RSA_WITH_AES_256_CBC_SHA                  uint16 = 0x0035
	TLS_EMPTY_RENEGOTIATION_INFO_SCSV             uint16 = 0x00ff
)

// Extension type IDs, per IANA TLS ExtensionType registry.
const (
	ExtServerName               uint16 = 0x0000
	ExtStatusRequest            uint16 = 0x0005
	ExtSupportedGroups          uint16 = 0x000a
	ExtECPointFormats            uint16 = 0x000b
	ExtSignatureAlgorithms       uint16 = 0x000d
	ExtALPN                      uint16 = 0x0010
	ExtSignedCertTimestamp       uint16 = 0x0012
	ExtCompressCertificate       uint16 = 0x001b
	ExtPadding                   uint16 = 0x0015
	ExtExtendedMasterSecret      uint16 = 0x0017
	ExtSessionTicket             uint16 = 0x0023
	ExtPreSharedKey              uint16 = 0x0029
	ExtEarlyData                 uint16 = 0x002a
	ExtSupportedVersions         uint16 = 0x002b
	ExtCookie                    uint16 = 0x002c
	ExtPSKKeyExchangeModes       uint16 = 0x002d
	ExtCertificateAuthorities    uint16 = 0x002f
	ExtKeyShare                  uint16 = 0x0033
	ExtRenegotiationInfo         uint16 = 0xff01
	ExtApplicationSettings       uint16 = 0x4469
	ExtEncryptedClientHello      uint16 = 0xfe0d
)

// Supported-group (curve) IDs.
const (
	GroupX25519    uint16 = 0x001d
	GroupSecp256r1 uint16 = 0x0017
	GroupSecp384r1 uint16 = 0x0018
	GroupSecp521r1 uint16 = 0x0019
	GroupX25519Kyber768Draft00 uint16 = 0x6399
)

// Signature scheme IDs.
const (
	SigEcdsaSecp256r1Sha256 uint16 = 0x0403
	SigRsaPssRsaeSha256     uint16 = 0x0804
	SigRsaPkcs1Sha256       uint16 = 0x0401
	SigEcdsaSecp384r1Sha384 uint16 = 0x0503
	SigRsaPssRsaeSha384     uint16 = 0x0805
	SigRsaPkcs1Sha384       uint16 = 0x0501
	SigRsaPssRsaeSha512     uint16 = 0x0806
	SigRsaPkcs1Sha512       uint16 = 0x0601
	SigEd25519              uint16 = 0x0807
)

// TLS protocol version numbers as they appear in SupportedVersions.
const (
	VersionTLS13 uint16 = 0x0304
	VersionTLS12 uint16 = 0x0303
)

// Grease is the RFC 8701 reserved value set. Any of these appearing in a
// cipher list, extension list, group list, or ALPN list must be filtered
// before fingerprint computation.
var Grease = map[uint16]bool{
	0x0a0a: true, 0x1a1a: true, 0x2a2a: true, 0x3a3a: true,
	0x4a4a: true, 0x5a5a: true, 0x6a6a: true, 0x7a7a: true,
	0x8a8a: true, 0x9a9a: true, 0xaaaa: true, 0xbaba: true,
	0xcaca: true, 0xdada: true, 0xeaea: true, 0xfafa: true,
}

// IsGrease reports whether v is one of the 16 reserved GREASE values.
func IsGrease(v uint16) bool { return Grease[v] }

// GreaseValues returns the 16 reserved values in ascending order, useful for
// tests and for picking a profile's GREASE-cipher/extension position.
func GreaseValues() []uint16 {
	return []uint16{
		0x0a0a, 0x1a1a, 0x2a2a, 0x3a3a,
		0x4a4a, 0x5a5a, 0x6a6a, 0x7a7a,
		0x8a8a, 0x9a9a, 0xaaaa, 0xbaba,
		0xcaca, 0xdada, 0xeaea, 0xfafa,
	}
}

// extensionNames maps extension type IDs to their IANA registry names. The
// JA4 hashes use the hex IDs, not these names.
var extensionNames = map[uint16]string{
	ExtServerName:          "server_name",
	ExtStatusRequest:       "status_request",
	ExtSupportedGroups:     "supported_groups",
	ExtECPointFormats:      "ec_point_formats",
	ExtSignatureAlgorithms: "signature_algorithms",
	ExtALPN:                "application_layer_protocol_negotiation",
	ExtSignedCertTimestamp: "signed_certificate_timestamp",
	ExtCompressCertificate: "compress_certificate",
	ExtPadding:             "padding",
	ExtExtendedMasterSecret: "extended_master_secret",
	ExtSessionTicket:        "session_ticket",
	ExtPreSharedKey:         "pre_shared_key",
	ExtEarlyData:            "early_data",
	ExtSupportedVersions:    "supported_versions",
	ExtCookie:               "cookie",
	ExtPSKKeyExchangeModes:  "psk_key_exchange_modes",
	ExtKeyShare:             "key_share",
	ExtRenegotiationInfo:    "renegotiation_info",
	ExtApplicationSettings:  "application_settings",
	ExtEncryptedClientHello: "encrypted_client_hello",
}

// ExtensionName returns the registry name for id, or "" if unknown.
func ExtensionName(id uint16) string { return extensionNames[id] }
