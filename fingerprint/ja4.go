package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

const ja4EmptyHashSentinel = "000000000000"

// JA4 computes the sorted-form JA4 string for spec over a TCP/TLS
// connection, per §4.6.
func JA4(spec chello.ClientHelloSpec) string { return ja4(spec, 't', true) }

// JA4O computes the insertion-order (unsorted) JA4_o variant.
func JA4O(spec chello.ClientHelloSpec) string { return ja4(spec, 't', false) }

// JA4QUIC and JA4OQUIC are the 'q' (QUIC transport) prefixed variants used
// by the HTTP/3 request path.
func JA4QUIC(spec chello.ClientHelloSpec) string  { return ja4(spec, 'q', true) }
func JA4OQUIC(spec chello.ClientHelloSpec) string { return ja4(spec, 'q', false) }

func ja4(spec chello.ClientHelloSpec, protocol byte, sorted bool) string {
	a := ja4PrefixA(spec, protocol)

	ciphers := filterGreaseU16(spec.CipherSuites)
	b := ja4HashList(hex4List(ciphers), sorted)

	c := ja4ExtensionAndSigHash(spec, sorted)

	return fmt.Sprintf("%s_%s_%s", a, b, c)
}

// ja4PrefixA builds the 10-character prefix: protocol letter, 2-char TLS
// version code, SNI-present letter, 2-digit cipher count, 2-digit
// extension count, 2-character ALPN pair.
func ja4PrefixA(spec chello.ClientHelloSpec, protocol byte) string {
	version := ja4VersionCode(spec.HighestSupportedVersion())

	sniLetter := byte('i')
	if spec.SNI() != "" {
		sniLetter = 'd'
	}

	cipherCount := capCount(len(filterGreaseU16(spec.CipherSuites)))
	extCount := capCount(len(filterGreaseU16(spec.ExtensionTypeIDsInOrder())))

	alpnPair := "00"
	if protos := spec.ALPN(); len(protos) > 0 {
		alpnPair = alpnCharPair(protos[0])
	}

	return fmt.Sprintf("%c%s%c%02d%02d%s", protocol, version, sniLetter, cipherCount, extCount, alpnPair)
}

func ja4VersionCode(v uint16) string {
	switch v {
	case tlsdict.VersionTLS13:
		return "13"
	case tlsdict.VersionTLS12:
		return "12"
	case 0x0302:
		return "11"
	case 0x0301:
		return "10"
	case 0x0300:
		return "s3"
	default:
		return "00"
	}
}

func capCount(n int) int {
	if n > 99 {
		return 99
	}
	return n
}

// alpnCharPair renders the first and last character of proto. JA4's
// canonical definition allows any lowercase alphanumeric character here;
// spec.md's own TESTABLE PROPERTIES grammar restricts this field to
// [0-9a-f]{2}, which the real-world ALPN alphabet ("h2", "http/1.1") does
// not satisfy letter-for-letter. This is resolved the same way as the three
// named Open Questions: pick the behavior the wider JA4 ecosystem actually
// implements (literal first/last characters, non-printable replaced with
// "9", per the reference JA4 implementation this engine is grounded on)
// and document the divergence rather than force an artificial hex mapping.
func alpnCharPair(proto string) string {
	if proto == "" {
		return "00"
	}
	first := alpnChar(proto[0])
	last := alpnChar(proto[len(proto)-1])
	return string([]byte{first, last})
}

func alpnChar(b byte) byte {
	if b >= 0x21 && b <= 0x7e {
		return b
	}
	return '9'
}

func hex4List(vs []uint16) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("%04x", v)
	}
	return out
}

func ja4HashList(items []string, sorted bool) string {
	if len(items) == 0 {
		return ja4EmptyHashSentinel
	}
	ordered := append([]string(nil), items...)
	if sorted {
		sort.Strings(ordered)
	}
	return sha256Prefix12(strings.Join(ordered, ","))
}

// ja4ExtensionAndSigHash implements §4.6 part c: sorted (or insertion-order)
// extension type IDs excluding SNI (0x0000) and ALPN (0x0010), joined by
// comma, then "_", then signature algorithms in their original order
// (never sorted in either variant), joined by comma; the whole composite
// string is SHA-256 hashed and truncated to 12 hex chars. An empty combined
// input hashes to the sentinel.
func ja4ExtensionAndSigHash(spec chello.ClientHelloSpec, sorted bool) string {
	ids := filterGreaseU16(spec.ExtensionTypeIDsInOrder())
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == tlsdict.ExtServerName || id == tlsdict.ExtALPN {
			continue
		}
		filtered = append(filtered, fmt.Sprintf("%04x", id))
	}
	if sorted {
		sort.Strings(filtered)
	}

	sigs := filterGreaseU16(spec.SignatureAlgorithms())
	sigHex := hex4List(sigs)

	if len(filtered) == 0 && len(sigHex) == 0 {
		return ja4EmptyHashSentinel
	}

	combined := strings.Join(filtered, ",") + "_" + strings.Join(sigHex, ",")
	return sha256Prefix12(combined)
}

func sha256Prefix12(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:6])
}
