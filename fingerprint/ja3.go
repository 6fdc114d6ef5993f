// Package fingerprint computes JA3/JA4(_o) fingerprint strings from a
// chello.ClientHelloSpec (§4.6) and scores similarity between two specs
// for catalog matching (§4.9). Grounded on the corpus's standalone JA4
// implementation (internal/util/ja3/ja4.go) and its fingerprint-compare
// types (pkg/types/compare.go), adapted to the scalar contract this spec
// defines.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/tlsdict"
)

// JA3Result carries both the raw JA3 field string and its MD5 hash.
type JA3Result struct {
	JA3  string
	Hash string
}

// JA3 computes the classic JA3 string and MD5 hash for spec, per §4.6:
// "version,ciphers,extensions,curves,point_formats" with GREASE removed
// from every list.
func JA3(spec chello.ClientHelloSpec) JA3Result {
	version := spec.HighestSupportedVersion()
	if version == 0 {
		version = spec.TLSVersionRecord
	}

	ciphers := filterGreaseU16(spec.CipherSuites)
	exts := filterGreaseU16(spec.ExtensionTypeIDsInOrder())
	curves := filterGreaseU16(spec.Curves())
	points := spec.PointFormats()

	fields := []string{
		strconv.Itoa(int(version)),
		joinUint16Dash(ciphers),
		joinUint16Dash(exts),
		joinUint16Dash(curves),
		joinBytesDash(points),
	}
	ja3 := strings.Join(fields, ",")

	sum := md5.Sum([]byte(ja3))
	return JA3Result{JA3: ja3, Hash: hex.EncodeToString(sum[:])}
}

func filterGreaseU16(in []uint16) []uint16 {
	out := make([]uint16, 0, len(in))
	for _, v := range in {
		if !tlsdict.IsGrease(v) {
			out = append(out, v)
		}
	}
	return out
}

func joinUint16Dash(vs []uint16) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, "-")
}

func joinBytesDash(vs []byte) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, "-")
}
