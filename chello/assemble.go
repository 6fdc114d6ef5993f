package chello

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"time"
)

// PaddingTarget is the full ClientHello handshake-body length the
// Padding extension pads to. Open Question (i) in the donor spec ("does
// Padding target 512 bytes or append a fixed-length block") is resolved in
// favor of a BoringSSL-style target length, since that is the behavior
// every mainstream captured browser profile exhibits.
const PaddingTarget = 512

// Assemble produces the exact TLS handshake record bytes for spec,
// substituting serverName into the SNI extension and generating fresh
// random, session id, and key-share material. The wire layout is:
//
//	record_header:    type=0x16, version=0x0301, length(u16)
//	handshake_header: type=0x01, length(u24)
//	body: client_version(u16=0x0303), random[32], session_id(u8 len+bytes),
//	      cipher_suites(u16 len+list), compression_methods(u8 len+bytes),
//	      extensions(u16 len+serialized list)
func Assemble(spec ClientHelloSpec, serverName string) ([]byte, error) {
	body, err := assembleBody(spec, serverName)
	if err != nil {
		return nil, err
	}

	if len(body) > 1<<14 {
		return nil, &OversizedSpecError{Size: len(body)}
	}

	var handshake bytes.Buffer
	handshake.WriteByte(0x01) // handshake type: client_hello
	writeU24(&handshake, len(body))
	handshake.Write(body)

	var record bytes.Buffer
	record.WriteByte(0x16)     // content type: handshake
	writeU16(&record, 0x0301)  // legacy record version
	writeU16(&record, uint16(handshake.Len()))
	record.Write(handshake.Bytes())

	return record.Bytes(), nil
}

func assembleBody(spec ClientHelloSpec, serverName string) ([]byte, error) {
	var buf bytes.Buffer

	writeU16(&buf, 0x0303) // client_version: TLS 1.2 for legacy compatibility

	random, err := newClientRandom()
	if err != nil {
		return nil, err
	}
	buf.Write(random)

	sessionID, err := newSessionID()
	if err != nil {
		return nil, err
	}
	buf.WriteByte(byte(len(sessionID)))
	buf.Write(sessionID)

	writeU16(&buf, uint16(len(spec.CipherSuites)*2))
	for _, c := range spec.CipherSuites {
		writeU16(&buf, c)
	}

	buf.WriteByte(byte(len(spec.CompressionMethods)))
	buf.Write(spec.CompressionMethods)

	extBytes, err := assembleExtensions(spec, serverName)
	if err != nil {
		return nil, err
	}
	writeU16(&buf, uint16(len(extBytes)))
	buf.Write(extBytes)

	return buf.Bytes(), nil
}

// assembleExtensions serializes spec.Extensions in declared order,
// substituting server_name, regenerating key-share public keys, and
// resolving Padding's target length against everything that precedes it
// (client_version + random + session_id + cipher_suites + compression +
// extensions-length-prefix + every prior extension's own bytes).
func assembleExtensions(spec ClientHelloSpec, serverName string) ([]byte, error) {
	// Fixed prefix preceding the extensions block within the ClientHello
	// body: client_version(2) + random(32) + session_id_len(1) +
	// session_id(32) + cipher_suites_len(2) + ciphers + compression_len(1) +
	// compression + extensions_len(2).
	prefixLen := 2 + 32 + 1 + 32 + 2 + len(spec.CipherSuites)*2 + 1 + len(spec.CompressionMethods) + 2

	var list bytes.Buffer
	bodySoFar := prefixLen

	for _, e := range spec.Extensions {
		switch e.Kind {
		case KindSNI:
			e.ServerName = serverName
		case KindKeyShare:
			shares := make([]KeyShareEntry, len(e.KeyShares))
			for i, ks := range e.KeyShares {
				pub, err := generateKeyShare(ks.Group)
				if err != nil {
					return nil, err
				}
				shares[i] = KeyShareEntry{Group: ks.Group, PublicKey: pub}
			}
			e.KeyShares = shares
		}

		if err := e.Write(&list, bodySoFar); err != nil {
			return nil, err
		}
		bodySoFar = prefixLen + list.Len()
	}

	return list.Bytes(), nil
}

func newClientRandom() ([]byte, error) {
	var r [32]byte
	binary.BigEndian.PutUint32(r[0:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(r[4:]); err != nil {
		return nil, err
	}
	return r[:], nil
}

func newSessionID() ([]byte, error) {
	id := make([]byte, 32)
	if _, err := rand.Read(id); err != nil {
		return nil, err
	}
	return id, nil
}

func writeU24(buf *bytes.Buffer, v int) {
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}
