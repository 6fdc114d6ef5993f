// Package chello implements the Extension Model, ClientHelloSpec value
// object, and the byte-exact ClientHello Assembler.
//
// Go has no closed sum type, so the "tagged variant" extension model the
// design favors over dynamically-dispatched extension objects is expressed
// as a single Extension struct carrying a Kind discriminator plus the
// fields relevant to that kind; unused fields are left zero. Write is a
// switch over Kind, matching the exhaustiveness the design wants from a
// tagged union without reflection or interface boxing.
package chello

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/firasghr/browserprint/tlsdict"
)

// Kind discriminates an Extension's wire representation.
type Kind int

const (
	KindSNI Kind = iota
	KindSupportedVersions
	KindSupportedGroups
	KindSignatureAlgorithms
	KindKeyShare
	KindALPN
	KindPSKKeyExchangeModes
	KindEncryptedClientHello
	KindApplicationSettings
	KindCompressCertificate
	KindRenegotiationInfo
	KindStatusRequest
	KindSessionTicket
	KindExtendedMasterSecret
	KindSupportedPointFormats
	KindSignedCertificateTimestamp
	KindPadding
	KindGrease
	KindRaw
)

// KeyShareEntry is one {group, public_key_bytes} pair inside a KeyShare
// extension. PublicKey is a template value; Assemble substitutes a freshly
// generated ephemeral key for the declared Group.
type KeyShareEntry struct {
	Group     uint16
	PublicKey []byte
}

// Extension is the tagged-variant representation of a single TLS extension.
// Only the fields relevant to Kind are populated; see the Write switch for
// which fields each Kind reads.
type Extension struct {
	Kind Kind

	// KindSNI
	ServerName string

	// KindSupportedVersions
	Versions []uint16

	// KindSupportedGroups
	Groups []uint16

	// KindSignatureAlgorithms
	SignatureSchemes []uint16

	// KindKeyShare
	KeyShares []KeyShareEntry

	// KindALPN
	Protocols []string

	// KindPSKKeyExchangeModes
	PSKModes []byte

	// KindEncryptedClientHello
	ECHGrease bool
	ECHConfig []byte

	// KindApplicationSettings
	ALPS []string

	// KindCompressCertificate
	CompressionAlgorithms []uint16

	// KindRenegotiationInfo, KindSessionTicket
	Opaque []byte

	// KindSupportedPointFormats
	PointFormats []byte

	// KindPadding
	TargetRecordLength int

	// KindGrease
	GreaseID      uint16
	GreaseLength  int
	GreaseFillByte byte

	// KindRaw
	RawType uint16
	RawBody []byte
}

// TypeID returns the wire extension_type for e, resolving GREASE/Raw
// specially since those don't have a single fixed ID.
func (e Extension) TypeID() uint16 {
	switch e.Kind {
	case KindSNI:
		return tlsdict.ExtServerName
	case KindSupportedVersions:
		return tlsdict.ExtSupportedVersions
	case KindSupportedGroups:
		return tlsdict.ExtSupportedGroups
	case KindSignatureAlgorithms:
		return tlsdict.ExtSignatureAlgorithms
	case KindKeyShare:
		return tlsdict.ExtKeyShare
	case KindALPN:
		return tlsdict.ExtALPN
	case KindPSKKeyExchangeModes:
		return tlsdict.ExtPSKKeyExchangeModes
	case KindEncryptedClientHello:
		return tlsdict.ExtEncryptedClientHello
	case KindApplicationSettings:
		return tlsdict.ExtApplicationSettings
	case KindCompressCertificate:
		return tlsdict.ExtCompressCertificate
	case KindRenegotiationInfo:
		return tlsdict.ExtRenegotiationInfo
	case KindStatusRequest:
		return tlsdict.ExtStatusRequest
	case KindSessionTicket:
		return tlsdict.ExtSessionTicket
	case KindExtendedMasterSecret:
		return tlsdict.ExtExtendedMasterSecret
	case KindSupportedPointFormats:
		return tlsdict.ExtECPointFormats
	case KindSignedCertificateTimestamp:
		return tlsdict.ExtSignedCertTimestamp
	case KindPadding:
		return tlsdict.ExtPadding
	case KindGrease:
		return e.GreaseID
	case KindRaw:
		return e.RawType
	default:
		return 0
	}
}

// Write appends the extension's wire form (type_id, length, body) to buf.
// bodySoFar is the ClientHello handshake-body length computed so far
// (everything before this extension's own bytes); it is only consulted
// for KindPadding, which must be the last extension in a spec.
func (e Extension) Write(buf *bytes.Buffer, bodySoFar int) error {
	var body bytes.Buffer

	switch e.Kind {
	case KindSNI:
		// server_name_list: u16 len, then {name_type=0, u16 len, name}
		var name bytes.Buffer
		name.WriteByte(0x00)
		writeU16(&name, uint16(len(e.ServerName)))
		name.WriteString(e.ServerName)
		writeU16(&body, uint16(name.Len()))
		body.Write(name.Bytes())

	case KindSupportedVersions:
		body.WriteByte(byte(len(e.Versions) * 2))
		for _, v := range e.Versions {
			writeU16(&body, v)
		}

	case KindSupportedGroups:
		writeU16(&body, uint16(len(e.Groups)*2))
		for _, g := range e.Groups {
			writeU16(&body, g)
		}

	case KindSignatureAlgorithms:
		writeU16(&body, uint16(len(e.SignatureSchemes)*2))
		for _, s := range e.SignatureSchemes {
			writeU16(&body, s)
		}

	case KindKeyShare:
		var list bytes.Buffer
		for _, ks := range e.KeyShares {
			writeU16(&list, ks.Group)
			writeU16(&list, uint16(len(ks.PublicKey)))
			list.Write(ks.PublicKey)
		}
		writeU16(&body, uint16(list.Len()))
		body.Write(list.Bytes())

	case KindALPN:
		var list bytes.Buffer
		for _, p := range e.Protocols {
			list.WriteByte(byte(len(p)))
			list.WriteString(p)
		}
		writeU16(&body, uint16(list.Len()))
		body.Write(list.Bytes())

	case KindPSKKeyExchangeModes:
		body.WriteByte(byte(len(e.PSKModes)))
		body.Write(e.PSKModes)

	case KindEncryptedClientHello:
		if e.ECHGrease {
			// Well-known GREASE-ECH shape: a single placeholder config.
			body.Write([]byte{0xfe, 0x0d, 0x00, 0x00})
		} else {
			body.Write(e.ECHConfig)
		}

	case KindApplicationSettings:
		var list bytes.Buffer
		for _, p := range e.ALPS {
			list.WriteByte(byte(len(p)))
			list.WriteString(p)
		}
		writeU16(&body, uint16(list.Len()))
		body.Write(list.Bytes())

	case KindCompressCertificate:
		body.WriteByte(byte(len(e.CompressionAlgorithms) * 2))
		for _, a := range e.CompressionAlgorithms {
			writeU16(&body, a)
		}

	case KindRenegotiationInfo:
		body.WriteByte(byte(len(e.Opaque)))
		body.Write(e.Opaque)

	case KindStatusRequest:
		// certificate_status_type=ocsp(1), empty responder_id_list and
		// request_extensions, matching every mainstream browser capture.
		body.WriteByte(0x01)
		writeU16(&body, 0x0000)
		writeU16(&body, 0x0000)

	case KindSessionTicket:
		body.Write(e.Opaque)

	case KindExtendedMasterSecret:
		// empty body

	case KindSupportedPointFormats:
		body.WriteByte(byte(len(e.PointFormats)))
		body.Write(e.PointFormats)

	case KindSignedCertificateTimestamp:
		// empty body

	case KindPadding:
		// Header for this extension itself is 4 bytes (type+length); the
		// body fills whatever remains to reach TargetRecordLength.
		want := e.TargetRecordLength - bodySoFar - 4
		if want < 0 {
			return fmt.Errorf("chello: padding target %d already exceeded by %d bytes", e.TargetRecordLength, -want)
		}
		body.Write(make([]byte, want))

	case KindGrease:
		body.Write(bytesRepeat(e.GreaseFillByte, e.GreaseLength))

	case KindRaw:
		body.Write(e.RawBody)

	default:
		return fmt.Errorf("chello: unknown extension kind %d", e.Kind)
	}

	writeU16(buf, e.TypeID())
	writeU16(buf, uint16(body.Len()))
	buf.Write(body.Bytes())
	return nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func bytesRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
