package chello

import (
	utls "github.com/refraction-networking/utls"
)

// ToUTLSSpec translates a ClientHelloSpec into a utls.ClientHelloSpec so a
// real TLS handshake can be driven with our exact cipher and extension
// order. This is the "library reuse" side of Open Question (iii): the
// from-scratch Assemble above is the canonical byte producer used for
// fingerprint computation and the wire-shape tests in §8; this bridge is a
// best-effort reuse of the same declarative spec to drive a live uTLS
// handshake, and may diverge from Assemble's exact bytes in encoding
// minutiae uTLS itself owns (record fragmentation, internal padding
// bookkeeping). Random, session ID, and key-share bytes are regenerated by
// uTLS itself on handshake, not reused from Assemble's output.
func ToUTLSSpec(spec ClientHelloSpec) utls.ClientHelloSpec {
	out := utls.ClientHelloSpec{
		CipherSuites:       append([]uint16(nil), spec.CipherSuites...),
		CompressionMethods: append([]byte(nil), spec.CompressionMethods...),
		TLSVersMax:         utls.VersionTLS13,
		TLSVersMin:         utls.VersionTLS12,
	}

	for _, e := range spec.Extensions {
		if ext := toUTLSExtension(e); ext != nil {
			out.Extensions = append(out.Extensions, ext)
		}
	}
	return out
}

func toUTLSExtension(e Extension) utls.TLSExtension {
	switch e.Kind {
	case KindSNI:
		return &utls.SNIExtension{ServerName: e.ServerName}
	case KindSupportedVersions:
		return &utls.SupportedVersionsExtension{Versions: e.Versions}
	case KindSupportedGroups:
		curves := make([]utls.CurveID, len(e.Groups))
		for i, g := range e.Groups {
			curves[i] = utls.CurveID(g)
		}
		return &utls.SupportedCurvesExtension{Curves: curves}
	case KindSignatureAlgorithms:
		sigs := make([]utls.SignatureScheme, len(e.SignatureSchemes))
		for i, s := range e.SignatureSchemes {
			sigs[i] = utls.SignatureScheme(s)
		}
		return &utls.SignatureAlgorithmsExtension{SupportedSignatureAlgorithms: sigs}
	case KindKeyShare:
		shares := make([]utls.KeyShare, len(e.KeyShares))
		for i, ks := range e.KeyShares {
			shares[i] = utls.KeyShare{Group: utls.CurveID(ks.Group)}
		}
		return &utls.KeyShareExtension{KeyShares: shares}
	case KindALPN:
		return &utls.ALPNExtension{AlpnProtocols: append([]string(nil), e.Protocols...)}
	case KindPSKKeyExchangeModes:
		return &utls.PSKKeyExchangeModesExtension{Modes: append([]byte(nil), e.PSKModes...)}
	case KindApplicationSettings:
		return &utls.ApplicationSettingsExtension{SupportedProtocols: append([]string(nil), e.ALPS...)}
	case KindCompressCertificate:
		algs := make([]utls.CertCompressionAlgo, len(e.CompressionAlgorithms))
		for i, a := range e.CompressionAlgorithms {
			algs[i] = utls.CertCompressionAlgo(a)
		}
		return &utls.UtlsCompressCertExtension{Algorithms: algs}
	case KindRenegotiationInfo:
		return &utls.RenegotiationInfoExtension{Renegotiation: utls.RenegotiateOnceAsClient}
	case KindStatusRequest:
		return &utls.StatusRequestExtension{}
	case KindSessionTicket:
		return &utls.SessionTicketExtension{}
	case KindExtendedMasterSecret:
		return &utls.ExtendedMasterSecretExtension{}
	case KindSupportedPointFormats:
		return &utls.SupportedPointsExtension{SupportedPoints: append([]byte(nil), e.PointFormats...)}
	case KindSignedCertificateTimestamp:
		return &utls.SCTExtension{}
	case KindPadding:
		return &utls.UtlsPaddingExtension{GetPaddingLen: utls.BoringPaddingStyle}
	case KindGrease:
		return &utls.UtlsGREASEExtension{}
	case KindEncryptedClientHello:
		// uTLS has no stable public ECH-GREASE extension across the pinned
		// version; represented as a generic GREASE placeholder so the
		// extension count (relevant to JA4) still lines up.
		return &utls.UtlsGREASEExtension{}
	case KindRaw:
		return &utls.GenericExtension{Id: e.RawType, Data: append([]byte(nil), e.RawBody...)}
	default:
		return nil
	}
}
