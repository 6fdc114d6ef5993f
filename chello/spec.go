package chello

// ClientHelloSpec is the immutable value object describing one browser's
// TLS ClientHello shape: version, cipher list, compression list, and
// ordered extension list. It carries no live bytes — Random, session id,
// and key-share public keys are generated fresh by Assemble.
//
// Extensions ordering is canonical for the profile it was built from;
// removing GREASE (and, for JA4, re-sorting) yields the normalized form
// the fingerprint engine hashes.
type ClientHelloSpec struct {
	TLSVersionRecord    uint16
	CipherSuites        []uint16
	CompressionMethods  []byte
	Extensions          []Extension
}

// Clone returns a shallow copy of spec; since the backing slices are never
// mutated in place once a spec is constructed, sharing their storage across
// clones is safe.
func (s ClientHelloSpec) Clone() ClientHelloSpec {
	return ClientHelloSpec{
		TLSVersionRecord:   s.TLSVersionRecord,
		CipherSuites:       s.CipherSuites,
		CompressionMethods: s.CompressionMethods,
		Extensions:         s.Extensions,
	}
}

// SNI returns the server_name template value, or "" if the spec carries no
// SNI extension.
func (s ClientHelloSpec) SNI() string {
	for _, e := range s.Extensions {
		if e.Kind == KindSNI {
			return e.ServerName
		}
	}
	return ""
}

// ALPN returns the ALPN protocol list in declared order, or nil.
func (s ClientHelloSpec) ALPN() []string {
	for _, e := range s.Extensions {
		if e.Kind == KindALPN {
			return e.Protocols
		}
	}
	return nil
}

// SupportedVersions returns the SupportedVersions extension's ordered list,
// or nil if absent.
func (s ClientHelloSpec) SupportedVersions() []uint16 {
	for _, e := range s.Extensions {
		if e.Kind == KindSupportedVersions {
			return e.Versions
		}
	}
	return nil
}

// Curves returns the SupportedGroups extension's ordered list, or nil.
func (s ClientHelloSpec) Curves() []uint16 {
	for _, e := range s.Extensions {
		if e.Kind == KindSupportedGroups {
			return e.Groups
		}
	}
	return nil
}

// SignatureAlgorithms returns the SignatureAlgorithms extension's ordered
// list, or nil.
func (s ClientHelloSpec) SignatureAlgorithms() []uint16 {
	for _, e := range s.Extensions {
		if e.Kind == KindSignatureAlgorithms {
			return e.SignatureSchemes
		}
	}
	return nil
}

// PointFormats returns the SupportedPointFormats body, or nil.
func (s ClientHelloSpec) PointFormats() []byte {
	for _, e := range s.Extensions {
		if e.Kind == KindSupportedPointFormats {
			return e.PointFormats
		}
	}
	return nil
}

// ExtensionTypeIDsInOrder returns the wire type IDs of Extensions, in the
// spec's declared order, including GREASE and Padding entries.
func (s ClientHelloSpec) ExtensionTypeIDsInOrder() []uint16 {
	ids := make([]uint16, len(s.Extensions))
	for i, e := range s.Extensions {
		ids[i] = e.TypeID()
	}
	return ids
}

// HighestSupportedVersion returns the highest version named in the spec's
// SupportedVersions extension, falling back to TLSVersionRecord if absent.
func (s ClientHelloSpec) HighestSupportedVersion() uint16 {
	versions := s.SupportedVersions()
	if len(versions) == 0 {
		return s.TLSVersionRecord
	}
	max := versions[0]
	for _, v := range versions[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
