package chello

import (
	"crypto/ecdh"
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"github.com/firasghr/browserprint/tlsdict"
)

// generateKeyShare produces a fresh ephemeral public key for group, per
// §4.5: "at minimum X25519, secp256r1, secp384r1". X25519 uses
// golang.org/x/crypto/curve25519 directly (the donor's go.mod already
// carries golang.org/x/crypto; this is the component that exercises it);
// the NIST curves use the standard library's crypto/ecdh.
func generateKeyShare(group uint16) ([]byte, error) {
	if group == tlsdict.GroupX25519 {
		var priv [32]byte
		if _, err := rand.Read(priv[:]); err != nil {
			return nil, err
		}
		pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
		if err != nil {
			return nil, err
		}
		return pub, nil
	}

	var curve ecdh.Curve
	switch group {
	case tlsdict.GroupSecp256r1:
		curve = ecdh.P256()
	case tlsdict.GroupSecp384r1:
		curve = ecdh.P384()
	case tlsdict.GroupSecp521r1:
		curve = ecdh.P521()
	default:
		return nil, &UnsupportedGroupError{Group: group}
	}

	key, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return key.PublicKey().Bytes(), nil
}
