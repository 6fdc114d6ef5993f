package client

import (
	"crypto/tls"
	"net/http"

	uquic "github.com/refraction-networking/uquic"
	"github.com/refraction-networking/uquic/http3"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/chello"
)

// newH3Transport builds an http.RoundTripper that negotiates HTTP/3 over a
// uQUIC connection fingerprinted from profile's ClientHelloSpec, mirroring
// the QUIC Initial Packet + TLS ClientHello fingerprinting pattern from the
// grounding corpus's http3_fingerprint_debug example. h3 reuses
// chello.ToUTLSSpec to build the TLS side of the handshake the same way the
// TCP dialer does, since uQUIC's ClientHelloSpec type is uTLS's.
func newH3Transport(profile catalog.Profile, acceptInvalidCerts bool, alpnProtocols []string) http.RoundTripper {
	next := alpnProtocols
	if len(next) == 0 {
		next = []string{"h3"}
	}
	tlsCfg := &tls.Config{
		NextProtos:         next,
		InsecureSkipVerify: acceptInvalidCerts,
	}

	uSpec := chello.ToUTLSSpec(profile.Spec)
	quicSpec := uquic.QUICSpec{
		ClientHelloSpec: &uSpec,
		UDPDatagramMinSize: 1200,
	}

	return &http3.RoundTripper{
		TLSClientConfig: tlsCfg,
		QuicSpec:        &quicSpec,
		QuicConfig:      &uquic.Config{},
	}
}
