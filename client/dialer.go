package client

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	utls "github.com/refraction-networking/utls"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/chello"
)

// uTLSDialer returns a DialTLSContext-compatible function that performs the
// TLS handshake with uTLS, impersonating profile's ClientHelloSpec via
// chello.ToUTLSSpec (§4.5's "library reuse" path; see chello/bridge.go for
// the divergence-risk this carries relative to the canonical Assemble/JA3
// byte producer). alpnProtocols sets the wire ALPN list (§6's
// Config.ALPNProtocols); connectTimeout bounds the raw TCP dial only, not the
// TLS handshake that follows it. When pool is non-nil its Acquire supplies
// the raw connection instead of a fresh net.Dialer.DialContext call (see
// client/pool.go for which call sites can Release it back). Safe for
// concurrent use; wireable into http.Transport or http2.Transport's
// DialTLSContext field.
func uTLSDialer(profile catalog.Profile, acceptInvalidCerts bool, alpnProtocols []string, connectTimeout time.Duration, pool Pool) func(ctx context.Context, network, addr string, tlsCfg *tls.Config) (net.Conn, error) {
	return func(ctx context.Context, network, addr string, tlsCfg *tls.Config) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, newErr(ErrInvalidInput, "dial", addr, err)
		}
		sni := host
		if tlsCfg != nil && tlsCfg.ServerName != "" {
			sni = tlsCfg.ServerName
		}

		var rawConn net.Conn
		if pool != nil {
			rawConn, err = pool.Acquire(ctx, "https", host, port)
		} else {
			d := net.Dialer{Timeout: connectTimeout}
			rawConn, err = d.DialContext(ctx, network, addr)
		}
		if err != nil {
			return nil, newErr(ErrIO, "dial", addr, err)
		}

		uCfg := &utls.Config{
			ServerName:         sni,
			InsecureSkipVerify: acceptInvalidCerts,
			NextProtos:         alpnProtocols,
		}

		uConn := utls.UClient(rawConn, uCfg, utls.HelloCustom)
		uSpec := chello.ToUTLSSpec(profile.Spec)
		if err := uConn.ApplyPreset(&uSpec); err != nil {
			_ = rawConn.Close()
			return nil, newErr(ErrTLS, "apply_preset", addr, err)
		}

		if err := uConn.HandshakeContext(ctx); err != nil {
			_ = uConn.Close()
			return nil, newErr(ErrTLS, "handshake", addr, err)
		}

		return uConn, nil
	}
}
