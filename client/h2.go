package client

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http2"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
)

// The settings* constants mirror the RFC 7540 §6.5.2 identifiers a
// Profile.HTTP2Settings entry may carry.
const (
	settingsHeaderTableSize      uint16 = 0x1
	settingsEnablePush           uint16 = 0x2
	settingsMaxConcurrentStreams uint16 = 0x3
	settingsInitialWindowSize    uint16 = 0x4
	settingsMaxFrameSize         uint16 = 0x5
	settingsMaxHeaderListSize    uint16 = 0x6
)

// newH2Transport builds an http.RoundTripper that drives HTTP/2 over a
// uTLS-fingerprinted connection, applying profile's declared SETTINGS
// values and rendered headers to every request.
//
// Note on pseudo-header ordering: golang.org/x/net/http2 does not expose an
// API for reordering pseudo-headers (:method, :authority, :scheme, :path) —
// it always writes them in its own internal order. Profile.HTTP2PseudoOrder
// therefore documents the target order without being wire-enforceable
// through this transport; achieving it would require a patched or
// hand-rolled HPACK/framing layer, out of scope here.
//
// Note on SETTINGS coverage: http2.Transport only exposes knobs for
// HEADER_TABLE_SIZE, MAX_HEADER_LIST_SIZE, and MAX_FRAME_SIZE. A profile's
// HTTP2Settings may also carry ENABLE_PUSH (0x2), MAX_CONCURRENT_STREAMS
// (0x3), and INITIAL_WINDOW_SIZE (0x4); the switch below has no case for
// these and they are silently dropped from the wire SETTINGS frame — the
// library gives no way to set them on an HTTP/2 client.
func newH2Transport(profile catalog.Profile, platform headers.Platform, acceptInvalidCerts bool, alpnProtocols []string, connectTimeout time.Duration, pool Pool) http.RoundTripper {
	dial := uTLSDialer(profile, acceptInvalidCerts, alpnProtocols, connectTimeout, pool)

	h2t := &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, tlsCfg *tls.Config) (net.Conn, error) {
			return dial(ctx, network, addr, tlsCfg)
		},
		DisableCompression: false,
		IdleConnTimeout:    90 * time.Second,
	}

	for _, s := range profile.HTTP2Settings {
		switch s.ID {
		case settingsHeaderTableSize:
			h2t.MaxDecoderHeaderTableSize = s.Value
			h2t.MaxEncoderHeaderTableSize = s.Value
		case settingsMaxHeaderListSize:
			h2t.MaxHeaderListSize = s.Value
		case settingsMaxFrameSize:
			h2t.MaxReadFrameSize = s.Value
		}
	}

	return &profileRoundTripper{h2: h2t, profile: profile, platform: platform}
}

// profileRoundTripper overlays a profile's ordered headers onto every
// outgoing request before delegating to the underlying http2.Transport.
type profileRoundTripper struct {
	h2       *http2.Transport
	profile  catalog.Profile
	platform headers.Platform
}

// RoundTrip clones req, applies the profile's rendered header order
// (caller-set headers win over the profile defaults), and forwards to the
// wrapped http2.Transport.
func (t *profileRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	defaults := FromProfile(t.profile, t.platform, r.URL.Host)
	callerHeaders := r.Header
	defaults.ApplyToRequest(r)
	for key, vals := range callerHeaders {
		for k := range r.Header {
			if strings.EqualFold(k, key) {
				delete(r.Header, k)
			}
		}
		r.Header[key] = append([]string(nil), vals...)
	}

	return t.h2.RoundTrip(r)
}
