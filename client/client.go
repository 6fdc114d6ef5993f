// Package client implements the HTTP Request Engine (§4.8, §4.9): the layer
// that drives a request over HTTP/1.1, HTTP/2, or HTTP/3 so the wire traffic
// matches a chosen browser Profile's TLS and framing behavior. Grounded on
// the donor's client.go (cookie jar, transport construction) generalized
// from a single hardcoded Chrome transport to a profile-parameterized
// fallback ladder across client/dialer.go, client/h2.go, client/h1.go, and
// client/h3.go.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
	"github.com/firasghr/browserprint/metrics"
)

// HttpClient drives requests for a fixed browser Profile, selecting a
// protocol layer per §4.8's fallback ladder: HTTP/3 when the profile
// supports it and the handshake succeeds, else HTTP/2, else HTTP/1.1.
//
// A per-client http.CookieJar (public-suffix aware) tracks cookies across
// requests and redirects, same as a real browser tab.
type HttpClient struct {
	cfg Config
	jar http.CookieJar

	h3 http.RoundTripper // nil when the profile does not prefer HTTP/3
	h2 http.RoundTripper
	h1 http.RoundTripper
}

// New constructs an HttpClient for cfg.Profile. cfg.Profile.Name must be
// set since every request needs a fingerprint to impersonate.
func New(cfg Config) (*HttpClient, error) {
	if cfg.Profile.Name == "" {
		return nil, newErr(ErrInvalidInput, "new", "", fmt.Errorf("client: Config.Profile is required"))
	}
	cfg = cfg.withDefaults()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, newErr(ErrIO, "new", "", fmt.Errorf("client: create cookie jar: %w", err))
	}

	c := &HttpClient{cfg: cfg, jar: jar}
	c.h2 = newH2Transport(cfg.Profile, cfg.Platform, cfg.AcceptInvalidCerts, cfg.ALPNProtocols, cfg.TimeoutConnect, cfg.Pool)
	c.h1 = newH1Transport(cfg.Profile, cfg.Platform, cfg.AcceptInvalidCerts, cfg.ALPNProtocols, cfg.TimeoutConnect, cfg.TimeoutFirstByte, cfg.Pool)
	if cfg.preferHTTP3() {
		c.h3 = newH3Transport(cfg.Profile, cfg.AcceptInvalidCerts, cfg.ALPNProtocols)
	}
	return c, nil
}

// Get issues a GET request against rawURL and returns the decoded Response.
func (c *HttpClient) Get(ctx context.Context, rawURL string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, newErr(ErrInvalidInput, "get", rawURL, err)
	}
	return c.Send(ctx, req)
}

// Post issues a POST request against rawURL with body, setting
// Content-Type when contentType is non-empty.
func (c *HttpClient) Post(ctx context.Context, rawURL, contentType string, body []byte) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, newErr(ErrInvalidInput, "post", rawURL, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.Send(ctx, req)
}

// Send executes req with the fallback ladder HTTP/3 → HTTP/2 → HTTP/1.1
// (§4.8, §7), following redirects up to cfg.MaxRedirects and re-rendering
// headers for the new host on each hop. The whole call, redirects included,
// is bounded by cfg.TimeoutTotal (§5); once it elapses any in-flight or
// subsequent round trip fails with ErrTimeout.
func (c *HttpClient) Send(ctx context.Context, req *http.Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.TimeoutTotal)
	defer cancel()
	req = req.WithContext(ctx)

	for redirects := 0; ; redirects++ {
		c.applyCookies(req)

		if c.cfg.Metrics != nil {
			c.cfg.Metrics.IncrementTotal()
		}
		resp, layer, err := c.roundTripWithFallback(req)
		if err != nil {
			if c.cfg.Metrics != nil {
				c.cfg.Metrics.IncrementFailed()
			}
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Response{}, newErr(ErrTimeout, "send", req.URL.Host, ctx.Err())
			}
			return Response{}, err
		}
		c.saveCookies(req, resp)

		out, err := fromHTTPResponse(resp, layer)
		if err != nil {
			return Response{}, err
		}

		if !isRedirect(out.StatusCode) {
			if c.cfg.Metrics != nil {
				c.cfg.Metrics.IncrementSuccess()
			}
			return out, nil
		}
		if redirects >= c.cfg.MaxRedirects {
			return Response{}, newErr(ErrTooManyRedirects, "redirect", req.URL.Host, fmt.Errorf("exceeded %d redirects", c.cfg.MaxRedirects))
		}

		loc := out.Header.Get("Location")
		nextURL, err := req.URL.Parse(loc)
		if err != nil {
			return Response{}, newErr(ErrProtocol, "redirect", req.URL.Host, err)
		}

		next, err := http.NewRequestWithContext(ctx, redirectMethod(req.Method, out.StatusCode), nextURL.String(), nil)
		if err != nil {
			return Response{}, newErr(ErrInvalidInput, "redirect", nextURL.Host, err)
		}
		req = next
	}
}

// roundTripWithFallback tries HTTP/3 (if configured), then HTTP/2, then
// HTTP/1.1, returning the layer that actually served the request.
func (c *HttpClient) roundTripWithFallback(req *http.Request) (*http.Response, Layer, error) {
	if req.URL.Scheme == "https" && c.h3 != nil {
		if resp, err := c.h3.RoundTrip(req.Clone(req.Context())); err == nil {
			return resp, LayerHTTP3, nil
		}
		// QUIC handshake or transport failure falls through to HTTP/2, per
		// §7's fallback-ladder rule.
		if c.cfg.Metrics != nil {
			c.cfg.Metrics.IncrementFallbackH3ToH2()
		}
	}

	if req.URL.Scheme == "https" {
		if resp, err := c.h2.RoundTrip(req.Clone(req.Context())); err == nil {
			return resp, LayerHTTP2, nil
		}
		if c.cfg.Metrics != nil {
			c.cfg.Metrics.IncrementFallbackH2ToH1()
		}
	}

	resp, err := c.h1.RoundTrip(req)
	if err != nil {
		return nil, LayerNone, newProtoErr(LayerHTTP1, "round_trip", req.URL.Host, err)
	}
	return resp, LayerHTTP1, nil
}

func (c *HttpClient) applyCookies(req *http.Request) {
	for _, ck := range c.jar.Cookies(req.URL) {
		req.AddCookie(ck)
	}
}

func (c *HttpClient) saveCookies(req *http.Request, resp *http.Response) {
	if rc := resp.Cookies(); len(rc) > 0 {
		c.jar.SetCookies(req.URL, rc)
	}
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// redirectMethod applies the same method-downgrade rules real browsers use:
// 303 always downgrades to GET; 301/302 downgrade POST to GET for
// compatibility with legacy servers.
func redirectMethod(method string, status int) string {
	if status == http.StatusSeeOther {
		return http.MethodGet
	}
	if (status == http.StatusMovedPermanently || status == http.StatusFound) && method == http.MethodPost {
		return http.MethodGet
	}
	return method
}

// Platform returns the platform this client renders headers/UA for.
func (c *HttpClient) Platform() headers.Platform { return c.cfg.Platform }

// Profile returns the browser profile this client impersonates.
func (c *HttpClient) Profile() catalog.Profile { return c.cfg.Profile }
