package client

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
)

// h1RoundTripper emits HTTP/1.1 requests directly onto a uTLS-fingerprinted
// connection: request-line, ordered headers (exact casing, exact order),
// CRLFCRLF, optional body — bypassing net/http's own header writer so the
// wire order matches the profile exactly (§4.8).
type h1RoundTripper struct {
	profile            catalog.Profile
	platform           headers.Platform
	acceptInvalidCerts bool
	alpnProtocols      []string
	connectTimeout     time.Duration
	firstByteTimeout   time.Duration
	pool               Pool
}

func newH1Transport(profile catalog.Profile, platform headers.Platform, acceptInvalidCerts bool, alpnProtocols []string, connectTimeout, firstByteTimeout time.Duration, pool Pool) *h1RoundTripper {
	return &h1RoundTripper{
		profile:            profile,
		platform:           platform,
		acceptInvalidCerts: acceptInvalidCerts,
		alpnProtocols:      alpnProtocols,
		connectTimeout:     connectTimeout,
		firstByteTimeout:   firstByteTimeout,
		pool:               pool,
	}
}

func (t *h1RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	addr := req.URL.Host
	if req.URL.Port() == "" {
		if req.URL.Scheme == "https" {
			addr = net.JoinHostPort(req.URL.Hostname(), "443")
		} else {
			addr = net.JoinHostPort(req.URL.Hostname(), "80")
		}
	}

	var conn net.Conn
	var err error
	if req.URL.Scheme == "https" {
		dial := uTLSDialer(t.profile, t.acceptInvalidCerts, t.alpnProtocols, t.connectTimeout, t.pool)
		conn, err = dial(ctx, "tcp", addr, &tls.Config{ServerName: req.URL.Hostname()})
	} else if t.pool != nil {
		host, port, splitErr := net.SplitHostPort(addr)
		if splitErr != nil {
			return nil, newErr(ErrInvalidInput, "dial", addr, splitErr)
		}
		conn, err = t.pool.Acquire(ctx, "http", host, port)
	} else {
		d := net.Dialer{Timeout: t.connectTimeout}
		conn, err = d.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, newErr(ErrIO, "dial", addr, err)
	}

	ordered := FromProfile(t.profile, t.platform, req.URL.Host)
	overlayCallerHeaders(ordered, req.Header)

	if err := writeRequestLine(conn, req); err != nil {
		t.releaseConn(conn)
		return nil, newProtoErr(LayerHTTP1, "write_request_line", addr, err)
	}
	if err := writeOrderedHeaders(conn, ordered, req); err != nil {
		t.releaseConn(conn)
		return nil, newProtoErr(LayerHTTP1, "write_headers", addr, err)
	}
	if req.Body != nil {
		if _, err := io.Copy(conn, req.Body); err != nil {
			t.releaseConn(conn)
			return nil, newProtoErr(LayerHTTP1, "write_body", addr, err)
		}
	}

	if t.firstByteTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(t.firstByteTimeout))
	}

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, req)
	if err != nil {
		t.releaseConn(conn)
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, newErr(ErrTimeout, "read_response", addr, err)
		}
		return nil, newProtoErr(LayerHTTP1, "read_response", addr, err)
	}
	_ = conn.SetReadDeadline(time.Time{})
	resp.Body = &releasingBody{ReadCloser: resp.Body, release: func() { t.releaseConn(conn) }}
	return resp, nil
}

// releaseConn returns conn to t.pool when one is configured, or closes it
// directly otherwise.
func (t *h1RoundTripper) releaseConn(conn net.Conn) {
	if t.pool != nil {
		t.pool.Release(conn)
		return
	}
	_ = conn.Close()
}

// releasingBody wraps an *http.Response's Body so that closing it — the
// caller's signal it's done with the response — also returns the underlying
// connection to the pool (or closes it) exactly once.
type releasingBody struct {
	io.ReadCloser
	release func()
	done    bool
}

func (b *releasingBody) Close() error {
	err := b.ReadCloser.Close()
	if !b.done {
		b.done = true
		b.release()
	}
	return err
}

// overlayCallerHeaders merges caller-set headers (Cookie, Authorization,
// …) into the profile's defaults: a name the profile already carries takes
// the caller's value in the profile's position, so the caller wins without
// discarding the profile's ordering; other names are appended after the
// defaults.
func overlayCallerHeaders(ordered *OrderedHeader, callerHeaders http.Header) {
	for key, vals := range callerHeaders {
		for i, v := range vals {
			if i == 0 {
				ordered.Set(key, v)
			} else {
				ordered.Add(key, v)
			}
		}
	}
}

func writeRequestLine(w io.Writer, req *http.Request) error {
	path := req.URL.RequestURI()
	_, err := fmt.Fprintf(w, "%s %s HTTP/1.1\r\n", req.Method, path)
	return err
}

// writeOrderedHeaders writes ordered's entries in their exact insertion order
// and casing, synthesizing Host first only when the template didn't already
// supply one. A known Content-Length is injected immediately after Host's
// actual position — whether that's the template's own Host entry or the
// synthesized one — so §8's "regular-header order equals P.header_template"
// property holds for POST requests even though Content-Length itself isn't
// part of any template.
func writeOrderedHeaders(w io.Writer, ordered *OrderedHeader, req *http.Request) error {
	needCL := req.ContentLength > 0 && ordered.Get("Content-Length") == ""

	if ordered.Get("Host") == "" {
		if _, err := fmt.Fprintf(w, "Host: %s\r\n", req.URL.Host); err != nil {
			return err
		}
		if needCL {
			if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n", req.ContentLength); err != nil {
				return err
			}
			needCL = false
		}
	}

	for _, e := range orderedEntries(ordered) {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", e.key, e.value); err != nil {
			return err
		}
		if needCL && strings.EqualFold(e.key, "Host") {
			if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n", req.ContentLength); err != nil {
				return err
			}
			needCL = false
		}
	}

	if needCL {
		if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n", req.ContentLength); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\r\n")
	return err
}

// orderedEntries exposes ordered's internal entries for wire writing.
func orderedEntries(h *OrderedHeader) []headerEntry {
	return h.entries
}
