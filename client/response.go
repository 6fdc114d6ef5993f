package client

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Response is the engine's wire-agnostic result of Send: identical whether
// the request traveled over HTTP/1.1, HTTP/2, or HTTP/3 (§4.8, §4.9).
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Layer      Layer
}

// decodeBody transparently reverses Content-Encoding (gzip, deflate, br) so
// callers always see the decoded payload, matching §4.8's contract that the
// engine — not the caller — owns compression negotiation.
func decodeBody(raw []byte, contentEncoding string) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(contentEncoding))
	switch enc {
	case "", "identity":
		return raw, nil
	case "gzip":
		r, err := gzip.NewReader(strings.NewReader(string(raw)))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case "deflate":
		r := flate.NewReader(strings.NewReader(string(raw)))
		defer r.Close()
		return io.ReadAll(r)
	case "br":
		r := brotli.NewReader(strings.NewReader(string(raw)))
		return io.ReadAll(r)
	default:
		return raw, nil
	}
}

// fromHTTPResponse converts a *http.Response (as produced by the h1/h2
// RoundTrippers) into a Response, decoding any Content-Encoding along the
// way and tolerating an io.ErrUnexpectedEOF once the declared/observed body
// has been fully read (§7's truncation-tolerance rule).
func fromHTTPResponse(resp *http.Response, layer Layer) (Response, error) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil && err != io.ErrUnexpectedEOF {
		return Response{}, newProtoErr(layer, "read_body", resp.Request.URL.Host, err)
	}

	decoded, derr := decodeBody(raw, resp.Header.Get("Content-Encoding"))
	if derr != nil {
		return Response{}, newProtoErr(layer, "decode_body", resp.Request.URL.Host, derr)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       decoded,
		Layer:      layer,
	}, nil
}
