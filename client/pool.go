package client

import (
	"context"
	"net"
)

// Pool is the narrow connection-pool interface the engine consumes; per
// §1/§6 the pool implementation itself is an out-of-scope external
// collaborator. A nil Pool means the engine dials its own connection per
// request and relies on the transport's built-in keep-alive (HTTP/2) or
// closes it once the response body is drained (HTTP/1.1).
//
// Only client/h1.go's hand-rolled request/response cycle calls both Acquire
// and Release: it has full control over the connection's lifetime.
// client/h2.go calls Acquire (via the shared uTLSDialer) but never Release,
// since golang.org/x/net/http2.Transport multiplexes many requests over a
// connection it owns for an unbounded lifetime with no per-dial close hook.
// client/h3.go doesn't consult Pool at all: uQUIC dials its own UDP socket,
// and Pool's net.Conn return type has no QUIC/UDP analogue.
type Pool interface {
	Acquire(ctx context.Context, scheme, host, port string) (net.Conn, error)
	Release(conn net.Conn)
}
