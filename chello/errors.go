package chello

import "fmt"

// UnsupportedGroupError is returned by Assemble when a KeyShare entry names
// a group with no keygen implementation.
type UnsupportedGroupError struct {
	Group uint16
}

func (e *UnsupportedGroupError) Error() string {
	return fmt.Sprintf("chello: unsupported key-share group 0x%04x", e.Group)
}

// OversizedSpecError is returned by Assemble when the ClientHello handshake
// body would exceed the TLS record length limit (2^14 bytes) even with
// zero-length padding.
type OversizedSpecError struct {
	Size int
}

func (e *OversizedSpecError) Error() string {
	return fmt.Sprintf("chello: assembled ClientHello body of %d bytes exceeds the 16384-byte record limit", e.Size)
}
