// Package core defines core data structures with zero external dependencies.
package core

import "net/netip"

// Endpoint identifies one side of a TCP connection.
type Endpoint struct {
	Addr netip.Addr
	Port uint16
}

// String formats the endpoint as "addr:port" ("[addr]:port" for IPv6).
func (e Endpoint) String() string {
	return netip.AddrPortFrom(e.Addr, e.Port).String()
}

// Less reports whether e orders before other, comparing address first and
// port second.
func (e Endpoint) Less(other Endpoint) bool {
	if c := e.Addr.Compare(other.Addr); c != 0 {
		return c < 0
	}
	return e.Port < other.Port
}

// ConnectionKey is the direction-independent identity of a TCP connection:
// the two endpoints in canonical order, so traffic in either direction maps
// to the same key. A is always the smaller endpoint.
//
// Known limitation: when more than two parties share an endpoint pair (e.g.
// spoofed or aggressively reused source ports), their traffic merges into a
// single key without any validation.
type ConnectionKey struct {
	A, B Endpoint
}

// NewConnectionKey canonicalizes the endpoint pair. For any endpoints a, b:
// NewConnectionKey(a, b) == NewConnectionKey(b, a).
func NewConnectionKey(a, b Endpoint) ConnectionKey {
	if b.Less(a) {
		a, b = b, a
	}
	return ConnectionKey{A: a, B: b}
}

// Event is one normalized control-flag observation attributed to a
// connection. It is the unit flowing from the frame filter to the aggregator.
type Event struct {
	Key  ConnectionKey
	Kind FlagKind
}
