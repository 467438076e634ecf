// Package source abstracts where captured frames come from.
package source

import (
	"context"

	"github.com/google/gopacket"
)

// Source yields decoded frames from a capture origin (offline file or live
// interface). Start must be called before Packets; the packet channel closes
// when the origin is exhausted or the source is stopped.
type Source interface {
	Start(ctx context.Context) error
	Packets() <-chan gopacket.Packet
	Stop() error
}
