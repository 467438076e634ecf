// Package file implements an offline pcap file source.
package file

import (
	"context"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"synaudit/internal/core"
	"synaudit/internal/source"
)

var _ source.Source = (*Source)(nil)

// Source reads frames from a capture file. The packet channel closes at EOF.
type Source struct {
	path    string
	handle  *pcap.Handle
	packets <-chan gopacket.Packet
}

func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("capture file path is required")
	}
	return &Source{path: path}, nil
}

// Start opens the pcap file. A missing or malformed file fails the whole run
// here; nothing downstream attempts to recover from it.
func (s *Source) Start(ctx context.Context) error {
	handle, err := pcap.OpenOffline(s.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", core.ErrCaptureRead, s.path, err)
	}
	s.handle = handle
	s.packets = gopacket.NewPacketSource(handle, handle.LinkType()).Packets()
	return nil
}

func (s *Source) Packets() <-chan gopacket.Packet {
	return s.packets
}

func (s *Source) Stop() error {
	if s.handle != nil {
		s.handle.Close()
		s.handle = nil
	}
	return nil
}
