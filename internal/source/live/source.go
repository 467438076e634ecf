// Package live implements a live interface capture source.
package live

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"synaudit/internal/core"
	"synaudit/internal/source"
)

var _ source.Source = (*Source)(nil)

const defaultSnaplen = 262144

// Config controls the capture handle. Zero values fall back to sensible
// defaults (full snaplen, block forever).
type Config struct {
	Interface   string
	Snaplen     int
	Promiscuous bool
	Timeout     time.Duration
	BPF         string
}

// Source captures frames from a network interface until stopped.
type Source struct {
	cfg     Config
	handle  *pcap.Handle
	packets <-chan gopacket.Packet
}

func NewSource(cfg Config) (*Source, error) {
	if cfg.Interface == "" {
		return nil, fmt.Errorf("capture interface is required")
	}
	if cfg.Snaplen <= 0 {
		cfg.Snaplen = defaultSnaplen
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = pcap.BlockForever
	}
	return &Source{cfg: cfg}, nil
}

func (s *Source) Start(ctx context.Context) error {
	handle, err := pcap.OpenLive(s.cfg.Interface, int32(s.cfg.Snaplen), s.cfg.Promiscuous, s.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", core.ErrCaptureRead, s.cfg.Interface, err)
	}
	if s.cfg.BPF != "" {
		if err := handle.SetBPFFilter(s.cfg.BPF); err != nil {
			handle.Close()
			return fmt.Errorf("set bpf filter %q: %w", s.cfg.BPF, err)
		}
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
