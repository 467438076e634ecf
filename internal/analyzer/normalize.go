// Package analyzer reconstructs TCP connection identities from a packet
// stream and classifies each connection by handshake completeness.
package analyzer

import (
	"net/netip"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"synaudit/internal/core"
)

// Normalize turns one decoded frame into a connection event. Frames without
// an IP layer (v4 or v6) or without a TCP layer are skipped, as are TCP
// frames carrying neither SYN nor ACK; both cases report ok=false. The
// function is purely transformational and never mutates shared state.
func Normalize(pkt gopacket.Packet) (core.Event, bool) {
	srcAddr, dstAddr, ok := ipAddrs(pkt)
	if !ok {
		return core.Event{}, false
	}

	tcpLayer := pkt.Layer(layers.LayerTypeTCP)
	if tcpLayer == nil {
		return core.Event{}, false
	}
	tcp := tcpLayer.(*layers.TCP)

	var bits uint8
	if tcp.SYN {
		bits |= core.FlagSYN
	}
	if tcp.ACK {
		bits |= core.FlagACK
	}
	kind := core.ClassifyFlags(bits)
	if kind == core.KindNone {
		return core.Event{}, false
	}

	src := core.Endpoint{Addr: srcAddr, Port: uint16(tcp.SrcPort)}
	dst := core.Endpoint{Addr: dstAddr, Port: uint16(tcp.DstPort)}
	return core.Event{Key: core.NewConnectionKey(src, dst), Kind: kind}, true
}

// ipAddrs extracts the network-layer addresses from an IPv4 or IPv6 frame.
func ipAddrs(pkt gopacket.Packet) (src, dst netip.Addr, ok bool) {
	if l := pkt.Layer(layers.LayerTypeIPv4); l != nil {
		ip := l.(*layers.IPv4)
		src, _ = netip.AddrFromSlice(ip.SrcIP)
		dst, _ = netip.AddrFromSlice(ip.DstIP)
		return src.Unmap(), dst.Unmap(), src.IsValid() && dst.IsValid()
	}
	if l := pkt.Layer(layers.LayerTypeIPv6); l != nil {
		ip := l.(*layers.IPv6)
		src, _ = netip.AddrFromSlice(ip.SrcIP)
		dst, _ = netip.AddrFromSlice(ip.DstIP)
		return src, dst, src.IsValid() && dst.IsValid()
	}
	return netip.Addr{}, netip.Addr{}, false
}
