package exporter

import (
	"net"
	"strings"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func synFrame(t *testing.T, srcIP, dstIP string, srcPort, dstPort uint16, syn, ack bool) gopacket.Packet {
	t.Helper()

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.ParseIP(srcIP),
		DstIP:    net.ParseIP(dstIP),
	}
	tcp := &layers.TCP{
		SrcPort: layers.TCPPort(srcPort),
		DstPort: layers.TCPPort(dstPort),
		SYN:     syn,
		ACK:     ack,
	}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("SetNetworkLayerForChecksum failed: %v", err)
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
		t.Fatalf("SerializeLayers failed: %v", err)
	}
	return gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
}

func TestCollectorSnapshot(t *testing.T) {
	live := NewLive()
	live.Consume(synFrame(t, "10.0.0.1", "10.0.0.2", 1000, 443, true, false))

	collector := NewCollector(live)

	expected := `
# HELP synaudit_connections Number of tracked TCP connections by handshake verdict.
# TYPE synaudit_connections gauge
synaudit_connections{verdict="completed"} 0
synaudit_connections{verdict="incomplete"} 1
# HELP synaudit_frames_total Total frames delivered by the capture source.
# TYPE synaudit_frames_total counter
synaudit_frames_total 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"synaudit_connections", "synaudit_frames_total")
	if err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestCollectorCompletedHandshake(t *testing.T) {
	live := NewLive()
	live.Consume(synFrame(t, "10.0.0.1", "10.0.0.2", 1000, 443, true, false))
	live.Consume(synFrame(t, "10.0.0.2", "10.0.0.1", 443, 1000, true, true))
	live.Consume(synFrame(t, "10.0.0.1", "10.0.0.2", 1000, 443, false, true))

	collector := NewCollector(live)

	expected := `
# HELP synaudit_connections Number of tracked TCP connections by handshake verdict.
# TYPE synaudit_connections gauge
synaudit_connections{verdict="completed"} 1
synaudit_connections{verdict="incomplete"} 0
# HELP synaudit_flag_events_total Total handshake control-flag events folded into the connection table.
# TYPE synaudit_flag_events_total counter
synaudit_flag_events_total{kind="ACK"} 1
synaudit_flag_events_total{kind="SYN"} 1
synaudit_flag_events_total{kind="SYN-ACK"} 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"synaudit_connections", "synaudit_flag_events_total")
	if err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}
