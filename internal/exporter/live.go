// Package exporter exposes live handshake-audit state as Prometheus metrics.
package exporter

import (
	"sync"

	"github.com/google/gopacket"

	"synaudit/internal/analyzer"
	"synaudit/internal/core"
)

// Live wraps an analyzer for concurrent use: the capture goroutine folds
// frames in while Prometheus scrapes snapshot the table. The core analyzer
// stays single-threaded; all cross-goroutine access goes through this lock.
type Live struct {
	mu sync.Mutex
	a  *analyzer.Analyzer
}

func NewLive() *Live {
	return &Live{a: analyzer.New()}
}

// Consume folds one captured frame.
func (l *Live) Consume(pkt gopacket.Packet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Consume(pkt)
}

// Snapshot returns the current report and frame stats.
func (l *Live) Snapshot() (*core.Report, analyzer.Stats) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Report(), l.a.Stats()
}
