package analyzer

import (
	"context"

	"github.com/google/gopacket"

	"synaudit/internal/core"
)

// Stats counts frames handled by one analysis run. Skipped covers frames
// without IP or TCP layers and TCP frames with no handshake-relevant flags.
type Stats struct {
	Frames  uint64
	Skipped uint64
}

// Analyzer folds a packet stream into a connection table. It is
// single-threaded: one goroutine feeds Consume (or Run) for the duration of
// a run.
type Analyzer struct {
	table *Table
	stats Stats
}

func New() *Analyzer {
	return &Analyzer{table: NewTable()}
}

// Consume normalizes one frame and folds its event into the table. Frames
// that produce no event are counted as skipped and otherwise ignored; there
// is no error path here.
func (a *Analyzer) Consume(pkt gopacket.Packet) {
	a.stats.Frames++
	ev, ok := Normalize(pkt)
	if !ok {
		a.stats.Skipped++
		return
	}
	a.table.Observe(ev)
}

// Run consumes packets until the channel closes or the context is cancelled,
// then returns the classified report. An empty stream yields an empty report
// with zero summary counts, not an error; cancellation simply reports over
// whatever prefix of the stream was folded.
func (a *Analyzer) Run(ctx context.Context, packets <-chan gopacket.Packet) *core.Report {
	for {
		select {
		case <-ctx.Done():
			return a.Report()
		case pkt, ok := <-packets:
			if !ok {
				return a.Report()
			}
			a.Consume(pkt)
		}
	}
}

// Report snapshots the current table state.
func (a *Analyzer) Report() *core.Report {
	return a.table.Report()
}

// Stats returns the frame counts for the run so far.
func (a *Analyzer) Stats() Stats {
	return a.stats
}
