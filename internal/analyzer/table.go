package analyzer

import "synaudit/internal/core"

// Table accumulates flag counters per connection key. Counters are created
// lazily on first sighting; first-seen order is preserved so reports come out
// deterministic. A Table is owned by a single analysis run and must not be
// shared across goroutines without external locking.
type Table struct {
	counters map[core.ConnectionKey]*core.FlagCounters
	order    []core.ConnectionKey
}

func NewTable() *Table {
	return &Table{
		counters: make(map[core.ConnectionKey]*core.FlagCounters),
	}
}

// Observe folds one event into the table. The fold is commutative and
// associative, so event order never changes the final counts.
func (t *Table) Observe(ev core.Event) {
	c, seen := t.counters[ev.Key]
	if !seen {
		c = &core.FlagCounters{}
		t.counters[ev.Key] = c
		t.order = append(t.order, ev.Key)
	}
	c.Count(ev.Kind)
}

// Len returns the number of distinct connections observed so far.
func (t *Table) Len() int {
	return len(t.counters)
}

// Report snapshots the table into its final classified form. The table
// itself is left untouched, so live callers can keep folding afterwards.
func (t *Table) Report() *core.Report {
	rep := &core.Report{
		Connections: make([]core.ConnectionRecord, 0, len(t.order)),
	}
	for _, key := range t.order {
		c := t.counters[key]
		verdict := c.Verdict()
		rep.Connections = append(rep.Connections, core.ConnectionRecord{
			A:       key.A,
			B:       key.B,
			SYN:     c.SYN,
			SYNACK:  c.SYNACK,
			ACK:     c.ACK,
			Verdict: verdict,
		})
		if verdict == core.VerdictCompleted {
			rep.Summary.Completed++
		} else {
			rep.Summary.Incomplete++
		}
	}
	rep.Summary.Total = len(rep.Connections)
	return rep
}
