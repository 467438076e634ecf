package core

// Verdict is the handshake-completeness classification of one connection.
type Verdict uint8

const (
	VerdictIncomplete Verdict = iota
	VerdictCompleted
)

func (v Verdict) String() string {
	if v == VerdictCompleted {
		return "completed"
	}
	return "incomplete"
}

// FlagCounters tallies handshake control-flag events for one connection.
// Counters only ever increase; the zero value is ready to use.
type FlagCounters struct {
	SYN    uint64
	SYNACK uint64
	ACK    uint64
}

// Count records one event of the given kind. KindNone is a no-op, so callers
// may feed every classified frame through without pre-filtering.
func (c *FlagCounters) Count(kind FlagKind) {
	switch kind {
	case KindSYN:
		c.SYN++
	case KindSYNACK:
		c.SYNACK++
	case KindACK:
		c.ACK++
	}
}

// Verdict derives the classification from the current counter values. This is
// a presence check only: at least one of each of SYN, SYN-ACK and ACK means
// completed. It does not verify ordering, nor that the counts reconcile to
// exactly one handshake (5 SYNs and 1 of each other flag still completes).
func (c *FlagCounters) Verdict() Verdict {
	if c.SYN >= 1 && c.SYNACK >= 1 && c.ACK >= 1 {
		return VerdictCompleted
	}
	return VerdictIncomplete
}
