package core

import "testing"

func TestCountIncrementsExactlyOne(t *testing.T) {
	kinds := []FlagKind{KindSYN, KindSYNACK, KindACK, KindNone}
	for _, kind := range kinds {
		var c FlagCounters
		c.Count(kind)
		total := c.SYN + c.SYNACK + c.ACK
		if kind == KindNone {
			if total != 0 {
				t.Errorf("KindNone incremented a counter: %+v", c)
			}
			continue
		}
		if total != 1 {
			t.Errorf("Count(%v) incremented %d counters, want 1: %+v", kind, total, c)
		}
	}
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		name string
		c    FlagCounters
		want Verdict
	}{
		{"zero counters", FlagCounters{}, VerdictIncomplete},
		{"full handshake", FlagCounters{SYN: 1, SYNACK: 1, ACK: 1}, VerdictCompleted},
		{"syn only", FlagCounters{SYN: 1}, VerdictIncomplete},
		{"missing ack", FlagCounters{SYN: 1, SYNACK: 1}, VerdictIncomplete},
		{"missing synack", FlagCounters{SYN: 2, ACK: 7}, VerdictIncomplete},
		// Presence check only: counts need not reconcile to one handshake.
		{"repeated syns still complete", FlagCounters{SYN: 5, SYNACK: 1, ACK: 1}, VerdictCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Verdict(); got != tc.want {
				t.Errorf("Verdict() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVerdictString(t *testing.T) {
	if VerdictCompleted.String() != "completed" {
		t.Errorf("unexpected completed string: %s", VerdictCompleted)
	}
	if VerdictIncomplete.String() != "incomplete" {
		t.Errorf("unexpected incomplete string: %s", VerdictIncomplete)
	}
}
