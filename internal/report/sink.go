// Package report renders classified connection reports to output sinks.
package report

import "synaudit/internal/core"

// Sink receives one finished report. Formatting and destination are entirely
// the sink's concern; the analyzer never sees write failures.
type Sink interface {
	Write(rep *core.Report) error
}

// connectionDoc is the serializable form of one connection record, shared by
// the json, yaml and kafka sinks.
type connectionDoc struct {
	EndpointA string `json:"endpoint_a" yaml:"endpoint_a"`
	EndpointB string `json:"endpoint_b" yaml:"endpoint_b"`
	SYN       uint64 `json:"syn" yaml:"syn"`
	SYNACK    uint64 `json:"synack" yaml:"synack"`
	ACK       uint64 `json:"ack" yaml:"ack"`
	Verdict   string `json:"verdict" yaml:"verdict"`
}

type summaryDoc struct {
	Total      int `json:"total" yaml:"total"`
	Completed  int `json:"completed" yaml:"completed"`
	Incomplete int `json:"incomplete" yaml:"incomplete"`
}

type reportDoc struct {
	Connections []connectionDoc `json:"connections" yaml:"connections"`
	Summary     summaryDoc      `json:"summary" yaml:"summary"`
}

func toDoc(rep *core.Report) reportDoc {
	doc := reportDoc{
		Connections: make([]connectionDoc, 0, len(rep.Connections)),
		Summary: summaryDoc{
			Total:      rep.Summary.Total,
			Completed:  rep.Summary.Completed,
			Incomplete: rep.Summary.Incomplete,
		},
	}
	for _, conn := range rep.Connections {
		doc.Connections = append(doc.Connections, connectionDoc{
			EndpointA: conn.A.String(),
			EndpointB: conn.B.String(),
			SYN:       conn.SYN,
			SYNACK:    conn.SYNACK,
			ACK:       conn.ACK,
			Verdict:   conn.Verdict.String(),
		})
	}
	return doc
}
