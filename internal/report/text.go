package report

import (
	"fmt"
	"io"

	"synaudit/internal/core"
)

// TextSink writes the classic analyzer layout: a total line, one line per
// connection, then the completed/incomplete summary.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Write(rep *core.Report) error {
	if _, err := fmt.Fprintf(s.w, "total connections found: %d\n\n", rep.Summary.Total); err != nil {
		return err
	}
	for _, conn := range rep.Connections {
		_, err := fmt.Fprintf(s.w, "%s <-> %s | syn=%d synack=%d ack=%d | %s\n",
			conn.A, conn.B, conn.SYN, conn.SYNACK, conn.ACK, conn.Verdict)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(s.w, "\ncompleted: %d | incomplete: %d\n",
		rep.Summary.Completed, rep.Summary.Incomplete)
	return err
}
