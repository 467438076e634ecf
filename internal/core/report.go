package core

// ConnectionRecord is the per-connection result of one analysis run. A and B
// follow the canonical key order, which may match neither direction of the
// original traffic.
type ConnectionRecord struct {
	A       Endpoint
	B       Endpoint
	SYN     uint64
	SYNACK  uint64
	ACK     uint64
	Verdict Verdict
}

// Summary holds the run totals. Completed and Incomplete partition Total:
// every connection falls into exactly one bucket.
type Summary struct {
	Total      int
	Completed  int
	Incomplete int
}

// Report is the final output of one analysis run: connections in first-seen
// order plus the summary counts.
type Report struct {
	Connections []ConnectionRecord
	Summary     Summary
}
