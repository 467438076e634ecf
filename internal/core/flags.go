package core

// TCP control-flag bits as they appear in the flags byte of the TCP header.
const (
	FlagSYN uint8 = 0x02
	FlagACK uint8 = 0x10
)

// FlagKind classifies a frame by its handshake-relevant control flags.
type FlagKind uint8

const (
	// KindNone marks frames that carry neither SYN nor ACK (pure FIN, RST,
	// PSH-only and so on). They contribute nothing to any counter.
	KindNone FlagKind = iota
	KindSYN
	KindSYNACK
	KindACK
)

// String returns the wire-style name of the flag kind.
func (k FlagKind) String() string {
	switch k {
	case KindSYN:
		return "SYN"
	case KindSYNACK:
		return "SYN-ACK"
	case KindACK:
		return "ACK"
	default:
		return "NONE"
	}
}

// ClassifyFlags maps a TCP flags byte to a FlagKind. The tests are mutually
// exclusive, first match wins: SYN+ACK, then SYN, then ACK, else none.
func ClassifyFlags(bits uint8) FlagKind {
	switch {
	case bits&FlagSYN != 0 && bits&FlagACK != 0:
		return KindSYNACK
	case bits&FlagSYN != 0:
		return KindSYN
	case bits&FlagACK != 0:
		return KindACK
	default:
		return KindNone
	}
}
