package core

import (
	"net/netip"
	"testing"
)

func ep(addr string, port uint16) Endpoint {
	return Endpoint{Addr: netip.MustParseAddr(addr), Port: port}
}

func TestNewConnectionKeySymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Endpoint
	}{
		{"v4 distinct addrs", ep("192.168.1.10", 34512), ep("10.0.0.1", 443)},
		{"v4 same addr different ports", ep("10.0.0.1", 8080), ep("10.0.0.1", 443)},
		{"v6", ep("2001:db8::1", 5060), ep("2001:db8::2", 5061)},
		{"mixed v4 v6", ep("10.0.0.1", 80), ep("2001:db8::1", 80)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forward := NewConnectionKey(tc.a, tc.b)
			reverse := NewConnectionKey(tc.b, tc.a)
			if forward != reverse {
				t.Errorf("key(a,b) != key(b,a): %v vs %v", forward, reverse)
			}
			if forward.B.Less(forward.A) {
				t.Errorf("key not canonically ordered: %v", forward)
			}
		})
	}
}

func TestNewConnectionKeyIdentical(t *testing.T) {
	a := ep("10.0.0.1", 80)
	key := NewConnectionKey(a, a)
	if key.A != a || key.B != a {
		t.Errorf("expected both sides %v, got %v", a, key)
	}
}

func TestEndpointLess(t *testing.T) {
	if !ep("10.0.0.1", 80).Less(ep("10.0.0.2", 80)) {
		t.Error("expected address comparison to dominate")
	}
	if !ep("10.0.0.1", 80).Less(ep("10.0.0.1", 443)) {
		t.Error("expected port to break address ties")
	}
	if ep("10.0.0.1", 80).Less(ep("10.0.0.1", 80)) {
		t.Error("expected equal endpoints to not be less")
	}
}

func TestEndpointString(t *testing.T) {
	if got := ep("192.168.1.1", 8080).String(); got != "192.168.1.1:8080" {
		t.Errorf("expected 192.168.1.1:8080, got %s", got)
	}
	if got := ep("2001:db8::1", 443).String(); got != "[2001:db8::1]:443" {
		t.Errorf("expected [2001:db8::1]:443, got %s", got)
	}
}
