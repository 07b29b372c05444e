// Package netaddr models dotted-quad IPv4 addresses the way they appear in
// access logs: four numeric octets, optionally followed by ":port".
//
// Octets are parsed numerically and kept as plain ints without range
// validation, because log producers occasionally emit values outside 0-255
// and the analyzer must still group and order those records consistently.
// net/netip is deliberately not used here: it rejects such addresses.
package netaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is an IPv4 address as four numeric octets.
type Addr [4]int

// ParseAddr parses a dotted-quad address such as "145.25.32.15".
// It fails if the text does not have exactly four dot-separated
// numeric octets.
func ParseAddr(s string) (Addr, error) {
	var a Addr
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Addr{}, fmt.Errorf("invalid IPv4 address %q: expected 4 octets, got %d", s, len(parts))
	}
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Addr{}, fmt.Errorf("invalid octet %q in address %q: %w", part, s, err)
		}
		a[i] = v
	}
	return a, nil
}

// ParseHostPort parses "IP[:port]". A missing or empty port yields 0.
func ParseHostPort(s string) (Addr, int, error) {
	host := s
	port := 0
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		host = s[:colon]
		portStr := s[colon+1:]
		if portStr != "" {
			p, err := strconv.Atoi(portStr)
			if err != nil {
				return Addr{}, 0, fmt.Errorf("invalid port %q in %q: %w", portStr, s, err)
			}
			port = p
		}
	}
	addr, err := ParseAddr(host)
	if err != nil {
		return Addr{}, 0, err
	}
	return addr, port, nil
}

// Uint32 packs the address into a single 32-bit value for range comparisons:
// (o1<<24) | (o2<<16) | (o3<<8) | o4.
func (a Addr) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// Compare orders two addresses numerically, octet by octet from the left.
// It returns -1, 0 or +1. Numeric ordering is required so that e.g.
// 145.25.32.15 sorts before 145.25.178.65, which lexicographic string
// comparison would get wrong.
func (a Addr) Compare(b Addr) int {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a orders strictly before b numerically.
func (a Addr) Less(b Addr) bool {
	return a.Compare(b) < 0
}

// String renders the address in dotted-quad form.
func (a Addr) String() string {
	return strconv.Itoa(a[0]) + "." + strconv.Itoa(a[1]) + "." + strconv.Itoa(a[2]) + "." + strconv.Itoa(a[3])
}

// NetworkPrefix returns the coarse grouping key for an address string:
// the first two octets, e.g. "145.25.32.15" -> "145.25".
//
// If the input contains fewer than two dots it is returned unchanged.
// Propagating an empty key would silently merge every malformed address
// into one bucket, so the identity fallback is the uniform policy.
func NetworkPrefix(ip string) string {
	first := strings.IndexByte(ip, '.')
	if first < 0 {
		return ip
	}
	second := strings.IndexByte(ip[first+1:], '.')
	if second < 0 {
		return ip
	}
	return ip[:first+1+second]
}
