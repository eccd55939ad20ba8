// Package hwaddr parses and compares 6-byte hardware (MAC) addresses.
package hwaddr

import (
	"errors"
	"fmt"
	"net"
)

// Len is the number of bytes in an Ethernet hardware address.
const Len = 6

// textLen is the length of the canonical "aa:bb:cc:dd:ee:ff" form.
const textLen = Len*3 - 1

// ErrFormat is wrapped by every FormatError.
var ErrFormat = errors.New("invalid hardware address format")

// FormatError describes why a hardware address string was rejected.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrFormat.Error(), e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Addr is a hardware address. Two Addrs are equal when all six bytes match.
type Addr [Len]byte

// Parse decodes the canonical colon-separated form. The whole string must match.
func Parse(text string) (Addr, error) {
	var addr Addr
	if len(text) != textLen {
		return Addr{}, &FormatError{Input: text, Reason: fmt.Sprintf("expected %d characters, got %d", textLen, len(text))}
	}
	for i := 0; i < Len; i++ {
		pos := i * 3
		if i > 0 && text[pos-1] != ':' {
			return Addr{}, &FormatError{Input: text, Reason: fmt.Sprintf("expected ':' at position %d", pos-1)}
		}
		hi, ok1 := fromHex(text[pos])
		lo, ok2 := fromHex(text[pos+1])
		if !ok1 || !ok2 {
			return Addr{}, &FormatError{Input: text, Reason: fmt.Sprintf("invalid hex digit in group %d", i+1)}
		}
		addr[i] = hi<<4 | lo
	}
	return addr, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(text string) Addr {
	addr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return addr
}

// FromHardwareAddr converts a net.HardwareAddr, accepting only 6-byte addresses.
func FromHardwareAddr(hw net.HardwareAddr) (Addr, bool) {
	var addr Addr
	if len(hw) != Len {
		return addr, false
	}
	copy(addr[:], hw)
	return addr, true
}

// HardwareAddr returns a freshly allocated net.HardwareAddr.
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, Len)
	copy(hw, a[:])
	return hw
}

func (a Addr) String() string {
	return a.HardwareAddr().String()
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
