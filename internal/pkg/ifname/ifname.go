// Package ifname converts interface names to and from the kernel's fixed-size name buffer.
package ifname

import (
	"errors"
	"strings"
)

const (
	// Size is the width of the kernel name buffer (IFNAMSIZ).
	Size = 16
	// MaxLen is the number of meaningful characters; the last byte is always NUL.
	MaxLen = Size - 1
)

var (
	ErrEmpty   = errors.New("interface name is empty")
	ErrTooLong = errors.New("interface name exceeds 15 characters")
	ErrInvalid = errors.New("interface name contains invalid characters")
)

// Name is the null-padded form of an interface name as it crosses the ioctl boundary.
type Name [Size]byte

// Encode copies up to MaxLen bytes of name into a null-padded buffer.
// Longer names are truncated without error; use Validate first if that is unacceptable.
func Encode(name string) Name {
	var buf Name
	for i := 0; i < MaxLen && i < len(name); i++ {
		if name[i] == 0 {
			break
		}
		buf[i] = name[i]
	}
	return buf
}

// Decode returns the string stored in buf up to the first NUL.
func Decode(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// String returns the decoded name.
func (n Name) String() string {
	return Decode(n[:])
}

// Validate reports whether the kernel would accept name as a device name.
func Validate(name string) error {
	switch {
	case name == "":
		return ErrEmpty
	case len(name) > MaxLen:
		return ErrTooLong
	case name == "." || name == "..":
		return ErrInvalid
	case strings.ContainsAny(name, "/: \t\n\r\v\f\x00"):
		return ErrInvalid
	}
	return nil
}
