//go:build unit

package ifname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Run("ShortName", func(t *testing.T) {
		buf := Encode("wan0")
		assert.Equal(t, []byte("wan0"), buf[:4])
		for _, c := range buf[4:] {
			assert.Equal(t, byte(0), c)
		}
		assert.Equal(t, "wan0", buf.String())
	})

	t.Run("ExactlyMaxLen", func(t *testing.T) {
		name := strings.Repeat("a", MaxLen)
		buf := Encode(name)
		assert.Equal(t, name, buf.String())
		assert.Equal(t, byte(0), buf[Size-1])
	})

	t.Run("TruncatesLongName", func(t *testing.T) {
		name := "enp0s20f0u1u2u3u4"
		buf := Encode(name)
		assert.Equal(t, name[:MaxLen], buf.String())
		assert.Equal(t, byte(0), buf[Size-1])
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Name{}, Encode(""))
	})

	t.Run("StopsAtEmbeddedNUL", func(t *testing.T) {
		assert.Equal(t, "eth", Encode("eth\x00junk").String())
	})
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "eth0", Decode([]byte{'e', 't', 'h', '0', 0, 'x'}))
	assert.Equal(t, "abc", Decode([]byte("abc")))
	assert.Equal(t, "", Decode(nil))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"Valid", "wan0", nil},
		{"MaxLen", strings.Repeat("x", MaxLen), nil},
		{"Empty", "", ErrEmpty},
		{"TooLong", strings.Repeat("x", MaxLen+1), ErrTooLong},
		{"Dot", ".", ErrInvalid},
		{"DotDot", "..", ErrInvalid},
		{"Slash", "eth/0", ErrInvalid},
		{"Colon", "eth0:1", ErrInvalid},
		{"Space", "eth 0", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
