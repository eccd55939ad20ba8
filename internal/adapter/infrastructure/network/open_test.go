//go:build unit

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	t.Run("UnknownBackend", func(t *testing.T) {
		_, err := Open("udev")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown control port backend")
	})

	for _, backend := range []string{"netlink", "ioctl", "NETLINK"} {
		t.Run(backend, func(t *testing.T) {
			p, err := Open(backend)
			if err != nil {
				t.Skipf("%s backend not available: %v", backend, err)
			}
			assert.NotNil(t, p)
			assert.NoError(t, p.Close())
		})
	}
}
