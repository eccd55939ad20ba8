// Package ethtool identifies the kernel driver behind an interface.
package ethtool

import (
	"fmt"

	"setup-link/internal/port"

	"github.com/safchain/ethtool"
)

// Inspector is an adapter that implements the DriverInspector port using safchain/ethtool.
// A fresh ethtool socket is opened per query; lookups only happen when a rename is pending.
type Inspector struct{}

// Ensure Inspector implements the DriverInspector port
var _ port.DriverInspector = (*Inspector)(nil)

// NewInspector creates a new driver inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Driver returns the driver name and bus address of the interface.
func (i *Inspector) Driver(name string) (string, string, error) {
	eth, err := ethtool.NewEthtool()
	if err != nil {
		return "", "", fmt.Errorf("failed to create ethtool handle: %w", err)
	}
	defer eth.Close()

	driver, err := eth.DriverName(name)
	if err != nil {
		return "", "", fmt.Errorf("failed to get driver of %s: %w", name, err)
	}
	bus, err := eth.BusInfo(name)
	if err != nil {
		// virtual devices have no bus
		return driver, "", nil
	}
	return driver, bus, nil
}
