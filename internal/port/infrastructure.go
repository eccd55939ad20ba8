// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/types"
)

//go:generate mockgen -destination=../mock/mock_port.go -package=mock setup-link/internal/port ControlPort,UpHook,DriverInspector

// ControlPort is a handle to the kernel's network control channel.
// Every call is a blocking, synchronous kernel request.
type ControlPort interface {
	// Probe returns the administrative state of the named interface.
	// Kernel errors collapse to LinkAbsent.
	Probe(name string) types.LinkState

	// SetState sets the interface administratively up or down (read-modify-write of the flags)
	SetState(name string, up bool) error

	// HardwareAddressOf returns the hardware address of the named interface
	HardwareAddressOf(name string) (hwaddr.Addr, error)

	// Enumerate returns a snapshot of all interfaces carrying a 6-byte hardware address
	Enumerate() ([]types.Interface, error)

	// Rename renames an interface. The error is set for RenameFailed only.
	Rename(oldName, newName string) (types.RenameOutcome, error)

	// Close releases the kernel handle
	Close() error
}

// UpHook is invoked once each time the target interface is first observed up.
type UpHook interface {
	Name() string
	OnUp(name string, addr hwaddr.Addr) error
}

// DriverInspector reports which kernel driver backs an interface.
type DriverInspector interface {
	Driver(name string) (driver string, bus string, err error)
}
