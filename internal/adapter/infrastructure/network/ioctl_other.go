//go:build !linux

package network

import (
	"errors"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/types"
)

// IoctlPort is only available on Linux.
type IoctlPort struct{}

// NewIoctlPort always fails outside Linux.
func NewIoctlPort() (*IoctlPort, error) {
	return nil, errors.New("ioctl backend is only supported on linux")
}

func (p *IoctlPort) Probe(string) types.LinkState { return types.LinkAbsent }
func (p *IoctlPort) SetState(string, bool) error  { return errors.ErrUnsupported }
func (p *IoctlPort) HardwareAddressOf(string) (hwaddr.Addr, error) {
	return hwaddr.Addr{}, errors.ErrUnsupported
}
func (p *IoctlPort) Enumerate() ([]types.Interface, error) { return nil, errors.ErrUnsupported }
func (p *IoctlPort) Close() error                          { return nil }
func (p *IoctlPort) Rename(string, string) (types.RenameOutcome, error) {
	return types.RenameFailed, errors.ErrUnsupported
}
