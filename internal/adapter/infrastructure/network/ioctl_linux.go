//go:build linux

package network

import (
	"encoding/binary"
	"fmt"
	"net"
	"unsafe"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/pkg/ifname"
	"setup-link/internal/port"
	"setup-link/internal/types"

	"golang.org/x/sys/unix"
)

// ifreq mirrors struct ifreq: a name followed by a 24-byte union.
type ifreq struct {
	name ifname.Name
	data [24]byte
}

func newIfreq(name string) *ifreq {
	return &ifreq{name: ifname.Encode(name)}
}

func (r *ifreq) flags() uint16 {
	return binary.NativeEndian.Uint16(r.data[:2])
}

func (r *ifreq) setFlags(flags uint16) {
	binary.NativeEndian.PutUint16(r.data[:2], flags)
}

// hardwareAddr reads ifr_hwaddr.sa_data after the 2-byte sa_family.
func (r *ifreq) hardwareAddr() hwaddr.Addr {
	var addr hwaddr.Addr
	copy(addr[:], r.data[2:2+hwaddr.Len])
	return addr
}

// setNewName fills ifr_newname for SIOCSIFNAME.
func (r *ifreq) setNewName(name string) {
	encoded := ifname.Encode(name)
	copy(r.data[:ifname.Size], encoded[:])
}

// IoctlPort implements the ControlPort port with netdevice(7) ioctls on an AF_INET socket.
type IoctlPort struct {
	fd         int
	interfaces func() ([]net.Interface, error)
}

// Ensure IoctlPort implements the ControlPort port
var _ port.ControlPort = (*IoctlPort)(nil)

// NewIoctlPort opens the datagram socket used for interface ioctls.
func NewIoctlPort() (*IoctlPort, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, unix.IPPROTO_IP)
	if err != nil {
		return nil, fmt.Errorf("failed to open control socket: %w", err)
	}
	return &IoctlPort{fd: fd, interfaces: net.Interfaces}, nil
}

func (p *IoctlPort) ioctl(req uint, ifr *ifreq) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(p.fd), uintptr(req), uintptr(unsafe.Pointer(ifr)))
	if errno != 0 {
		return errno
	}
	return nil
}

// Probe returns the administrative state of the named interface.
func (p *IoctlPort) Probe(name string) types.LinkState {
	ifr := newIfreq(name)
	if err := p.ioctl(unix.SIOCGIFFLAGS, ifr); err != nil {
		return types.LinkAbsent
	}
	if ifr.flags()&unix.IFF_UP != 0 {
		return types.LinkUp
	}
	return types.LinkDown
}

// SetState toggles IFF_UP, leaving every other flag as the kernel reported it.
func (p *IoctlPort) SetState(name string, up bool) error {
	ifr := newIfreq(name)
	if err := p.ioctl(unix.SIOCGIFFLAGS, ifr); err != nil {
		return &types.ControlError{Op: "SIOCGIFFLAGS", Iface: name, Err: err}
	}
	flags := ifr.flags()
	if up {
		flags |= unix.IFF_UP
	} else {
		flags &^= unix.IFF_UP
	}
	ifr.setFlags(flags)
	if err := p.ioctl(unix.SIOCSIFFLAGS, ifr); err != nil {
		return &types.ControlError{Op: "SIOCSIFFLAGS", Iface: name, Err: err}
	}
	return nil
}

// HardwareAddressOf returns the hardware address of the named interface.
func (p *IoctlPort) HardwareAddressOf(name string) (hwaddr.Addr, error) {
	ifr := newIfreq(name)
	if err := p.ioctl(unix.SIOCGIFHWADDR, ifr); err != nil {
		return hwaddr.Addr{}, &types.ControlError{Op: "SIOCGIFHWADDR", Iface: name, Err: err}
	}
	return ifr.hardwareAddr(), nil
}

// Enumerate lists every interface with a 6-byte link-layer address.
func (p *IoctlPort) Enumerate() ([]types.Interface, error) {
	all, err := p.interfaces()
	if err != nil {
		return nil, &types.ControlError{Op: "getifaddrs", Err: err}
	}
	ifaces := make([]types.Interface, 0, len(all))
	for _, iface := range all {
		addr, ok := hwaddr.FromHardwareAddr(iface.HardwareAddr)
		if !ok {
			continue
		}
		ifaces = append(ifaces, types.Interface{Name: iface.Name, Addr: addr})
	}
	return ifaces, nil
}

// Rename issues SIOCSIFNAME, reporting RenameBusy when the kernel answers EBUSY.
func (p *IoctlPort) Rename(oldName, newName string) (types.RenameOutcome, error) {
	ifr := newIfreq(oldName)
	ifr.setNewName(newName)
	if err := p.ioctl(unix.SIOCSIFNAME, ifr); err != nil {
		return classifyRename(&types.ControlError{Op: "SIOCSIFNAME", Iface: oldName, Err: err})
	}
	return types.RenameSuccess, nil
}

// Close closes the control socket.
func (p *IoctlPort) Close() error {
	if err := unix.Close(p.fd); err != nil {
		return fmt.Errorf("failed to close control socket: %w", err)
	}
	return nil
}
