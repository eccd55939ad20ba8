// Package network provides the kernel control port implementations.
package network

import (
	"errors"
	"fmt"
	"net"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/port"
	"setup-link/internal/types"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// NetlinkPort is an adapter that implements the ControlPort port using vishvananda/netlink library.
type NetlinkPort struct {
	handle *netlink.Handle
}

// Ensure NetlinkPort implements the ControlPort port
var _ port.ControlPort = (*NetlinkPort)(nil)

// NewNetlinkPort opens a dedicated netlink handle in the current network namespace.
func NewNetlinkPort() (*NetlinkPort, error) {
	h, err := netlink.NewHandle()
	if err != nil {
		return nil, fmt.Errorf("failed to open netlink handle: %w", err)
	}
	return &NetlinkPort{handle: h}, nil
}

// Probe returns the administrative state of the named interface.
func (n *NetlinkPort) Probe(name string) types.LinkState {
	link, err := n.handle.LinkByName(name)
	if err != nil {
		return types.LinkAbsent
	}
	if link.Attrs().Flags&net.FlagUp != 0 {
		return types.LinkUp
	}
	return types.LinkDown
}

// SetState brings the interface up or down.
func (n *NetlinkPort) SetState(name string, up bool) error {
	link, err := n.handle.LinkByName(name)
	if err != nil {
		return &types.ControlError{Op: "LinkByName", Iface: name, Err: err}
	}
	if up {
		if err := n.handle.LinkSetUp(link); err != nil {
			return &types.ControlError{Op: "LinkSetUp", Iface: name, Err: err}
		}
		return nil
	}
	if err := n.handle.LinkSetDown(link); err != nil {
		return &types.ControlError{Op: "LinkSetDown", Iface: name, Err: err}
	}
	return nil
}

// HardwareAddressOf returns the hardware address of the named interface.
func (n *NetlinkPort) HardwareAddressOf(name string) (hwaddr.Addr, error) {
	link, err := n.handle.LinkByName(name)
	if err != nil {
		return hwaddr.Addr{}, &types.ControlError{Op: "LinkByName", Iface: name, Err: err}
	}
	addr, ok := hwaddr.FromHardwareAddr(link.Attrs().HardwareAddr)
	if !ok {
		return hwaddr.Addr{}, &types.ControlError{
			Op:    "LinkByName",
			Iface: name,
			Err:   fmt.Errorf("unexpected hardware address length %d", len(link.Attrs().HardwareAddr)),
		}
	}
	return addr, nil
}

// Enumerate lists every link with a 6-byte hardware address.
func (n *NetlinkPort) Enumerate() ([]types.Interface, error) {
	links, err := n.handle.LinkList()
	if err != nil {
		return nil, &types.ControlError{Op: "LinkList", Err: err}
	}
	ifaces := make([]types.Interface, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		addr, ok := hwaddr.FromHardwareAddr(attrs.HardwareAddr)
		if !ok {
			continue
		}
		ifaces = append(ifaces, types.Interface{Name: attrs.Name, Addr: addr})
	}
	return ifaces, nil
}

// Rename renames the interface, reporting RenameBusy when the kernel answers EBUSY.
func (n *NetlinkPort) Rename(oldName, newName string) (types.RenameOutcome, error) {
	link, err := n.handle.LinkByName(oldName)
	if err != nil {
		return types.RenameFailed, &types.ControlError{Op: "LinkByName", Iface: oldName, Err: err}
	}
	if err := n.handle.LinkSetName(link, newName); err != nil {
		return classifyRename(&types.ControlError{Op: "LinkSetName", Iface: oldName, Err: err})
	}
	return types.RenameSuccess, nil
}

// Close closes the netlink socket.
func (n *NetlinkPort) Close() error {
	n.handle.Close()
	return nil
}

func classifyRename(err error) (types.RenameOutcome, error) {
	if errors.Is(err, unix.EBUSY) {
		return types.RenameBusy, nil
	}
	return types.RenameFailed, err
}
