package network

import (
	"fmt"
	"strings"

	"setup-link/internal/pkg/config"
	"setup-link/internal/port"
)

// Open returns the control port implementation selected by backend.
func Open(backend string) (port.ControlPort, error) {
	switch strings.ToLower(backend) {
	case config.BackendNetlink, "":
		return NewNetlinkPort()
	case config.BackendIoctl:
		return NewIoctlPort()
	default:
		return nil, fmt.Errorf("unknown control port backend %q", backend)
	}
}
