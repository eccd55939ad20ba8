package hook

import (
	"fmt"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/port"

	"github.com/coreos/go-systemd/v22/daemon"
)

// NotifyHook tells the service manager the link is ready via sd_notify.
// It is a no-op when NOTIFY_SOCKET is unset.
type NotifyHook struct {
	notify func(unsetEnvironment bool, state string) (bool, error)
}

// Ensure NotifyHook implements the UpHook port
var _ port.UpHook = (*NotifyHook)(nil)

// NewNotifyHook creates a hook backed by go-systemd's daemon.SdNotify.
func NewNotifyHook() *NotifyHook {
	return &NotifyHook{notify: daemon.SdNotify}
}

// Name returns "sd_notify".
func (h *NotifyHook) Name() string {
	return "sd_notify"
}

// OnUp sends READY=1 with a status line naming the link.
func (h *NotifyHook) OnUp(name string, addr hwaddr.Addr) error {
	state := fmt.Sprintf("%s\nSTATUS=%s (%s) is up", daemon.SdNotifyReady, name, addr)
	if _, err := h.notify(false, state); err != nil {
		return fmt.Errorf("sd_notify failed: %w", err)
	}
	return nil
}
