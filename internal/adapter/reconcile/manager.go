// Package reconcile drives one network interface toward "exists under the target name and is up".
package reconcile

import (
	"context"
	"fmt"
	"time"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/pkg/logging"
	"setup-link/internal/pkg/metrics"
	"setup-link/internal/port"
	"setup-link/internal/types"

	"github.com/sirupsen/logrus"
)

const component = "reconcile"

// Manager is the reconciliation adapter that implements the LinkReconciler port.
// It owns no kernel state; every tick re-derives the picture from the control port.
type Manager struct {
	name     string
	addr     hwaddr.Addr
	control  port.ControlPort
	interval time.Duration

	hooks   []port.UpHook
	drivers port.DriverInspector
	metrics *metrics.Metrics

	// wasUp is true while the last probe saw the target up; cleared on any other result.
	wasUp bool
	last  types.TickResult
}

// Ensure Manager implements the LinkReconciler port
var _ port.LinkReconciler = (*Manager)(nil)

// Option configures optional collaborators of a Manager.
type Option func(*Manager)

// WithUpHooks registers hooks run once on each transition of the target to up.
func WithUpHooks(hooks ...port.UpHook) Option {
	return func(m *Manager) {
		m.hooks = append(m.hooks, hooks...)
	}
}

// WithDriverInspector logs the driver of an adapter before it is renamed.
func WithDriverInspector(d port.DriverInspector) Option {
	return func(m *Manager) {
		m.drivers = d
	}
}

// WithMetrics records every tick and hook run.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// NewManager creates a reconciler for the interface with the given address, to be named name.
func NewManager(name string, addr hwaddr.Addr, control port.ControlPort, interval time.Duration, opts ...Option) (*Manager, error) {
	if name == "" {
		return nil, fmt.Errorf("target interface name is empty")
	}
	if control == nil {
		return nil, fmt.Errorf("control port is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}

	m := &Manager{
		name:     name,
		addr:     addr,
		control:  control,
		interval: interval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// GetInterfaceName returns the target interface name.
func (m *Manager) GetInterfaceName() string {
	return m.name
}

// Run ticks immediately and then once per interval until ctx is done.
// Tick failures are logged and never end the loop.
func (m *Manager) Run(ctx context.Context) error {
	logger := m.logger()
	logger.WithField("interval", m.interval).Info("Starting link reconciliation")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.Tick()

		select {
		case <-ctx.Done():
			logger.Info("Link reconciliation stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tick runs one pass of the state machine and reports which transition it took.
func (m *Manager) Tick() types.TickResult {
	result := m.tick()
	if result != types.ResultSteady {
		m.wasUp = false
	}
	m.last = result
	if m.metrics != nil {
		m.metrics.ObserveTick(result)
	}
	return result
}

func (m *Manager) tick() types.TickResult {
	logger := m.logger()

	switch m.control.Probe(m.name) {
	case types.LinkUp:
		if !m.wasUp {
			m.wasUp = true
			logger.Info("Interface is up")
			m.runHooks()
		}
		return types.ResultSteady

	case types.LinkDown:
		logger.Info("Interface is down, setting up")
		if err := m.control.SetState(m.name, true); err != nil {
			logger.WithError(err).Error("Failed to set interface up")
			return types.ResultError
		}
		return types.ResultSetUp
	}

	oldName, err := m.locate()
	if err != nil {
		logger.WithError(err).Error("Failed to locate interface by hardware address")
		return types.ResultError
	}
	if oldName == "" {
		// repeated every tick until the adapter appears; only the first one is loud
		if m.last != types.ResultNoMatch {
			logger.Warn("No interface with the required hardware address")
		} else {
			logger.Debug("No interface with the required hardware address")
		}
		return types.ResultNoMatch
	}

	return m.rename(oldName)
}

// locate returns the name of the single interface carrying the target address,
// or "" when none does. More than one match is an error and selects nothing.
func (m *Manager) locate() (string, error) {
	ifaces, err := m.control.Enumerate()
	if err != nil {
		return "", fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	var matches []string
	for _, iface := range ifaces {
		if iface.Addr == m.addr {
			matches = append(matches, iface.Name)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %v", types.ErrDuplicateAddress, matches)
	}
}

func (m *Manager) rename(oldName string) types.TickResult {
	logger := m.logger().WithField("old_name", oldName)
	if m.drivers != nil {
		if driver, bus, err := m.drivers.Driver(oldName); err == nil {
			logger = logger.WithField("driver", driver)
			if bus != "" {
				logger = logger.WithField("bus", bus)
			}
		}
	}

	logger.Info("Renaming interface")
	outcome, err := m.control.Rename(oldName, m.name)
	switch outcome {
	case types.RenameSuccess:
		logger.Info("Interface successfully renamed")
		return types.ResultRenamed

	case types.RenameBusy:
		// The kernel refuses to rename a running interface; take it down and retry next tick.
		logger.Warn("Interface rename failed with EBUSY, setting down")
		if err := m.control.SetState(oldName, false); err != nil {
			logger.WithError(err).Error("Failed to set interface down")
			return types.ResultError
		}
		return types.ResultSetDown

	default:
		logger.WithError(err).Error("Failed to rename interface")
		return types.ResultRenameFailed
	}
}

func (m *Manager) runHooks() {
	for _, hook := range m.hooks {
		logger := m.logger().WithField("hook", hook.Name())
		err := hook.OnUp(m.name, m.addr)
		if err != nil {
			logger.WithError(err).Error("Up hook failed")
		} else {
			logger.Debug("Up hook completed")
		}
		if m.metrics != nil {
			m.metrics.ObserveHook(hook.Name(), err)
		}
	}
}

func (m *Manager) logger() *logrus.Entry {
	return logging.WithComponentAndInterface(component, m.name).WithField("mac", m.addr.String())
}
