//go:build unit

package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"setup-link/internal/mock"
	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/pkg/metrics"
	"setup-link/internal/types"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

var (
	targetAddr = hwaddr.MustParse("aa:bb:cc:dd:ee:ff")
	otherAddr  = hwaddr.MustParse("02:00:00:00:00:01")
)

const targetName = "wan0"

func newTestManager(t *testing.T, control *mock.MockControlPort, opts ...Option) *Manager {
	t.Helper()
	m, err := NewManager(targetName, targetAddr, control, 100*time.Millisecond, opts...)
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControlPort(ctrl)

	t.Run("Valid", func(t *testing.T) {
		m, err := NewManager(targetName, targetAddr, control, time.Second)
		require.NoError(t, err)
		assert.Equal(t, targetName, m.GetInterfaceName())
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewManager("", targetAddr, control, time.Second)
		assert.Error(t, err)
	})

	t.Run("NilControlPort", func(t *testing.T) {
		_, err := NewManager(targetName, targetAddr, nil, time.Second)
		assert.Error(t, err)
	})

	t.Run("ZeroInterval", func(t *testing.T) {
		_, err := NewManager(targetName, targetAddr, control, 0)
		assert.Error(t, err)
	})
}

func TestManager_Tick(t *testing.T) {
	t.Run("UpIsSteady", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkUp)

		assert.Equal(t, types.ResultSteady, m.Tick())
	})

	t.Run("DownIsSetUp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		// exactly one SetState, no Enumerate or Rename
		control.EXPECT().Probe(targetName).Return(types.LinkDown)
		control.EXPECT().SetState(targetName, true).Return(nil).Times(1)

		assert.Equal(t, types.ResultSetUp, m.Tick())
	})

	t.Run("SetUpFailureIsNotFatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkDown)
		control.EXPECT().SetState(targetName, true).
			Return(&types.ControlError{Op: "SIOCSIFFLAGS", Iface: targetName, Err: unix.EPERM})

		assert.Equal(t, types.ResultError, m.Tick())
	})

	t.Run("AbsentAndNoMatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return([]types.Interface{
			{Name: "eth0", Addr: otherAddr},
		}, nil).Times(1)

		assert.Equal(t, types.ResultNoMatch, m.Tick())
	})

	t.Run("EnumerateFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return(nil, &types.ControlError{Op: "LinkList", Err: unix.ENOBUFS})

		assert.Equal(t, types.ResultError, m.Tick())
	})

	t.Run("RenameDownInterface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return([]types.Interface{
			{Name: "eth0", Addr: otherAddr},
			{Name: "eth3", Addr: targetAddr},
		}, nil)
		control.EXPECT().Rename("eth3", targetName).Return(types.RenameSuccess, nil)

		assert.Equal(t, types.ResultRenamed, m.Tick())
	})

	t.Run("RenameBusySetsDown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		gomock.InOrder(
			control.EXPECT().Probe(targetName).Return(types.LinkAbsent),
			control.EXPECT().Enumerate().Return([]types.Interface{{Name: "eth3", Addr: targetAddr}}, nil),
			control.EXPECT().Rename("eth3", targetName).Return(types.RenameBusy, nil).Times(1),
			control.EXPECT().SetState("eth3", false).Return(nil),
		)

		assert.Equal(t, types.ResultSetDown, m.Tick())
	})

	t.Run("RenameBusySetDownFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return([]types.Interface{{Name: "eth3", Addr: targetAddr}}, nil)
		control.EXPECT().Rename("eth3", targetName).Return(types.RenameBusy, nil)
		control.EXPECT().SetState("eth3", false).Return(errors.New("SIOCSIFFLAGS: operation not permitted"))

		assert.Equal(t, types.ResultError, m.Tick())
	})

	t.Run("RenameOtherFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return([]types.Interface{{Name: "eth3", Addr: targetAddr}}, nil)
		control.EXPECT().Rename("eth3", targetName).
			Return(types.RenameFailed, &types.ControlError{Op: "SIOCSIFNAME", Iface: "eth3", Err: unix.EEXIST})

		assert.Equal(t, types.ResultRenameFailed, m.Tick())
	})

	t.Run("DuplicateAddressSelectsNone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		control := mock.NewMockControlPort(ctrl)
		m := newTestManager(t, control)

		control.EXPECT().Probe(targetName).Return(types.LinkAbsent)
		control.EXPECT().Enumerate().Return([]types.Interface{
			{Name: "eth3", Addr: targetAddr},
			{Name: "eth4", Addr: targetAddr},
		}, nil)

		assert.Equal(t, types.ResultError, m.Tick())
	})
}

func TestManager_locate(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControlPort(ctrl)
	m := newTestManager(t, control)

	control.EXPECT().Enumerate().Return([]types.Interface{
		{Name: "eth3", Addr: targetAddr},
		{Name: "eth4", Addr: targetAddr},
	}, nil)

	name, err := m.locate()
	assert.Empty(t, name)
	assert.ErrorIs(t, err, types.ErrDuplicateAddress)
	assert.Contains(t, err.Error(), "eth3")
	assert.Contains(t, err.Error(), "eth4")
}

func TestManager_UpHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControlPort(ctrl)
	hook := mock.NewMockUpHook(ctrl)
	mt := metrics.NewMetrics(targetName)
	m := newTestManager(t, control, WithUpHooks(hook), WithMetrics(mt))

	hook.EXPECT().Name().Return("test").AnyTimes()

	gomock.InOrder(
		// first up edge fires the hook
		control.EXPECT().Probe(targetName).Return(types.LinkUp),
		hook.EXPECT().OnUp(targetName, targetAddr).Return(nil),
		// staying up does not
		control.EXPECT().Probe(targetName).Return(types.LinkUp),
		// down then up again is a new edge
		control.EXPECT().Probe(targetName).Return(types.LinkDown),
		control.EXPECT().SetState(targetName, true).Return(nil),
		control.EXPECT().Probe(targetName).Return(types.LinkUp),
		hook.EXPECT().OnUp(targetName, targetAddr).Return(errors.New("hook failed")),
		control.EXPECT().Probe(targetName).Return(types.LinkUp),
	)

	assert.Equal(t, types.ResultSteady, m.Tick())
	assert.Equal(t, types.ResultSteady, m.Tick())
	assert.Equal(t, types.ResultSetUp, m.Tick())
	assert.Equal(t, types.ResultSteady, m.Tick())
	assert.Equal(t, types.ResultSteady, m.Tick())

	assert.Equal(t, 4.0, testutil.ToFloat64(mt.Ticks.WithLabelValues("steady")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.Ticks.WithLabelValues("set_up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.HookRuns.WithLabelValues("test", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.HookRuns.WithLabelValues("test", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.LinkUp))
}

func TestManager_DriverInspector(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControlPort(ctrl)
	drivers := mock.NewMockDriverInspector(ctrl)
	m := newTestManager(t, control, WithDriverInspector(drivers))

	control.EXPECT().Probe(targetName).Return(types.LinkAbsent).Times(2)
	control.EXPECT().Enumerate().Return([]types.Interface{{Name: "eth3", Addr: targetAddr}}, nil).Times(2)
	control.EXPECT().Rename("eth3", targetName).Return(types.RenameFailed, errors.New("EEXIST")).Times(2)

	// lookup failures only cost the log field
	drivers.EXPECT().Driver("eth3").Return("r8152", "usb-0000:00:14.0-1", nil)
	drivers.EXPECT().Driver("eth3").Return("", "", errors.New("operation not supported"))

	assert.Equal(t, types.ResultRenameFailed, m.Tick())
	assert.Equal(t, types.ResultRenameFailed, m.Tick())
}

func TestManager_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControlPort(ctrl)

	m, err := NewManager(targetName, targetAddr, control, 5*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	control.EXPECT().Probe(targetName).DoAndReturn(func(string) types.LinkState {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return types.LinkUp
	}).MinTimes(3)

	err = m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ticks, 3)
}
