// Package types defines common types used across the application.
package types

import (
	"errors"
	"fmt"

	"setup-link/internal/pkg/hwaddr"
)

// LinkState is the result of probing an interface by name.
type LinkState int

const (
	// LinkAbsent means no interface has the name, or the probe itself failed.
	LinkAbsent LinkState = iota
	LinkDown
	LinkUp
)

func (s LinkState) String() string {
	switch s {
	case LinkUp:
		return "up"
	case LinkDown:
		return "down"
	default:
		return "absent"
	}
}

// RenameOutcome classifies the result of a rename request.
type RenameOutcome int

const (
	RenameSuccess RenameOutcome = iota
	// RenameBusy means the kernel refused because the interface is up.
	RenameBusy
	RenameFailed
)

func (o RenameOutcome) String() string {
	switch o {
	case RenameSuccess:
		return "success"
	case RenameBusy:
		return "busy"
	default:
		return "failed"
	}
}

// Interface is one entry of an enumeration snapshot.
type Interface struct {
	Name string
	Addr hwaddr.Addr
}

// TickResult records which transition a reconciliation tick took.
type TickResult string

const (
	ResultSteady       TickResult = "steady"
	ResultSetUp        TickResult = "set_up"
	ResultNoMatch      TickResult = "no_match"
	ResultRenamed      TickResult = "renamed"
	ResultSetDown      TickResult = "set_down"
	ResultRenameFailed TickResult = "rename_failed"
	ResultError        TickResult = "error"
)

// AllResults lists every TickResult, in the order a tick can produce them.
var AllResults = []TickResult{
	ResultSteady, ResultSetUp, ResultNoMatch, ResultRenamed,
	ResultSetDown, ResultRenameFailed, ResultError,
}

// ErrDuplicateAddress is reported when more than one interface carries the target address.
var ErrDuplicateAddress = errors.New("hardware address shared by more than one interface")

// ControlError wraps a failed kernel control call.
type ControlError struct {
	Op    string // e.g. "SIOCGIFFLAGS" or "LinkSetUp"
	Iface string
	Err   error
}

func (e *ControlError) Error() string {
	if e.Iface == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Iface, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}
