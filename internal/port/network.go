// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
)

// LinkReconciler is the primary port of the daemon.
// It drives one interface toward "exists under the target name and is up".
type LinkReconciler interface {
	// Run reconciles once per poll interval until the context is cancelled.
	Run(ctx context.Context) error

	// GetInterfaceName returns the target interface name.
	GetInterfaceName() string
}
