// Package hook provides the actions run when the target interface first comes up.
package hook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/port"
)

// DefaultCommandTimeout bounds a single hook command.
const DefaultCommandTimeout = 30 * time.Second

// waitDelay bounds how long OnUp waits for the output pipe once the command has
// exited or been killed; a backgrounded child may keep it open indefinitely.
const waitDelay = 250 * time.Millisecond

// CommandHook runs an external command with LINK_NAME and LINK_MAC set in its environment.
type CommandHook struct {
	argv    []string
	timeout time.Duration
}

// Ensure CommandHook implements the UpHook port
var _ port.UpHook = (*CommandHook)(nil)

// NewCommandHook creates a hook from a shell-style argument vector. argv must not be empty.
func NewCommandHook(argv []string, timeout time.Duration) (*CommandHook, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("hook command is empty")
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &CommandHook{argv: argv, timeout: timeout}, nil
}

// Name returns the command line, for logging.
func (h *CommandHook) Name() string {
	return "exec:" + strings.Join(h.argv, " ")
}

// OnUp runs the command and waits for it to exit, at most for the hook timeout.
// On timeout the whole process group is killed. Children the command leaves running
// in the background are not waited for.
func (h *CommandHook) OnUp(name string, addr hwaddr.Addr) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.argv[0], h.argv[1:]...)
	cmd.Env = append(os.Environ(), "LINK_NAME="+name, "LINK_MAC="+addr.String())
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	out, err := cmd.CombinedOutput()
	if errors.Is(err, exec.ErrWaitDelay) {
		// exited cleanly, only the output pipe was still held by a background child
		err = nil
	}
	if err != nil {
		return fmt.Errorf("hook %q failed: %w (output: %s)", h.argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
