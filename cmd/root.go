package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"setup-link/internal/adapter/infrastructure/ethtool"
	"setup-link/internal/adapter/infrastructure/hook"
	"setup-link/internal/adapter/infrastructure/network"
	"setup-link/internal/adapter/reconcile"
	"setup-link/internal/pkg/config"
	"setup-link/internal/pkg/hwaddr"
	"setup-link/internal/pkg/ifname"
	"setup-link/internal/pkg/logging"
	"setup-link/internal/pkg/metrics"
	"setup-link/internal/port"

	"github.com/spf13/cobra"
)

// Process exit codes
const (
	exitUsage       = 1
	exitControlPort = 2
)

// exitError carries the process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// openControlPort opens the kernel control port for the configured backend
var openControlPort = network.Open

var (
	configFlag        string
	backendFlag       string
	intervalFlag      time.Duration
	logLevelFlag      string
	logFormatFlag     string
	metricsListenFlag string
	onUpFlag          []string
	sdNotifyFlag      bool
	inspectDriverFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "setup-link MAC NAME",
	Short: "setup-link renames the adapter with the given MAC to NAME and keeps it up",
	Long: `setup-link waits for the network adapter with hardware address MAC to appear,
renames it to NAME and sets it administratively up. It polls the kernel at a fixed
interval and runs until killed, so it can be started before udev is available.`,
	Example: "  setup-link aa:bb:cc:dd:ee:ff wan0",
	Args:    validateArgs,
	RunE:    runSetupLink,
}

// Execute runs the root command and exits with its exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
// Argument and flag errors raised by cobra itself are usage errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	if _, err := hwaddr.Parse(args[0]); err != nil {
		return err
	}
	if err := ifname.Validate(args[1]); err != nil {
		return fmt.Errorf("invalid interface name %q: %w", args[1], err)
	}
	return nil
}

// loadConfig reads the optional config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevelFlag
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormatFlag
	}
	if flags.Changed("metrics-listen") {
		cfg.Metrics.Listen = metricsListenFlag
	}
	// --on-up is split on whitespace; commands needing quoting go in hooks.on_up
	for _, command := range onUpFlag {
		cfg.Hooks.OnUp = append(cfg.Hooks.OnUp, strings.Fields(command))
	}
	if flags.Changed("sd-notify") {
		cfg.Hooks.SdNotify = sdNotifyFlag
	}
	if flags.Changed("inspect-driver") {
		cfg.Hooks.InspectDriver = inspectDriverFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildOptions wires the optional collaborators selected by the configuration.
func buildOptions(cfg *config.Config, mt *metrics.Metrics) ([]reconcile.Option, error) {
	var hooks []port.UpHook
	for _, argv := range cfg.Hooks.OnUp {
		h, err := hook.NewCommandHook(argv, cfg.Hooks.Timeout)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, h)
	}
	if cfg.Hooks.SdNotify {
		hooks = append(hooks, hook.NewNotifyHook())
	}

	opts := []reconcile.Option{reconcile.WithMetrics(mt)}
	if len(hooks) > 0 {
		opts = append(opts, reconcile.WithUpHooks(hooks...))
	}
	if cfg.Hooks.InspectDriver {
		opts = append(opts, reconcile.WithDriverInspector(ethtool.NewInspector()))
	}
	return opts, nil
}

func runSetupLink(cmd *cobra.Command, args []string) error {
	addr, err := hwaddr.Parse(args[0])
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	name := args[1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return &exitError{code: exitUsage, err: fmt.Errorf("config error: %w", err)}
	}
	cmd.SilenceUsage = true

	logging.InitLogger(cfg.Logging)
	logger := logging.WithComponentAndInterface("main", name).WithField("mac", addr.String())

	control, err := openControlPort(cfg.Backend)
	if err != nil {
		logger.WithError(err).Error("Failed to open control port")
		return &exitError{code: exitControlPort, err: err}
	}
	defer func() {
		if err := control.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close control port")
		}
	}()

	mt := metrics.NewMetrics(name)
	opts, err := buildOptions(cfg, mt)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	var manager port.LinkReconciler
	manager, err = reconcile.NewManager(name, addr, control, cfg.Interval, opts...)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	// Create context for graceful shutdown
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfg.Metrics.Listen != "" {
		go func() {
			if err := mt.Serve(ctx, cfg.Metrics.Listen); err != nil {
				logger.WithError(err).Error("Metrics listener stopped")
			}
		}()
	}

	logger.WithField("backend", cfg.Backend).Infof("Starting setup-link for %s", manager.GetInterfaceName())
	if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("setup-link stopped")
	return nil
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	flags.StringVar(&backendFlag, "backend", config.BackendNetlink, "Kernel control backend: netlink or ioctl")
	flags.DurationVar(&intervalFlag, "interval", config.DefaultInterval, "Poll interval between reconciliation ticks")
	flags.StringVar(&logLevelFlag, "log-level", logging.DefaultLogConfig.Level, "Log level")
	flags.StringVar(&logFormatFlag, "log-format", logging.DefaultLogConfig.Format, "Log format: simple, compact, text or json")
	flags.StringVar(&metricsListenFlag, "metrics-listen", "", "Serve Prometheus metrics on this address")
	flags.StringArrayVar(&onUpFlag, "on-up", nil, "Command to run when the link first comes up, split on whitespace (repeatable; use hooks.on_up in the config file for quoted arguments)")
	flags.BoolVar(&sdNotifyFlag, "sd-notify", false, "Send sd_notify READY=1 when the link first comes up")
	flags.BoolVar(&inspectDriverFlag, "inspect-driver", false, "Log the ethtool driver of the adapter before renaming it")
}

func init() {
	bindFlags(rootCmd)
}
