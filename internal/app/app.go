// Package app implements the application layer for endotarter.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/endotarter/internal/adapters/detector"
	"go.trai.ch/endotarter/internal/adapters/linear"
	"go.trai.ch/endotarter/internal/adapters/telemetry"
	"go.trai.ch/endotarter/internal/adapters/tui"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/endotarter/internal/engine/resolver"
	"go.trai.ch/endotarter/internal/engine/session"
	"go.trai.ch/zerr"
)

// tracerName is the instrumentation name of every span endotarter emits.
const tracerName = "endotarter"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.CacheStore
	exports      ports.ExportSource
	game         ports.GameClient
	logger       ports.Logger
	metrics      *telemetry.Metrics
	clock        clockwork.Clock
	teaOptions   []tea.ProgramOption
	driver       ports.Driver
	stdin        io.Reader
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.CacheStore,
	exports ports.ExportSource,
	game ports.GameClient,
	log ports.Logger,
	metrics *telemetry.Metrics,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		exports:      exports,
		game:         game,
		logger:       log,
		metrics:      metrics,
		clock:        clockwork.NewRealClock(),
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDriver replaces the detected endorsement driver.
func (a *App) WithDriver(d ports.Driver) *App {
	a.driver = d
	return a
}

// WithClock replaces the wall clock used to stamp the cache.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithIO replaces the streams used by the line driver and the status listing.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.stdin = in
	a.stdout = out
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
	OutputMode string
}

// Run logs in, resolves the targets and lets the operator endorse them.
// Progress is committed when the operator quits, the queue runs dry or ctx is
// cancelled. A failed endorsement aborts the run without committing.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Initialize telemetry
	tracer, shutdown := a.setupTelemetry(ctx)
	defer shutdown()
	defer a.flushMetrics(cfg.MetricsFile)

	// 3. Log in
	sink, err := a.game.Login(ctx, cfg.Profile, cfg.Password)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("logged in as %s", cfg.Profile.Nation))

	// 4. Resolve targets
	res := resolver.New(
		resolver.OptionsFromConfig(cfg),
		a.store,
		a.exports,
		a.game.Membership(cfg.Profile),
		tracer,
		a.clock,
	)
	if err := prepare(ctx, res); err != nil {
		return err
	}

	remaining := len(res.Remaining())
	a.metrics.SetRemaining(remaining)
	if remaining == 0 {
		a.logger.Info("you have endorsed all nations")
		return a.commit(ctx, res, cfg.CachePath)
	}

	// 5. Endorse
	runErr := a.selectDriver(opts.OutputMode).Run(ctx, session.New(res, sink, tracer, a.metrics))
	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled):
		a.logger.Warn("interrupted, saving progress")
	default:
		return runErr
	}

	// 6. Commit
	return a.commit(context.WithoutCancel(ctx), res, cfg.CachePath)
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	ConfigPath string
}

// Status prints the nations still to endorse without logging in or committing.
func (a *App) Status(ctx context.Context, opts StatusOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tracer, shutdown := a.setupTelemetry(ctx)
	defer shutdown()

	res := resolver.New(
		resolver.OptionsFromConfig(cfg),
		a.store,
		a.exports,
		a.game.Membership(cfg.Profile),
		tracer,
		a.clock,
	)
	if err := prepare(ctx, res); err != nil {
		return err
	}

	linear.WriteRemaining(a.stdout, res.Remaining())
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	Dump       bool
}

// Clean removes the cache file and, with Dump, the downloaded nations dump.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.configLoader.Load(options.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	// Helper to remove a file and log the action
	remove := func(path string, name string) {
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				a.logger.Info(fmt.Sprintf("no %s to remove", name))
				return
			}
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.CachePath, "cache")
	if options.Dump {
		remove(cfg.Export.Path, "nations dump")
	}

	return errs
}

func prepare(ctx context.Context, res *resolver.Resolver) error {
	if err := res.ResolveEndorsed(ctx); err != nil {
		return err
	}
	return res.ComputeEligible(ctx)
}

func (a *App) commit(ctx context.Context, res *resolver.Resolver, path string) error {
	if err := res.Commit(ctx); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("saved cache to %s", path))
	return nil
}

func (a *App) selectDriver(flag string) ports.Driver {
	if a.driver != nil {
		return a.driver
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), flag)
	if mode == detector.ModeTUI {
		return tui.NewDriver(a.teaOptions...)
	}
	return linear.NewDriver(a.stdin, a.stdout)
}

// setupTelemetry installs the tracer provider feeding the run metrics.
// The returned function shuts the provider down.
func (a *App) setupTelemetry(ctx context.Context) (ports.Tracer, func()) {
	tp := telemetry.Setup(a.metrics)
	tracer := telemetry.NewOTelTracerFromProvider(tp, tracerName)
	return tracer, func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}
}

func (a *App) flushMetrics(path string) {
	if err := a.metrics.Flush(path); err != nil {
		a.logger.Warn(err.Error())
	}
}
