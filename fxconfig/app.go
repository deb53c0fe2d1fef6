package fxconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/confiddle/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// AppOptions holds configuration settings for an App.
type AppOptions struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// AppOption defines a function type for applying App options.
type AppOption func(*AppOptions)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) AppOption {
	return func(opts *AppOptions) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig adds a named configuration module to the application.
// Call multiple times with different names to load several documents.
func WithConfig(name string, opts ...Option) AppOption {
	return func(o *AppOptions) {
		o.Modules = append(o.Modules, NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) AppOption {
	return func(opts *AppOptions) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) AppOption {
	return func(opts *AppOptions) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets the log destination. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) AppOption {
	return func(opts *AppOptions) {
		opts.LogOutput = w
	}
}

// App is an Fx application whose container holds a logger and the loaded configuration documents.
type App struct {
	app *fx.App
}

// NewApp creates a new App. Configuration errors surface from Start.
func NewApp(opts ...AppOption) *App {
	options := AppOptions{LogOutput: os.Stderr}

	for _, apply := range opts {
		apply(&options)
	}

	logConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(logConfig, options.LogOutput)

	return &App{
		app: fx.New(
			fx.WithLogger(func() fxevent.Logger {
				return &fxevent.SlogLogger{Logger: logger}
			}),
			fx.Supply(logConfig),
			fx.Supply(logger),
			fx.Options(options.Modules...),
		),
	}
}

// Err returns the error encountered while building the container, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Stop stops the Fx application gracefully.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
