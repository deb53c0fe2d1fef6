package fxconfig

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/confiddle"
	"github.com/0xalexb/confiddle/schema"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that loads a configuration document.
// The name is used as both the module name and the DI named tag of the
// supplied map[string]any.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	cfg := Config{InjectDefaults: true}

	for _, apply := range opts {
		apply(&cfg)
	}

	if cfg.Schema == nil && cfg.SchemaFile == "" {
		return fx.Error(fmt.Errorf("module %q: %w", name, ErrNoSchema))
	}

	if cfg.ConfigFile == "" {
		return fx.Error(fmt.Errorf("module %q: %w", name, ErrNoSource))
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) (map[string]any, error) {
					return load(name, cfg, logger)
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

func load(name string, cfg Config, logger *slog.Logger) (map[string]any, error) {
	sch := cfg.Schema
	if sch == nil {
		var err error

		sch, err = schema.ParseFile(cfg.SchemaFile)
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", name, err)
		}
	}

	opts := []confiddle.Option{
		confiddle.WithPath(cfg.Path),
		confiddle.WithInjectDefaults(cfg.InjectDefaults),
	}
	if logger != nil {
		opts = append(opts, confiddle.WithLogger(logger.With(slog.String("config", name))))
	}

	doc, err := confiddle.LoadFile(cfg.ConfigFile, sch, opts...)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	return doc, nil
}
