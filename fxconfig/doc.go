// Package fxconfig integrates configuration loading with go.uber.org/fx.
//
// NewModule loads a configuration document when the container is built and
// supplies it as a map[string]any under a name tag, so several documents can
// coexist in one container:
//
//	app := fxconfig.NewApp(
//	    fxconfig.WithLogLevel("debug"),
//	    fxconfig.WithConfig("robot",
//	        fxconfig.WithSchemaFile("robot.schema.yaml"),
//	        fxconfig.WithConfigFile("robot.yaml"),
//	    ),
//	    fxconfig.WithModules(fx.Invoke(fx.Annotate(
//	        func(cfg map[string]any) { ... },
//	        fx.ParamTags(`name:"robot"`),
//	    ))),
//	)
//
// Loading uses the *slog.Logger found in the container, if any, to report
// injected defaults.
package fxconfig
