package cmd

import (
	"io"
	"os"

	"github.com/msto63/procline/foundation/core/config"
	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol"
	"github.com/msto63/procline/foundation/tcol/registry"
	"github.com/msto63/procline/foundation/tcol/suggest"
	"github.com/msto63/procline/internal/sketch"
)

// app bundles what every subcommand needs
type app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *tcol.Engine
	canvas *sketch.Canvas
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newApp loads the configuration, builds the registry from the canvas
// procedures plus the configured definition file and creates the aliases
func newApp(out io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	lc := cfg.LoggerConfig()
	lc.Output = os.Stderr
	if verbose {
		lc.Level = mdwlog.LevelDebug
	}
	logger := mdwlog.NewWithConfig(lc)
	mdwlog.SetDefault(logger)

	src := sketch.Source()
	if cfg.Procedures.Path != "" {
		src = registry.Sources(src, registry.FileSource(cfg.Procedures.Path, sketch.Converters()))
	}
	reg, err := registry.Build(src, registry.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	engine, err := tcol.NewEngine(reg, tcol.Options{
		Logger:           logger,
		MaxCommandLength: cfg.Engine.MaxCommandLength,
		SlowThreshold:    cfg.Engine.SlowThreshold.Duration,
		Suggest: suggest.Options{
			MaxEntries:    cfg.Shell.MaxSuggestions,
			CaseSensitive: cfg.Shell.CaseSensitive,
			Fuzzy:         cfg.Shell.Fuzzy,
		},
	})
	if err != nil {
		return nil, err
	}

	for _, a := range cfg.Aliases {
		if _, err := engine.CreateAlias(a.Target, a.Name); err != nil {
			return nil, mdwerror.Wrapf(err, "alias %s", a.Name)
		}
	}

	logger.Debug("procline ready", mdwlog.Fields{
		"config":     cfg.Source(),
		"procedures": reg.Len(),
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		canvas: sketch.New(out, logger),
	}, nil
}

// describe returns the description of a registered procedure
func (a *app) describe(name string) string {
	if p, ok := a.engine.Registry().Resolve(name); ok {
		return p.Description()
	}
	return ""
}
