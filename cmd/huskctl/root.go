package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/husk-sh/husk/internal/config"
	"github.com/husk-sh/husk/internal/observability"
	"github.com/husk-sh/husk/internal/render"
)

// app carries the state shared by every subcommand: resolved configuration,
// the logger, and the output renderer.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
	out    *render.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "huskctl",
		Short: "Multi-format encoding toolkit with recursive layer peeling",
		Long: `huskctl encodes, decodes, and classifies text encodings
(base64, base64url, base32, hex, url) and can strip multiple stacked
layers of encoding to recover the original payload.

Input is resolved from --file first, then the positional argument,
then piped stdin.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	root.AddCommand(
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newDetectCmd(),
		a.newPeelCmd(),
		a.newChainCmd(),
		a.newRecipeCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &usageError{err: err}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return &usageError{err: err}
		}
	}

	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.out = render.New()
	return nil
}
