// Package cli defines the coastfire command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/logging"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type cliContextKey struct{}

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Workers    int

	Assets    float64
	Age       int
	BirthDate string
	SWR       float64
	Return    float64
	Inflation float64
	Spending  float64

	Rows         int
	SpendingMin  float64
	SpendingMax  float64
	SpendingStep float64
}

// CLIContext carries the resolved configuration and engine to subcommands.
type CLIContext struct {
	Config *domain.Configuration
	Engine *calculation.CalculationEngine
	Logger *zap.SugaredLogger
}

// NewRootCommand creates the root command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coastfire",
		Short: "CoastFIRE projection calculator",
		Long: "coastfire projects how much you need invested today so that, with no further\n" +
			"contributions, your portfolio grows into a nest egg that funds your spending\n" +
			"forever at a safe withdrawal rate.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file (inputs and settings)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.IntVar(&opts.Workers, "workers", 0, "grid rows computed concurrently (0 = number of CPUs)")

	pf.Float64Var(&opts.Assets, "assets", 0, "current invested assets")
	pf.IntVar(&opts.Age, "age", 0, "current age")
	pf.StringVar(&opts.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD); overrides --age")
	pf.Float64Var(&opts.SWR, "swr", 0, "safe withdrawal rate as a fraction, e.g. 0.04")
	pf.Float64Var(&opts.Return, "return", 0, "expected nominal annual return, e.g. 0.10")
	pf.Float64Var(&opts.Inflation, "inflation", 0, "expected annual inflation, e.g. 0.04")
	pf.Float64Var(&opts.Spending, "spending", 0, "annual retirement spending in today's dollars")

	pf.IntVar(&opts.Rows, "rows", domain.DefaultRows, "number of retirement ages in the grid")
	pf.Float64Var(&opts.SpendingMin, "spending-min", domain.DefaultSpendingMin, "lowest spending column")
	pf.Float64Var(&opts.SpendingMax, "spending-max", domain.DefaultSpendingMax, "highest spending column")
	pf.Float64Var(&opts.SpendingStep, "spending-step", domain.DefaultSpendingStep, "spending column increment")

	cmd.AddCommand(
		NewSummaryCmd(),
		NewExportCmd(),
		NewCoastAgeCmd(),
		NewServeCmd(),
		NewInitCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	logger, err := logging.NewLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	if opts.ConfigPath != "" {
		cfg, err = parser.LoadFromFile(opts.ConfigPath)
		if err != nil {
			return err
		}
		logger.Debugf("loaded configuration from %s", opts.ConfigPath)
	}

	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}
	parser.Normalize(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	engine, err := calculation.NewCalculationEngineWithSettings(cfg.Settings)
	if err != nil {
		return err
	}
	engine.Workers = opts.Workers
	engine.SetLogger(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &CLIContext{Config: cfg, Engine: engine, Logger: logger}))
	return nil
}

// applyFlags overrides configuration values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, opts *RootOptions, cfg *domain.Configuration) error {
	f := cmd.Flags()
	in := &cfg.Inputs
	if f.Changed("assets") {
		in.CurrentAssets = opts.Assets
	}
	if f.Changed("age") {
		in.CurrentAge = opts.Age
		in.BirthDate = nil
	}
	if f.Changed("birth-date") {
		birth, err := dateutil.ParseBirthDate(opts.BirthDate)
		if err != nil {
			return fmt.Errorf("invalid --birth-date %q: %w", opts.BirthDate, err)
		}
		in.BirthDate = &birth
	}
	if f.Changed("swr") {
		in.SWR = opts.SWR
	}
	if f.Changed("return") {
		in.ReturnRate = opts.Return
	}
	if f.Changed("inflation") {
		in.Inflation = opts.Inflation
	}

	s := &cfg.Settings
	if f.Changed("rows") {
		s.Rows = opts.Rows
	}
	if f.Changed("spending-min") {
		s.SpendingMin = opts.SpendingMin
	}
	if f.Changed("spending-max") {
		s.SpendingMax = opts.SpendingMax
	}
	if f.Changed("spending-step") {
		s.SpendingStep = opts.SpendingStep
	}

	// Spending is clamped after the sweep bounds are final.
	if f.Changed("spending") {
		in.Spending = s.WithDefaults().ClampSpending(opts.Spending)
	}
	return nil
}

// GetCLIContext extracts the CLIContext stored by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	if cmd.Context() != nil {
		if c, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext); ok {
			return c, nil
		}
	}
	return nil, errors.New("cli context not initialized")
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
