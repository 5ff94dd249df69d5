package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/logging"
	"github.com/rpgo/coastfire-calculator/internal/output"
	"github.com/rpgo/coastfire-calculator/internal/server"
)

func runProjection(cmd *cobra.Command) (*domain.Report, error) {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return nil, err
	}
	return cliCtx.Engine.RunProjection(cmd.Context(), cliCtx.Config.Inputs)
}

// NewSummaryCmd prints the console report.
func NewSummaryCmd() *cobra.Command {
	var maxColumns int
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the coast age, warnings and a grid excerpt",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runProjection(cmd)
			if err != nil {
				return err
			}
			out, err := output.ConsoleFormatter{MaxColumns: maxColumns}.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntVar(&maxColumns, "columns", 6, "spending columns shown in the grid excerpt")
	return cmd
}

// NewExportCmd writes the report in any registered format.
func NewExportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the report (console, csv, chart-csv, json, html, pdf, all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runProjection(cmd)
			if err != nil {
				return err
			}
			if out == "-" {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("%w: %q cannot be written to stdout", output.ErrUnsupportedFormat, format)
				}
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			written, err := output.GenerateReport(report, format, out)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format or alias")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path; '-' writes to stdout (default: timestamped file)")
	return cmd
}

// NewCoastAgeCmd prints only the coast age.
func NewCoastAgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coast-age",
		Short: "Print the first age at which current assets cover the required amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runProjection(cmd)
			if err != nil {
				return err
			}
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			line := output.FormatCoastAge(report.CoastAge)
			if report.CoastYear != nil {
				line = fmt.Sprintf("%s (%d)", line, *report.CoastYear)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

// NewServeCmd runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if err := applyServeLogLevel(cmd, cliCtx, cfg); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, cliCtx.Engine, cliCtx.Logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides COAST_ADDR)")
	return cmd
}

// applyServeLogLevel rebuilds the logger from COAST_LOG_LEVEL unless
// --log-level was given, so the flag wins over the environment.
func applyServeLogLevel(cmd *cobra.Command, cliCtx *CLIContext, cfg server.Config) error {
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		return nil
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	cliCtx.Logger = logger
	cliCtx.Engine.SetLogger(logger)
	return nil
}

// NewInitCmd writes an example configuration file.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			path := "coastfire.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveConfiguration(cliCtx.Config, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
