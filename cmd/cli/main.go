package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gocorr/adapters/excel"
	"gocorr/app"
	"gocorr/domain/series"
	"gocorr/internal"
	"gocorr/internal/api"
	"gocorr/internal/config"
	"gocorr/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gocorr",
		Short:         "Find the most correlated pair of weighted series after outlier suppression",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFindCmd(),
		newDemoCmd(),
		newServeCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFindCmd() *cobra.Command {
	var file, sheet, weightColumn string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Analyze a CSV or XLSX file",
		Long: `Read a table where every column is a series and one column holds the
observation weights, zero values beyond two weighted standard deviations, and
print the pair with the largest absolute weighted correlation.

Example: gocorr find --file prices.csv --weight-column weight`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.Data.File
			}
			if file == "" {
				return fmt.Errorf("no input: pass --file or set DATA_FILE")
			}
			if !cmd.Flags().Changed("sheet") {
				sheet = cfg.Data.Sheet
			}
			if !cmd.Flags().Changed("weight-column") {
				weightColumn = cfg.Data.WeightColumn
			}

			logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
			reader := excel.NewDataReader(excel.ReaderConfig{Sheet: sheet, WeightColumn: weightColumn})
			svc := app.NewPairService(reader, logger)

			report, err := svc.FindFromFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report, asJSON)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV or XLSX file to analyze (default $DATA_FILE)")
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Worksheet to read from XLSX files")
	cmd.Flags().StringVar(&weightColumn, "weight-column", "weight", "Header of the weight column")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")

	return cmd
}

func newDemoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in three-series sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewPairService(nil, internal.DefaultLogger)
			report, err := svc.Find(cmd.Context(), testkit.ReferenceScenario())
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")

	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /api/v1/pair over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Server.Port
			}
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
			router := api.NewRouter(app.NewPairService(nil, logger), cfg.Server.GinMode)
			return api.Serve(cmd.Context(), router, ":"+port, logger)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (default $PORT or 8080)")

	return cmd
}

func printReport(w io.Writer, report *series.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "(%d, %d)\n", report.Pair.I, report.Pair.J)
	fmt.Fprintf(w, "  %s ~ %s  r=%.6f\n", report.Keys[0], report.Keys[1], report.Correlation)
	for _, p := range report.Series {
		if p.OutliersZeroed == 0 {
			continue
		}
		positions := make([]string, len(p.OutlierPositions))
		for i, k := range p.OutlierPositions {
			positions[i] = fmt.Sprint(k)
		}
		fmt.Fprintf(w, "  %s: zeroed %d outlier(s) at [%s]\n", p.Key, p.OutliersZeroed, strings.Join(positions, " "))
	}
	return nil
}
