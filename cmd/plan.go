package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantops/maintcore/config"
	"github.com/plantops/maintcore/core/optimizer"
	"github.com/plantops/maintcore/infra/logger"
	inframetrics "github.com/plantops/maintcore/infra/metrics"
)

var (
	planBacklogPath string
	planHorizonDays int
	planOutPath     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run a full backlog optimization pass",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planBacklogPath, "backlog", "b", "backlog.json", "backlog input file")
	planCmd.Flags().IntVar(&planHorizonDays, "horizon", 14, "planning horizon in days")
	planCmd.Flags().StringVarP(&planOutPath, "out", "o", "-", "output file (- for stdout)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New(cfg.Logging.Component)

	if cfg.Metrics.PrometheusEnabled {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}

	backlog, err := readBacklog(planBacklogPath)
	if err != nil {
		return err
	}

	opt := optimizer.New(cfg.Scheduler, logg)
	res := opt.Optimize(time.Now(), backlog.Items, backlog.Workers, backlog.ShutdownWindows, planHorizonDays)
	return writeJSON(planOutPath, res)
}
