package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantops/maintcore/config"
	corebacklog "github.com/plantops/maintcore/core/backlog"
	"github.com/plantops/maintcore/core/model"
	"github.com/plantops/maintcore/core/scheduler"
	"github.com/plantops/maintcore/infra/logger"
	inframetrics "github.com/plantops/maintcore/infra/metrics"
)

var (
	programBacklogPath string
	programPlantID     string
	programWeek        int
	programYear        int
	programOutPath     string
	programFinalize    bool
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Build a weekly program from the backlog",
	RunE:  runProgram,
}

func init() {
	programCmd.Flags().StringVarP(&programBacklogPath, "backlog", "b", "backlog.json", "backlog input file")
	programCmd.Flags().StringVar(&programPlantID, "plant", "plant-1", "plant identifier")
	programCmd.Flags().IntVar(&programWeek, "week", 0, "ISO week number (0 for current)")
	programCmd.Flags().IntVar(&programYear, "year", 0, "year (0 for current)")
	programCmd.Flags().StringVarP(&programOutPath, "out", "o", "-", "output file (- for stdout)")
	programCmd.Flags().BoolVar(&programFinalize, "finalize", false, "attempt DRAFT to FINAL transition")
	rootCmd.AddCommand(programCmd)
}

// programOutput bundles the built program with its leveling analysis.
type programOutput struct {
	Program  model.WeeklyProgram      `json:"program"`
	Leveling scheduler.LevelingResult `json:"leveling"`
	Message  string                   `json:"message,omitempty"`
}

func runProgram(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New(cfg.Logging.Component)
	sink, err := inframetrics.NewSink(cfg.Metrics, logg)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	backlog, err := readBacklog(programBacklogPath)
	if err != nil {
		return err
	}

	week, year := programWeek, programYear
	if week == 0 || year == 0 {
		y, w := time.Now().ISOWeek()
		if week == 0 {
			week = w
		}
		if year == 0 {
			year = y
		}
	}

	groups := corebacklog.FindAllGroups(backlog.Items)
	var pkgs []model.ScheduledPackage
	for _, g := range groups {
		pkgs = append(pkgs, scheduler.PackageFromGroup(g))
	}
	for _, it := range corebacklog.Ungrouped(backlog.Items, groups) {
		pkgs = append(pkgs, scheduler.PackageFromItem(it))
	}

	eng := scheduler.New(cfg.Scheduler, logg, sink)
	p := eng.BuildWeeklyProgram(programPlantID, week, year, pkgs)
	p = eng.AssignSupportTasks(p)
	p = eng.RefreshConflicts(p)
	leveling := eng.LevelResourcesEnhanced(p, backlog.Workers, backlog.Capacities)
	p.Slots = leveling.Slots

	out := programOutput{Program: p, Leveling: leveling}
	if programFinalize {
		out.Program, out.Message = eng.Finalize(p)
	}
	return writeJSON(programOutPath, out)
}
