package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"

	"github.com/robfig/cron/v3"
)

// Default snapshot schedules, with a leading seconds field. Weekly runs on
// Monday and monthly on the first, both at midnight.
const (
	DefaultReportSchedule        = "0 0 0 * * *"
	DefaultWeeklyReportSchedule  = "0 0 0 * * 1"
	DefaultMonthlyReportSchedule = "0 0 0 1 * *"
)

// ReportGenerator stores one report snapshot.
type ReportGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateReportCommand) (*report.Report, error)
}

// ReportSnapshotJob stores a report of each configured kind on every tick.
// Every run acts as a freshly created system admin principal.
type ReportSnapshotJob struct {
	generator ReportGenerator
	schedule  string
	kinds     []report.Kind
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

func NewReportSnapshotJob(
	generator ReportGenerator,
	schedule string,
	kinds []report.Kind,
	logger *slog.Logger,
) *ReportSnapshotJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	if len(kinds) == 0 {
		kinds = []report.Kind{report.Daily}
	}

	return &ReportSnapshotJob{
		generator: generator,
		schedule:  schedule,
		kinds:     kinds,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "report_snapshot_job"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *ReportSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if runErr := j.Run(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Report snapshot job failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report snapshot job started",
		"schedule", j.schedule,
		"kinds", j.kindNames(),
	)
	return nil
}

// Run stores one snapshot per kind. It stops at the first failure.
func (j *ReportSnapshotJob) Run(ctx context.Context) error {
	principal, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleAdmin)
	if err != nil {
		return err
	}

	now := j.now()
	for _, kind := range j.kinds {
		cmd, cmdErr := commands.NewGenerateReportCommand(principal, kernel.NewUUID(), kind, now)
		if cmdErr != nil {
			return cmdErr
		}

		r, handleErr := j.generator.Handle(ctx, cmd)
		if handleErr != nil {
			return fmt.Errorf("%s report: %w", kind, handleErr)
		}

		summary := r.Summary()
		j.logger.InfoContext(ctx, "Report stored",
			"kind", kind.String(),
			"orders", summary.TotalOrders,
			"sales", summary.TotalSales.String(),
		)
	}

	return nil
}

func (j *ReportSnapshotJob) kindNames() []string {
	names := make([]string, 0, len(j.kinds))
	for _, kind := range j.kinds {
		names = append(names, kind.String())
	}
	return names
}

// Stop stops the scheduler. A run already in progress is not interrupted.
func (j *ReportSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Report snapshot job stopped")
}
