package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/domain/model/report"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	jobs map[string]job
	// order keeps start order stable; jobs are stopped in reverse.
	order []string
}

// ReportSchedules holds one cron expression per report period. An empty
// field falls back to that period's default.
type ReportSchedules struct {
	Daily   string
	Weekly  string
	Monthly string
}

func (s ReportSchedules) withDefaults() ReportSchedules {
	if s.Daily == "" {
		s.Daily = DefaultReportSchedule
	}
	if s.Weekly == "" {
		s.Weekly = DefaultWeeklyReportSchedule
	}
	if s.Monthly == "" {
		s.Monthly = DefaultMonthlyReportSchedule
	}
	return s
}

// NewJobManager registers a snapshot job per report period, each on its own
// schedule.
func NewJobManager(generator ReportGenerator, schedules ReportSchedules, logger *slog.Logger) *JobManager {
	schedules = schedules.withDefaults()

	jm := &JobManager{jobs: make(map[string]job)}
	jm.register("daily report snapshot",
		NewReportSnapshotJob(generator, schedules.Daily, []report.Kind{report.Daily}, logger))
	jm.register("weekly report snapshot",
		NewReportSnapshotJob(generator, schedules.Weekly, []report.Kind{report.Weekly}, logger))
	jm.register("monthly report snapshot",
		NewReportSnapshotJob(generator, schedules.Monthly, []report.Kind{report.Monthly}, logger))
	return jm
}

func (jm *JobManager) register(name string, j job) {
	jm.jobs[name] = j
	jm.order = append(jm.order, name)
}

// StartAll starts every job. If one fails, the jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for i, name := range jm.order {
		if err := jm.jobs[name].Start(); err != nil {
			for _, started := range jm.order[:i] {
				jm.jobs[started].Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", name, err)
		}
	}
	return nil
}

func (jm *JobManager) StopAll() {
	for i := len(jm.order) - 1; i >= 0; i-- {
		jm.jobs[jm.order[i]].Stop()
	}
}
