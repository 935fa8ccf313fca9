// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field. JobManager runs
// one ReportSnapshotJob per report period: daily on REPORT_SCHEDULE, weekly
// on REPORT_SCHEDULE_WEEKLY and monthly on REPORT_SCHEDULE_MONTHLY, all at
// midnight by default.
//
//	jobManager := jobs.NewJobManager(generateReportHandler, jobs.ReportSchedules{
//		Daily:   cfg.ReportSchedule,
//		Weekly:  cfg.WeeklyReportSchedule,
//		Monthly: cfg.MonthlyReportSchedule,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and retried at the next tick.
package jobs
