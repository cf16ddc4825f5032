// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision
// schedules, so both six field expressions and descriptors such as
// "@every 1m" are accepted.
//
// # Available Jobs
//
// 1. OrderBacklogJob - counts orders per status, publishes the counts as the
// ordering_orders_by_status gauge and logs the summary
//
// # Usage
//
//	backlogJob, err := jobs.NewOrderBacklogJob(summaryHandler, "@every 1m", registry, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(backlogJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the gauge keeps its previous values; the next
// scheduled run tries again.
package jobs
