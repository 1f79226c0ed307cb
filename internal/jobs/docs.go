// Package jobs provides scheduled background tasks for the requisition service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// ArchiveSettledOrdersJob moves requisitions that have been AccountingProcessed
// for longer than the configured age to Archived. Each requisition goes
// through the workflow service in its own transaction, as the system actor,
// so it gets the same checks and history entry as a manual move.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(archiveHandler, jobs.ArchiveConfig{
//		Spec:  "0 0 3 * * *",
//		Age:   30 * 24 * time.Hour,
//		Batch: 200,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failure on one requisition is logged and the batch continues. Runs never
// overlap: a run still in progress makes the next tick skip.
package jobs
