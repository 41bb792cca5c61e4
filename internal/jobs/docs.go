// Package jobs provides scheduled background tasks for the transport order
// service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager.
//
// # Available Jobs
//
// 1. RevokedTokenPurgeJob - Runs every hour to delete revoked token ids whose
// tokens have expired
//
// # Usage
//
//	jobManager := jobs.NewJobManager(authService, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
