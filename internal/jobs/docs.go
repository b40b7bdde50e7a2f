// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for offer sequencing.
//
// # Available Jobs
//
// 1. OfferExpiryJob - Runs every second to expire overdue offers, move
// sequencing to the next rider, and cancel orders past the global dispatch
// deadline.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(progressOrderHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * * *", meaning it runs every
// second. Progression is idempotent and conditioned on stored deadlines, so
// the sweep coexists safely with client-driven progression triggers.
//
// # Error Handling
//
// Conflicts with concurrent triggers are swallowed inside the handler; the
// sweep only logs failures that indicate system issues.
package jobs
