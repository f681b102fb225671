// Package jobs provides scheduled background tasks for the vinyl shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path must not block on.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to ship committed order events from
// the outbox table to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxReader, publisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" which means it runs every
// second. This keeps the delay between commit and broker delivery small
// without coupling request handling to the broker.
//
// # Error Handling
//
// A failed publish aborts the current batch and leaves the remaining
// messages in the outbox. The next tick retries them, so delivery to the
// broker is at-least-once and consumers must tolerate duplicates.
package jobs
