// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// NotificationRedeliveryJob retries "you were selected" pushes whose first
// delivery failed and were parked in the notification outbox. Each entry is
// attempted once per run until it is delivered or reaches the attempt limit.
//
// # Usage
//
//	job := jobs.NewNotificationRedeliveryJob(handler, cmd, "0 * * * * *", logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Expressions carry a seconds field. Overlapping runs are skipped, so a
// slow push gateway never stacks passes on top of each other.
package jobs
