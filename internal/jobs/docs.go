// Package jobs provides scheduled background tasks for the jobly service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// HealthCheckJob pings one dependency (postgres, redis) on a schedule and
// records the outcome in a shared HealthStatus, which GET /health reports.
//
// # Usage
//
//	status := jobs.NewHealthStatus()
//	storeJob := jobs.NewHealthCheckJob("postgres", db.Ping, status, "*/15 * * * * *", 2*time.Second, log)
//
//	manager := jobs.NewJobManager(log, storeJob)
//	if err := manager.StartAll(); err != nil {
//		log.Error("failed to start jobs", "error", err)
//	}
//	defer manager.StopAll()
//
// A failed start stops every job already started.
package jobs
