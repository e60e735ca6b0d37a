package jobs

import (
	"context"
	"fmt"
	"time"

	"jobly/internal/pkg/logging"

	"github.com/robfig/cron/v3"
)

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

// HealthCheckJob pings one dependency on a cron schedule.
type HealthCheckJob struct {
	component string
	ping      PingFunc
	status    *HealthStatus
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *logging.Logger
	now       func() time.Time
}

// NewHealthCheckJob accepts six-field schedules ("*/15 * * * * *") and descriptors ("@every 15s").
func NewHealthCheckJob(
	component string,
	ping PingFunc,
	status *HealthStatus,
	schedule string,
	timeout time.Duration,
	logger *logging.Logger,
) *HealthCheckJob {
	status.Register(component)

	return &HealthCheckJob{
		component: component,
		ping:      ping,
		status:    status,
		schedule:  schedule,
		timeout:   timeout,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", component+"_health_job"),
		now:       time.Now,
	}
}

func (j *HealthCheckJob) Name() string {
	return j.component + " health check"
}

// Start runs one check synchronously, then schedules the rest.
func (j *HealthCheckJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.RunOnce(context.Background())
	j.cron.Start()
	j.logger.Info("health check job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running check to finish.
func (j *HealthCheckJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("health check job stopped")
}

// RunOnce pings the dependency and records the result.
func (j *HealthCheckJob) RunOnce(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	err := j.ping(ctx)
	if err != nil {
		j.logger.Warn("dependency unreachable", "error", err)
	}
	j.status.Record(j.component, err, j.now())
}
