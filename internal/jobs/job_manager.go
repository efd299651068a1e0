package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProgressJob *OrderProgressJob
}

// NewJobManager creates a job manager. A nil job is disabled.
func NewJobManager(orderProgressJob *OrderProgressJob) *JobManager {
	return &JobManager{
		orderProgressJob: orderProgressJob,
	}
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderProgressJob == nil {
		return nil
	}
	if err := jm.orderProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start order progress job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderProgressJob != nil {
		jm.orderProgressJob.Stop()
	}
}
