package jobs

import (
	"fmt"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	redeliveryJob *NotificationRedeliveryJob
}

func NewJobManager(redeliveryJob *NotificationRedeliveryJob) *JobManager {
	return &JobManager{redeliveryJob: redeliveryJob}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.redeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification redelivery job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.redeliveryJob.Stop()
}
