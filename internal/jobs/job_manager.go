package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	revokedTokenPurgeJob *RevokedTokenPurgeJob
}

func NewJobManager(purger RevokedTokenPurger, logger logrus.FieldLogger) *JobManager {
	return &JobManager{
		revokedTokenPurgeJob: NewRevokedTokenPurgeJob(purger, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.revokedTokenPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start revoked token purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.revokedTokenPurgeJob.Stop()
}
