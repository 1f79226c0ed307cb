package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	archiveJob *ArchiveSettledOrdersJob
}

func NewJobManager(archiver settledOrdersArchiver, archive ArchiveConfig, logger *zap.Logger) *JobManager {
	return &JobManager{
		archiveJob: NewArchiveSettledOrdersJob(archiver, archive, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.archiveJob.Start(); err != nil {
		return fmt.Errorf("failed to start archive job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.archiveJob.Stop()
}
