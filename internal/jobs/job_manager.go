package jobs

import (
	"fmt"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsReportJob *StatsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler queries.GetOrderStatsQueryHandler,
	logger *slog.Logger,
) (*JobManager, error) {
	statsReportJob, err := NewStatsReportJob(statsHandler, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats report job: %w", err)
	}

	return &JobManager{
		statsReportJob: statsReportJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsReportJob.Stop()
}
