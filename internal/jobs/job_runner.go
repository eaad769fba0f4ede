package jobs

import (
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	deadLetters repository.DeadLetterRepository
	retrier     service.DeadLetterRetrier
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(deadLetters repository.DeadLetterRepository, retrier service.DeadLetterRetrier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		deadLetters: deadLetters,
		retrier:     retrier,
		config:      cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
