// Package jobs holds the scheduled maintenance tasks driven by the cron
// scheduler. Each task is a method on JobRunner so the scheduler can
// register them by name.
package jobs

import (
	"github.com/Menwuyelet/jobboard/internal/config"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
	"github.com/Menwuyelet/jobboard/internal/service"
)

type JobRunner struct {
	repos  repository.Repositories
	email  service.EmailService
	config *config.Config
}

func NewJobRunner(repos repository.Repositories, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{repos: repos, email: email, config: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a failing
// task cannot take down the scheduler goroutine.
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
