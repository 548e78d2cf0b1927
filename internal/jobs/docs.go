// Package jobs provides scheduled background tasks for the point of sale.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderBoardJob reads the order board (every order that is not COMPLETED)
// and logs how many orders sit in each status.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(activeOrdersHandler, cfg.BoardJobSpec, logger.L())
//	if err := jobManager.StartAll(); err != nil {
//		logger.L().Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs use six fields, seconds first. The default "*/30 * * * * *" runs
// twice a minute.
package jobs
