package jobs

import (
	"context"
	"time"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type settledOrdersArchiver interface {
	Handle(ctx context.Context, cmd commands.ArchiveSettledOrdersCommand) (int, error)
}

// ArchiveConfig schedules the archival of settled requisitions.
type ArchiveConfig struct {
	// Spec is a six-field cron expression (seconds first).
	Spec string
	// Age is how long a requisition stays AccountingProcessed before it is archived.
	Age time.Duration
	// Batch caps the requisitions archived per run.
	Batch int
}

// ArchiveSettledOrdersJob moves requisitions that finished accounting
// processing long enough ago to Archived.
type ArchiveSettledOrdersJob struct {
	handler settledOrdersArchiver
	cfg     ArchiveConfig
	cron    *cron.Cron
	logger  *zap.Logger
	now     func() time.Time
}

func NewArchiveSettledOrdersJob(handler settledOrdersArchiver, cfg ArchiveConfig, logger *zap.Logger) *ArchiveSettledOrdersJob {
	return &ArchiveSettledOrdersJob{
		handler: handler,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With(zap.String("component", "archive_settled_orders_job")),
		now:     time.Now,
	}
}

// Start schedules RunOnce on the configured spec.
func (j *ArchiveSettledOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Spec, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("archive job started", zap.String("spec", j.cfg.Spec), zap.Duration("age", j.cfg.Age))
	return nil
}

// RunOnce archives one batch. Failures on single requisitions are logged and
// do not stop the others.
func (j *ArchiveSettledOrdersJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewArchiveSettledOrdersCommand(j.now().Add(-j.cfg.Age), j.cfg.Batch)
	if err != nil {
		j.logger.Error("archive job misconfigured", zap.Error(err))
		return 0
	}

	archived, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("archive job failed", zap.Int("archived", archived), zap.Error(err))
	}
	if archived > 0 {
		j.logger.Info("requisitions archived", zap.Int("archived", archived))
	}
	return archived
}

// Stop waits for a running archival to finish.
func (j *ArchiveSettledOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("archive job stopped")
}
