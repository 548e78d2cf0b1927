package jobs

import (
	"context"
	"sort"

	"kitchenpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultBoardSpec runs the board job every thirty seconds.
const DefaultBoardSpec = "*/30 * * * * *"

// OrderBoardJob periodically logs how many orders wait in each status.
type OrderBoardJob struct {
	handler queries.GetActiveOrdersQueryHandler
	spec    string
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewOrderBoardJob creates the job. An empty spec falls back to DefaultBoardSpec.
// Specs carry a leading seconds field.
func NewOrderBoardJob(handler queries.GetActiveOrdersQueryHandler, spec string, logger *zap.Logger) *OrderBoardJob {
	if spec == "" {
		spec = DefaultBoardSpec
	}
	return &OrderBoardJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "order_board_job")),
	}
}

// Start schedules the job.
func (j *OrderBoardJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("Order board job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order board job started", zap.String("spec", j.spec))
	return nil
}

// Run reads the board once and logs a line with per-status counts.
func (j *OrderBoardJob) Run(ctx context.Context) error {
	board, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, o := range board {
		counts[o.Status.String()]++
	}

	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	fields := make([]zap.Field, 0, len(statuses)+1)
	fields = append(fields, zap.Int("active", len(board)))
	for _, s := range statuses {
		fields = append(fields, zap.Int(s, counts[s]))
	}

	j.logger.Info("Order board", fields...)
	return nil
}

// Stop waits for a running tick to finish.
func (j *OrderBoardJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order board job stopped")
}
