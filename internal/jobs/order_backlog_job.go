package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

const orderBacklogRunTimeout = 30 * time.Second

// StatusSummaryHandler is satisfied by queries.GetOrderStatusSummaryQueryHandler.
type StatusSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusSummaryQuery) (queries.GetOrderStatusSummaryQueryResponse, error)
}

// OrderBacklogJob periodically reports how many orders sit in each status.
type OrderBacklogJob struct {
	handler  StatusSummaryHandler
	schedule string
	gauge    *prometheus.GaugeVec
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job and registers its gauge with reg.
func NewOrderBacklogJob(
	handler StatusSummaryHandler,
	schedule string,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*OrderBacklogJob, error) {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ordering",
		Name:      "orders_by_status",
		Help:      "Number of stored orders per status.",
	}, []string{"status"})
	if err := reg.Register(gauge); err != nil {
		return nil, err
	}

	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		gauge:    gauge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}, nil
}

// Start schedules the job.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), orderBacklogRunTimeout)
		defer cancel()

		if runErr := j.Run(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", runErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running execution to return.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

// Run performs a single pass.
func (j *OrderBacklogJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(order.Statuses())+2)
	for _, status := range order.Statuses() {
		count := summary.Count(status)
		j.gauge.WithLabelValues(status.String()).Set(float64(count))
		attrs = append(attrs, status.Name(), count)
	}
	attrs = append(attrs, "total", summary.Total())

	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return nil
}
