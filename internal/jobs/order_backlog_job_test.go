package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusSummaryHandler struct {
	mock.Mock
}

func (m *MockStatusSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetOrderStatusSummaryQuery,
) (queries.GetOrderStatusSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatusSummaryQueryResponse), args.Error(1)
}

func newTestJob(t *testing.T, handler StatusSummaryHandler) *OrderBacklogJob {
	t.Helper()

	job, err := NewOrderBacklogJob(handler, "@every 1h", prometheus.NewRegistry(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return job
}

func TestOrderBacklogJob_Run_SetsGauge(t *testing.T) {
	handler := new(MockStatusSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderStatusSummaryQueryResponse{
		Counts: map[order.Status]int64{
			order.Confirmed: 4,
			order.Delivered: 2,
		},
	}, nil).Once()

	job := newTestJob(t, handler)

	require.NoError(t, job.Run(t.Context()))

	assert.InDelta(t, 4.0, testutil.ToFloat64(job.gauge.WithLabelValues("Confirmado")), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(job.gauge.WithLabelValues("Entregado")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(job.gauge.WithLabelValues("Cancelado")), 1e-9)
	assert.Equal(t, len(order.Statuses()), testutil.CollectAndCount(job.gauge))
	handler.AssertExpectations(t)
}

func TestOrderBacklogJob_Run_FailureKeepsPreviousValues(t *testing.T) {
	handler := new(MockStatusSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderStatusSummaryQueryResponse{
		Counts: map[order.Status]int64{order.Ready: 3},
	}, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderStatusSummaryQueryResponse{}, errors.New("db down")).Once()

	job := newTestJob(t, handler)

	require.NoError(t, job.Run(t.Context()))
	require.Error(t, job.Run(t.Context()))

	assert.InDelta(t, 3.0, testutil.ToFloat64(job.gauge.WithLabelValues("Listo")), 1e-9)
}

func TestNewOrderBacklogJob_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewOrderBacklogJob(new(MockStatusSummaryHandler), "@every 1m", reg, logger)
	require.NoError(t, err)

	_, err = NewOrderBacklogJob(new(MockStatusSummaryHandler), "@every 1m", reg, logger)
	require.Error(t, err)
}

func TestJobManager_StartStop(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		jm := NewJobManager(newTestJob(t, new(MockStatusSummaryHandler)))

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		job, err := NewOrderBacklogJob(new(MockStatusSummaryHandler), "not a schedule", prometheus.NewRegistry(),
			slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)

		err = NewJobManager(job).StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order backlog job")
	})
}
