package queries_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewFindOrderByIDQuery(t *testing.T) {
	id := kernel.NewUUID()

	q, err := queries.NewFindOrderByIDQuery(id)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, id, q.OrderID())

	_, err = queries.NewFindOrderByIDQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, queries.FindOrderByIDQuery{}.Validate(), queries.ErrFindOrderByIDQueryIsNotConstructed)
}

func TestFindOrderByIDQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should return the stored order", func(t *testing.T) {
		existing := newTestOrder(t, kernel.NewUUID(), order.Confirmed)
		reader := new(MockOrderReader)
		reader.On("FindByID", ctx, existing.ID()).Return(existing, true, nil).Once()

		q, _ := queries.NewFindOrderByIDQuery(existing.ID())
		result, err := queries.NewFindOrderByIDQueryHandler(reader).Handle(ctx, q)

		require.NoError(t, err)
		assert.Same(t, existing, result)
		reader.AssertExpectations(t)
	})

	t.Run("absent order is a business rule violation", func(t *testing.T) {
		id := kernel.NewUUID()
		reader := new(MockOrderReader)
		reader.On("FindByID", ctx, id).Return(nil, false, nil).Once()

		q, _ := queries.NewFindOrderByIDQuery(id)
		result, err := queries.NewFindOrderByIDQueryHandler(reader).Handle(ctx, q)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "Order with ID "+id.String()+" not found.")
		assert.Nil(t, result)
	})

	t.Run("reader failure is returned unchanged", func(t *testing.T) {
		id := kernel.NewUUID()
		readErr := errors.New("connection refused")
		reader := new(MockOrderReader)
		reader.On("FindByID", ctx, id).Return(nil, false, readErr).Once()

		q, _ := queries.NewFindOrderByIDQuery(id)
		_, err := queries.NewFindOrderByIDQueryHandler(reader).Handle(ctx, q)

		require.ErrorIs(t, err, readErr)
		assert.False(t, errs.IsBusinessRuleViolation(err))
	})

	t.Run("not constructed query never reaches the reader", func(t *testing.T) {
		reader := new(MockOrderReader)

		_, err := queries.NewFindOrderByIDQueryHandler(reader).Handle(ctx, queries.FindOrderByIDQuery{})

		require.ErrorIs(t, err, queries.ErrFindOrderByIDQueryIsNotConstructed)
		reader.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
