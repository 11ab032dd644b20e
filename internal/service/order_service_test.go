package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"mini-storefront/internal/catalog"
	"mini-storefront/internal/event"
	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"
	"mini-storefront/internal/notice"
	"mini-storefront/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderStore is a mock implementation of OrderStore.
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Add(order model.Order) {
	m.Called(order)
}

func (m *MockOrderStore) List() []model.Order {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Order)
}

func (m *MockOrderStore) GetByID(id string) (model.Order, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Order), args.Bool(1)
}

func (m *MockOrderStore) UpdateStatus(id string, status model.OrderStatus) bool {
	args := m.Called(id, status)
	return args.Bool(0)
}

func (m *MockOrderStore) Len() int {
	args := m.Called()
	return args.Int(0)
}

var fixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *catalog.Generator {
	return catalog.NewGenerator(rand.NewPCG(1, 2))
}

func newTestOrderService(t *testing.T, orders store.OrderStore, seed int) (OrderService, *notice.Board) {
	t.Helper()
	board := notice.NewBoard(zerolog.Nop())
	t.Cleanup(board.Close)

	svc := NewOrderService(orders, newTestGenerator(), board, OrderOptions{
		SeedCount:     seed,
		PageSize:      10,
		Shipping:      model.DefaultShipping,
		ToastDuration: time.Minute,
		Now:           func() time.Time { return fixedNow },
	}, zerolog.Nop())
	return svc, board
}

func TestOrderService_List_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	orders := store.NewOrderStore(event.NewBus(zerolog.Nop()), zerolog.Nop())
	svc, _ := newTestOrderService(t, orders, 32)

	page, err := svc.List(ctx, listing.OrderQuery{}, 1)
	require.NoError(t, err)

	assert.Equal(t, 32, orders.Len())
	assert.Equal(t, 32, page.TotalItems)
	assert.Equal(t, 4, page.TotalPages)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.From)
	assert.Equal(t, 10, page.To)

	// A second listing does not seed again.
	_, err = svc.List(ctx, listing.OrderQuery{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 32, orders.Len())
}

func TestOrderService_List_DoesNotSeedNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	orders := store.NewOrderStore(event.NewBus(zerolog.Nop()), zerolog.Nop())
	orders.Add(model.Order{ID: "PO-1", Status: model.StatusPending, CreatedAt: fixedNow})
	svc, _ := newTestOrderService(t, orders, 32)

	page, err := svc.List(ctx, listing.OrderQuery{}, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, orders.Len())
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PO-1", page.Items[0].ID)
}

func TestOrderService_List_Filters(t *testing.T) {
	ctx := context.Background()
	orders := store.NewOrderStore(event.NewBus(zerolog.Nop()), zerolog.Nop())
	orders.Add(model.Order{ID: "PO-1", Status: model.StatusPending, CreatedAt: fixedNow, Customer: model.Customer{FullName: "Ada Lovelace"}})
	orders.Add(model.Order{ID: "PO-2", Status: model.StatusShipped, CreatedAt: fixedNow, Customer: model.Customer{FullName: "Alan Turing"}})
	svc, _ := newTestOrderService(t, orders, 0)

	tests := []struct {
		name     string
		query    listing.OrderQuery
		expected []string
	}{
		{name: "No filter", query: listing.OrderQuery{}, expected: []string{"PO-2", "PO-1"}},
		{name: "By status", query: listing.OrderQuery{Status: model.StatusShipped}, expected: []string{"PO-2"}},
		{name: "By customer", query: listing.OrderQuery{Text: "  ADA "}, expected: []string{"PO-1"}},
		{name: "No match", query: listing.OrderQuery{Text: "nobody"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(ctx, tt.query, 1)
			require.NoError(t, err)

			ids := make([]string, 0, len(page.Items))
			for _, o := range page.Items {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := context.Background()
	existing := model.Order{ID: "PO-1", Status: model.StatusPending}

	tests := []struct {
		name        string
		id          string
		mockOrder   model.Order
		mockFound   bool
		expectedErr error
	}{
		{name: "Found", id: "PO-1", mockOrder: existing, mockFound: true},
		{name: "Not found", id: "PO-404", mockOrder: model.Order{}, mockFound: false, expectedErr: model.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockOrderStore)
			mockStore.On("GetByID", tt.id).Return(tt.mockOrder, tt.mockFound)
			svc, _ := newTestOrderService(t, mockStore, 0)

			order, err := svc.GetByID(ctx, tt.id)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, order)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, order.ID)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Changed status is saved and announced", func(t *testing.T) {
		mockStore := new(MockOrderStore)
		before := model.Order{ID: "PO-1", Status: model.StatusPending}
		after := model.Order{ID: "PO-1", Status: model.StatusShipped}
		mockStore.On("GetByID", "PO-1").Return(before, true).Once()
		mockStore.On("UpdateStatus", "PO-1", model.StatusShipped).Return(true).Once()
		mockStore.On("GetByID", "PO-1").Return(after, true).Once()
		svc, board := newTestOrderService(t, mockStore, 0)

		res, err := svc.UpdateStatus(ctx, "PO-1", model.StatusShipped)

		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, model.StatusShipped, res.Order.Status)
		active := board.Active()
		require.Len(t, active, 1)
		assert.Equal(t, "order:PO-1", active[0].Key)
		assert.Equal(t, "Status updated", active[0].Message)
		mockStore.AssertExpectations(t)
	})

	t.Run("Same status is a no-op", func(t *testing.T) {
		mockStore := new(MockOrderStore)
		current := model.Order{ID: "PO-1", Status: model.StatusPending}
		mockStore.On("GetByID", "PO-1").Return(current, true).Once()
		svc, board := newTestOrderService(t, mockStore, 0)

		res, err := svc.UpdateStatus(ctx, "PO-1", model.StatusPending)

		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Empty(t, board.Active())
		mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("Missing order", func(t *testing.T) {
		mockStore := new(MockOrderStore)
		mockStore.On("GetByID", "PO-404").Return(model.Order{}, false).Once()
		svc, _ := newTestOrderService(t, mockStore, 0)

		res, err := svc.UpdateStatus(ctx, "PO-404", model.StatusShipped)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrOrderNotFound))
		assert.Nil(t, res)
		mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("Invalid status", func(t *testing.T) {
		mockStore := new(MockOrderStore)
		svc, _ := newTestOrderService(t, mockStore, 0)

		_, err := svc.UpdateStatus(ctx, "PO-1", model.OrderStatus("Lost"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidStatus))
		mockStore.AssertExpectations(t)
	})
}

func TestOrderService_BulkUpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		ids             []string
		status          model.OrderStatus
		expectedErr     error
		expectedUpdated []string
		expectedMissing []string
	}{
		{
			name:            "Updates every selected order",
			ids:             []string{"PO-1", "PO-2"},
			status:          model.StatusDelivered,
			expectedUpdated: []string{"PO-1", "PO-2"},
			expectedMissing: []string{},
		},
		{
			name:            "Reports missing and skips duplicates",
			ids:             []string{"PO-1", "PO-404", "PO-1"},
			status:          model.StatusCancelled,
			expectedUpdated: []string{"PO-1"},
			expectedMissing: []string{"PO-404"},
		},
		{
			name:        "Empty selection",
			ids:         nil,
			status:      model.StatusShipped,
			expectedErr: model.ErrNoSelection,
		},
		{
			name:        "Invalid status",
			ids:         []string{"PO-1"},
			status:      model.OrderStatus(""),
			expectedErr: model.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := event.NewBus(zerolog.Nop())
			orders := store.NewOrderStore(bus, zerolog.Nop())
			orders.Add(model.Order{ID: "PO-1", Status: model.StatusPending})
			orders.Add(model.Order{ID: "PO-2", Status: model.StatusPending})
			svc, _ := newTestOrderService(t, orders, 0)

			res, err := svc.BulkUpdateStatus(ctx, tt.ids, tt.status)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedUpdated, res.Updated)
			assert.Equal(t, tt.expectedMissing, res.Missing)
			for _, id := range tt.expectedUpdated {
				o, ok := orders.GetByID(id)
				require.True(t, ok)
				assert.Equal(t, tt.status, o.Status)
			}
			assert.Equal(t, 2, orders.Len())
		})
	}
}

func TestOrderService_SeededTotals(t *testing.T) {
	ctx := context.Background()
	orders := store.NewOrderStore(event.NewBus(zerolog.Nop()), zerolog.Nop())
	svc, _ := newTestOrderService(t, orders, 5)

	_, err := svc.List(ctx, listing.OrderQuery{}, 1)
	require.NoError(t, err)

	for _, o := range orders.List() {
		subtotal, total := model.Totals(o.Items, o.Shipping)
		assert.True(t, subtotal.Equal(o.Subtotal), "order %s subtotal", o.ID)
		assert.True(t, total.Equal(o.Total), "order %s total", o.ID)
		assert.True(t, o.Shipping.Equal(decimal.RequireFromString("9.99")))
	}
}
