package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/mocks"
	"myfooddesk/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCartService_View_PrunesUnavailable(t *testing.T) {
	store := mocks.NewCartStore(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewCartService(store, products)

	ctx := context.Background()
	const session = "sess-1"

	store.On("Entries", ctx, session).Return([]domain.CartEntry{
		{ProductID: 1, Qty: 2},
		{ProductID: 2, Qty: 1}, // sold out
		{ProductID: 3, Qty: 4}, // no longer in catalog
	}, nil).Once()
	products.On("ListProducts").Return([]domain.Product{
		{ID: 1, Name: "Pad Thai", Price: 80, CostToMake: 30, IsActive: true},
		{ID: 2, Name: "Thai Tea", Price: 45, IsActive: true, IsSoldOut: true},
	}, nil).Once()
	store.On("RemoveEntry", ctx, session, 2).Return(nil).Once()
	store.On("RemoveEntry", ctx, session, 3).Return(nil).Once()

	view, err := svc.View(ctx, session)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].ProductID)
	assert.Equal(t, 2, view.CartCount)
	assert.InDelta(t, 160, view.Subtotal, 1e-9)
	assert.Equal(t, service.UnavailableNotice, view.Notice)
}

func TestCartService_View_NoNoticeWhenNothingDropped(t *testing.T) {
	store := mocks.NewCartStore(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewCartService(store, products)

	ctx := context.Background()

	store.On("Entries", ctx, "s").Return([]domain.CartEntry{{ProductID: 1, Qty: 1}}, nil).Once()
	products.On("ListProducts").Return([]domain.Product{
		{ID: 1, Name: "Pad Thai", Price: 80, IsActive: true},
	}, nil).Once()

	view, err := svc.View(ctx, "s")
	assert.NoError(t, err)
	assert.Empty(t, view.Notice)
}

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("available_product_increments", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(&domain.Product{ID: 1, IsActive: true}, nil).Once()
		store.On("IncrQty", ctx, "s", 1, 1).Return(1, nil).Once()

		assert.NoError(t, svc.Add(ctx, "s", 1))
	})

	t.Run("sold_out_is_silent_noop", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 2).Return(&domain.Product{ID: 2, IsActive: true, IsSoldOut: true}, nil).Once()

		assert.NoError(t, svc.Add(ctx, "s", 2))
	})

	t.Run("unknown_product_is_silent_noop", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 99).Return(nil, sql.ErrNoRows).Once()

		assert.NoError(t, svc.Add(ctx, "s", 99))
	})

	t.Run("catalog_failure_surfaces", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(nil, errors.New("db connection refused")).Once()

		err := svc.Add(ctx, "s", 1)
		assert.Error(t, err)
		store.AssertNotCalled(t, "IncrQty")
	})
}

func TestCartService_UpdateQty(t *testing.T) {
	ctx := context.Background()

	t.Run("sets_quantity", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(&domain.Product{ID: 1, IsActive: true}, nil).Once()
		store.On("SetQty", ctx, "s", 1, 5).Return(nil).Once()

		assert.NoError(t, svc.UpdateQty(ctx, "s", 1, 5))
	})

	t.Run("zero_removes", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(&domain.Product{ID: 1, IsActive: true}, nil).Once()
		store.On("RemoveEntry", ctx, "s", 1).Return(nil).Once()

		assert.NoError(t, svc.UpdateQty(ctx, "s", 1, 0))
	})

	t.Run("unavailable_removes_regardless_of_qty", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(&domain.Product{ID: 1, IsActive: false}, nil).Once()
		store.On("RemoveEntry", ctx, "s", 1).Return(nil).Once()

		assert.NoError(t, svc.UpdateQty(ctx, "s", 1, 7))
	})

	t.Run("deleted_product_removes", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(nil, sql.ErrNoRows).Once()
		store.On("RemoveEntry", ctx, "s", 1).Return(nil).Once()

		assert.NoError(t, svc.UpdateQty(ctx, "s", 1, 7))
	})

	t.Run("catalog_failure_keeps_entry", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		products := mocks.NewProductRepository(t)
		svc := service.NewCartService(store, products)

		products.On("GetProduct", 1).Return(nil, errors.New("db connection refused")).Once()

		err := svc.UpdateQty(ctx, "s", 1, 7)
		assert.Error(t, err)
		store.AssertNotCalled(t, "RemoveEntry")
		store.AssertNotCalled(t, "SetQty")
	})
}
