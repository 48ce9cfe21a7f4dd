package service_test

import (
	"context"
	"testing"
	"time"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/mocks"
	"myfooddesk/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		product  domain.Product
		expected string
	}{
		{domain.Product{Name: "Green Curry", Category: "Curry"}, "Curry"},
		{domain.Product{Name: "Thai Tea"}, "Drinks"},
		{domain.Product{Name: "Fresh Drink Set"}, "Drinks"},
		{domain.Product{Name: "Fried Rice"}, "Rice"},
		{domain.Product{Name: "Fudge Brownie"}, "Dessert"},
		{domain.Product{Name: "Mystery Box"}, "Other"},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, service.InferCategory(testCase.product), testCase.product.Name)
	}
}

func dashboardOrders() []domain.Order {
	now := testClock().Now()
	return []domain.Order{
		{
			ID: 1, Status: "COMPLETED", TotalAmount: 240,
			DeliveryAddress: "Bangna",
			CreatedAt:       now.Add(-2 * time.Hour),
			Items: []domain.OrderItem{
				{ProductID: 1, Qty: 2, UnitPrice: 100, UnitCostAtSale: 30},
			},
		},
		{
			ID: 2, Status: "COMPLETED", TotalAmount: 90,
			DeliveryAddress: "Onnut",
			CreatedAt:       now.AddDate(0, 0, -1),
			Items: []domain.OrderItem{
				{ProductID: 2, Qty: 2, UnitPrice: 45, UnitCostAtSale: 15},
			},
		},
		{
			ID: 3, Status: "CONFIRMED", TotalAmount: 500,
			DeliveryAddress: "Bangna",
			CreatedAt:       now,
			Items: []domain.OrderItem{
				{ProductID: 1, Qty: 5, UnitPrice: 100, UnitCostAtSale: 30},
			},
		},
	}
}

func dashboardCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Pad Thai", Category: "Noodles", CostToMake: 99}, // live cost must be ignored
		{ID: 2, Name: "Thai Tea"},                                      // category inferred
	}
}

func TestDashboardService_Report_TodayWindow(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewDashboardService(orders, products, nil, testClock())

	orders.On("ListOrders").Return(dashboardOrders(), nil).Once()
	products.On("ListProducts").Return(dashboardCatalog(), nil).Once()

	report, err := svc.Report(service.DashboardFilter{GroupBy: service.GroupToday})
	require.NoError(t, err)

	// Only the completed order from today counts; the cost comes from the
	// sale-time snapshot, not the catalog's current cost.
	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 240, report.TotalSales, 1e-9)
	assert.InDelta(t, 60, report.TotalCost, 1e-9)
	assert.InDelta(t, 180, report.TotalRevenue, 1e-9)

	require.NotNil(t, report.BestSeller)
	assert.Equal(t, 1, report.BestSeller.ProductID)
	assert.Equal(t, "Pad Thai", report.BestSeller.Name)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Noodles", report.Categories[0].Name)
	assert.InDelta(t, 200, report.Categories[0].Value, 1e-9)
}

func TestDashboardService_Report_AllCompleted(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewDashboardService(orders, products, nil, testClock())

	orders.On("ListOrders").Return(dashboardOrders(), nil).Once()
	products.On("ListProducts").Return(dashboardCatalog(), nil).Once()

	report, err := svc.Report(service.DashboardFilter{GroupBy: service.GroupWeekly})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrders)
	assert.InDelta(t, 330, report.TotalSales, 1e-9)
	assert.Len(t, report.Trend, 2)
	assert.Equal(t, "2023-12-31", report.Trend[0].Key)
	assert.Equal(t, "2024-01-01", report.Trend[1].Key)

	// Inferred category for the product without one.
	names := make([]string, 0, len(report.Categories))
	for _, c := range report.Categories {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Noodles", "Drinks"}, names)
}

func TestDashboardService_Report_MonthlyWeekKeys(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewDashboardService(orders, products, nil, testClock())

	set := []domain.Order{
		{ID: 1, Status: "COMPLETED", TotalAmount: 100,
			CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
			Items:     []domain.OrderItem{{ProductID: 1, Qty: 1, UnitPrice: 100}}},
		{ID: 2, Status: "COMPLETED", TotalAmount: 50,
			CreatedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.Local),
			Items:     []domain.OrderItem{{ProductID: 1, Qty: 1, UnitPrice: 50}}},
	}
	orders.On("ListOrders").Return(set, nil).Once()
	products.On("ListProducts").Return(dashboardCatalog(), nil).Once()

	report, err := svc.Report(service.DashboardFilter{GroupBy: service.GroupMonthly})
	require.NoError(t, err)

	require.Len(t, report.Trend, 2)
	assert.Equal(t, "2024-01 W1", report.Trend[0].Key)
	assert.Equal(t, "2024-01 W2", report.Trend[1].Key)
}

func TestDashboardService_BestSellerToday_CacheFirst(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	sales := mocks.NewSalesCache(t)
	svc := service.NewDashboardService(orders, products, sales, testClock())
	ctx := context.Background()

	sales.On("TopProducts", ctx, "2024-01-01", 1).
		Return([]domain.ProductSales{{ProductID: 1, Qty: 12}}, nil).Once()
	products.On("GetProduct", 1).Return(&domain.Product{ID: 1, Name: "Pad Thai"}, nil).Once()

	top, name, err := svc.BestSellerToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, 1, top.ProductID)
	assert.InDelta(t, 12, top.Qty, 1e-9)
	assert.Equal(t, "Pad Thai", name)
}

func TestDashboardService_BestSellerToday_FallsBackToOrders(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	sales := mocks.NewSalesCache(t)
	svc := service.NewDashboardService(orders, products, sales, testClock())
	ctx := context.Background()

	sales.On("TopProducts", ctx, "2024-01-01", 1).Return(nil, nil).Once()
	orders.On("ListOrders").Return(dashboardOrders(), nil).Once()
	products.On("GetProduct", 1).Return(&domain.Product{ID: 1, Name: "Pad Thai"}, nil).Once()

	top, name, err := svc.BestSellerToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, 1, top.ProductID)
	assert.Equal(t, "Pad Thai", name)
}
