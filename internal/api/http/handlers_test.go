package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "myfooddesk/internal/api/http"
	"myfooddesk/internal/domain"
	"myfooddesk/internal/mocks"
	"myfooddesk/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	products  *mocks.ProductServiceInterface
	zones     *mocks.ZoneServiceInterface
	cart      *mocks.CartServiceInterface
	checkout  *mocks.CheckoutServiceInterface
	orders    *mocks.OrderServiceInterface
	dashboard *mocks.DashboardServiceInterface
	shop      *mocks.ShopStatusServiceInterface
	auth      *mocks.AuthServiceInterface
	router    *mux.Router
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		products:  mocks.NewProductServiceInterface(t),
		zones:     mocks.NewZoneServiceInterface(t),
		cart:      mocks.NewCartServiceInterface(t),
		checkout:  mocks.NewCheckoutServiceInterface(t),
		orders:    mocks.NewOrderServiceInterface(t),
		dashboard: mocks.NewDashboardServiceInterface(t),
		shop:      mocks.NewShopStatusServiceInterface(t),
		auth:      mocks.NewAuthServiceInterface(t),
	}
	handler := httpapi.NewHandler(
		f.products, f.zones, f.cart, f.checkout, f.orders,
		f.dashboard, f.shop, f.auth, service.NewScheduleValidator(nil),
	)
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *handlerFixture) do(method, path, body, session string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_getProducts(t *testing.T) {
	f := newHandlerFixture(t)

	f.products.On("List").Return([]domain.Product{
		{ID: 1, Name: "Pad Thai", Price: 80, IsActive: true},
	}, nil).Once()

	recorder := f.do("GET", "/api/products", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"costToMake"`)
	assert.Contains(t, recorder.Body.String(), "Pad Thai")
}

func TestHandler_deleteProduct_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.products.On("Delete", 99).Return(int64(0), nil).Once()

	recorder := f.do("DELETE", "/api/products/99", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_cartRequiresSession(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("GET", "/api/cart", "", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "X-Session-ID")
}

func TestHandler_addCartItem(t *testing.T) {
	f := newHandlerFixture(t)

	f.cart.On("Add", mock.Anything, "sess", 1).Return(nil).Once()
	f.cart.On("View", mock.Anything, "sess").Return(&service.CartView{CartCount: 1}, nil).Once()

	recorder := f.do("POST", "/api/cart/items", `{"productId":1}`, "sess")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"cartCount":1`)
}

func TestHandler_updateCartItem_RejectsNegativeQty(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("PUT", "/api/cart/items/1", `{"qty":-2}`, "sess")
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestHandler_placeOrder(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(f *handlerFixture)
		expectedCode int
	}{
		{
			name: "created",
			prepareMocks: func(f *handlerFixture) {
				f.checkout.On("PlaceOrder", mock.Anything, "sess", mock.Anything).
					Return(&domain.Order{ID: 41, Status: "CONFIRMED"}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "shop_closed",
			prepareMocks: func(f *handlerFixture) {
				f.checkout.On("PlaceOrder", mock.Anything, "sess", mock.Anything).
					Return(nil, service.ErrShopClosed).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "validation_error",
			prepareMocks: func(f *handlerFixture) {
				f.checkout.On("PlaceOrder", mock.Anything, "sess", mock.Anything).
					Return(nil, &service.ValidationError{Field: "customerPhone", Message: "bad phone"}).Once()
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			testCase.prepareMocks(f)

			recorder := f.do("POST", "/api/orders", `{"customerName":"Somchai"}`, "sess")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_placeOrder_RequiresSession(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("POST", "/api/orders", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_getOrders_ParsesFilters(t *testing.T) {
	f := newHandlerFixture(t)

	zones := []domain.DeliveryZone{{ID: 2, ZoneName: "Onnut", AreaKeywords: []string{"onnut"}}}
	f.zones.On("List").Return(zones, nil).Once()
	f.orders.On("List", mock.MatchedBy(func(filter service.OrderFilter) bool {
		return filter.Quick == "DUE_TODAY" &&
			filter.Status == "CONFIRMED" &&
			filter.ProductID == 3 &&
			filter.Zone != nil && filter.Zone.ID == 2 &&
			filter.Sort == "OLDEST"
	})).Return([]domain.Order{}, nil).Once()

	recorder := f.do("GET", "/api/orders?quick=DUE_TODAY&status=CONFIRMED&productId=3&zoneId=2&sort=OLDEST", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_updateOrderStatus_InvalidTransition(t *testing.T) {
	f := newHandlerFixture(t)

	f.orders.On("UpdateStatus", mock.Anything, 41, "READY").
		Return(nil, &service.ValidationError{Field: "status", Message: "cannot move order from CONFIRMED to READY"}).Once()

	recorder := f.do("PUT", "/api/orders/41", `{"status":"READY"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestHandler_advanceOrder(t *testing.T) {
	f := newHandlerFixture(t)

	f.orders.On("Advance", mock.Anything, 41).
		Return(&domain.Order{ID: 41, Status: "COOKING"}, nil).Once()

	recorder := f.do("POST", "/api/orders/41/advance", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"COOKING"`)
}

func TestHandler_getOrderQRCode(t *testing.T) {
	f := newHandlerFixture(t)

	f.orders.On("QRCode", 41).Return([]byte("png-bytes"), nil).Once()

	recorder := f.do("GET", "/api/orders/41/qrcode", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_getScheduleSlots(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("GET", "/api/schedule/slots", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Len(t, resp.Slots, 12)
}

func TestHandler_shopStatus(t *testing.T) {
	f := newHandlerFixture(t)

	f.shop.On("Close", mock.Anything, "Gone fishing").Return(nil).Once()
	f.shop.On("Status", mock.Anything).Return(false, "Gone fishing", nil).Once()

	recorder := f.do("PUT", "/api/shop-status", `{"isOpen":false,"closeMessage":"Gone fishing"}`, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"isOpen":false`)
}

func TestHandler_closedNotice(t *testing.T) {
	f := newHandlerFixture(t)

	f.shop.On("ClosedNotice", mock.Anything).Return(true, "Out today", nil).Once()

	recorder := f.do("GET", "/api/shop-status/notice", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"show":true`)
}

func TestHandler_login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.auth.On("Login", "staff@myfooddesk.com", "s3cretpass").
			Return(&domain.StaffUser{ID: 1, Email: "staff@myfooddesk.com", Role: "staff"}, nil).Once()

		recorder := f.do("POST", "/api/login", `{"email":"staff@myfooddesk.com","password":"s3cretpass"}`, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		// The hash never leaves the server.
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("bad_credentials", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.auth.On("Login", "staff@myfooddesk.com", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		recorder := f.do("POST", "/api/login", `{"email":"staff@myfooddesk.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandler_getDashboard(t *testing.T) {
	f := newHandlerFixture(t)

	f.dashboard.On("Report", mock.MatchedBy(func(filter service.DashboardFilter) bool {
		return filter.GroupBy == "today"
	})).Return(&service.DashboardReport{TotalOrders: 3, TotalSales: 720}, nil).Once()

	recorder := f.do("GET", "/api/dashboard?groupBy=today", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalOrders":3`)
}
