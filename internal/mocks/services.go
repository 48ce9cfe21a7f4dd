package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/service"
)

type ProductServiceInterface struct{ mock.Mock }

func NewProductServiceInterface(t testingT) *ProductServiceInterface {
	m := &ProductServiceInterface{}
	register(t, m)
	return m
}

func (m *ProductServiceInterface) Create(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductServiceInterface) List() ([]domain.Product, error) {
	args := m.Called()
	var products []domain.Product
	if v := args.Get(0); v != nil {
		products = v.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *ProductServiceInterface) Get(id int) (*domain.Product, error) {
	args := m.Called(id)
	var p *domain.Product
	if v := args.Get(0); v != nil {
		p = v.(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *ProductServiceInterface) Update(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductServiceInterface) Delete(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ service.ProductServiceInterface = (*ProductServiceInterface)(nil)

type ZoneServiceInterface struct{ mock.Mock }

func NewZoneServiceInterface(t testingT) *ZoneServiceInterface {
	m := &ZoneServiceInterface{}
	register(t, m)
	return m
}

func (m *ZoneServiceInterface) Create(z *domain.DeliveryZone) error {
	return m.Called(z).Error(0)
}

func (m *ZoneServiceInterface) List() ([]domain.DeliveryZone, error) {
	args := m.Called()
	var zones []domain.DeliveryZone
	if v := args.Get(0); v != nil {
		zones = v.([]domain.DeliveryZone)
	}
	return zones, args.Error(1)
}

func (m *ZoneServiceInterface) Update(z *domain.DeliveryZone) error {
	return m.Called(z).Error(0)
}

func (m *ZoneServiceInterface) Delete(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ service.ZoneServiceInterface = (*ZoneServiceInterface)(nil)

type CartServiceInterface struct{ mock.Mock }

func NewCartServiceInterface(t testingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	register(t, m)
	return m
}

func (m *CartServiceInterface) View(ctx context.Context, session string) (*service.CartView, error) {
	args := m.Called(ctx, session)
	var view *service.CartView
	if v := args.Get(0); v != nil {
		view = v.(*service.CartView)
	}
	return view, args.Error(1)
}

func (m *CartServiceInterface) Add(ctx context.Context, session string, productID int) error {
	return m.Called(ctx, session, productID).Error(0)
}

func (m *CartServiceInterface) UpdateQty(ctx context.Context, session string, productID, qty int) error {
	return m.Called(ctx, session, productID, qty).Error(0)
}

func (m *CartServiceInterface) Remove(ctx context.Context, session string, productID int) error {
	return m.Called(ctx, session, productID).Error(0)
}

func (m *CartServiceInterface) Clear(ctx context.Context, session string) error {
	return m.Called(ctx, session).Error(0)
}

var _ service.CartServiceInterface = (*CartServiceInterface)(nil)

type CheckoutServiceInterface struct{ mock.Mock }

func NewCheckoutServiceInterface(t testingT) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	register(t, m)
	return m
}

func (m *CheckoutServiceInterface) PlaceOrder(ctx context.Context, session string, req service.CheckoutRequest) (*domain.Order, error) {
	args := m.Called(ctx, session, req)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

var _ service.CheckoutServiceInterface = (*CheckoutServiceInterface)(nil)

type OrderServiceInterface struct{ mock.Mock }

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, m)
	return m
}

func (m *OrderServiceInterface) List(filter service.OrderFilter) ([]domain.Order, error) {
	args := m.Called(filter)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) Get(id int) (*domain.Order, error) {
	args := m.Called(id)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderServiceInterface) Advance(ctx context.Context, id int) (*domain.Order, error) {
	args := m.Called(ctx, id)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderServiceInterface) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderServiceInterface) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderServiceInterface) QRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}
	return png, args.Error(1)
}

var _ service.OrderServiceInterface = (*OrderServiceInterface)(nil)

type DashboardServiceInterface struct{ mock.Mock }

func NewDashboardServiceInterface(t testingT) *DashboardServiceInterface {
	m := &DashboardServiceInterface{}
	register(t, m)
	return m
}

func (m *DashboardServiceInterface) Report(filter service.DashboardFilter) (*service.DashboardReport, error) {
	args := m.Called(filter)
	var report *service.DashboardReport
	if v := args.Get(0); v != nil {
		report = v.(*service.DashboardReport)
	}
	return report, args.Error(1)
}

func (m *DashboardServiceInterface) BestSellerToday(ctx context.Context) (*domain.ProductSales, string, error) {
	args := m.Called(ctx)
	var top *domain.ProductSales
	if v := args.Get(0); v != nil {
		top = v.(*domain.ProductSales)
	}
	return top, args.String(1), args.Error(2)
}

var _ service.DashboardServiceInterface = (*DashboardServiceInterface)(nil)

type ShopStatusServiceInterface struct{ mock.Mock }

func NewShopStatusServiceInterface(t testingT) *ShopStatusServiceInterface {
	m := &ShopStatusServiceInterface{}
	register(t, m)
	return m
}

func (m *ShopStatusServiceInterface) IsOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *ShopStatusServiceInterface) Status(ctx context.Context) (bool, string, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *ShopStatusServiceInterface) Open(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *ShopStatusServiceInterface) Close(ctx context.Context, msg string) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *ShopStatusServiceInterface) ClosedNotice(ctx context.Context) (bool, string, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.String(1), args.Error(2)
}

var _ service.ShopStatusServiceInterface = (*ShopStatusServiceInterface)(nil)

type AuthServiceInterface struct{ mock.Mock }

func NewAuthServiceInterface(t testingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	register(t, m)
	return m
}

func (m *AuthServiceInterface) Login(email, password string) (*domain.StaffUser, error) {
	args := m.Called(email, password)
	var u *domain.StaffUser
	if v := args.Get(0); v != nil {
		u = v.(*domain.StaffUser)
	}
	return u, args.Error(1)
}

func (m *AuthServiceInterface) ListUsers() ([]domain.StaffUser, error) {
	args := m.Called()
	var users []domain.StaffUser
	if v := args.Get(0); v != nil {
		users = v.([]domain.StaffUser)
	}
	return users, args.Error(1)
}

func (m *AuthServiceInterface) CreateUser(name, email, role, password string) (*domain.StaffUser, error) {
	args := m.Called(name, email, role, password)
	var u *domain.StaffUser
	if v := args.Get(0); v != nil {
		u = v.(*domain.StaffUser)
	}
	return u, args.Error(1)
}

var _ service.AuthServiceInterface = (*AuthServiceInterface)(nil)
