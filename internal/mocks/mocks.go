// Package mocks provides testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type ProductRepository struct{ mock.Mock }

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	register(t, m)
	return m
}

func (m *ProductRepository) CreateProduct(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductRepository) ListProducts() ([]domain.Product, error) {
	args := m.Called()
	var products []domain.Product
	if v := args.Get(0); v != nil {
		products = v.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *ProductRepository) GetProduct(id int) (*domain.Product, error) {
	args := m.Called(id)
	var p *domain.Product
	if v := args.Get(0); v != nil {
		p = v.(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductRepository) DeleteProduct(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ service.ProductRepository = (*ProductRepository)(nil)

type ZoneRepository struct{ mock.Mock }

func NewZoneRepository(t testingT) *ZoneRepository {
	m := &ZoneRepository{}
	register(t, m)
	return m
}

func (m *ZoneRepository) CreateZone(z *domain.DeliveryZone) error {
	return m.Called(z).Error(0)
}

func (m *ZoneRepository) ListZones() ([]domain.DeliveryZone, error) {
	args := m.Called()
	var zones []domain.DeliveryZone
	if v := args.Get(0); v != nil {
		zones = v.([]domain.DeliveryZone)
	}
	return zones, args.Error(1)
}

func (m *ZoneRepository) UpdateZone(z *domain.DeliveryZone) error {
	return m.Called(z).Error(0)
}

func (m *ZoneRepository) DeleteZone(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ service.ZoneRepository = (*ZoneRepository)(nil)

type OrderRepository struct{ mock.Mock }

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, m)
	return m
}

func (m *OrderRepository) CreateOrder(o *domain.Order) error {
	return m.Called(o).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(id int, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) DeleteOrder(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if v := args.Get(0); v != nil {
		qr = v.([]byte)
	}
	return qr, args.Error(1)
}

var _ service.OrderRepository = (*OrderRepository)(nil)

type StaffRepository struct{ mock.Mock }

func NewStaffRepository(t testingT) *StaffRepository {
	m := &StaffRepository{}
	register(t, m)
	return m
}

func (m *StaffRepository) CreateStaffUser(u *domain.StaffUser) error {
	return m.Called(u).Error(0)
}

func (m *StaffRepository) ListStaffUsers() ([]domain.StaffUser, error) {
	args := m.Called()
	var users []domain.StaffUser
	if v := args.Get(0); v != nil {
		users = v.([]domain.StaffUser)
	}
	return users, args.Error(1)
}

func (m *StaffRepository) GetStaffUserByEmail(email string) (*domain.StaffUser, error) {
	args := m.Called(email)
	var u *domain.StaffUser
	if v := args.Get(0); v != nil {
		u = v.(*domain.StaffUser)
	}
	return u, args.Error(1)
}

var _ service.StaffRepository = (*StaffRepository)(nil)

type CartStore struct{ mock.Mock }

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	register(t, m)
	return m
}

func (m *CartStore) Entries(ctx context.Context, session string) ([]domain.CartEntry, error) {
	args := m.Called(ctx, session)
	var entries []domain.CartEntry
	if v := args.Get(0); v != nil {
		entries = v.([]domain.CartEntry)
	}
	return entries, args.Error(1)
}

func (m *CartStore) IncrQty(ctx context.Context, session string, productID, delta int) (int, error) {
	args := m.Called(ctx, session, productID, delta)
	return args.Int(0), args.Error(1)
}

func (m *CartStore) SetQty(ctx context.Context, session string, productID, qty int) error {
	return m.Called(ctx, session, productID, qty).Error(0)
}

func (m *CartStore) RemoveEntry(ctx context.Context, session string, productID int) error {
	return m.Called(ctx, session, productID).Error(0)
}

func (m *CartStore) Clear(ctx context.Context, session string) error {
	return m.Called(ctx, session).Error(0)
}

var _ service.CartStore = (*CartStore)(nil)

type ShopStatusStore struct{ mock.Mock }

func NewShopStatusStore(t testingT) *ShopStatusStore {
	m := &ShopStatusStore{}
	register(t, m)
	return m
}

func (m *ShopStatusStore) IsOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *ShopStatusStore) SetOpen(ctx context.Context, open bool) error {
	return m.Called(ctx, open).Error(0)
}

func (m *ShopStatusStore) CloseMessage(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *ShopStatusStore) SetCloseMessage(ctx context.Context, msg string) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *ShopStatusStore) NoticeShown(ctx context.Context, dateKey string) (bool, error) {
	args := m.Called(ctx, dateKey)
	return args.Bool(0), args.Error(1)
}

func (m *ShopStatusStore) MarkNoticeShown(ctx context.Context, dateKey string) error {
	return m.Called(ctx, dateKey).Error(0)
}

func (m *ShopStatusStore) ClearNoticeShown(ctx context.Context, dateKey string) error {
	return m.Called(ctx, dateKey).Error(0)
}

var _ service.ShopStatusStore = (*ShopStatusStore)(nil)

type OrderPublisher struct{ mock.Mock }

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	register(t, m)
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	return m.Called(ctx, evt).Error(0)
}

var _ service.OrderPublisher = (*OrderPublisher)(nil)

type SalesCache struct{ mock.Mock }

func NewSalesCache(t testingT) *SalesCache {
	m := &SalesCache{}
	register(t, m)
	return m
}

func (m *SalesCache) IncrementProductQty(ctx context.Context, dateKey string, productID, qty int) error {
	return m.Called(ctx, dateKey, productID, qty).Error(0)
}

func (m *SalesCache) AddRevenue(ctx context.Context, dateKey string, amount float64) error {
	return m.Called(ctx, dateKey, amount).Error(0)
}

func (m *SalesCache) TopProducts(ctx context.Context, dateKey string, limit int) ([]domain.ProductSales, error) {
	args := m.Called(ctx, dateKey, limit)
	var top []domain.ProductSales
	if v := args.Get(0); v != nil {
		top = v.([]domain.ProductSales)
	}
	return top, args.Error(1)
}

var _ service.SalesCache = (*SalesCache)(nil)

type QRGenerator struct{ mock.Mock }

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(t, m)
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}
	return png, args.Error(1)
}

var _ service.QRGenerator = (*QRGenerator)(nil)
