package service

import (
	"context"

	"myfooddesk/internal/domain"
)

type ProductRepository interface {
	CreateProduct(p *domain.Product) error
	ListProducts() ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(p *domain.Product) error
	DeleteProduct(id int) (int64, error)
}

type ZoneRepository interface {
	CreateZone(z *domain.DeliveryZone) error
	ListZones() ([]domain.DeliveryZone, error)
	UpdateZone(z *domain.DeliveryZone) error
	DeleteZone(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(o *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(id int, status string) (int64, error)
	DeleteOrder(id int) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type StaffRepository interface {
	CreateStaffUser(u *domain.StaffUser) error
	ListStaffUsers() ([]domain.StaffUser, error)
	GetStaffUserByEmail(email string) (*domain.StaffUser, error)
}

// CartStore holds raw cart entries for one customer session.
type CartStore interface {
	Entries(ctx context.Context, session string) ([]domain.CartEntry, error)
	IncrQty(ctx context.Context, session string, productID, delta int) (int, error)
	SetQty(ctx context.Context, session string, productID, qty int) error
	RemoveEntry(ctx context.Context, session string, productID int) error
	Clear(ctx context.Context, session string) error
}

type ShopStatusStore interface {
	IsOpen(ctx context.Context) (bool, error)
	SetOpen(ctx context.Context, open bool) error
	CloseMessage(ctx context.Context) (string, error)
	SetCloseMessage(ctx context.Context, msg string) error
	NoticeShown(ctx context.Context, dateKey string) (bool, error)
	MarkNoticeShown(ctx context.Context, dateKey string) error
	ClearNoticeShown(ctx context.Context, dateKey string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

// SalesCache keeps per-day sales aggregates for the dashboard fast path.
type SalesCache interface {
	IncrementProductQty(ctx context.Context, dateKey string, productID, qty int) error
	AddRevenue(ctx context.Context, dateKey string, amount float64) error
	TopProducts(ctx context.Context, dateKey string, limit int) ([]domain.ProductSales, error)
}

type ProductServiceInterface interface {
	Create(p *domain.Product) error
	List() ([]domain.Product, error)
	Get(id int) (*domain.Product, error)
	Update(p *domain.Product) error
	Delete(id int) (int64, error)
}

type ZoneServiceInterface interface {
	Create(z *domain.DeliveryZone) error
	List() ([]domain.DeliveryZone, error)
	Update(z *domain.DeliveryZone) error
	Delete(id int) (int64, error)
}

type CartServiceInterface interface {
	View(ctx context.Context, session string) (*CartView, error)
	Add(ctx context.Context, session string, productID int) error
	UpdateQty(ctx context.Context, session string, productID, qty int) error
	Remove(ctx context.Context, session string, productID int) error
	Clear(ctx context.Context, session string) error
}

type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context, session string, req CheckoutRequest) (*domain.Order, error)
}

type OrderServiceInterface interface {
	List(filter OrderFilter) ([]domain.Order, error)
	Get(id int) (*domain.Order, error)
	Advance(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
	Delete(ctx context.Context, id int) (int64, error)
	QRCode(id int) ([]byte, error)
}

type DashboardServiceInterface interface {
	Report(filter DashboardFilter) (*DashboardReport, error)
	BestSellerToday(ctx context.Context) (*domain.ProductSales, string, error)
}

type ShopStatusServiceInterface interface {
	IsOpen(ctx context.Context) (bool, error)
	Status(ctx context.Context) (bool, string, error)
	Open(ctx context.Context) error
	Close(ctx context.Context, msg string) error
	ClosedNotice(ctx context.Context) (bool, string, error)
}

type AuthServiceInterface interface {
	Login(email, password string) (*domain.StaffUser, error)
	ListUsers() ([]domain.StaffUser, error)
	CreateUser(name, email, role, password string) (*domain.StaffUser, error)
}
