package domain

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CostToMake  float64   `json:"costToMake"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	IsSoldOut   bool      `json:"isSoldOut"`
	ImageURL    string    `json:"imageUrl"`
	MadeWith    []string  `json:"madeWith"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Available reports whether the product can be added to a cart or checked out.
func (p Product) Available() bool {
	return p.IsActive && !p.IsSoldOut
}

type DeliveryZone struct {
	ID           int       `json:"id"`
	ZoneName     string    `json:"zoneName"`
	Fee          float64   `json:"fee"`
	IsActive     bool      `json:"isActive"`
	AreaKeywords []string  `json:"areaKeywords"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CartEntry struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

// CartLine is derived from a cart entry joined against the live catalog.
// It is recomputed on every read and never persisted.
type CartLine struct {
	ProductID         int     `json:"productId"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	ImageURL          string  `json:"imageUrl"`
	Qty               int     `json:"qty"`
	RawLineTotal      float64 `json:"rawLineTotal"`
	PerDishRate       float64 `json:"perDishRate"`
	PerDishDiscount   float64 `json:"perDishDiscount"`
	AfterPerDishTotal float64 `json:"afterPerDishTotal"`
	RequiresHeadUp    bool    `json:"requiresHeadUp"`
	UnitCost          float64 `json:"-"`
}

type OrderItem struct {
	ProductID      int     `json:"productId"`
	ProductName    string  `json:"productName"`
	Qty            int     `json:"qty"`
	UnitPrice      float64 `json:"unitPrice"`
	UnitCostAtSale float64 `json:"unitCostAtSale"`
}

type Order struct {
	ID                int         `json:"id"`
	CustomerName      string      `json:"customerName"`
	CustomerPhone     string      `json:"customerPhone"`
	CustomerEmail     string      `json:"customerEmail"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	OrderNote         string      `json:"orderNote"`
	ScheduledDateTime *time.Time  `json:"scheduledDateTime"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	BulkDiscount      float64     `json:"bulkDiscount"`
	DeliveryFee       float64     `json:"deliveryFee"`
	TotalAmount       float64     `json:"totalAmount"`
	PaymentStatus     string      `json:"paymentStatus"`
	Status            string      `json:"status"`
	QRCode            string      `json:"qrCode,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type StaffUser struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProductSales is a (product, quantity) pair from the daily sales leaderboard.
type ProductSales struct {
	ProductID int     `json:"productId"`
	Qty       float64 `json:"qty"`
}
