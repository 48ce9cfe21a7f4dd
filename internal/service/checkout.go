package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"myfooddesk/internal/domain"
)

var (
	phoneRe = regexp.MustCompile(`^\+?\d{8,15}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type CheckoutRequest struct {
	CustomerName       string `json:"customerName"`
	CustomerPhone      string `json:"customerPhone"`
	CustomerEmail      string `json:"customerEmail"`
	DeliveryAddress    string `json:"deliveryAddress"`
	OrderNote          string `json:"orderNote"`
	ShowSchedule       bool   `json:"showSchedule"`
	ScheduleDate       string `json:"scheduleDate"`
	ScheduleTime       string `json:"scheduleTime"`
	ConfirmOneDayAhead bool   `json:"confirmOneDayAhead"`
}

type CheckoutService struct {
	cart      CartServiceInterface
	zones     ZoneRepository
	orders    OrderRepository
	shop      ShopStatusServiceInterface
	schedule  *ScheduleValidator
	publisher OrderPublisher
	qr        QRGenerator
	clock     Clock
}

func NewCheckoutService(
	cart CartServiceInterface,
	zones ZoneRepository,
	orders OrderRepository,
	shop ShopStatusServiceInterface,
	schedule *ScheduleValidator,
	publisher OrderPublisher,
	qr QRGenerator,
	clock Clock,
) *CheckoutService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CheckoutService{
		cart:      cart,
		zones:     zones,
		orders:    orders,
		shop:      shop,
		schedule:  schedule,
		publisher: publisher,
		qr:        qr,
		clock:     clock,
	}
}

// PlaceOrder validates the full checkout and persists an immutable order.
// The cart view is rebuilt from the live catalog at this moment, so prices,
// costs, and availability reflect the state at placement, not at page load.
func (s *CheckoutService) PlaceOrder(ctx context.Context, session string, req CheckoutRequest) (*domain.Order, error) {
	open, err := s.shop.IsOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("read shop status: %w", err)
	}
	if !open {
		return nil, ErrShopClosed
	}

	view, err := s.cart.View(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, invalid("cart", "cart is empty")
	}
	quote := view.Quote

	// Cart-stage gate: the head-up checkbox is required for bulk lines
	// independently of the schedule gate below.
	if quote.NeedsHeadUp && !req.ConfirmOneDayAhead {
		return nil, invalid("confirmOneDayAhead", "please confirm the bulk order is scheduled for tomorrow or later")
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, invalid("customerName", "name is required")
	}
	if !phoneRe.MatchString(req.CustomerPhone) {
		return nil, invalid("customerPhone", "phone must be 8-15 digits (optional '+' allowed)")
	}
	if !emailRe.MatchString(req.CustomerEmail) {
		return nil, invalid("customerEmail", "please enter a valid email address")
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, invalid("deliveryAddress", "delivery address is required")
	}

	zones, err := s.zones.ListZones()
	if err != nil {
		return nil, fmt.Errorf("load delivery zones: %w", err)
	}
	fee, ok := ResolveFee(req.DeliveryAddress, zones)
	if !ok {
		return nil, invalid("deliveryAddress", "address does not match any delivery zone")
	}

	if err := s.schedule.Validate(req.ShowSchedule, req.ScheduleDate, req.ScheduleTime, quote.NeedsHeadUp); err != nil {
		return nil, err
	}

	var scheduledAt *time.Time
	if req.ShowSchedule {
		instant, err := s.schedule.ToInstant(req.ScheduleDate, req.ScheduleTime)
		if err != nil {
			return nil, err
		}
		scheduledAt = &instant
	}

	items := make([]domain.OrderItem, len(view.Lines))
	for i, l := range view.Lines {
		items[i] = domain.OrderItem{
			ProductID:      l.ProductID,
			ProductName:    l.Name,
			Qty:            l.Qty,
			UnitPrice:      l.Price,
			UnitCostAtSale: l.UnitCost,
		}
	}

	// Amounts are rounded once here and never recomputed from live prices.
	subtotal := Round2(quote.RawSubtotal)
	discount := Round2(quote.DiscountTotal)
	deliveryFee := Round2(fee)

	order := &domain.Order{
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		DeliveryAddress:   req.DeliveryAddress,
		OrderNote:         req.OrderNote,
		ScheduledDateTime: scheduledAt,
		Items:             items,
		Subtotal:          subtotal,
		BulkDiscount:      discount,
		DeliveryFee:       deliveryFee,
		TotalAmount:       Round2(subtotal - discount + deliveryFee),
		PaymentStatus:     "PAID",
		Status:            StatusConfirmed,
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.cart.Clear(ctx, session); err != nil {
		log.Printf("[api] warning: failed to clear cart for session %s: %v", session, err)
	}

	if s.qr != nil {
		if png, err := s.qr.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, png)
		}
	}
	order.QRCode = fmt.Sprintf("/api/orders/%d/qrcode", order.ID)

	if s.publisher != nil {
		evt := orderEvent(domain.EventOrderPlaced, order, s.clock.Now())
		if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
			log.Printf("[api] warning: failed to publish order event: %v", err)
		}
	}

	return order, nil
}

func orderEvent(eventType string, o *domain.Order, at time.Time) domain.OrderEvent {
	items := make([]domain.OrderEventItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = domain.OrderEventItem{ProductID: it.ProductID, Qty: it.Qty}
	}
	return domain.OrderEvent{
		Type:        eventType,
		OrderID:     o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       items,
		Timestamp:   at,
	}
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
