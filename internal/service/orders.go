package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"myfooddesk/internal/domain"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusCooking   = "COOKING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
)

// OrderFlow is the forward-only kitchen pipeline.
var OrderFlow = []string{StatusConfirmed, StatusCooking, StatusReady, StatusCompleted}

// NextStatus returns the step after the given status, or "" at the end of
// the flow or for an unknown status.
func NextStatus(status string) string {
	for i, s := range OrderFlow {
		if s == status && i < len(OrderFlow)-1 {
			return OrderFlow[i+1]
		}
	}
	return ""
}

// OrderCost sums the cost snapshots taken at sale time. Later edits to a
// product's cost never change a placed order's cost.
func OrderCost(o *domain.Order) float64 {
	var cost float64
	for _, it := range o.Items {
		cost += it.UnitCostAtSale * float64(it.Qty)
	}
	return cost
}

const (
	SortNewest = "NEWEST"
	SortOldest = "OLDEST"
)

const (
	QuickAll       = "ALL"
	QuickDueToday  = "DUE_TODAY"
	QuickScheduled = "SCHEDULED"
	QuickBulk      = "BULK"
	QuickCompleted = "COMPLETED"
)

type OrderFilter struct {
	Quick     string
	Status    string
	Zone      *domain.DeliveryZone
	ProductID int
	From      string
	To        string
	Query     string
	Sort      string
}

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qr        QRGenerator
	clock     Clock
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator, clock Clock) *OrderService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &OrderService{repo: repo, publisher: publisher, qr: qr, clock: clock}
}

func sameLocalDay(t, ref time.Time) bool {
	t = t.Local()
	return t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
}

// isDueToday reports whether the order needs attention today: scheduled for
// today, or unscheduled and created today. Completed orders are never due.
func (s *OrderService) isDueToday(o *domain.Order) bool {
	if o.Status == StatusCompleted {
		return false
	}
	now := s.clock.Now()
	if o.ScheduledDateTime != nil {
		return sameLocalDay(*o.ScheduledDateTime, now)
	}
	return sameLocalDay(o.CreatedAt, now)
}

func isBulkOrder(o *domain.Order) bool {
	for _, it := range o.Items {
		if PerDishRate(it.Qty) > 0 {
			return true
		}
	}
	return false
}

func matchesZone(o *domain.Order, z *domain.DeliveryZone) bool {
	addr := strings.ToLower(o.DeliveryAddress)
	for _, kw := range z.AreaKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(addr, kw) {
			return true
		}
	}
	return false
}

func matchesQuery(o *domain.Order, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strconv.Itoa(o.ID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerPhone), q) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.ProductName), q) {
			return true
		}
	}
	return false
}

func (s *OrderService) matches(o *domain.Order, f OrderFilter) bool {
	switch f.Quick {
	case QuickDueToday:
		if !s.isDueToday(o) {
			return false
		}
	case QuickScheduled:
		if o.ScheduledDateTime == nil {
			return false
		}
	case QuickBulk:
		if !isBulkOrder(o) {
			return false
		}
	case QuickCompleted:
		if o.Status != StatusCompleted {
			return false
		}
	}

	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Zone != nil && !matchesZone(o, f.Zone) {
		return false
	}
	if f.ProductID != 0 {
		found := false
		for _, it := range o.Items {
			if it.ProductID == f.ProductID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Date range filters on the order's relevant day: the scheduled day
	// when set, otherwise the created day.
	day := o.CreatedAt
	if o.ScheduledDateTime != nil {
		day = *o.ScheduledDateTime
	}
	day = day.Local()
	if f.From != "" {
		if from, ok := ParseDate(f.From); ok && day.Before(from) {
			return false
		}
	}
	if f.To != "" {
		if to, ok := ParseDate(f.To); ok && !day.Before(to.AddDate(0, 0, 1)) {
			return false
		}
	}

	return matchesQuery(o, f.Query)
}

// List applies the back-office filters over all orders. Unfinished orders
// sort before completed ones; within each group the sort key is creation
// time, newest first unless OLDEST was requested.
func (s *OrderService) List(f OrderFilter) ([]domain.Order, error) {
	all, err := s.repo.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]domain.Order, 0, len(all))
	for i := range all {
		if s.matches(&all[i], f) {
			out = append(out, all[i])
		}
	}

	oldest := f.Sort == SortOldest
	sort.SliceStable(out, func(i, j int) bool {
		di := out[i].Status == StatusCompleted
		dj := out[j].Status == StatusCompleted
		if di != dj {
			return !di
		}
		if oldest {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

// Advance moves the order one step forward along the flow. Advancing a
// completed order is a no-op that returns the order unchanged.
func (s *OrderService) Advance(ctx context.Context, id int) (*domain.Order, error) {
	o, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}

	next := NextStatus(o.Status)
	if next == "" {
		return o, nil
	}
	if _, err := s.repo.UpdateOrderStatus(id, next); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	o.Status = next

	if next == StatusCompleted && s.publisher != nil {
		evt := orderEvent(domain.EventOrderCompleted, o, s.clock.Now())
		if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
			log.Printf("[api] warning: failed to publish order event: %v", err)
		}
	}
	return o, nil
}

// UpdateStatus sets an explicit status. Only the immediate next step is
// accepted; setting the current status again is a no-op.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	o, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if status == o.Status {
		return o, nil
	}
	if status != NextStatus(o.Status) {
		return nil, invalid("status", fmt.Sprintf("cannot move order from %s to %s", o.Status, status))
	}
	return s.Advance(ctx, id)
}

// Delete cancels an order destructively. The row and its items are gone.
func (s *OrderService) Delete(ctx context.Context, id int) (int64, error) {
	o, err := s.repo.GetOrder(id)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.DeleteOrder(id)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}

	if n > 0 && s.publisher != nil {
		evt := orderEvent(domain.EventOrderCancelled, o, s.clock.Now())
		if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
			log.Printf("[api] warning: failed to publish order event: %v", err)
		}
	}
	return n, nil
}

// QRCode returns the stored payment QR, regenerating it lazily for orders
// that were created before QR generation succeeded.
func (s *OrderService) QRCode(id int) ([]byte, error) {
	png, err := s.repo.GetQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}
	if s.qr == nil {
		return nil, fmt.Errorf("no qr code stored for order %d", id)
	}
	png, err = s.qr.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	if err := s.repo.SaveQRCode(id, png); err != nil {
		log.Printf("[api] warning: failed to store qr code for order %d: %v", id, err)
	}
	return png, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
