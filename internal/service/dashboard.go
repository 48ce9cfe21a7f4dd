package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"myfooddesk/internal/domain"
)

const (
	GroupToday   = "today"
	GroupDaily   = "daily"
	GroupWeekly  = "weekly"
	GroupMonthly = "monthly"
	GroupYearly  = "yearly"
)

type DashboardFilter struct {
	GroupBy   string
	Zone      *domain.DeliveryZone
	ProductID int
	From      string
	To        string
}

type TrendPoint struct {
	Key   string  `json:"k"`
	Value float64 `json:"v"`
}

type CategorySales struct {
	Name  string  `json:"name"`
	Value float64 `json:"val"`
}

type BestSeller struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
}

type DashboardReport struct {
	TotalSales   float64         `json:"totalSales"`
	TotalOrders  int             `json:"totalOrders"`
	TotalCost    float64         `json:"totalCost"`
	TotalRevenue float64         `json:"totalRevenue"`
	BestSeller   *BestSeller     `json:"bestSeller"`
	Trend        []TrendPoint    `json:"trend"`
	Categories   []CategorySales `json:"categories"`
}

type DashboardService struct {
	orders   OrderRepository
	products ProductRepository
	sales    SalesCache
	clock    Clock
}

func NewDashboardService(orders OrderRepository, products ProductRepository, sales SalesCache, clock Clock) *DashboardService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &DashboardService{orders: orders, products: products, sales: sales, clock: clock}
}

// InferCategory classifies legacy products that predate the category column.
func InferCategory(p domain.Product) string {
	if strings.TrimSpace(p.Category) != "" {
		return p.Category
	}
	name := strings.ToLower(p.Name)
	switch {
	case strings.Contains(name, "tea") || strings.Contains(name, "drink"):
		return "Drinks"
	case strings.Contains(name, "rice"):
		return "Rice"
	case strings.Contains(name, "brownie") || strings.Contains(name, "dessert"):
		return "Dessert"
	default:
		return "Other"
	}
}

// weekOfMonthKey labels a day as "2006-01 W2". The first partial week of the
// month counts as week 1, anchored on the weekday of the 1st.
func weekOfMonthKey(t time.Time) string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := int(first.Weekday())
	week := (t.Day()+offset-1)/7 + 1
	return fmt.Sprintf("%s W%d", t.Format("2006-01"), week)
}

func groupKey(t time.Time, groupBy string) string {
	t = t.Local()
	switch groupBy {
	case GroupToday, GroupDaily:
		return t.Format("2006-01-02 15:00")
	case GroupWeekly:
		return t.Format("2006-01-02")
	case GroupMonthly:
		return weekOfMonthKey(t)
	default:
		return t.Format("2006-01")
	}
}

// orderDay is the day an order counts toward: the scheduled day when set,
// otherwise the created day.
func orderDay(o *domain.Order) time.Time {
	if o.ScheduledDateTime != nil {
		return o.ScheduledDateTime.Local()
	}
	return o.CreatedAt.Local()
}

func (s *DashboardService) inWindow(o *domain.Order, f DashboardFilter) bool {
	day := orderDay(o)
	if f.GroupBy == GroupToday && !sameLocalDay(day, s.clock.Now()) {
		return false
	}
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
	return true
}

// Report aggregates completed orders only. Costs come from the per-item cost
// snapshots taken at sale time, not from the current catalog.
func (s *DashboardService) Report(f DashboardFilter) (*DashboardReport, error) {
	all, err := s.orders.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	catalog, err := s.products.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	byID := make(map[int]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	report := &DashboardReport{
		Trend:      []TrendPoint{},
		Categories: []CategorySales{},
	}
	trend := make(map[string]float64)
	categories := make(map[string]float64)
	qtyByProduct := make(map[int]float64)

	for i := range all {
		o := &all[i]
		if o.Status != StatusCompleted || !s.inWindow(o, f) {
			continue
		}

		report.TotalSales += o.TotalAmount
		report.TotalOrders++
		report.TotalCost += OrderCost(o)
		trend[groupKey(orderDay(o), f.GroupBy)] += o.TotalAmount

		for _, it := range o.Items {
			qtyByProduct[it.ProductID] += float64(it.Qty)

			cat := "Other"
			if p, ok := byID[it.ProductID]; ok {
				cat = InferCategory(p)
			}
			categories[cat] += it.UnitPrice * float64(it.Qty)
		}
	}
	report.TotalSales = Round2(report.TotalSales)
	report.TotalCost = Round2(report.TotalCost)
	report.TotalRevenue = Round2(report.TotalSales - report.TotalCost)

	for id, qty := range qtyByProduct {
		if report.BestSeller == nil || qty > report.BestSeller.Qty {
			name := fmt.Sprintf("product #%d", id)
			if p, ok := byID[id]; ok {
				name = p.Name
			}
			report.BestSeller = &BestSeller{ProductID: id, Name: name, Qty: qty}
		}
	}

	for k, v := range trend {
		report.Trend = append(report.Trend, TrendPoint{Key: k, Value: Round2(v)})
	}
	sort.Slice(report.Trend, func(i, j int) bool { return report.Trend[i].Key < report.Trend[j].Key })

	for name, v := range categories {
		report.Categories = append(report.Categories, CategorySales{Name: name, Value: Round2(v)})
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Value > report.Categories[j].Value
	})

	return report, nil
}

// BestSellerToday reads today's leaderboard from the sales cache when it is
// populated and falls back to scanning completed orders otherwise.
func (s *DashboardService) BestSellerToday(ctx context.Context) (*domain.ProductSales, string, error) {
	dateKey := s.clock.Now().Format("2006-01-02")

	var top *domain.ProductSales
	if s.sales != nil {
		if cached, err := s.sales.TopProducts(ctx, dateKey, 1); err == nil && len(cached) > 0 {
			top = &cached[0]
		}
	}

	if top == nil {
		all, err := s.orders.ListOrders()
		if err != nil {
			return nil, "", fmt.Errorf("list orders: %w", err)
		}
		qtyByProduct := make(map[int]float64)
		now := s.clock.Now()
		for i := range all {
			o := &all[i]
			if o.Status != StatusCompleted || !sameLocalDay(orderDay(o), now) {
				continue
			}
			for _, it := range o.Items {
				qtyByProduct[it.ProductID] += float64(it.Qty)
			}
		}
		for id, qty := range qtyByProduct {
			if top == nil || qty > top.Qty {
				top = &domain.ProductSales{ProductID: id, Qty: qty}
			}
		}
	}

	if top == nil {
		return nil, "", nil
	}

	name := fmt.Sprintf("product #%d", top.ProductID)
	if p, err := s.products.GetProduct(top.ProductID); err == nil && p != nil {
		name = p.Name
	}
	return top, name, nil
}

var _ DashboardServiceInterface = (*DashboardService)(nil)
