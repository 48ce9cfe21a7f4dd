package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"myfooddesk/internal/domain"
)

// UnavailableNotice is returned once per cart view that dropped entries.
const UnavailableNotice = "Some items were removed because they are unavailable."

type CartView struct {
	Lines     []domain.CartLine `json:"lines"`
	CartCount int               `json:"cartCount"`
	Subtotal  float64           `json:"subtotal"`
	Quote     CartQuote         `json:"quote"`
	Notice    string            `json:"notice,omitempty"`
}

type CartService struct {
	store    CartStore
	products ProductRepository
}

func NewCartService(store CartStore, products ProductRepository) *CartService {
	return &CartService{store: store, products: products}
}

// View joins the session's raw entries against the live catalog. Entries
// whose product vanished, was deactivated, or sold out are dropped from the
// view and pruned from storage; the prune is silent apart from the notice.
func (s *CartService) View(ctx context.Context, session string) (*CartView, error) {
	entries, err := s.store.Entries(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("load cart entries: %w", err)
	}

	catalog, err := s.products.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	byID := make(map[int]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	lines := make([]domain.CartLine, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok || !p.Available() {
			if err := s.store.RemoveEntry(ctx, session, e.ProductID); err != nil {
				return nil, fmt.Errorf("prune cart entry: %w", err)
			}
			dropped++
			continue
		}
		lines = append(lines, domain.CartLine{
			ProductID: e.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Qty:       e.Qty,
			UnitCost:  p.CostToMake,
		})
	}

	quote := PriceCart(lines)
	view := &CartView{
		Lines:     quote.Lines,
		CartCount: quote.TotalQty,
		Subtotal:  quote.RawSubtotal,
		Quote:     quote,
	}
	if dropped > 0 {
		view.Notice = UnavailableNotice
	}
	return view, nil
}

// Add increments the entry by one, inserting at quantity 1. Unavailable or
// unknown products are a silent no-op; a failing catalog read is not.
func (s *CartService) Add(ctx context.Context, session string, productID int) error {
	p, err := s.products.GetProduct(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load product: %w", err)
	}
	if p == nil || !p.Available() {
		return nil
	}
	_, err = s.store.IncrQty(ctx, session, productID, 1)
	return err
}

// UpdateQty sets the entry quantity. If the product became unavailable the
// entry is removed regardless of the requested quantity; a quantity of zero
// or less also removes it. A failing catalog read leaves the entry untouched.
func (s *CartService) UpdateQty(ctx context.Context, session string, productID, qty int) error {
	p, err := s.products.GetProduct(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.store.RemoveEntry(ctx, session, productID)
		}
		return fmt.Errorf("load product: %w", err)
	}
	if p == nil || !p.Available() {
		return s.store.RemoveEntry(ctx, session, productID)
	}
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		return s.store.RemoveEntry(ctx, session, productID)
	}
	return s.store.SetQty(ctx, session, productID, qty)
}

func (s *CartService) Remove(ctx context.Context, session string, productID int) error {
	return s.store.RemoveEntry(ctx, session, productID)
}

func (s *CartService) Clear(ctx context.Context, session string) error {
	return s.store.Clear(ctx, session)
}

var _ CartServiceInterface = (*CartService)(nil)
