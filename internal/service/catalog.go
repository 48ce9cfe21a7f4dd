package service

import (
	"strings"

	"myfooddesk/internal/domain"
)

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "product name is required")
	}
	if p.Price < 0 {
		return invalid("price", "price must not be negative")
	}
	if p.CostToMake < 0 {
		return invalid("costToMake", "cost to make must not be negative")
	}
	return nil
}

func (s *ProductService) Create(p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.CreateProduct(p)
}

func (s *ProductService) List() ([]domain.Product, error) {
	return s.repo.ListProducts()
}

func (s *ProductService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *ProductService) Update(p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(p)
}

func (s *ProductService) Delete(id int) (int64, error) {
	return s.repo.DeleteProduct(id)
}

var _ ProductServiceInterface = (*ProductService)(nil)

type ZoneService struct {
	repo ZoneRepository
}

func NewZoneService(repo ZoneRepository) *ZoneService {
	return &ZoneService{repo: repo}
}

func normalizeZone(z *domain.DeliveryZone) error {
	z.ZoneName = strings.TrimSpace(z.ZoneName)
	if z.ZoneName == "" {
		return invalid("zoneName", "zone name is required")
	}
	if z.Fee < 0 {
		return invalid("fee", "fee must not be negative")
	}

	// Keep keyword order as entered; only strip blanks.
	keywords := make([]string, 0, len(z.AreaKeywords))
	for _, kw := range z.AreaKeywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	z.AreaKeywords = keywords
	return nil
}

func (s *ZoneService) Create(z *domain.DeliveryZone) error {
	if err := normalizeZone(z); err != nil {
		return err
	}
	return s.repo.CreateZone(z)
}

func (s *ZoneService) List() ([]domain.DeliveryZone, error) {
	return s.repo.ListZones()
}

func (s *ZoneService) Update(z *domain.DeliveryZone) error {
	if err := normalizeZone(z); err != nil {
		return err
	}
	return s.repo.UpdateZone(z)
}

func (s *ZoneService) Delete(id int) (int64, error) {
	return s.repo.DeleteZone(id)
}

var _ ZoneServiceInterface = (*ZoneService)(nil)
