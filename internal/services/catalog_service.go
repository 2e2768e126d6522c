package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	out, err := s.Cats.List()
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *CatalogService) AddProduct(p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, storageErr(err)
	}
	return p, nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Product{}, domain.ErrNotFound
	case err != nil:
		return domain.Product{}, storageErr(err)
	}
	return p, nil
}

// ProductsByCategory returns available listings only: sold items drop out,
// and an absent sold flag counts as unsold.
func (s *CatalogService) ProductsByCategory(catID string) ([]domain.Product, error) {
	out, err := s.Prods.ListByCategory(catID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// AdvertisedProducts applies the same availability rule on top of the ad flag.
func (s *CatalogService) AdvertisedProducts() ([]domain.Product, error) {
	out, err := s.Prods.ListAdvertised()
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *CatalogService) ProductsBySeller(email string) ([]domain.Product, error) {
	out, err := s.Prods.ListBySeller(email)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *CatalogService) ReportedProducts() ([]domain.Product, error) {
	out, err := s.Prods.ListReported()
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *CatalogService) MarkSold(id string) error       { return s.flag(s.Prods.SetSold, id) }
func (s *CatalogService) MarkAdvertised(id string) error { return s.flag(s.Prods.SetAdvertised, id) }
func (s *CatalogService) MarkReported(id string) error   { return s.flag(s.Prods.SetReported, id) }

func (s *CatalogService) flag(set func(string, bool) (int64, error), id string) error {
	n, err := set(id, true)
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	n, err := s.Prods.DeleteByID(id)
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
