package service

import (
	"context"
	"errors"
	"math"

	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ProductListQuery is a validated catalog request. Page and PageSize are 1-based.
type ProductListQuery struct {
	Page     int
	PageSize int
	Sort     *repository.Sort
	Filters  repository.ProductFilters
	Pricing  pricing.Context
}

// ValidatePaging rejects a page and page size whose offset does not fit in an int
func ValidatePaging(page, pageSize int) error {
	if page < 1 || pageSize < 1 || page-1 > math.MaxInt/pageSize {
		verr := validator.NewValidationError()
		verr.Add("page", validator.MsgPositiveInt)
		return verr
	}
	return nil
}

type CatalogService interface {
	ListProducts(ctx context.Context, q ProductListQuery) (*ProductPage, error)
	ListCategoryProducts(ctx context.Context, categoryID uint, q ProductListQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, id uint, pc pricing.Context) (*ProductDetail, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, q ProductListQuery) (*ProductPage, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if err := ValidatePaging(q.Page, q.PageSize); err != nil {
		return nil, err
	}

	products, total, err := s.productRepo.List(ctx, repository.ProductQuery{
		Offset:  (q.Page - 1) * q.PageSize,
		Limit:   q.PageSize,
		Sort:    q.Sort,
		Filters: q.Filters,
		Pricing: q.Pricing,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSort) {
			verr := validator.NewValidationError()
			verr.Add("sortBy", err.Error())
			return nil, verr
		}
		return nil, err
	}

	page := &ProductPage{
		Items:      make([]ProductItem, 0, len(products)),
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalItems: total,
	}
	for i := range products {
		page.Items = append(page.Items, listItem(&products[i], q.Pricing))
	}
	return page, nil
}

func (s *catalogService) ListCategoryProducts(ctx context.Context, categoryID uint, q ProductListQuery) (*ProductPage, error) {
	ok, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("Category", categoryID)
	}

	q.Filters.CategoryID = categoryID
	return s.ListProducts(ctx, q)
}

func (s *catalogService) GetProduct(ctx context.Context, id uint, pc pricing.Context) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, notFound("Product", id)
		}
		return nil, err
	}

	detail := newProductDetail(product, pc)
	return &detail, nil
}
