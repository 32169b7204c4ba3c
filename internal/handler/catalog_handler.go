package handler

import (
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	defaultSortBy    = "name"
	defaultSortOrder = repository.SortAsc
)

// Query params are kept as strings so that malformed numbers become
// validation messages instead of parser errors
type pricingParams struct {
	UserID      string `query:"userId" validate:"omitempty,positive_int"`
	PriceListID string `query:"priceListId" validate:"omitempty,positive_int"`
}

type pageParams struct {
	Page        string `query:"page" validate:"omitempty,positive_int"`
	PageSize    string `query:"pageSize" validate:"omitempty,positive_int"`
	UserID      string `query:"userId" validate:"omitempty,positive_int"`
	PriceListID string `query:"priceListId" validate:"omitempty,positive_int"`
}

type filterParams struct {
	Page        string `query:"page" validate:"omitempty,positive_int"`
	PageSize    string `query:"pageSize" validate:"omitempty,positive_int"`
	UserID      string `query:"userId" validate:"omitempty,positive_int"`
	PriceListID string `query:"priceListId" validate:"omitempty,positive_int"`
	SortBy      string `query:"sortBy" validate:"omitempty,oneof=name netPrice SKU description published"`
	SortOrder   string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Name        string `query:"name"`
	Category    string `query:"category"`
	MinPrice    string `query:"minPrice" validate:"omitempty,currency"`
	MaxPrice    string `query:"maxPrice" validate:"omitempty,currency"`
}

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists published and unpublished products page by page
// GET /products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	q, err := parsePageQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	page, err := h.service.ListProducts(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

// GetProduct returns one product with its price maps
// GET /products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "productId")
	if err != nil {
		return writeError(c, err)
	}

	var params pricingParams
	if err := c.QueryParser(&params); err != nil {
		return writeError(c, errBadRequest)
	}
	if err := validator.ValidateStruct(&params); err != nil {
		return writeError(c, err)
	}

	detail, err := h.service.GetProduct(c.UserContext(), id, pricingContext(c, params.UserID, params.PriceListID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(detail)
}

// GetCategoryProducts lists the products linked to one category
// GET /category/:id/products
func (h *CatalogHandler) GetCategoryProducts(c *fiber.Ctx) error {
	categoryID, idErr := pathID(c, "id", "categoryId")
	q, err := parsePageQuery(c)
	if verr := mergeErrors(idErr, err); verr != nil {
		return writeError(c, verr)
	}

	page, err := h.service.ListCategoryProducts(c.UserContext(), categoryID, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

// GetFilteredProducts lists products with sorting and filters
// GET /filtered-products
func (h *CatalogHandler) GetFilteredProducts(c *fiber.Ctx) error {
	var params filterParams
	if err := c.QueryParser(&params); err != nil {
		return writeError(c, errBadRequest)
	}
	if err := validator.ValidateStruct(&params); err != nil {
		return writeError(c, err)
	}

	q := service.ProductListQuery{
		Page:     intOr(params.Page, service.DefaultPage),
		PageSize: intOr(params.PageSize, service.DefaultPageSize),
		Sort: &repository.Sort{
			Field: stringOr(params.SortBy, defaultSortBy),
			Order: stringOr(params.SortOrder, defaultSortOrder),
		},
		Filters: repository.ProductFilters{
			Name:         params.Name,
			CategoryName: params.Category,
			MinPrice:     decimalOrNil(params.MinPrice),
			MaxPrice:     decimalOrNil(params.MaxPrice),
		},
		Pricing: pricingContext(c, params.UserID, params.PriceListID),
	}
	if err := service.ValidatePaging(q.Page, q.PageSize); err != nil {
		return writeError(c, err)
	}

	page, err := h.service.ListProducts(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

func parsePageQuery(c *fiber.Ctx) (service.ProductListQuery, error) {
	var params pageParams
	if err := c.QueryParser(&params); err != nil {
		return service.ProductListQuery{}, errBadRequest
	}
	if err := validator.ValidateStruct(&params); err != nil {
		return service.ProductListQuery{}, err
	}

	q := service.ProductListQuery{
		Page:     intOr(params.Page, service.DefaultPage),
		PageSize: intOr(params.PageSize, service.DefaultPageSize),
		Pricing:  pricingContext(c, params.UserID, params.PriceListID),
	}
	if err := service.ValidatePaging(q.Page, q.PageSize); err != nil {
		return service.ProductListQuery{}, err
	}
	return q, nil
}

// pricingContext prefers explicit ids and falls back to the token's user
func pricingContext(c *fiber.Ctx, userID, priceListID string) pricing.Context {
	uid := uint(intOr(userID, 0))
	if uid == 0 {
		uid = middleware.UserID(c)
	}
	return pricing.NewContext(uid, uint(intOr(priceListID, 0)))
}

func mergeErrors(errs ...error) error {
	merged := validator.NewValidationError()
	for _, err := range errs {
		if err == nil {
			continue
		}
		verr, ok := err.(*validator.ValidationError)
		if !ok {
			return err
		}
		merged.Merge(verr)
	}
	return merged.Err()
}

func intOr(s string, def int) int {
	if n, ok := validator.ParsePositiveInt(s); ok {
		return n
	}
	return def
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func decimalOrNil(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
