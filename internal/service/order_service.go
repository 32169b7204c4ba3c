package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderLineRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gt=0"`
	VAT       *int `json:"vat" validate:"omitempty,gte=0,lte=100"`
	Discount  *int `json:"discount" validate:"omitempty,gte=0,lte=100"`
}

// CreateOrderRequest is the /orders/new body. Empty address, email and phone
// are taken from the customer's profile.
type CreateOrderRequest struct {
	UserID   uint               `json:"user_id" validate:"required"`
	CityID   uint               `json:"city_id" validate:"required"`
	Address  string             `json:"address" validate:"max=128"`
	Email    string             `json:"email" validate:"omitempty,email,max=128"`
	Phone    string             `json:"phone" validate:"max=64"`
	Products []OrderLineRequest `json:"products" validate:"required,min=1,dive"`
}

// EventPublisher receives domain events after they are committed
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

type OrderCreatedEvent struct {
	Reference  uuid.UUID `json:"reference"`
	UserID     uint      `json:"user_id"`
	Lines      int       `json:"lines"`
	TotalPrice string    `json:"total_price"`
}

type OrderService interface {
	// CreateOrder prices and stores the order in one transaction. actorID is
	// the authenticated user, 0 when the request carried no token.
	CreateOrder(ctx context.Context, req CreateOrderRequest, actorID uint) (*model.Order, error)
}

type orderService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	priceRepo    repository.PriceRepository
	orderRepo    repository.OrderRepository
	events       EventPublisher
	now          func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	uRepo repository.UserRepository,
	lRepo repository.LocationRepository,
	pRepo repository.ProductRepository,
	prRepo repository.PriceRepository,
	oRepo repository.OrderRepository,
	events EventPublisher,
) OrderService {
	return &orderService{
		db:           db,
		userRepo:     uRepo,
		locationRepo: lRepo,
		productRepo:  pRepo,
		priceRepo:    prRepo,
		orderRepo:    oRepo,
		events:       events,
		now:          time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest, actorID uint) (*model.Order, error) {
	if actorID != 0 && actorID != req.UserID {
		return nil, ErrForbidden
	}

	var order *model.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Customer and delivery city
		user, err := s.userRepo.WithTx(tx).FindByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return notFound("User", req.UserID)
			}
			return err
		}

		if _, err := s.locationRepo.WithTx(tx).FindCityByID(ctx, req.CityID); err != nil {
			if errors.Is(err, repository.ErrCityNotFound) {
				return notFound("City", req.CityID)
			}
			return err
		}

		// 2. Net price per line under the customer's contract
		resolver := pricing.NewResolver(s.priceRepo.WithTx(tx))
		products := s.productRepo.WithTx(tx)
		customer := pricing.Customer(user.ID)

		lines := make([]pricing.Line, 0, len(req.Products))
		for _, l := range req.Products {
			product, err := products.Get(ctx, l.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return notFound("Product", l.ProductID)
				}
				return err
			}

			net, err := resolver.Resolve(ctx, product, customer)
			if err != nil {
				return err
			}
			lines = append(lines, pricing.Line{
				NetPrice: net,
				Quantity: l.Quantity,
				VAT:      l.VAT,
				Discount: l.Discount,
			})
		}

		// 3. Totals and volume discount
		totals := pricing.ComputeTotals(lines)

		order = &model.Order{
			OrderDate:     s.now(),
			UserID:        user.ID,
			Address:       firstNonEmpty(req.Address, user.Address),
			Email:         firstNonEmpty(req.Email, user.Email),
			Phone:         firstNonEmpty(req.Phone, user.Phone),
			CityID:        req.CityID,
			TotalPrice:    totals.Total,
			Discount:      totals.Discount,
			OrderProducts: make([]model.OrderProduct, 0, len(totals.Lines)),
		}
		for i, pl := range totals.Lines {
			order.OrderProducts = append(order.OrderProducts, model.OrderProduct{
				ProductID: req.Products[i].ProductID,
				Quantity:  pl.Quantity,
				UnitPrice: pl.UnitPrice,
				VAT:       pl.VAT,
				Discount:  pl.Discount,
			})
		}

		// 4. Persist order and lines
		if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Order %s created for user %d: %d lines, total %s", order.Reference, order.UserID, len(order.OrderProducts), order.TotalPrice.StringFixed(2))

	if s.events != nil {
		s.events.Publish(ws.EventOrderCreated, OrderCreatedEvent{
			Reference:  order.Reference,
			UserID:     order.UserID,
			Lines:      len(order.OrderProducts),
			TotalPrice: order.TotalPrice.StringFixed(2),
		})
	}

	return order, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
