// Package seed fills an empty catalog with deterministic demo fixtures:
// categories, cities, customers, products, price lists and contract prices.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"go-catalog-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	numMainCategories   = 3
	categoriesPerMain   = 5
	numStates           = 3
	citiesPerState      = 5
	numUsers            = 5
	numProducts         = 50
	numPublished        = 40
	numPriceLists       = 5
	DefaultPassword     = "password"
	contractChanceOneIn = 4
)

var (
	increase = decimal.RequireFromString("1.1")
	decrease = decimal.RequireFromString("0.9")
)

type Options struct {
	// Random seeds the generator; equal values give equal fixtures
	Random int64
	// Password is set for every customer, DefaultPassword when empty
	Password string
}

// Summary counts the rows written per table
type Summary struct {
	MainCategories    int
	Categories        int
	States            int
	Cities            int
	Users             int
	Products          int
	ProductCategories int
	PriceLists        int
	ProductPriceLists int
	ContractLists     int
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"%d main categories, %d categories, %d states, %d cities, %d users, %d products, %d product categories, %d price lists, %d price list prices, %d contract prices",
		s.MainCategories, s.Categories, s.States, s.Cities, s.Users, s.Products,
		s.ProductCategories, s.PriceLists, s.ProductPriceLists, s.ContractLists,
	)
}

// Run replaces all catalog, customer and order rows with fresh fixtures in
// one transaction.
func Run(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	password := opts.Password
	if password == "" {
		password = DefaultPassword
	}
	s := &seeder{rng: rand.New(rand.NewSource(opts.Random)), password: password}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s.tx = tx
		steps := []struct {
			name string
			fn   func() error
		}{
			{"truncate", s.truncate},
			{"categories", s.categories},
			{"cities", s.cities},
			{"users", s.users},
			{"products", s.products},
			{"product categories", s.productCategories},
			{"price lists", s.priceLists},
			{"price list prices", s.productPriceLists},
			{"contract prices", s.contractLists},
		}
		for _, step := range steps {
			if err := step.fn(); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.Printf("Seeded %s", s.summary)
	return s.summary, nil
}

type seeder struct {
	tx       *gorm.DB
	rng      *rand.Rand
	password string
	summary  Summary

	categoryRows []model.Category
	cityRows     []model.City
	userRows     []model.User
	productRows  []model.Product
	listRows     []model.PriceList
	// first price-list price per product, used as the agreed contract price
	agreed map[uint]decimal.Decimal
}

// truncate deletes children before parents
func (s *seeder) truncate() error {
	all := []interface{}{
		&model.OrderProduct{}, &model.Order{},
		&model.ContractList{}, &model.ProductPriceList{}, &model.PriceList{},
		&model.ProductCategory{}, &model.Product{},
		&model.Category{}, &model.MainCategory{},
		&model.User{}, &model.City{}, &model.State{},
	}
	wipe := s.tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range all {
		if err := wipe.Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) categories() error {
	for i := 1; i <= numMainCategories; i++ {
		main := model.MainCategory{
			Name:        fmt.Sprintf("Main Category %d", i),
			Description: fmt.Sprintf("Description for Main Category %d", i),
		}
		if err := s.tx.Create(&main).Error; err != nil {
			return err
		}
		s.summary.MainCategories++

		for j := 1; j <= categoriesPerMain; j++ {
			c := model.Category{
				Name:           fmt.Sprintf("Category %d for Main Category %d", j, i),
				Description:    fmt.Sprintf("Description for Category %d", j),
				MainCategoryID: main.ID,
			}
			if err := s.tx.Create(&c).Error; err != nil {
				return err
			}
			s.categoryRows = append(s.categoryRows, c)
		}
	}
	s.summary.Categories = len(s.categoryRows)
	return nil
}

func (s *seeder) cities() error {
	for i := 1; i <= numStates; i++ {
		state := model.State{Name: fmt.Sprintf("State %d", i)}
		if err := s.tx.Create(&state).Error; err != nil {
			return err
		}
		s.summary.States++

		for j := 1; j <= citiesPerState; j++ {
			city := model.City{Name: fmt.Sprintf("City %d for State %d", j, i), StateID: state.ID}
			if err := s.tx.Create(&city).Error; err != nil {
				return err
			}
			s.cityRows = append(s.cityRows, city)
		}
	}
	s.summary.Cities = len(s.cityRows)
	return nil
}

func (s *seeder) users() error {
	for i := 1; i <= numUsers; i++ {
		cityID := s.cityRows[s.rng.Intn(len(s.cityRows))].ID
		u := model.User{
			Name:    fmt.Sprintf("User %d", i),
			Surname: fmt.Sprintf("Surname %d", i),
			Email:   fmt.Sprintf("user%d@net.com", i),
			Phone:   fmt.Sprintf("123456789%d", i),
			Address: fmt.Sprintf("Street %d", i),
			CityID:  &cityID,
		}
		if err := u.SetPassword(s.password); err != nil {
			return err
		}
		if err := s.tx.Create(&u).Error; err != nil {
			return err
		}
		s.userRows = append(s.userRows, u)
	}
	s.summary.Users = len(s.userRows)
	return nil
}

func (s *seeder) products() error {
	for i := 1; i <= numProducts; i++ {
		description := fmt.Sprintf("Description for Product %d", i)
		published := i <= numPublished
		p := model.Product{
			Name:        fmt.Sprintf("Product %d", i),
			Description: &description,
			SKU:         fmt.Sprintf("SKU%d", i),
			// 10.0 to 100.0 in steps of 0.1
			NetPrice:  decimal.New(int64(100+s.rng.Intn(901)), -1),
			Published: &published,
		}
		if err := s.tx.Create(&p).Error; err != nil {
			return err
		}
		s.productRows = append(s.productRows, p)
	}
	s.summary.Products = len(s.productRows)
	return nil
}

// productCategories links every product to one or two distinct categories
func (s *seeder) productCategories() error {
	for _, p := range s.productRows {
		n := 1 + s.rng.Intn(2)
		for _, idx := range s.rng.Perm(len(s.categoryRows))[:n] {
			link := model.ProductCategory{ProductID: p.ID, CategoryID: s.categoryRows[idx].ID}
			if err := s.tx.Create(&link).Error; err != nil {
				return err
			}
			s.summary.ProductCategories++
		}
	}
	return nil
}

// priceLists cycles the increased flag through up, down and unchanged
func (s *seeder) priceLists() error {
	for i := 1; i <= numPriceLists; i++ {
		var increased *bool
		switch i % 3 {
		case 1:
			increased = boolPtr(true)
		case 2:
			increased = boolPtr(false)
		}
		pl := model.PriceList{Name: fmt.Sprintf("Price List %d", i), IncreasedPrice: increased}
		if err := s.tx.Create(&pl).Error; err != nil {
			return err
		}
		s.listRows = append(s.listRows, pl)
	}
	s.summary.PriceLists = len(s.listRows)
	return nil
}

func (s *seeder) productPriceLists() error {
	s.agreed = make(map[uint]decimal.Decimal)
	for _, p := range s.productRows {
		for _, pl := range s.listRows {
			if s.rng.Intn(2) == 0 {
				continue
			}
			row := model.ProductPriceList{
				ProductID:   p.ID,
				PriceListID: pl.ID,
				Price:       ListPrice(p.NetPrice, pl.IncreasedPrice),
			}
			if err := s.tx.Create(&row).Error; err != nil {
				return err
			}
			if _, ok := s.agreed[p.ID]; !ok {
				s.agreed[p.ID] = row.Price
			}
			s.summary.ProductPriceLists++
		}
	}
	return nil
}

// contractLists gives a customer the product's first price-list price for
// a random subset of products that are on at least one price list
func (s *seeder) contractLists() error {
	for _, u := range s.userRows {
		for _, p := range s.productRows {
			price, ok := s.agreed[p.ID]
			if !ok || s.rng.Intn(contractChanceOneIn) != 0 {
				continue
			}
			row := model.ContractList{UserID: u.ID, ProductID: p.ID, Price: price}
			if err := s.tx.Create(&row).Error; err != nil {
				return err
			}
			s.summary.ContractLists++
		}
	}
	return nil
}

// ListPrice derives a price-list price from the net price: +10% when
// increased is true, -10% when false, unchanged when nil
func ListPrice(net decimal.Decimal, increased *bool) decimal.Decimal {
	switch {
	case increased == nil:
		return net
	case *increased:
		return net.Mul(increase).Round(2)
	default:
		return net.Mul(decrease).Round(2)
	}
}

func boolPtr(b bool) *bool { return &b }
