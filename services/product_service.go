package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ProductInput is a submitted product form. Price is the raw text of the price field.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	ImageURLs   []string
}

// ProductList is what the product list view shows.
type ProductList struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
}

// IProductService defines the interface for product-related business logic.
type IProductService interface {
	ListProducts(ctx context.Context, search, category string) (*ProductList, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SaveProduct(ctx context.Context, id string, input ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductService implements IProductService.
type ProductService struct {
	products    repository.IProductRepository
	categories  repository.ICategoryRepository
	events      IEventPublisher
	newID       IDGenerator
	placeholder string
}

// NewProductService creates a new ProductService instance.
func NewProductService(
	products repository.IProductRepository,
	categories repository.ICategoryRepository,
	events IEventPublisher,
	newID IDGenerator,
	placeholder string,
) IProductService {
	if newID == nil {
		newID = TimestampID
	}
	return &ProductService{
		products:    products,
		categories:  categories,
		events:      events,
		newID:       newID,
		placeholder: placeholder,
	}
}

// ListProducts reads products and categories together and filters the products.
func (s *ProductService) ListProducts(ctx context.Context, search, category string) (*ProductList, error) {
	var list ProductList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.products.FindAll(gctx)
		list.Products = products
		return err
	})
	g.Go(func() error {
		categories, err := s.categories.FindAll(gctx)
		list.Categories = categories
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	list.Products = FilterProducts(list.Products, search, category)
	return &list, nil
}

// FilterProducts keeps products whose name contains search (ignoring case) and, when
// category is set, whose category is exactly category.
func FilterProducts(products []models.Product, search, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !containsFold(p.Name, search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// SaveProduct overwrites the product under id, or creates it under a new id.
func (s *ProductService) SaveProduct(ctx context.Context, id string, input ProductInput) (*models.Product, error) {
	if id == "" {
		id = s.newID()
	}
	product := &models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       ParsePrice(input.Price),
		Category:    input.Category,
		ImageURLs:   ImageSlots(input.ImageURLs).URLs(s.placeholder),
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, ChangeEvent{Type: EventUpserted, Collection: models.CollectionProducts, ID: id, Data: product})
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, ChangeEvent{Type: EventDeleted, Collection: models.CollectionProducts, ID: id})
	return nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads the longest leading number of the price field. Text without one is zero.
func ParsePrice(text string) decimal.Decimal {
	match := leadingNumber.FindString(strings.TrimSpace(text))
	if match == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return d
}
