package services

import (
	"github.com/shopspring/decimal"

	"github.com/hearthware/store-api/models"
)

const productPageSize = 50

type ProductService struct {
	repo Repository
}

func NewProductService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductPage mirrors the paginated payload the frontend already consumes.
type ProductPage struct {
	Data        []models.Product `json:"data"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	Total       int64            `json:"total"`
	LastPage    int              `json:"last_page"`
}

// List returns one catalog page, optionally filtered by a case-insensitive
// substring match on name or detail, ordered by id descending.
func (s *ProductService) List(search string, page int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	products, total, err := s.repo.SearchProducts(search, page, productPageSize)
	if err != nil {
		return nil, err
	}
	lastPage := int((total + productPageSize - 1) / productPageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	return &ProductPage{
		Data:        products,
		CurrentPage: page,
		PerPage:     productPageSize,
		Total:       total,
		LastPage:    lastPage,
	}, nil
}

// ProductInput is an already-validated admin upsert payload. Image is the
// stored path of an uploaded file, empty when none was sent.
type ProductInput struct {
	ID     uint // zero means create
	Name   string
	Detail string
	Price  decimal.Decimal
	Image  string
}

// Upsert updates the product matching input.ID in place, or creates a new one
// when the id is zero or unknown. The returned flag reports creation.
func (s *ProductService) Upsert(input ProductInput) (*models.Product, bool, error) {
	var product *models.Product
	if input.ID != 0 {
		existing, err := s.repo.ProductByID(input.ID)
		if err != nil && err != ErrNotFound {
			return nil, false, err
		}
		product = existing
	}

	// An unknown id creates the row under that id, like the original's
	// updateOrCreate(['id' => $id]).
	created := product == nil
	if created {
		product = &models.Product{ID: input.ID}
	}

	product.Name = input.Name
	product.Detail = input.Detail
	product.Price = input.Price
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := s.repo.SaveProduct(product); err != nil {
		return nil, false, err
	}
	return product, created, nil
}

// All returns the full catalog for the admin export.
func (s *ProductService) All() ([]models.Product, error) {
	return s.repo.AllProducts()
}
