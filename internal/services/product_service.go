package services

import (
	"glowy/internal/models"
	"glowy/internal/repositories"
	"glowy/internal/validation"
)

// ProductService handles business logic related to products: every write is
// validated and normalized before it reaches the repository.
type ProductService struct {
	repo      repositories.ProductRepository
	validator *validation.ProductValidator
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validation.NewProductValidator(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the input and persists a new product. The returned
// product carries the freshly assigned id and the normalized field values.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	normalized, err := s.validator.ValidateProduct(input)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        normalized.Name,
		Category:    normalized.Category,
		Price:       normalized.Price,
		Stock:       normalized.Stock,
		Description: normalized.Description,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct validates the input and overwrites every mutable field of the
// product with the given id. Validation runs first, so a rejected payload
// never touches the store; repositories.ErrNotFound passes through untouched.
func (s *ProductService) UpdateProduct(id int, input models.ProductInput) (*models.Product, error) {
	normalized, err := s.validator.ValidateProduct(input)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		Name:        normalized.Name,
		Category:    normalized.Category,
		Price:       normalized.Price,
		Stock:       normalized.Stock,
		Description: normalized.Description,
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id int) error {
	return s.repo.Delete(id)
}
