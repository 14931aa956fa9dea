package repositories

import (
	"errors"

	"glowy/internal/models"
)

// ErrNotFound signals that the addressed product id does not exist. It is a
// normal outcome, not a storage fault; callers check it with errors.Is.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Every operation is a single-row, single-statement action; implementations
// must be safe under concurrent use.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
