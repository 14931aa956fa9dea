package models

// Product represents a skincare product row in the catalog.
// Description is a pointer so an absent description is stored and
// rendered as NULL/omitted rather than an empty string.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(150);not null"`
	Category    string  `json:"category" gorm:"type:varchar(50);not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
	Description *string `json:"description,omitempty" gorm:"type:varchar(500)"`
}

// TableName keeps the table name aligned with the public route (/productos).
func (Product) TableName() string {
	return "productos"
}

// ProductInput is the request payload for creating or updating a product.
// Updates always carry the complete new state; there is no partial update.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=150"`
	Category    string  `json:"category" validate:"required,skincare_category"`
	Price       float64 `json:"price" validate:"gt=0,lte=999.99"`
	Stock       int     `json:"stock" validate:"gte=0,lte=9999"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
