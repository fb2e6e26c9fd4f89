package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// It represents a catalog item with its pricing, stock and display ordering.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	CostPrice   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	ImageURL    string    `gorm:"type:text"`
	Images      datatypes.JSON
	Stock       int `gorm:"not null;default:0"`
	Priority    int `gorm:"not null;default:999;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
