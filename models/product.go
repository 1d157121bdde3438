package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string
	Image       string           `gorm:"not null"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories  []Category       `gorm:"many2many:product_categories;"`
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// ProductVariant is one sellable size of a product, e.g. "500g" of
// moringa powder. The weight label is what cart line items key on.
type ProductVariant struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	ProductID uint    `gorm:"index"`
	Weight    string  `gorm:"not null"` // e.g. "250g", "500g", "1kg"
	Price     float64 `gorm:"not null"`
}
