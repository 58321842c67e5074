package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	NameAr        *string         `gorm:"type:varchar(255)" json:"name_ar,omitempty"` // Localized (Arabic) name
	Barcode       *string         `gorm:"type:varchar(50);uniqueIndex" json:"barcode"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid" json:"category_id"`
	Category      *Category       `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	StockQuantity int             `gorm:"default:0" json:"stock_quantity" validate:"min=0"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit" validate:"max=20"`
	ImageURL      string          `gorm:"type:varchar(255)" json:"image_url"`
	Description   string          `gorm:"type:text" json:"description" validate:"max=1000"`

	// Relasi - historical items keep snapshots, so product deletes never cascade here
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty"`
}
