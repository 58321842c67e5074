package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceType string

const (
	InvoicePurchase InvoiceType = "purchase"
	InvoiceSale     InvoiceType = "sale"
)

type InvoiceStatus string

const (
	StatusPending    InvoiceStatus = "pending"
	StatusProcessing InvoiceStatus = "processing"
	StatusCompleted  InvoiceStatus = "completed"
	StatusFailed     InvoiceStatus = "failed"
)

type Invoice struct {
	BaseModel
	InvoiceNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	Type          InvoiceType     `gorm:"type:varchar(20);default:purchase" json:"type" validate:"omitempty,oneof=purchase sale"`
	SupplierName  string          `gorm:"type:varchar(255)" json:"supplier_name" validate:"max=255"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_amount"` // Cached aggregate of item totals
	Status        InvoiceStatus   `gorm:"type:varchar(20);default:pending" json:"status" validate:"omitempty,oneof=pending processing completed failed"`
	ImageURL      string          `gorm:"type:varchar(255)" json:"image_url"`    // Reserved for invoice image processing
	ProcessedAt   *time.Time      `json:"processed_at"`

	// Relasi
	Items []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type InvoiceItem struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product     *Product        `json:"product,omitempty"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"` // Snapshot at time of sale
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"` // Snapshot of product price
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
}
