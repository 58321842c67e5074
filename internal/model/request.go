package model

import "github.com/google/uuid"

// Request payloads. Update requests use pointer fields so only keys present
// in the body are validated and applied.

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=500"`
}

type ProductCreateRequest struct {
	CategoryID    uuid.UUID `json:"category_id" validate:"uuid_required"`
	Name          string    `json:"name" validate:"required,max=255"`
	NameAr        *string   `json:"name_ar" validate:"omitempty,max=255"`
	Barcode       *string   `json:"barcode" validate:"omitempty,max=50"`
	Description   string    `json:"description" validate:"max=1000"`
	Price         *float64  `json:"price" validate:"required,gte=0"`
	StockQuantity *int      `json:"stock_quantity" validate:"omitempty,min=0"`
	Unit          string    `json:"unit" validate:"max=20"`
	ImageURL      string    `json:"image_url"`
}

type ProductUpdateRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          *string    `json:"name" validate:"omitempty,max=255"`
	NameAr        *string    `json:"name_ar" validate:"omitempty,max=255"`
	Barcode       *string    `json:"barcode" validate:"omitempty,max=50"`
	Description   *string    `json:"description" validate:"omitempty,max=1000"`
	Price         *float64   `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int       `json:"stock_quantity" validate:"omitempty,min=0"`
	Unit          *string    `json:"unit" validate:"omitempty,max=20"`
	ImageURL      *string    `json:"image_url"`
}

type InvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  float64   `json:"quantity" validate:"required,gte=0.01"`
}

type InvoiceCreateRequest struct {
	InvoiceNumber *string              `json:"invoice_number" validate:"omitempty,max=50"`
	Type          string               `json:"type" validate:"omitempty,oneof=purchase sale"`
	SupplierName  string               `json:"supplier_name" validate:"max=255"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

type InvoiceUpdateRequest struct {
	InvoiceNumber *string `json:"invoice_number" validate:"omitempty,max=50"`
	Type          *string `json:"type" validate:"omitempty,oneof=purchase sale"`
	SupplierName  *string `json:"supplier_name" validate:"omitempty,max=255"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending processing completed failed"`
}
