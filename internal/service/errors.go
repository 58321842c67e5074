package service

import (
	"errors"

	"grocery-api/pkg/validator"
)

// Sentinel errors carry the user-facing message; handlers map them to status codes.
var (
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrCategoryHasProducts = errors.New("Cannot delete category with existing products")
	ErrProductNotFound     = errors.New("Product not found")
	ErrInvoiceNotFound     = errors.New("Invoice not found")
	ErrItemNotFound        = errors.New("Invoice item not found")
	ErrItemMismatch        = errors.New("Item does not belong to this invoice")
)

// FieldErrors reports validation failures keyed by input field name
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "validation failed" }

func validateRequest(data interface{}) FieldErrors {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return FieldErrors(validator.Messages(errs))
	}
	return nil
}
