package service

import (
	"errors"
	"fmt"
	"time"

	"grocery-api/internal/model"
	"grocery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bound on the number-allocation loop; the unique index is the real guard
const maxNumberAttempts = 25

type InvoiceService interface {
	List(filter repository.InvoiceFilter) ([]model.Invoice, *repository.Pagination, error)
	Create(req *model.InvoiceCreateRequest) (*model.Invoice, error)
	Get(id uuid.UUID) (*model.Invoice, error)
	Update(id uuid.UUID, req *model.InvoiceUpdateRequest) (*model.Invoice, error)
	Delete(id uuid.UUID) error
	AddItem(invoiceID uuid.UUID, req *model.InvoiceItemRequest) (*model.Invoice, error)
	RemoveItem(invoiceID, itemID uuid.UUID) (*model.Invoice, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewInvoiceService(iRepo repository.InvoiceRepository, pRepo repository.ProductRepository, db *gorm.DB) InvoiceService {
	return &invoiceService{
		invoiceRepo: iRepo,
		productRepo: pRepo,
		db:          db,
	}
}

func (s *invoiceService) List(filter repository.InvoiceFilter) ([]model.Invoice, *repository.Pagination, error) {
	return s.invoiceRepo.FindAll(filter)
}

// Create persists the invoice and all of its items atomically. Any failure
// (missing product, constraint violation) rolls back the whole invoice.
func (s *invoiceService) Create(req *model.InvoiceCreateRequest) (*model.Invoice, error) {
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}
	if req.InvoiceNumber != nil && *req.InvoiceNumber != "" {
		existing, err := s.invoiceRepo.FindByNumber(*req.InvoiceNumber)
		if err == nil && existing.ID != uuid.Nil {
			return nil, FieldErrors{"invoice_number": "The invoice number has already been taken"}
		}
	}

	var invoiceID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		number := ""
		if req.InvoiceNumber != nil {
			number = *req.InvoiceNumber
		}
		if number == "" {
			generated, err := s.generateNumber(tx)
			if err != nil {
				return err
			}
			number = generated
		}

		// Creation flow defaults to sale and marks the invoice completed
		invoiceType := model.InvoiceSale
		if req.Type != "" {
			invoiceType = model.InvoiceType(req.Type)
		}

		invoice := &model.Invoice{
			InvoiceNumber: number,
			Type:          invoiceType,
			SupplierName:  req.SupplierName,
			TotalAmount:   decimal.Zero,
			Status:        model.StatusCompleted,
		}
		if err := s.invoiceRepo.Create(tx, invoice); err != nil {
			return err
		}

		total := decimal.Zero
		for i, it := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ?", it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return FieldErrors{fmt.Sprintf("items.%d.product_id", i): "Selected product does not exist"}
				}
				return err
			}

			// Snapshot name and price; later product changes must not touch this invoice
			quantity := decimal.NewFromFloat(it.Quantity).Round(2)
			linePrice := quantity.Mul(product.Price).Round(2)
			item := &model.InvoiceItem{
				InvoiceID:   invoice.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				TotalPrice:  linePrice,
			}
			if err := s.invoiceRepo.CreateItem(tx, item); err != nil {
				return err
			}
			total = total.Add(linePrice)
		}

		if err := s.invoiceRepo.UpdateTotal(tx, invoice.ID, total); err != nil {
			return err
		}
		invoiceID = invoice.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(invoiceID)
}

func (s *invoiceService) Get(id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

// Update touches header fields only; items and total are never modified here
func (s *invoiceService) Update(id uuid.UUID, req *model.InvoiceUpdateRequest) (*model.Invoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != "" {
		existing, err := s.invoiceRepo.FindByNumber(*req.InvoiceNumber)
		if err == nil && existing.ID != invoice.ID {
			return nil, FieldErrors{"invoice_number": "The invoice number has already been taken"}
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Type != nil {
		invoice.Type = model.InvoiceType(*req.Type)
	}
	if req.SupplierName != nil {
		invoice.SupplierName = *req.SupplierName
	}
	if req.Status != nil {
		invoice.Status = model.InvoiceStatus(*req.Status)
	}

	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *invoiceService) Delete(id uuid.UUID) error {
	invoice, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.invoiceRepo.Delete(invoice.ID)
}

// AddItem inserts the item and recomputes the invoice total from the sum of
// all current items, in one transaction.
func (s *invoiceService) AddItem(invoiceID uuid.UUID, req *model.InvoiceItemRequest) (*model.Invoice, error) {
	if _, err := s.Get(invoiceID); err != nil {
		return nil, err
	}
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return FieldErrors{"product_id": "Selected product does not exist"}
			}
			return err
		}

		quantity := decimal.NewFromFloat(req.Quantity).Round(2)
		item := &model.InvoiceItem{
			InvoiceID:   invoiceID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.Price,
			TotalPrice:  quantity.Mul(product.Price).Round(2),
		}
		if err := s.invoiceRepo.CreateItem(tx, item); err != nil {
			return err
		}
		return s.recalcTotal(tx, invoiceID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(invoiceID)
}

// RemoveItem deletes the item and recomputes the total from the remaining
// items. An item belonging to another invoice is rejected untouched.
func (s *invoiceService) RemoveItem(invoiceID, itemID uuid.UUID) (*model.Invoice, error) {
	if _, err := s.Get(invoiceID); err != nil {
		return nil, err
	}
	item, err := s.invoiceRepo.FindItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.InvoiceID != invoiceID {
		return nil, ErrItemMismatch
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.invoiceRepo.DeleteItem(tx, item.ID); err != nil {
			return err
		}
		return s.recalcTotal(tx, invoiceID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(invoiceID)
}

// recalcTotal is the authoritative recompute: SUM over items, never an
// incremental add, so stored totals cannot drift.
func (s *invoiceService) recalcTotal(tx *gorm.DB, invoiceID uuid.UUID) error {
	sum, err := s.invoiceRepo.SumItems(tx, invoiceID)
	if err != nil {
		return err
	}
	return s.invoiceRepo.UpdateTotal(tx, invoiceID, sum)
}

// generateNumber allocates INV-<YYYYMMDD>-<seq>. The candidate starts at
// count+1 and is advanced until free inside the transaction; the unique
// index on invoice_number catches the remaining race.
func (s *invoiceService) generateNumber(tx *gorm.DB) (string, error) {
	count, err := s.invoiceRepo.Count(tx)
	if err != nil {
		return "", err
	}
	seq := count + 1
	date := time.Now().Format("20060102")
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("INV-%s-%04d", date, seq)
		exists, err := s.invoiceRepo.NumberExists(tx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		seq++
	}
	return "", errors.New("could not allocate a unique invoice number")
}
