package repository

import (
	"time"

	"grocery-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceFilter carries the query-string filters for invoice listings
type InvoiceFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PerPage  int
}

type InvoiceRepository interface {
	Create(tx *gorm.DB, invoice *model.Invoice) error
	FindAll(filter InvoiceFilter) ([]model.Invoice, *Pagination, error)
	FindByID(id uuid.UUID) (*model.Invoice, error)
	FindByNumber(number string) (*model.Invoice, error)
	Update(invoice *model.Invoice) error
	Delete(id uuid.UUID) error
	Count(tx *gorm.DB) (int64, error)
	NumberExists(tx *gorm.DB, number string) (bool, error)
	FindItem(id uuid.UUID) (*model.InvoiceItem, error)
	CreateItem(tx *gorm.DB, item *model.InvoiceItem) error
	DeleteItem(tx *gorm.DB, id uuid.UUID) error
	SumItems(tx *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error)
	UpdateTotal(tx *gorm.DB, invoiceID uuid.UUID, total decimal.Decimal) error
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

// Create menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *invoiceRepo) Create(tx *gorm.DB, invoice *model.Invoice) error {
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) FindAll(filter InvoiceFilter) ([]model.Invoice, *Pagination, error) {
	query := r.db.Model(&model.Invoice{})

	// Date-only bounds, inclusive on both ends
	if filter.FromDate != nil {
		query = query.Where("DATE(created_at) >= ?", filter.FromDate.Format("2006-01-02"))
	}
	if filter.ToDate != nil {
		query = query.Where("DATE(created_at) <= ?", filter.ToDate.Format("2006-01-02"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 15
	}

	invoices := []model.Invoice{}
	err := query.Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&invoices).Error
	if err != nil {
		return nil, nil, err
	}

	return invoices, paginate(page, perPage, total), nil
}

func (r *invoiceRepo) FindByID(id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Items").Preload("Items.Product").First(&invoice, "id = ?", id).Error
	return &invoice, err
}

func (r *invoiceRepo) FindByNumber(number string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.First(&invoice, "invoice_number = ?", number).Error
	return &invoice, err
}

func (r *invoiceRepo) Update(invoice *model.Invoice) error {
	return r.db.Omit("Items").Save(invoice).Error
}

// Delete removes the invoice and its items in one transaction; the explicit
// item delete keeps cascade semantics identical across postgres and sqlite.
func (r *invoiceRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&model.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Invoice{}, "id = ?", id).Error
	})
}

func (r *invoiceRepo) Count(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&model.Invoice{}).Count(&count).Error
	return count, err
}

func (r *invoiceRepo) NumberExists(tx *gorm.DB, number string) (bool, error) {
	var count int64
	err := tx.Model(&model.Invoice{}).Where("invoice_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *invoiceRepo) FindItem(id uuid.UUID) (*model.InvoiceItem, error) {
	var item model.InvoiceItem
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *invoiceRepo) CreateItem(tx *gorm.DB, item *model.InvoiceItem) error {
	return tx.Create(item).Error
}

func (r *invoiceRepo) DeleteItem(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.InvoiceItem{}, "id = ?", id).Error
}

func (r *invoiceRepo) SumItems(tx *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := tx.Model(&model.InvoiceItem{}).
		Where("invoice_id = ?", invoiceID).
		Select("SUM(total_price)").
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *invoiceRepo) UpdateTotal(tx *gorm.DB, invoiceID uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.Invoice{}).
		Where("id = ?", invoiceID).
		Update("total_amount", total).Error
}
