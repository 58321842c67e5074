package repository

import (
	"strings"

	"grocery-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter carries the query-string filters for product listings
type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     string
	SortBy     string
	SortDir    string
	Page       int
	PerPage    int
}

// Allow-list of sortable columns; anything else falls back to created_at
var productSortColumns = map[string]bool{
	"name":           true,
	"name_ar":        true,
	"barcode":        true,
	"price":          true,
	"stock_quantity": true,
	"unit":           true,
	"created_at":     true,
	"updated_at":     true,
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, *Pagination, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, *Pagination, error) {
	query := r.db.Model(&model.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE ? OR barcode LIKE ?", strings.ToLower(search), search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	sortBy := filter.SortBy
	if !productSortColumns[sortBy] {
		sortBy = "created_at"
	}
	sortDir := "DESC"
	if strings.EqualFold(filter.SortDir, "asc") {
		sortDir = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 15
	}

	products := []model.Product{}
	err := query.Preload("Category").
		Order(sortBy + " " + sortDir).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error
	if err != nil {
		return nil, nil, err
	}

	return products, paginate(page, perPage, total), nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "barcode = ?", barcode).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
