package service

import (
	"errors"

	"grocery-api/internal/model"
	"grocery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	List(filter repository.ProductFilter) ([]model.Product, *repository.Pagination, error)
	Create(req *model.ProductCreateRequest) (*model.Product, error)
	Get(id uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, req *model.ProductUpdateRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
	FindByBarcode(barcode string) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
	}
}

func (s *productService) List(filter repository.ProductFilter) ([]model.Product, *repository.Pagination, error) {
	return s.productRepo.FindAll(filter)
}

func (s *productService) Create(req *model.ProductCreateRequest) (*model.Product, error) {
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"category_id": "Selected category does not exist"}
		}
		return nil, err
	}

	if fe := s.checkBarcode(req.Barcode, uuid.Nil); fe != nil {
		return nil, fe
	}

	categoryID := req.CategoryID
	product := &model.Product{
		Name:        req.Name,
		NameAr:      req.NameAr,
		CategoryID:  &categoryID,
		Price:       decimal.NewFromFloat(*req.Price).Round(2),
		Unit:        req.Unit,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if req.Barcode != nil && *req.Barcode != "" {
		product.Barcode = req.Barcode
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.Get(product.ID)
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Update applies only the fields present in the request body
func (s *productService) Update(id uuid.UUID, req *model.ProductUpdateRequest) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, FieldErrors{"category_id": "Selected category does not exist"}
			}
			return nil, err
		}
		product.CategoryID = req.CategoryID
	}
	if req.Barcode != nil {
		if *req.Barcode == "" {
			product.Barcode = nil
		} else {
			if fe := s.checkBarcode(req.Barcode, product.ID); fe != nil {
				return nil, fe
			}
			product.Barcode = req.Barcode
		}
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.NameAr != nil {
		product.NameAr = req.NameAr
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price).Round(2)
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *productService) Delete(id uuid.UUID) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}

func (s *productService) FindByBarcode(barcode string) (*model.Product, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// checkBarcode enforces uniqueness, excluding selfID when updating
func (s *productService) checkBarcode(barcode *string, selfID uuid.UUID) FieldErrors {
	if barcode == nil || *barcode == "" {
		return nil
	}
	existing, err := s.productRepo.FindByBarcode(*barcode)
	if err == nil && existing.ID != selfID {
		return FieldErrors{"barcode": "This barcode is already in use"}
	}
	return nil
}
