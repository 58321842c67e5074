package service

import (
	"errors"

	"grocery-api/internal/model"
	"grocery-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService interface {
	List(search string) ([]model.Category, error)
	Create(req *model.CategoryRequest) (*model.Category, error)
	Get(id uuid.UUID) (*model.Category, error)
	Update(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: repo}
}

func (s *categoryService) List(search string) ([]model.Category, error) {
	return s.categoryRepo.FindAll(search)
}

func (s *categoryService) Create(req *model.CategoryRequest) (*model.Category, error) {
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	// Cek duplikasi nama (business rule, unique index backs it up)
	existing, err := s.categoryRepo.FindByName(req.Name)
	if err == nil && existing.ID != uuid.Nil {
		return nil, FieldErrors{"name": "The name has already been taken"}
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Get(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if fe := validateRequest(req); fe != nil {
		return nil, fe
	}

	// Uniqueness check excludes the record being updated
	existing, err := s.categoryRepo.FindByName(req.Name)
	if err == nil && existing.ID != category.ID {
		return nil, FieldErrors{"name": "The name has already been taken"}
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *categoryService) Delete(id uuid.UUID) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountProducts(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasProducts
	}

	return s.categoryRepo.Delete(category.ID)
}
