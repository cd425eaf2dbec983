package services

import (
	"errors"
	"strings"

	"ideahub/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories ordered by name, for pickers and the manage
// page.
func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	var clashes int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&clashes).Error; err != nil {
		return nil, err
	}
	if clashes > 0 {
		return nil, ErrDuplicateName
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Rename(id uint, name string) error {
	name = strings.TrimSpace(name)

	var clashes int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND category_id <> ?", name, id).
		Count(&clashes).Error; err != nil {
		return err
	}
	if clashes > 0 {
		return ErrDuplicateName
	}

	result := s.db.Model(&models.Category{}).Where("category_id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses to remove a category while any idea references it.
func (s *CategoryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Idea{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrCategoryInUse
		}

		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
