package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
)

var (
	// ErrNotFound is returned for an unknown package id.
	ErrNotFound = errors.New("package not found")
	// ErrInUse is returned when deleting a package that still backs
	// assignments or payments.
	ErrInUse = errors.New("package is in use")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price" binding:"required,gt=0"`
	Discount     int64  `json:"discount" binding:"gte=0,lte=100"`
	DurationDays int    `json:"duration_days" binding:"required,gt=0"`
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Package, error) {
	pkg := &models.Package{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Discount:     req.Discount,
		DurationDays: req.DurationDays,
	}
	if err := s.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return pkg, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := s.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	return &pkg, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Package, error) {
	var rows []*models.Package
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return rows, nil
}

type UpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *int64  `json:"price" binding:"omitempty,gt=0"`
	Discount     *int64  `json:"discount" binding:"omitempty,gte=0,lte=100"`
	DurationDays *int    `json:"duration_days" binding:"omitempty,gt=0"`
}

// Update applies a partial edit. Only provided fields change.
func (s *Service) Update(ctx context.Context, id uint, req *UpdateRequest) (*models.Package, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.DurationDays != nil {
		updates["duration_days"] = *req.DurationDays
	}

	var pkg models.Package
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pkg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load package: %w", err)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&pkg).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Delete removes a package that no assignment or payment references.
// Existing entitlements keep their derived expiry, so a referenced package
// must stay.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pkg models.Package
		if err := tx.First(&pkg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load package: %w", err)
		}
		var count int64
		if err := tx.Model(&models.SubPackage{}).Where("package_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check assignments: %w", err)
		}
		if count > 0 {
			return ErrInUse
		}
		if err := tx.Model(&models.Payment{}).Where("package_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check payments: %w", err)
		}
		if count > 0 {
			return ErrInUse
		}
		if err := tx.Delete(&pkg).Error; err != nil {
			return fmt.Errorf("failed to delete package: %w", err)
		}
		return nil
	})
}
