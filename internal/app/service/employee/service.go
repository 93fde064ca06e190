package employee

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/hash"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	CNIC          string `json:"cnic" binding:"required"`
	Phone         string `json:"phone"`
	DesignationID uint   `json:"designation_id" binding:"required"`
}

// Create registers a back-office employee with a hashed credential.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Employee, error) {
	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}

	emp := &models.Employee{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		CNIC:          req.CNIC,
		Phone:         req.Phone,
		DesignationID: req.DesignationID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Designation{}).Where("id = ?", req.DesignationID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check designation: %w", err)
		}
		if count == 0 {
			return ErrDesignationNotFound
		}
		if err := tx.Model(&models.Employee{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Model(&models.Employee{}).Where("cnic = ?", req.CNIC).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check cnic uniqueness: %w", err)
		}
		if count > 0 {
			return ErrCNICTaken
		}
		if err := tx.Create(emp).Error; err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, emp.ID)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).Preload("Designation").First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return &emp, nil
}

// GetByEmail is used by the auth boundary.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).Preload("Designation").
		Where("LOWER(email) = LOWER(?)", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return &emp, nil
}

// List fetches employees with their designations in one query.
func (s *Service) List(ctx context.Context) ([]*models.Employee, error) {
	var rows []*models.Employee
	if err := s.db.WithContext(ctx).Preload("Designation").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return rows, nil
}

type UpdateRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Password      *string `json:"password" binding:"omitempty,min=6"`
	Phone         *string `json:"phone"`
	DesignationID *uint   `json:"designation_id"`
}

// Update applies a partial update. A plaintext password in the request is
// hashed and written with the rest of the fields.
func (s *Service) Update(ctx context.Context, id uint, req *UpdateRequest) (*models.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != emp.Email {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Employee{}).
			Where("email = ? AND id <> ?", *req.Email, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := hash.Password(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DesignationID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Designation{}).
			Where("id = ?", *req.DesignationID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check designation: %w", err)
		}
		if count == 0 {
			return nil, ErrDesignationNotFound
		}
		updates["designation_id"] = *req.DesignationID
	}
	if len(updates) == 0 {
		return emp, nil
	}

	if err := s.db.WithContext(ctx).Model(emp).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ChangePassword verifies the current credential before writing the new hash.
// A failed check mutates nothing.
func (s *Service) ChangePassword(ctx context.Context, id uint, current, next string) error {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !hash.Compare(emp.Password, current) {
		return ErrWrongPassword
	}
	hashed, err := hash.Password(next)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(emp).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// AddAddress attaches an address to an employee. One employee can carry
// several.
func (s *Service) AddAddress(ctx context.Context, employeeID uint, address string) (*models.EmployeeAddress, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	addr := &models.EmployeeAddress{EmployeeID: employeeID, Address: address}
	if err := s.db.WithContext(ctx).Create(addr).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return addr, nil
}

func (s *Service) ListAddresses(ctx context.Context, employeeID uint) ([]*models.EmployeeAddress, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	var rows []*models.EmployeeAddress
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return rows, nil
}

func (s *Service) DeleteAddress(ctx context.Context, employeeID, addressID uint) error {
	res := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&models.EmployeeAddress{}, addressID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (s *Service) ListDesignations(ctx context.Context) ([]*models.Designation, error) {
	var rows []*models.Designation
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	return rows, nil
}

func (s *Service) CreateDesignation(ctx context.Context, name string) (*models.Designation, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Designation{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check designation uniqueness: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("designation already exists")
	}
	d := &models.Designation{Name: name}
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, fmt.Errorf("failed to create designation: %w", err)
	}
	return d, nil
}
