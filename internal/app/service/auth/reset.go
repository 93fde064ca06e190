package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/internal/platform/db"
	"github.com/pslmedia/backoffice/pkg/hash"
)

// ForgotPassword creates a reset token for the employee owning the email and
// mails the reset link. Unlike the trial alert, a delivery failure here is
// returned to the caller.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	var emp models.Employee
	if err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("failed to load employee: %w", err)
	}

	tok := &models.PasswordResetToken{
		EmployeeID: emp.ID,
		Token:      uuid.NewString(),
		CreatedAt:  s.clk.Now(),
	}
	if err := s.db.WithContext(ctx).Create(tok).Error; err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	link := s.cfg.Mail.ResetBaseURL + "/" + tok.Token
	body := "Click the link to reset your password:\n" + link
	if err := s.mailer.Send(ctx, emp.Email, "Forgot Password - PSL System", body); err != nil {
		return err
	}
	return nil
}

// ResetPassword consumes a token and writes the new password hash. The
// check-then-delete runs in one transaction with the token row locked, so a
// token can be used at most once. An expired token is deleted on detection.
func (s *Service) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	hashed, err := hash.Password(newPassword)
	if err != nil {
		return err
	}

	// Manual transaction control: an expired token must stay deleted even
	// though the reset itself fails, so that path commits before erroring.
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	var tok models.PasswordResetToken
	if err := db.LockForUpdate(tx).
		Where("token = ?", tokenStr).First(&tok).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to load reset token: %w", err)
	}

	if tok.Expired(s.clk.Now(), s.cfg.Auth.ResetTokenTTL) {
		if err := tx.Delete(&tok).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete expired token: %w", err)
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit expired-token cleanup: %w", err)
		}
		return ErrTokenExpired
	}

	if err := tx.Model(&models.Employee{}).
		Where("id = ?", tok.EmployeeID).
		Update("password", hashed).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := tx.Delete(&tok).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to consume token: %w", err)
	}
	return tx.Commit().Error
}
