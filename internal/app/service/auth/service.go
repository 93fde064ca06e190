package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/internal/platform/mail"
	"github.com/pslmedia/backoffice/pkg/clock"
	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/hash"
	"github.com/pslmedia/backoffice/pkg/logctx"
	"github.com/pslmedia/backoffice/pkg/token"
)

type Service struct {
	cfg    *cfgpkg.Config
	db     *gorm.DB
	log    *zap.SugaredLogger
	clk    clock.Clock
	issuer *token.Issuer
	mailer mail.Mailer
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger, clk clock.Clock, issuer *token.Issuer, mailer mail.Mailer) *Service {
	return &Service{cfg: cfg, db: db, log: log, clk: clk, issuer: issuer, mailer: mailer}
}

type LoginResult struct {
	Token    string           `json:"token"`
	Employee *models.Employee `json:"employee"`
}

// Login checks the credential, issues a bearer token and records a login
// history row with the caller's IP and device info.
func (s *Service) Login(ctx context.Context, email, password, ip, device string) (*LoginResult, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).Preload("Designation").
		Where("LOWER(email) = LOWER(?)", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if !hash.Compare(emp.Password, password) {
		return nil, ErrInvalidCredentials
	}

	now := s.clk.Now()
	t, err := s.issuer.Issue(emp.ID, emp.Email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	history := &models.EmployeeLoginHistory{
		EmployeeID: emp.ID,
		LoginAt:    now,
		IPAddress:  ip,
		DeviceInfo: device,
	}
	if err := s.db.WithContext(ctx).Create(history).Error; err != nil {
		// history is best-effort; the login itself already succeeded
		logctx.FromCtx(ctx, s.log).Errorw("login history write failed", "employee_id", emp.ID, "err", err)
	}

	return &LoginResult{Token: t, Employee: &emp}, nil
}

// Logout closes the employee's most recent open session and returns its
// length in seconds.
func (s *Service) Logout(ctx context.Context, employeeID uint) (int64, error) {
	var last models.EmployeeLoginHistory
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND session_seconds IS NULL", employeeID).
		Order("login_at desc").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load login history: %w", err)
	}

	seconds := int64(s.clk.Now().Sub(last.LoginAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if err := s.db.WithContext(ctx).Model(&last).Update("session_seconds", seconds).Error; err != nil {
		return 0, fmt.Errorf("failed to close session: %w", err)
	}
	return seconds, nil
}
