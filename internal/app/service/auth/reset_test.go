package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/clock"
	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/hash"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, *clock.Fixed) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A pooled :memory: connection would open a second, empty database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&models.Designation{},
		&models.Employee{},
		&models.EmployeeLoginHistory{},
		&models.PasswordResetToken{},
	))

	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	cfg := &cfgpkg.Config{Auth: cfgpkg.AuthConfig{ResetTokenTTL: 15 * time.Minute}}
	return NewService(cfg, gdb, zap.NewNop().Sugar(), clk, nil, nil), gdb, clk
}

func seedEmployee(t *testing.T, gdb *gorm.DB, password string) *models.Employee {
	t.Helper()
	d := &models.Designation{Name: "Admin"}
	require.NoError(t, gdb.Create(d).Error)
	hashed, err := hash.Password(password)
	require.NoError(t, err)
	emp := &models.Employee{
		Name: "Ops", Email: "ops@example.com", Password: hashed,
		CNIC: "35202-1234567-1", DesignationID: d.ID,
	}
	require.NoError(t, gdb.Create(emp).Error)
	return emp
}

func seedToken(t *testing.T, gdb *gorm.DB, employeeID uint, createdAt time.Time) string {
	t.Helper()
	tok := &models.PasswordResetToken{
		EmployeeID: employeeID,
		Token:      uuid.NewString(),
		CreatedAt:  createdAt,
	}
	require.NoError(t, gdb.Create(tok).Error)
	return tok.Token
}

func TestResetPassword_ConsumesTokenOnce(t *testing.T) {
	svc, gdb, clk := newTestService(t)
	emp := seedEmployee(t, gdb, "old-pass1")
	token := seedToken(t, gdb, emp.ID, clk.Now())

	require.NoError(t, svc.ResetPassword(context.Background(), token, "new-pass1"))

	var reloaded models.Employee
	require.NoError(t, gdb.First(&reloaded, emp.ID).Error)
	require.True(t, hash.Compare(reloaded.Password, "new-pass1"))
	require.False(t, hash.Compare(reloaded.Password, "old-pass1"))

	// The token was deleted on use; a second attempt reads as unknown.
	err := svc.ResetPassword(context.Background(), token, "another-pass1")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword_ExpiredTokenDeleted(t *testing.T) {
	svc, gdb, clk := newTestService(t)
	emp := seedEmployee(t, gdb, "old-pass1")
	token := seedToken(t, gdb, emp.ID, clk.Now())

	clk.Advance(16 * time.Minute)

	err := svc.ResetPassword(context.Background(), token, "new-pass1")
	require.ErrorIs(t, err, ErrTokenExpired)

	// Expiry detection deletes the token even though the reset failed.
	var count int64
	require.NoError(t, gdb.Model(&models.PasswordResetToken{}).
		Where("token = ?", token).Count(&count).Error)
	require.Equal(t, int64(0), count)

	// The password is untouched.
	var reloaded models.Employee
	require.NoError(t, gdb.First(&reloaded, emp.ID).Error)
	require.True(t, hash.Compare(reloaded.Password, "old-pass1"))
}

func TestResetPassword_WithinWindowSucceeds(t *testing.T) {
	svc, gdb, clk := newTestService(t)
	emp := seedEmployee(t, gdb, "old-pass1")
	token := seedToken(t, gdb, emp.ID, clk.Now())

	clk.Advance(14 * time.Minute)
	require.NoError(t, svc.ResetPassword(context.Background(), token, "new-pass1"))

	var reloaded models.Employee
	require.NoError(t, gdb.First(&reloaded, emp.ID).Error)
	require.True(t, hash.Compare(reloaded.Password, "new-pass1"))
}

func TestResetPassword_UnknownToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.ResetPassword(context.Background(), uuid.NewString(), "new-pass1")
	require.ErrorIs(t, err, ErrInvalidToken)
}
