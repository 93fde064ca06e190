package subscriber

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/clock"
	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A pooled :memory: connection would open a second, empty database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&models.Subscriber{},
		&models.TrialCountdown{},
		&models.Package{},
		&models.SubPackage{},
		&models.EntitlementLog{},
	))
	return gdb
}

func newTestService(t *testing.T, clk clock.Clock) (*Service, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	cfg := &cfgpkg.Config{Trial: cfgpkg.TrialConfig{Days: 7}}
	return NewService(cfg, gdb, zap.NewNop().Sugar(), clk), gdb
}

func TestCreate_StampsTrial(t *testing.T) {
	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc, gdb := newTestService(t, clk)

	sub, err := svc.Create(context.Background(), &CreateRequest{
		Name: "Asad", Email: "asad@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, types.TrialFlagYes, sub.Trial)
	require.Equal(t, 7, sub.TrialDays)
	require.NotNil(t, sub.SubscriptionExpiry)
	require.Equal(t, 7, sub.DaysRemaining(clk.Now()))

	var cd models.TrialCountdown
	require.NoError(t, gdb.Where("subscriber_id = ?", sub.ID).First(&cd).Error)
	require.Equal(t, 7, cd.DaysLeft)
	require.False(t, cd.AlertSent)
}

func TestAssignPackage_RejectsOverlappingActive(t *testing.T) {
	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc, gdb := newTestService(t, clk)
	ctx := context.Background()

	sub, err := svc.Create(ctx, &CreateRequest{
		Name: "Asad", Email: "asad@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	pkg := &models.Package{Name: "Basic", Price: 2000, DurationDays: 30}
	require.NoError(t, gdb.Create(pkg).Error)

	first, err := svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.ComputeExpiry(clk.Now(), 30), first.ExpiryDate)

	// The subscriber now carries an active assignment; a second one must be
	// rejected without writing anything.
	_, err = svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
	})
	require.ErrorIs(t, err, ErrActivePackage)

	var count int64
	require.NoError(t, gdb.Model(&models.SubPackage{}).
		Where("subscriber_id = ?", sub.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAssignPackage_AllowedAfterExpiry(t *testing.T) {
	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc, gdb := newTestService(t, clk)
	ctx := context.Background()

	sub, err := svc.Create(ctx, &CreateRequest{
		Name: "Asad", Email: "asad@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	pkg := &models.Package{Name: "Basic", Price: 2000, DurationDays: 30}
	require.NoError(t, gdb.Create(pkg).Error)

	_, err = svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
	})
	require.NoError(t, err)

	clk.Advance(31 * 24 * time.Hour)

	_, err = svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
	})
	require.NoError(t, err)
}

func TestAssignPackage_EndsTrialAndMovesExpiry(t *testing.T) {
	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc, gdb := newTestService(t, clk)
	ctx := context.Background()

	sub, err := svc.Create(ctx, &CreateRequest{
		Name: "Asad", Email: "asad@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	pkg := &models.Package{Name: "Basic", Price: 2000, DurationDays: 30}
	require.NoError(t, gdb.Create(pkg).Error)

	assignment, err := svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
	})
	require.NoError(t, err)

	var reloaded models.Subscriber
	require.NoError(t, gdb.First(&reloaded, sub.ID).Error)
	require.Equal(t, types.TrialFlagNo, reloaded.Trial)
	require.NotNil(t, reloaded.SubscriptionExpiry)
	require.Equal(t, assignment.ExpiryDate.Format(time.DateOnly),
		reloaded.SubscriptionExpiry.Format(time.DateOnly))
}

func TestAssignPackage_UnknownPackage(t *testing.T) {
	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc, _ := newTestService(t, clk)
	ctx := context.Background()

	sub, err := svc.Create(ctx, &CreateRequest{
		Name: "Asad", Email: "asad@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.AssignPackage(ctx, &AssignPackageRequest{
		SubscriberID: sub.ID, PackageID: 999,
	})
	require.ErrorIs(t, err, ErrPackageNotFound)
}
