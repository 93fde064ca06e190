package billing

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
	"github.com/pslmedia/backoffice/pkg/types"
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
		&models.Subscriber{},
		&models.Package{},
		&models.Payment{},
		&models.PaymentApproval{},
		&models.Revenue{},
		&models.EntitlementLog{},
	))

	clk := &clock.Fixed{At: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	return NewService(gdb, zap.NewNop().Sugar(), clk), gdb, clk
}

func seedSubscriberAndPackage(t *testing.T, gdb *gorm.DB) (*models.Subscriber, *models.Package) {
	t.Helper()
	sub := &models.Subscriber{Name: "Asad", Email: "asad@example.com", Password: "x", JoinDate: time.Now()}
	require.NoError(t, gdb.Create(sub).Error)
	pkg := &models.Package{Name: "Basic", Price: 2000, DurationDays: 30}
	require.NoError(t, gdb.Create(pkg).Error)
	return sub, pkg
}

func TestSubmitPayment_CreatesPendingApproval(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, pkg := seedSubscriberAndPackage(t, gdb)

	payment, err := svc.SubmitPayment(context.Background(), &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "HBL", ReceiptURL: "https://example.com/r1.png", Amount: 1000,
	})
	require.NoError(t, err)

	var approval models.PaymentApproval
	require.NoError(t, gdb.Where("payment_id = ?", payment.ID).First(&approval).Error)
	require.Equal(t, types.ApprovalStatusNo, approval.Approved)
}

func TestRecomputeRevenue_CountsOnlyApproved(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, pkg := seedSubscriberAndPackage(t, gdb)
	ctx := context.Background()

	approved, err := svc.SubmitPayment(ctx, &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "HBL", ReceiptURL: "https://example.com/r1.png", Amount: 1000,
	})
	require.NoError(t, err)
	_, err = svc.SubmitPayment(ctx, &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "UBL", ReceiptURL: "https://example.com/r2.png", Amount: 500,
	})
	require.NoError(t, err)

	_, err = svc.SetApproval(ctx, approved.ID, sub.ID, types.ApprovalStatusYes)
	require.NoError(t, err)

	revenue, err := svc.RecomputeRevenue(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), revenue.TotalAmount)
}

func TestRecomputeRevenue_Idempotent(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, pkg := seedSubscriberAndPackage(t, gdb)
	ctx := context.Background()

	payment, err := svc.SubmitPayment(ctx, &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "HBL", ReceiptURL: "https://example.com/r1.png", Amount: 1000,
	})
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, payment.ID, sub.ID, types.ApprovalStatusYes)
	require.NoError(t, err)

	first, err := svc.RecomputeRevenue(ctx, sub.ID)
	require.NoError(t, err)
	second, err := svc.RecomputeRevenue(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, first.TotalAmount, second.TotalAmount)

	var rows int64
	require.NoError(t, gdb.Model(&models.Revenue{}).
		Where("subscriber_id = ?", sub.ID).Count(&rows).Error)
	require.Equal(t, int64(1), rows)
}

func TestRecomputeRevenue_NoApprovedPaymentsIsZero(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, _ := seedSubscriberAndPackage(t, gdb)

	revenue, err := svc.RecomputeRevenue(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), revenue.TotalAmount)
}

func TestSetApproval_FlipBackRemovesFromRevenue(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, pkg := seedSubscriberAndPackage(t, gdb)
	ctx := context.Background()

	payment, err := svc.SubmitPayment(ctx, &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "HBL", ReceiptURL: "https://example.com/r1.png", Amount: 1000,
	})
	require.NoError(t, err)

	_, err = svc.SetApproval(ctx, payment.ID, sub.ID, types.ApprovalStatusYes)
	require.NoError(t, err)
	revenue, err := svc.RecomputeRevenue(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), revenue.TotalAmount)

	_, err = svc.SetApproval(ctx, payment.ID, sub.ID, types.ApprovalStatusNo)
	require.NoError(t, err)
	revenue, err = svc.RecomputeRevenue(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), revenue.TotalAmount)
}

func TestListPayments_JoinsApprovalStatus(t *testing.T) {
	svc, gdb, _ := newTestService(t)
	sub, pkg := seedSubscriberAndPackage(t, gdb)
	ctx := context.Background()

	p1, err := svc.SubmitPayment(ctx, &SubmitPaymentRequest{
		SubscriberID: sub.ID, PackageID: pkg.ID,
		BankName: "HBL", ReceiptURL: "https://example.com/r1.png", Amount: 1000,
	})
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, p1.ID, sub.ID, types.ApprovalStatusYes)
	require.NoError(t, err)

	items, err := svc.ListPayments(ctx, sub.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, types.ApprovalStatusYes, items[0].Approved)
}
