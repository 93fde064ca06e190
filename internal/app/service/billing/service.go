package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/clock"
	"github.com/pslmedia/backoffice/pkg/logctx"
	"github.com/pslmedia/backoffice/pkg/tool"
	"github.com/pslmedia/backoffice/pkg/types"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	clk clock.Clock
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, clk clock.Clock) *Service {
	return &Service{db: db, log: log, clk: clk}
}

type SubmitPaymentRequest struct {
	SubscriberID uint   `json:"subscriber_id" binding:"required"`
	PackageID    uint   `json:"package_id" binding:"required"`
	BankName     string `json:"bank_name" binding:"required"`
	ReceiptURL   string `json:"receipt_url" binding:"required,url"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// SubmitPayment records a bank-receipt payment together with its pending
// approval row. The payment itself is immutable afterwards.
func (s *Service) SubmitPayment(ctx context.Context, req *SubmitPaymentRequest) (*models.Payment, error) {
	payment := &models.Payment{
		SubscriberID: req.SubscriberID,
		PackageID:    req.PackageID,
		BankName:     req.BankName,
		ReceiptURL:   req.ReceiptURL,
		Amount:       req.Amount,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subscriber{}).Where("id = ?", req.SubscriberID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check subscriber: %w", err)
		}
		if count == 0 {
			return ErrSubscriberNotFound
		}
		if err := tx.Model(&models.Package{}).Where("id = ?", req.PackageID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check package: %w", err)
		}
		if count == 0 {
			return ErrPackageNotFound
		}
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		approval := &models.PaymentApproval{
			PaymentID:    payment.ID,
			SubscriberID: req.SubscriberID,
			Approved:     types.ApprovalStatusNo,
		}
		if err := tx.Create(approval).Error; err != nil {
			return fmt.Errorf("failed to create approval: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// PaymentItem is the read projection: a payment with its approval status.
type PaymentItem struct {
	models.Payment
	Approved types.ApprovalStatus `json:"approved"`
}

// ListPayments returns payments, optionally scoped to one subscriber, newest
// first, with the approval decision joined in.
func (s *Service) ListPayments(ctx context.Context, subscriberID uint) ([]*PaymentItem, error) {
	var rows []*PaymentItem
	q := s.db.WithContext(ctx).Table("payment").
		Select("payment.*, COALESCE(payment_approval.approved, 'no') AS approved").
		Joins("LEFT JOIN payment_approval ON payment_approval.payment_id = payment.id").
		Order("payment.created_at desc")
	if subscriberID != 0 {
		q = q.Where("payment.subscriber_id = ?", subscriberID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return rows, nil
}

// SetApproval flips the operator decision for a (payment, subscriber) pair.
// Approved is the only column an approval row ever changes; the payment
// itself is untouched. Callers must recompute revenue afterwards.
func (s *Service) SetApproval(ctx context.Context, paymentID, subscriberID uint, status types.ApprovalStatus) (*models.PaymentApproval, error) {
	if !status.Valid() {
		return nil, ErrInvalidApproval
	}

	var approval models.PaymentApproval
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ? AND subscriber_id = ?", paymentID, subscriberID).
			First(&approval).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("failed to load approval: %w", err)
		}
		if approval.Approved == status {
			return nil
		}
		before := approval
		if err := tx.Model(&approval).Update("approved", status).Error; err != nil {
			return fmt.Errorf("failed to update approval: %w", err)
		}
		s.writeAuditLog(ctx, subscriberID, types.EntitlementChangeReasonApprovalChange, &before, &approval)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// RecomputeRevenue sums the subscriber's approved payments and writes the
// materialized total. Idempotent: the same approved-payment set always
// produces the same total. No approved payments is not an error; the total
// is simply 0.
func (s *Service) RecomputeRevenue(ctx context.Context, subscriberID uint) (*models.Revenue, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Subscriber{}).Where("id = ?", subscriberID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check subscriber: %w", err)
	}
	if count == 0 {
		return nil, ErrSubscriberNotFound
	}

	var total int64
	if err := s.db.WithContext(ctx).Table("payment").
		Joins("JOIN payment_approval ON payment_approval.payment_id = payment.id").
		Where("payment.subscriber_id = ? AND payment_approval.approved = ?", subscriberID, types.ApprovalStatusYes).
		Select("COALESCE(SUM(payment.amount), 0)").
		Scan(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to sum approved payments: %w", err)
	}

	revenue := &models.Revenue{
		SubscriberID: subscriberID,
		TotalAmount:  total,
		LastUpdated:  s.clk.Now(),
	}
	// Concurrent recomputes for the same subscriber are commutative; the
	// upsert makes last-write-wins explicit.
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscriber_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_amount", "last_updated"}),
	}).Create(revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to write revenue: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("revenue recomputed",
		"subscriber_id", subscriberID, "total_amount", total)
	return revenue, nil
}

// GetRevenue returns the materialized total; a subscriber without a revenue
// row reads as 0.
func (s *Service) GetRevenue(ctx context.Context, subscriberID uint) (*models.Revenue, error) {
	var revenue models.Revenue
	err := s.db.WithContext(ctx).Where("subscriber_id = ?", subscriberID).First(&revenue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Revenue{SubscriberID: subscriberID, TotalAmount: 0}, nil
		}
		return nil, fmt.Errorf("failed to load revenue: %w", err)
	}
	return &revenue, nil
}

func (s *Service) writeAuditLog(ctx context.Context, subscriberID uint, reason types.EntitlementChangeReason, before, after interface{}) {
	go func() {
		entry := &models.EntitlementLog{
			ID:           tool.GenerateUUIDV7(),
			SubscriberID: subscriberID,
			Reason:       reason,
			Before:       marshalLog(before),
			After:        marshalLog(after),
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save entitlement log: %v", err)
		}
	}()
}

func marshalLog(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
