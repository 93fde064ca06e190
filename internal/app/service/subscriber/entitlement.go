package subscriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/internal/platform/db"
	"github.com/pslmedia/backoffice/pkg/logctx"
	"github.com/pslmedia/backoffice/pkg/types"
)

type AssignPackageRequest struct {
	SubscriberID uint `json:"subscriber_id" binding:"required"`
	PackageID    uint `json:"package_id" binding:"required"`
	// StartDate defaults to today when zero.
	StartDate time.Time `json:"start_date"`
}

// AssignPackage creates a SubPackage assignment. The no-overlapping-active-
// package check and the insert run in one transaction with the subscriber row
// locked, so two concurrent assignments for the same subscriber serialize and
// the invariant holds. Expiry is derived from the package duration.
func (s *Service) AssignPackage(ctx context.Context, req *AssignPackageRequest) (*models.SubPackage, error) {
	start := req.StartDate
	if start.IsZero() {
		start = s.clk.Now()
	}
	today := s.clk.Now()

	var assignment *models.SubPackage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the subscriber row; concurrent assignment attempts for the
		// same subscriber queue behind this.
		var sub models.Subscriber
		if err := db.LockForUpdate(tx).
			First(&sub, req.SubscriberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock subscriber: %w", err)
		}

		var pkg models.Package
		if err := tx.First(&pkg, req.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("failed to load package: %w", err)
		}

		var active int64
		if err := tx.Model(&models.SubPackage{}).
			Where("subscriber_id = ? AND expiry_date >= ?", req.SubscriberID, today.Format(time.DateOnly)).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed to check active assignments: %w", err)
		}
		if active > 0 {
			return ErrActivePackage
		}

		assignment = &models.SubPackage{
			SubscriberID: req.SubscriberID,
			PackageID:    req.PackageID,
			StartDate:    start,
			ExpiryDate:   models.ComputeExpiry(start, pkg.DurationDays),
		}
		if err := tx.Create(assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		// Push the subscriber's entitlement horizon out to the new expiry.
		expiry := assignment.ExpiryDate
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"subscription_expiry": expiry,
			"trial":               types.TrialFlagNo,
		}).Error; err != nil {
			return fmt.Errorf("failed to update subscription expiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("package assigned",
		"subscriber_id", req.SubscriberID, "package_id", req.PackageID,
		"expiry_date", assignment.ExpiryDate.Format(time.DateOnly))
	s.writeEntitlementLog(ctx, req.SubscriberID, types.EntitlementChangeReasonPackageAssign, nil, assignment)
	return assignment, nil
}

// ListAssignments returns a subscriber's package assignments, newest first.
func (s *Service) ListAssignments(ctx context.Context, subscriberID uint) ([]*models.SubPackage, error) {
	var rows []*models.SubPackage
	if err := s.db.WithContext(ctx).
		Preload("Package").
		Where("subscriber_id = ?", subscriberID).
		Order("start_date desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return rows, nil
}
