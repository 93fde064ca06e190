package billing

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/types"
)

// DashboardStats is the admin landing-page aggregate. Computed fresh per
// request; there is no cache to invalidate.
type DashboardStats struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalRevenue     int64 `json:"total_revenue"`
	MonthlyRevenue   int64 `json:"monthly_revenue"`
}

// GetDashboardStats projects the approved-payment predicate three ways:
// subscriber count, all-time revenue, and revenue for the current calendar
// month by payment creation date.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.WithContext(ctx).Model(&models.Subscriber{}).Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}

	approved := func() *gorm.DB {
		return s.db.WithContext(ctx).Table("payment").
			Joins("JOIN payment_approval ON payment_approval.payment_id = payment.id").
			Where("payment_approval.approved = ?", types.ApprovalStatusYes)
	}

	if err := approved().
		Select("COALESCE(SUM(payment.amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum total revenue: %w", err)
	}

	monthStart := monthStartOf(s.clk.Now())
	if err := approved().
		Where("payment.created_at >= ? AND payment.created_at < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Select("COALESCE(SUM(payment.amount), 0)").
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	return stats, nil
}

// monthStartOf returns midnight UTC on the first day of t's month.
func monthStartOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// RevenueChartItem is one month of approved revenue.
type RevenueChartItem struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// GetRevenueChart groups approved payments by calendar month.
func (s *Service) GetRevenueChart(ctx context.Context) ([]*RevenueChartItem, error) {
	var rows []*RevenueChartItem
	if err := s.db.WithContext(ctx).Table("payment").
		Select("TO_CHAR(payment.created_at, 'YYYY-MM') as month, SUM(payment.amount) as total").
		Joins("JOIN payment_approval ON payment_approval.payment_id = payment.id").
		Where("payment_approval.approved = ?", types.ApprovalStatusYes).
		Group("TO_CHAR(payment.created_at, 'YYYY-MM')").
		Order("month").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to build revenue chart: %w", err)
	}
	return rows, nil
}
