package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPackage_DiscountedPrice(t *testing.T) {
	p := &Package{Price: 2000, Discount: 10}
	require.Equal(t, int64(1800), p.DiscountedPrice())
}

func TestPackage_DiscountedPrice_NoDiscount(t *testing.T) {
	p := &Package{Price: 2000}
	require.Equal(t, int64(2000), p.DiscountedPrice())
}

func TestPackage_DiscountedPrice_UnsetPrice(t *testing.T) {
	p := &Package{Discount: 50}
	require.Equal(t, int64(0), p.DiscountedPrice())
}

func TestPackage_DiscountedPrice_FullDiscount(t *testing.T) {
	p := &Package{Price: 1500, Discount: 100}
	require.Equal(t, int64(0), p.DiscountedPrice())
}

func TestPackage_DiscountedPrice_OutOfRangeDiscount(t *testing.T) {
	p := &Package{Price: 1000, Discount: 150}
	require.Equal(t, int64(0), p.DiscountedPrice())
}

func TestSubscriber_DaysRemaining(t *testing.T) {
	expiry := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s := &Subscriber{SubscriptionExpiry: &expiry}

	at := time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC)
	require.Equal(t, 7, s.DaysRemaining(at))
}

func TestSubscriber_DaysRemaining_FloorsAtZero(t *testing.T) {
	expiry := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s := &Subscriber{SubscriptionExpiry: &expiry}

	at := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 0, s.DaysRemaining(at))
}

func TestSubscriber_DaysRemaining_NoExpiry(t *testing.T) {
	s := &Subscriber{}
	require.Equal(t, 0, s.DaysRemaining(time.Now()))
}

func TestSubscriber_DaysRemaining_IgnoresTimeOfDay(t *testing.T) {
	expiry := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	s := &Subscriber{SubscriptionExpiry: &expiry}

	morning := time.Date(2025, 3, 9, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	require.Equal(t, s.DaysRemaining(morning), s.DaysRemaining(night))
}

func TestComputeExpiry(t *testing.T) {
	start := time.Date(2025, 1, 15, 18, 45, 0, 0, time.UTC)
	got := ComputeExpiry(start, 30)
	require.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestSubPackage_Active(t *testing.T) {
	sp := &SubPackage{ExpiryDate: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)}

	require.True(t, sp.Active(time.Date(2025, 2, 14, 23, 0, 0, 0, time.UTC)))
	require.False(t, sp.Active(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func TestTrialCountdown_ElapsedWholeDays(t *testing.T) {
	cd := &TrialCountdown{LastChecked: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}

	require.Equal(t, 0, cd.ElapsedWholeDays(time.Date(2025, 1, 2, 11, 0, 0, 0, time.UTC)))
	require.Equal(t, 1, cd.ElapsedWholeDays(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, 3, cd.ElapsedWholeDays(time.Date(2025, 1, 4, 18, 0, 0, 0, time.UTC)))
}

func TestTrialCountdown_ElapsedWholeDays_ClockBehind(t *testing.T) {
	cd := &TrialCountdown{LastChecked: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, 0, cd.ElapsedWholeDays(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)))
}

func TestPasswordResetToken_Expired(t *testing.T) {
	tok := &PasswordResetToken{CreatedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	ttl := 15 * time.Minute

	require.False(t, tok.Expired(time.Date(2025, 1, 1, 10, 14, 59, 0, time.UTC), ttl))
	require.True(t, tok.Expired(time.Date(2025, 1, 1, 10, 15, 1, 0, time.UTC), ttl))
}
