package models

import (
	"time"

	"github.com/pslmedia/backoffice/pkg/types"
)

// Subscriber is a paying customer account.
// Trial fields are stamped exactly once, on first creation.
type Subscriber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Address  string `gorm:"column:address;type:varchar(255)" json:"address"`
	Phone    int64  `gorm:"column:phone" json:"phone"`
	BForm    int64  `gorm:"column:bform" json:"bform"`

	JoinDate  time.Time       `gorm:"column:join_date;type:date;not null" json:"join_date"`
	Trial     types.TrialFlag `gorm:"column:trial;type:varchar(3);not null;default:no" json:"trial"`
	TrialDays int             `gorm:"column:trial_days;not null;default:0" json:"trial_days"`
	// SubscriptionExpiry is the entitlement horizon: trial end at creation,
	// later pushed out by package assignments.
	SubscriptionExpiry *time.Time `gorm:"column:subscription_expiry;type:date" json:"subscription_expiry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscriber) TableName() string {
	return "subscriber"
}

// DaysRemaining returns the whole days of entitlement left at the given
// instant. Floors at 0 and returns 0 when no expiry is set.
func (s *Subscriber) DaysRemaining(at time.Time) int {
	if s == nil || s.SubscriptionExpiry == nil {
		return 0
	}
	days := int(dateOf(*s.SubscriptionExpiry).Sub(dateOf(at)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// dateOf drops the time-of-day component; lifecycle math runs on calendar days.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TrialCountdown tracks the lazy trial-days countdown for one subscriber.
// AlertSent guarantees the expiry notification fires at most once.
type TrialCountdown struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;uniqueIndex" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`

	TrialDuration int       `gorm:"column:trial_duration;not null" json:"trial_duration"`
	DaysLeft      int       `gorm:"column:days_left;not null;default:0" json:"days_left"`
	LastChecked   time.Time `gorm:"column:last_checked;not null" json:"last_checked"`
	AlertSent     bool      `gorm:"column:alert_sent;not null;default:false" json:"alert_sent"`
}

func (TrialCountdown) TableName() string {
	return "trial_countdown"
}

// ElapsedWholeDays returns the number of complete days between LastChecked
// and now; the countdown only moves in whole-day steps.
func (c *TrialCountdown) ElapsedWholeDays(now time.Time) int {
	if c == nil || now.Before(c.LastChecked) {
		return 0
	}
	return int(now.Sub(c.LastChecked).Hours() / 24)
}
