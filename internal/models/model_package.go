package models

import "time"

// Package is a purchasable subscription plan. Price is stored in minor
// currency units (paisa).
type Package struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Price       int64  `gorm:"column:price;type:bigint" json:"price"`
	Discount    int64  `gorm:"column:discount;not null;default:0" json:"discount"`
	// DurationDays is the entitlement length granted by one assignment.
	DurationDays int `gorm:"column:duration_days;not null" json:"duration_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Package) TableName() string {
	return "package"
}

// DiscountedPrice applies the percentage discount, clamped to [0, price].
// Unset price or out-of-range discount never raises; the result is just 0
// or the undiscounted price.
func (p *Package) DiscountedPrice() int64 {
	if p == nil || p.Price <= 0 {
		return 0
	}
	if p.Discount <= 0 {
		return p.Price
	}
	v := p.Price - p.Price*p.Discount/100
	if v < 0 {
		return 0
	}
	return v
}

// SubPackage assigns a package to a subscriber. ExpiryDate is derived from
// StartDate plus the package duration and recomputed on every save; at most
// one assignment per subscriber may have an expiry on or after today.
type SubPackage struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;index" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	PackageID    uint        `gorm:"column:package_id;not null;index" json:"package_id"`
	Package      *Package    `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"package,omitempty"`

	StartDate  time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	ExpiryDate time.Time `gorm:"column:expiry_date;type:date;not null" json:"expiry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubPackage) TableName() string {
	return "sub_package"
}

// ComputeExpiry derives the assignment expiry from its start date and the
// package duration.
func ComputeExpiry(start time.Time, durationDays int) time.Time {
	return dateOf(start).AddDate(0, 0, durationDays)
}

// Active reports whether the assignment still grants entitlement at the
// given instant (expiry on or after the current date).
func (sp *SubPackage) Active(at time.Time) bool {
	return sp != nil && !dateOf(sp.ExpiryDate).Before(dateOf(at))
}
