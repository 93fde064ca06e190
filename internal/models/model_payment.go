package models

import (
	"time"

	"github.com/pslmedia/backoffice/pkg/types"
)

// Payment is a bank-receipt payment submitted by a subscriber. Amount is
// stored in minor currency units. Rows are immutable after creation; the
// operator decision lives on PaymentApproval.
type Payment struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;index" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	PackageID    uint        `gorm:"column:package_id;not null;index" json:"package_id"`
	Package      *Package    `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"package,omitempty"`

	BankName   string    `gorm:"column:bank_name;type:varchar(255);not null" json:"bank_name"`
	ReceiptURL string    `gorm:"column:receipt_url;type:varchar(512);not null" json:"receipt_url"`
	Amount     int64     `gorm:"column:amount;type:bigint;not null" json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}

// PaymentApproval is the operator decision on a (payment, subscriber) pair.
// One row per pair; Approved is the only mutable column.
type PaymentApproval struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	PaymentID    uint        `gorm:"column:payment_id;not null;uniqueIndex:uniq_payment_subscriber,priority:1" json:"payment_id"`
	Payment      *Payment    `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"-"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;uniqueIndex:uniq_payment_subscriber,priority:2" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`

	Approved types.ApprovalStatus `gorm:"column:approved;type:varchar(3);not null;default:no" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PaymentApproval) TableName() string {
	return "payment_approval"
}

// Revenue is the materialized per-subscriber total over approved payments.
// It is recomputed on demand, never incrementally maintained.
type Revenue struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;uniqueIndex" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	TotalAmount  int64       `gorm:"column:total_amount;type:bigint;not null;default:0" json:"total_amount"`
	LastUpdated  time.Time   `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (Revenue) TableName() string {
	return "revenue"
}
