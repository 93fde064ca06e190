package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pslmedia/backoffice/pkg/types"
)

// EntitlementLog records changes to a subscriber's entitlement state
// (trial start, package assignment, approval flips, revenue recomputes).
// Use case: troubleshooting.
type EntitlementLog struct {
	ID           string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	SubscriberID uint   `gorm:"column:subscriber_id;index:idx_subscriber_id_id,priority:1;not null" json:"subscriber_id"`
	// Reason is the change reason.
	Reason types.EntitlementChangeReason `gorm:"column:reason;type:varchar(64);not null" json:"reason"`
	// Before and After store the changed record in JSON form.
	Before datatypes.JSON `gorm:"column:before;type:jsonb;default:'null'" json:"before"`
	After  datatypes.JSON `gorm:"column:after;type:jsonb;default:'null'" json:"after"`
	// Extra stores additional context such as the acting operator.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time         `json:"created_at"`
}

func (EntitlementLog) TableName() string {
	return "entitlement_log"
}
