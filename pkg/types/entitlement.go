package types

// TrialFlag marks whether a subscriber is inside the free trial window.
type TrialFlag string

const (
	TrialFlagYes TrialFlag = "yes"
	TrialFlagNo  TrialFlag = "no"
)

// ApprovalStatus is the operator decision on a submitted payment.
// Only approved payments count toward revenue.
type ApprovalStatus string

const (
	ApprovalStatusYes ApprovalStatus = "yes"
	ApprovalStatusNo  ApprovalStatus = "no"
)

func (s ApprovalStatus) Valid() bool {
	return s == ApprovalStatusYes || s == ApprovalStatusNo
}

// EntitlementChangeReason labels audit-log entries written when a
// subscriber's entitlement state changes.
type EntitlementChangeReason string

const (
	EntitlementChangeReasonTrialStart       EntitlementChangeReason = "trialStart"
	EntitlementChangeReasonPackageAssign    EntitlementChangeReason = "packageAssign"
	EntitlementChangeReasonApprovalChange   EntitlementChangeReason = "approvalChange"
	EntitlementChangeReasonRevenueRecompute EntitlementChangeReason = "revenueRecompute"
	EntitlementChangeReasonTrialExpired     EntitlementChangeReason = "trialExpired"
)
