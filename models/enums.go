package models

import (
	"github.com/shopspring/decimal"
)

type ProficiencyLabel string

const (
	ProficiencyBeginner     ProficiencyLabel = "beginner"
	ProficiencyIntermediate ProficiencyLabel = "intermediate"
	ProficiencyAdvanced     ProficiencyLabel = "advanced"
	ProficiencyExpert       ProficiencyLabel = "expert"
)

// ProficiencyFromLevel maps the upstream's integer skill level onto the
// label the console renders. Total and order-preserving; anything outside
// 1..4 (including a missing level decoded as 0) is beginner by policy.
func ProficiencyFromLevel(level int) ProficiencyLabel {
	switch level {
	case 1:
		return ProficiencyBeginner
	case 2:
		return ProficiencyIntermediate
	case 3:
		return ProficiencyAdvanced
	case 4:
		return ProficiencyExpert
	default:
		return ProficiencyBeginner
	}
}

// LevelFromProficiency is the inverse mapping, used when a form round-trips
// a label back into a mutation payload.
func LevelFromProficiency(label ProficiencyLabel) int {
	switch label {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 1
	}
}

type UtilizationBand string

const (
	UtilizationOnTrack    UtilizationBand = "On Track"
	UtilizationAtRisk     UtilizationBand = "At Risk"
	UtilizationOverBudget UtilizationBand = "Over Budget"
)

var (
	utilizationAtRiskFloor = decimal.NewFromInt(90)
	utilizationOverCeiling = decimal.NewFromInt(100)
)

// UtilizationBandFor classifies a utilization percentage.
// Boundaries: < 90 On Track; 90..100 inclusive At Risk; strictly above 100
// Over Budget.
func UtilizationBandFor(percent decimal.Decimal) UtilizationBand {
	if percent.LessThan(utilizationAtRiskFloor) {
		return UtilizationOnTrack
	}
	if percent.LessThanOrEqual(utilizationOverCeiling) {
		return UtilizationAtRisk
	}
	return UtilizationOverBudget
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"

	// ApprovalStatusNone is the distinct state for an empty approval chain.
	// Not equivalent to approved.
	ApprovalStatusNone ApprovalStatus = "no approvals required"
)

// ApprovalStatusFromString is lenient: unknown upstream values decode as
// pending so an in-flight record never shows as approved.
func ApprovalStatusFromString(raw string) ApprovalStatus {
	switch raw {
	case "approved":
		return ApprovalStatusApproved
	case "rejected":
		return ApprovalStatusRejected
	default:
		return ApprovalStatusPending
	}
}

type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
	RecordStatusArchived RecordStatus = "archived"
)

func RecordStatusFromString(raw string) RecordStatus {
	switch raw {
	case "inactive":
		return RecordStatusInactive
	case "archived":
		return RecordStatusArchived
	default:
		return RecordStatusActive
	}
}

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "annual"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeUnpaid   LeaveType = "unpaid"
	LeaveTypeParental LeaveType = "parental"
	LeaveTypeOther    LeaveType = "other"
)

func LeaveTypeFromString(raw string) LeaveType {
	switch raw {
	case "annual":
		return LeaveTypeAnnual
	case "sick":
		return LeaveTypeSick
	case "unpaid":
		return LeaveTypeUnpaid
	case "parental":
		return LeaveTypeParental
	default:
		return LeaveTypeOther
	}
}

type RiskSeverity string

const (
	RiskSeverityLow      RiskSeverity = "low"
	RiskSeverityMedium   RiskSeverity = "medium"
	RiskSeverityHigh     RiskSeverity = "high"
	RiskSeverityCritical RiskSeverity = "critical"
)

func RiskSeverityFromString(raw string) RiskSeverity {
	switch raw {
	case "medium":
		return RiskSeverityMedium
	case "high":
		return RiskSeverityHigh
	case "critical":
		return RiskSeverityCritical
	default:
		return RiskSeverityLow
	}
}
