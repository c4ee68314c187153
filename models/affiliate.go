package models

import "gorm.io/gorm"

const CommissionCPA = "cpa"

// AffiliateHistory tracks one referred user's commission state for their
// referrer. At most one unpaid cpa row exists per referred user; it flips to
// paid on the first deposit that reaches the referrer's baseline.
type AffiliateHistory struct {
	gorm.Model

	UserID          uint    `gorm:"index" json:"user_id"`
	Inviter         uint    `gorm:"index" json:"inviter"`
	CommissionType  string  `gorm:"size:16;index" json:"commission_type"`
	Status          int     `gorm:"default:0;index" json:"status"`
	DepositedAmount float64 `json:"deposited_amount"`
	CommissionPaid  float64 `json:"commission_paid"`
}
