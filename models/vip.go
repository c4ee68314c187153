package models

import "gorm.io/gorm"

// VipLevel is one tier of the VIP deposit-bonus table. The highest level
// whose MinDeposit the payment reaches wins.
type VipLevel struct {
	gorm.Model

	Level        int     `gorm:"uniqueIndex" json:"level"`
	MinDeposit   float64 `json:"min_deposit"`
	BonusPercent float64 `json:"bonus_percent"`
}
