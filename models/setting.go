package models

import "gorm.io/gorm"

// Setting is the single global configuration row read by the deposit and
// settlement paths.
type Setting struct {
	gorm.Model

	MinDeposit      float64 `json:"min_deposit"`
	MaxDeposit      float64 `json:"max_deposit"`
	InitialBonus    float64 `json:"initial_bonus"`
	Rollover        float64 `json:"rollover"`
	RolloverDeposit float64 `json:"rollover_deposit"`
	CurrencyCode    string  `gorm:"size:8" json:"currency_code"`
	Prefix          string  `gorm:"size:8" json:"prefix"`
}
