package models

import "gorm.io/gorm"

// Wallet holds the user balances. Exactly one row per user, created at
// registration and never deleted. Balance mutations go through atomic
// increments (gorm.Expr) or row-locked updates, never through Save on a
// stale struct.
type Wallet struct {
	gorm.Model

	UserID uint `gorm:"uniqueIndex" json:"user_id"`

	Balance                float64 `json:"balance"`
	BalanceBonus           float64 `json:"balance_bonus"`
	BalanceBonusRollover   float64 `json:"balance_bonus_rollover"`
	BalanceDepositRollover float64 `json:"balance_deposit_rollover"`
	ReferRewards           float64 `json:"refer_rewards"`

	Currency string `gorm:"size:8" json:"currency"`
	Symbol   string `gorm:"size:8" json:"symbol"`
	Active   bool   `gorm:"default:true" json:"active"`
}

// Total is the withdrawable-plus-bonus snapshot shown to the user.
func (w *Wallet) Total() float64 {
	return w.Balance + w.BalanceBonus
}
