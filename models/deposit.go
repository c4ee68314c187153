package models

import "gorm.io/gorm"

// Deposit mirrors a Transaction 1:1 through the shared ExternalID and is the
// user-facing record of the credit.
type Deposit struct {
	gorm.Model

	PaymentID  string  `gorm:"size:64;index" json:"payment_id"`
	UserID     uint    `gorm:"index" json:"user_id"`
	Amount     float64 `json:"amount"`
	Type       string  `gorm:"size:16" json:"type"`
	Currency   string  `gorm:"size:8" json:"currency"`
	Symbol     string  `gorm:"size:8" json:"symbol"`
	Status     int     `gorm:"default:0;index" json:"status"`
	ExternalID string  `gorm:"index;size:64" json:"external_id"`
}
