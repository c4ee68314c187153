package models

import "gorm.io/gorm"

const (
	StatusPending = 0
	StatusPaid    = 1
)

// Transaction is one payment attempt against the PIX provider. Created
// pending alongside its Deposit; flipped to paid exactly once by the
// settlement engine. ExternalID is the provider reference correlating the
// pair, unique so a duplicate provider reference can never create a second
// pending row.
type Transaction struct {
	gorm.Model

	PaymentID     string  `gorm:"size:64;index" json:"payment_id"`
	UserID        uint    `gorm:"index" json:"user_id"`
	PaymentMethod string  `gorm:"size:16" json:"payment_method"`
	Price         float64 `json:"price"`
	Currency      string  `gorm:"size:8" json:"currency"`
	Status        int     `gorm:"default:0;index" json:"status"`
	ExternalID    string  `gorm:"uniqueIndex;size:64" json:"external_id"`
}
