package models

import "gorm.io/gorm"

const StatusCanceled = 2

// Withdrawal is a PIX cash-out request. The wallet is debited when the row
// is created; approving sends the provider payment and flips the row under a
// row lock, canceling refunds the debit.
type Withdrawal struct {
	gorm.Model

	UserID    uint    `gorm:"index" json:"user_id"`
	Amount    float64 `json:"amount"`
	PixKey    string  `gorm:"size:191" json:"pix_key"`
	PixType   string  `gorm:"size:32" json:"pix_type"`
	Currency  string  `gorm:"size:8" json:"currency"`
	Symbol    string  `gorm:"size:8" json:"symbol"`
	PaymentID string  `gorm:"size:64;index" json:"payment_id"`
	Reference string  `gorm:"size:64;uniqueIndex" json:"reference"`
	Status    int     `gorm:"default:0;index" json:"status"`
}
