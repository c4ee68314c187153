package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationNewDeposit    = "new_deposit"
	NotificationNewWithdrawal = "new_withdrawal"
)

// Notification is a database-backed admin alert.
type Notification struct {
	gorm.Model

	UserID uint           `gorm:"index" json:"user_id"`
	Type   string         `gorm:"size:32;index" json:"type"`
	Data   datatypes.JSON `json:"data"`
	ReadAt *time.Time     `json:"read_at"`
}
