package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = 0
	RoleUser  = 1
)

type User struct {
	gorm.Model

	Name     string `gorm:"size:191" json:"name"`
	Email    string `gorm:"uniqueIndex;size:191" json:"email"`
	Phone    string `gorm:"size:32" json:"phone"`
	CPF      string `gorm:"column:cpf;size:14" json:"cpf"`
	Password string `gorm:"size:128" json:"-"`
	ApiToken string `gorm:"uniqueIndex;size:64" json:"-"`
	RoleID   int    `gorm:"default:1;index" json:"role_id"`

	// Affiliate program. Inviter points at the referrer; the baseline and
	// CPA amount are the referrer's own payout parameters.
	Inviter           uint    `gorm:"index" json:"inviter"`
	ReferralCode      string  `gorm:"uniqueIndex;size:32" json:"referral_code"`
	AffiliateBaseline float64 `json:"affiliate_baseline"`
	AffiliateCpa      float64 `json:"affiliate_cpa"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Wallet       Wallet        `gorm:"foreignKey:UserID"`
	Transactions []Transaction `gorm:"foreignKey:UserID"`
	Deposits     []Deposit     `gorm:"foreignKey:UserID"`
}
