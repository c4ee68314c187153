package services

import (
	"errors"
	"log"

	"betpix/helpers"
	"betpix/models"

	"gorm.io/gorm"
)

// VipBonus accrues the tiered deposit bonus. The highest level whose
// MinDeposit the payment reaches determines the percentage; no tier, no
// bonus.
type VipBonus struct{}

func NewVipBonus() *VipBonus {
	return &VipBonus{}
}

func (v *VipBonus) Pay(tx *gorm.DB, wallet *models.Wallet, amount float64) error {
	var level models.VipLevel
	if err := tx.Where("min_deposit <= ?", amount).
		Order("level DESC").
		First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	bonus := BonusForLevel(level, amount)
	if bonus <= 0 {
		return nil
	}

	if err := tx.Model(wallet).
		UpdateColumn("balance_bonus", gorm.Expr("balance_bonus + ?", bonus)).Error; err != nil {
		return err
	}

	log.Printf("✅ VIP level %d bonus %.2f for wallet %d", level.Level, bonus, wallet.ID)
	return nil
}

func BonusForLevel(level models.VipLevel, amount float64) float64 {
	if amount < level.MinDeposit {
		return 0
	}
	return helpers.Percentage(level.BonusPercent, amount)
}
