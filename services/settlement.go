package services

import (
	"errors"
	"log"

	"betpix/helpers"
	"betpix/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrWalletNotFound = errors.New("wallet not found")

// Settlement credits a confirmed PIX payment: wallet balance, first-deposit
// bonus, rollover requirements, VIP accrual and the affiliate CPA commission,
// all inside one database transaction.
type Settlement struct {
	db       *gorm.DB
	vip      *VipBonus
	notifier *Notifier
}

func NewSettlement(db *gorm.DB) *Settlement {
	return &Settlement{
		db:       db,
		vip:      NewVipBonus(),
		notifier: NewNotifier(),
	}
}

// Finalize settles the pending transaction identified by externalID. It
// returns (false, nil) when no pending transaction exists — already settled
// and never existed look the same to callers. The pending row is claimed
// under a FOR UPDATE lock, so a concurrent Finalize for the same externalID
// blocks and then sees no pending row: either every step commits or none do.
func (s *Settlement) Finalize(externalID string) (bool, error) {
	settled := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ? AND status = ?", externalID, models.StatusPending).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("⚠️  No pending transaction for external_id %s", externalID)
				return nil
			}
			return err
		}

		var setting models.Setting
		if err := tx.First(&setting).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, trx.UserID).Error; err != nil {
			return err
		}

		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", trx.UserID).
			First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		// First-ever paid deposit earns the initial bonus plus its rollover
		// requirement.
		var paidCount int64
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND status = ?", trx.UserID, models.StatusPaid).
			Count(&paidCount).Error; err != nil {
			return err
		}
		if paidCount == 0 {
			bonus := helpers.Percentage(setting.InitialBonus, trx.Price)
			if bonus > 0 {
				if err := tx.Model(&wallet).
					UpdateColumn("balance_bonus", gorm.Expr("balance_bonus + ?", bonus)).Error; err != nil {
					return err
				}
				if err := tx.Model(&wallet).
					Update("balance_bonus_rollover", bonus*setting.Rollover).Error; err != nil {
					return err
				}
				log.Printf("✅ First deposit bonus %.2f for user %d", bonus, trx.UserID)
			}
		}

		// Deposit rollover is overwritten per deposit, not accumulated.
		if err := tx.Model(&wallet).
			Update("balance_deposit_rollover", trx.Price*setting.RolloverDeposit).Error; err != nil {
			return err
		}

		if err := s.vip.Pay(tx, &wallet, trx.Price); err != nil {
			return err
		}

		if err := tx.Model(&wallet).
			UpdateColumn("balance", gorm.Expr("balance + ?", trx.Price)).Error; err != nil {
			return err
		}

		if err := tx.Model(&trx).Update("status", models.StatusPaid).Error; err != nil {
			return err
		}

		var deposit models.Deposit
		if err := tx.Where("external_id = ? AND status = ?", externalID, models.StatusPending).
			First(&deposit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No matching deposit: credit the wallet, skip affiliate settlement.
				settled = true
				return nil
			}
			return err
		}

		if err := s.settleCPA(tx, &user, deposit.Amount); err != nil {
			return err
		}

		if err := tx.Model(&deposit).Update("status", models.StatusPaid).Error; err != nil {
			return err
		}

		if err := s.notifier.NewDeposit(tx, user.Name, trx.Price); err != nil {
			return err
		}

		settled = true
		return nil
	})
	if err != nil {
		log.Printf("❌ Settlement failed for external_id %s: %v", externalID, err)
		return false, err
	}

	if settled {
		log.Printf("✅ Settlement completed for external_id %s", externalID)
	}
	return settled, nil
}

// settleCPA pays the referrer once the referred user's deposits reach the
// referrer's baseline; below the threshold the amount accumulates on the
// pending history row.
func (s *Settlement) settleCPA(tx *gorm.DB, user *models.User, amount float64) error {
	var hist models.AffiliateHistory
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND commission_type = ? AND status = ?",
			user.ID, models.CommissionCPA, models.StatusPending).
		First(&hist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var sponsor models.User
	if err := tx.First(&sponsor, user.Inviter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !CpaQualifies(hist.DepositedAmount, amount, sponsor.AffiliateBaseline) {
		return tx.Model(&hist).
			UpdateColumn("deposited_amount", gorm.Expr("deposited_amount + ?", amount)).Error
	}

	var sponsorWallet models.Wallet
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", hist.Inviter).
		First(&sponsorWallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := tx.Model(&sponsorWallet).
		UpdateColumn("refer_rewards", gorm.Expr("refer_rewards + ?", sponsor.AffiliateCpa)).Error; err != nil {
		return err
	}

	log.Printf("✅ CPA %.2f paid to sponsor %d for user %d", sponsor.AffiliateCpa, sponsor.ID, user.ID)
	return tx.Model(&hist).Updates(map[string]any{
		"status":          models.StatusPaid,
		"commission_paid": sponsor.AffiliateCpa,
	}).Error
}

// CpaQualifies reports whether either the accumulated deposits or the
// current deposit alone reach the referrer's baseline.
func CpaQualifies(depositedAmount, depositAmount, baseline float64) bool {
	if baseline <= 0 {
		return false
	}
	return depositedAmount >= baseline || depositAmount >= baseline
}
