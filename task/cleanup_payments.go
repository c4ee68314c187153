package task

import (
	"log"
	"time"

	"betpix/database"
	"betpix/models"
)

// CleanupAbandonedPayments drops pending transaction/deposit pairs the
// consult window gave up on long ago. 48h is far beyond any QR code expiry.
func CleanupAbandonedPayments() {
	cutoff := time.Now().Add(-48 * time.Hour)

	result := database.DB.
		Where("created_at < ? AND status = ?", cutoff, models.StatusPending).
		Delete(&models.Transaction{})
	if result.Error != nil {
		log.Println("❌ Failed to delete abandoned transactions:", result.Error)
		return
	}

	deposits := database.DB.
		Where("created_at < ? AND status = ?", cutoff, models.StatusPending).
		Delete(&models.Deposit{})
	if deposits.Error != nil {
		log.Println("❌ Failed to delete abandoned deposits:", deposits.Error)
		return
	}

	if result.RowsAffected > 0 || deposits.RowsAffected > 0 {
		log.Printf("✅ Deleted %d abandoned transactions and %d deposits\n",
			result.RowsAffected, deposits.RowsAffected)
	}
}
