package services

import (
	"log"
	"time"

	"betpix/gateway"
	"betpix/models"

	"gorm.io/gorm"
)

const (
	ConsultLimit  = 5
	ConsultWindow = 10 // minutes
)

// Consult polls the provider for the most recent unpaid transactions and
// settles the ones the provider reports as PAID.
type Consult struct {
	db         *gorm.DB
	client     *gateway.Client
	settlement *Settlement
}

func NewConsult(db *gorm.DB, client *gateway.Client) *Consult {
	return &Consult{
		db:         db,
		client:     client,
		settlement: NewSettlement(db),
	}
}

// Run queries up to limit recent pending transactions, skips the ones older
// than windowMinutes, and asks the provider for the rest. A failed provider
// call records the id as pending and moves on; it never aborts the batch.
func (c *Consult) Run(limit, windowMinutes int) (map[string]string, error) {
	var pending []models.Transaction
	if err := c.db.Where("status <> ?", models.StatusPaid).
		Order("created_at DESC").
		Limit(limit).
		Find(&pending).Error; err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		log.Println("⚠️  No pending transactions to consult")
		return map[string]string{}, nil
	}

	ids := Consultable(pending, time.Now(), windowMinutes)
	statuses := make(map[string]string, len(ids))

	for _, externalID := range ids {
		status, err := c.client.ConsultTransactionStatus(externalID)
		if err != nil {
			log.Printf("❌ Consult failed for external_id %s: %v", externalID, err)
			statuses[externalID] = "pending"
			continue
		}

		if status == "PAID" {
			if ok, err := c.settlement.Finalize(externalID); err != nil {
				log.Printf("❌ Finalize failed for external_id %s: %v", externalID, err)
			} else if !ok {
				log.Printf("⚠️  Transaction %s already settled", externalID)
			}
		}
		statuses[externalID] = status
	}

	return statuses, nil
}

// Consultable filters out transactions whose updated_at is older than the
// window; stale charges stop being re-queried to bound provider call volume.
func Consultable(trxs []models.Transaction, now time.Time, windowMinutes int) []string {
	ids := make([]string, 0, len(trxs))
	for _, trx := range trxs {
		if now.Sub(trx.UpdatedAt) <= time.Duration(windowMinutes)*time.Minute {
			ids = append(ids, trx.ExternalID)
		} else {
			log.Printf("⚠️  Skipping stale transaction %s (updated %s)", trx.ExternalID, trx.UpdatedAt)
		}
	}
	return ids
}
