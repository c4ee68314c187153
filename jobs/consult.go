package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"betpix/database"
	"betpix/services"
	"betpix/task"

	pix "betpix/gateway"
)

// StartConsultScheduler polls the provider for pending payment statuses the
// way a client-side interval would, plus a slow cleanup of abandoned rows.
// Disabled unless CONSULT_SCHEDULER=true.
func StartConsultScheduler() {
	enabled, _ := strconv.ParseBool(os.Getenv("CONSULT_SCHEDULER"))
	if !enabled {
		log.Println("⚠️  Consult scheduler disabled")
		return
	}

	interval := 30 * time.Second
	if raw := os.Getenv("CONSULT_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}

	tickerConsult := time.NewTicker(interval)
	go func() {
		for {
			<-tickerConsult.C
			consult := services.NewConsult(database.DB, pix.FromDB(database.DB))
			if _, err := consult.Run(services.ConsultLimit, services.ConsultWindow); err != nil {
				log.Printf("❌ error consulting pending transactions: %v", err)
			}
		}
	}()

	tickerCleanup := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			task.CleanupAbandonedPayments()
		}
	}()
}
