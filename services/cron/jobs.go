package cron

import (
	"log"
	"time"
)

// StalePurchaseAge is how long a purchase may stay pending before the
// hourly job marks it failed. Checkout sessions expire well before this.
const StalePurchaseAge = 24 * time.Hour

// ExpireStalePurchases marks pending purchases older than StalePurchaseAge
// as failed. A webhook that never arrived leaves the row pending forever
// otherwise.
func (m *CronManager) ExpireStalePurchases() {
	jobName := "expire_stale_purchases"

	cutoff := time.Now().Add(-StalePurchaseAge)
	expired, err := m.store.ExpireStalePurchases(cutoff)
	if err != nil {
		log.Printf("[CRON] Error in job: %s - %v", jobName, err)
		return
	}

	if expired == 0 {
		log.Printf("[CRON] Completed job: %s - no stale purchases", jobName)
		return
	}

	log.Printf("[CRON] Completed job: %s - expired %d stale purchases", jobName, expired)
}
