package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/DavidBallares/proyecto-gag/app/database"
)

// StartScheduler starts the background maintenance loop.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:00 AM
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled maintenance [02:00]...")

				if n, err := database.DeleteExpiredSessions(db); err != nil {
					log.Printf("Error purging expired sessions: %v", err)
				} else if n > 0 {
					log.Printf("Purged %d expired sessions", n)
				}

				if n, err := database.PurgeExpiredResetTokens(db); err != nil {
					log.Printf("Error purging expired reset tokens: %v", err)
				} else if n > 0 {
					log.Printf("Purged %d expired reset tokens", n)
				}
			}
		}
	}()
}
