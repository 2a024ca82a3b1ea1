package services

import (
	"log"
	"time"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

// StartScheduler starts the background task scheduler
func StartScheduler(store storage.Store) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:00 AM, before the first period
			if now.Hour() == 6 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [06:00]...")

				if err := MaterializeTodaySessions(store, now); err != nil {
					log.Printf("Error materializing today's sessions: %v", err)
				}
			}
		}
	}()
}

// MaterializeTodaySessions creates the class session for every lesson
// scheduled today, so teachers open a ready session instead of creating one
// on first access. Free periods get no session. Already-existing sessions are
// reused, so running twice is harmless.
func MaterializeTodaySessions(store storage.Store, now time.Time) error {
	day := int(now.Weekday())
	entries, err := store.TimetableEntriesByDay(day)
	if err != nil {
		return err
	}

	date := models.SessionDate(now)
	created := 0
	for _, entry := range entries {
		if entry.IsFreePeriod {
			continue
		}
		_, isNew, err := store.GetOrCreateClassSession(entry.ID, date)
		if err != nil {
			return err
		}
		if isNew {
			created++
		}
	}

	if created > 0 {
		log.Printf("Materialized %d class sessions for %s", created, date.Format("2006-01-02"))
	}
	return nil
}
