// This file wires the background job scheduler used by watch mode.

package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// StartScheduler starts the background job scheduler and registers the
// periodic full library sync. An interval of 0 disables the scheduled
// sync. Stop the returned scheduler when shutting down.
func StartScheduler(intervalMinutes int, sync func()) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if intervalMinutes == 0 {
		log.Println("Library sync interval is 0, scheduled sync is disabled.")
	} else {
		log.Printf("Scheduling full library sync every %d minutes.", intervalMinutes)
		_, err := s.Every(intervalMinutes).Minutes().Do(func() {
			log.Println("Scheduler is triggering a full library sync.")
			sync()
		})
		if err != nil {
			log.Printf("Error scheduling library sync: %v", err)
		}
	}

	log.Println("Starting background job scheduler...")
	s.StartAsync()
	return s
}
