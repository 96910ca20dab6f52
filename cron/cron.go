package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/benluxnails/salon-web/session"
)

// StartCronJobs runs the periodic sweep that evicts expired entries from
// the in-memory stores. Redis-backed deployments expire keys on their own
// and pass no stores here.
func StartCronJobs(stores ...*session.MemoryStore) {
	if len(stores) == 0 {
		return
	}

	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		for _, s := range stores {
			if n := s.Sweep(); n > 0 {
				log.Printf("Swept %d expired session entries", n)
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session sweeps")
}
