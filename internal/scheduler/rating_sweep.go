// Package scheduler runs periodic maintenance jobs. The rating sweep
// re-derives every book's rating from its current review set, repairing
// any drift between the stored aggregate and the reviews.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/database/reviews"
	"github.com/bookify/bookify-server/internal/entities"
)

// RatingSweeper periodically reconciles derived book ratings.
type RatingSweeper struct {
	db      *database.Database
	reviews *reviews.Repository

	schedule string
	cron     *cron.Cron
	entryID  cron.EntryID
	mu       sync.Mutex
	running  bool
}

// NewRatingSweeper creates a new sweeper with a standard five-field
// cron schedule.
func NewRatingSweeper(db *database.Database, reviewsRepo *reviews.Repository, schedule string) *RatingSweeper {
	return &RatingSweeper{
		db:       db,
		reviews:  reviewsRepo,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the periodic sweep.
func (s *RatingSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(); err != nil {
			log.Printf("Rating sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rating sweep: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.running = true
	log.Printf("Rating sweep scheduled: %s", s.schedule)
	return nil
}

// Stop halts the periodic sweep, waiting for an in-flight run.
func (s *RatingSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	log.Printf("Rating sweep stopped")
}

// RunOnce recomputes the rating of every book in the catalog.
func (s *RatingSweeper) RunOnce() error {
	start := time.Now()

	var bookIDs []uint
	if err := s.db.DB.Model(&entities.Book{}).Pluck("id", &bookIDs).Error; err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	for _, id := range bookIDs {
		if err := s.reviews.RecomputeRating(id); err != nil {
			return fmt.Errorf("failed to recompute rating for book %d: %w", id, err)
		}
	}

	log.Printf("Rating sweep recomputed %d books in %s", len(bookIDs), time.Since(start))
	return nil
}
