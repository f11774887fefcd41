package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// ReferenceLister reports which stored names are still held by a record.
type ReferenceLister interface {
	ReferencedFiles(ctx context.Context) (map[string]struct{}, error)
}

// Sweeper removes uploads left behind by applications that were never stored.
type Sweeper struct {
	store  *Store
	refs   ReferenceLister
	grace  time.Duration
	logger *log.Logger
	cron   *cron.Cron
	now    func() time.Time
}

func NewSweeper(store *Store, refs ReferenceLister, grace time.Duration, logger *log.Logger) *Sweeper {
	return &Sweeper{
		store:  store,
		refs:   refs,
		grace:  grace,
		logger: logger,
		now:    time.Now,
	}
}

// Start schedules Sweep on the given cron spec.
func (s *Sweeper) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Printf("upload sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling upload sweep %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Printf("upload sweeper scheduled: %s (grace %s)", spec, s.grace)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep deletes files older than the grace period that no application references.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	refs, err := s.refs.ReferencedFiles(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(s.store.Dir)
	if err != nil {
		return 0, fmt.Errorf("reading upload dir: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}
		if _, ok := refs[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := s.store.Remove(entry.Name()); err != nil {
			s.logger.Printf("removing orphaned upload %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Printf("upload sweep removed %d orphaned files", removed)
	}
	return removed, nil
}
