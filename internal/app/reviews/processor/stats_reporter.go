package processor

import (
	"context"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/repository"
	"campusvoice/pkg/logger"
	"campusvoice/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StatsReporter periodically refreshes the reviews_by_status gauges from the
// store. It only reads; the request path is never touched.
type StatsReporter struct {
	cron       *cron.Cron
	reviewRepo repository.ReviewRepository
}

func NewStatsReporter(reviewRepo repository.ReviewRepository) *StatsReporter {
	return &StatsReporter{
		cron:       cron.New(),
		reviewRepo: reviewRepo,
	}
}

// Start registers the refresh job on the given cron schedule and runs one
// refresh immediately so the gauges are populated before the first tick.
func (s *StatsReporter) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("Stats reporter started")

	s.refresh(ctx)
	return nil
}

func (s *StatsReporter) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.Info().Msg("Stats reporter stopped")
}

func (s *StatsReporter) refresh(ctx context.Context) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh review status gauges")
		return
	}

	counts := map[string]int{
		entity.StatusPending:  0,
		entity.StatusReviewed: 0,
		entity.StatusResolved: 0,
	}
	for _, r := range reviews {
		counts[r.Status]++
	}

	for status, count := range counts {
		metrics.ReviewsByStatus.WithLabelValues(status).Set(float64(count))
	}

	logger.Debug().
		Int("total", len(reviews)).
		Int("pending", counts[entity.StatusPending]).
		Int("reviewed", counts[entity.StatusReviewed]).
		Int("resolved", counts[entity.StatusResolved]).
		Msg("Refreshed review status gauges")
}
