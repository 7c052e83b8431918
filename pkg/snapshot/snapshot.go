// Package snapshot periodically records the platform statistics row for the current day.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ecochain/ecochain-api/internal/metrics"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// Store provides the aggregation and upsert used to build a snapshot.
type Store interface {
	CountPlatformTotals(ctx context.Context, activeSince time.Time) (*ecochain.PlatformTotals, error)
	UpsertPlatformStats(ctx context.Context, s *ecochain.PlatformStats) (*ecochain.PlatformStats, error)
}

// Config controls the snapshot loop
type Config struct {
	Interval     time.Duration
	Timeout      time.Duration
	ActiveWindow time.Duration
}

// Snapshotter writes one PlatformStats row per UTC day, refreshing it on every tick
type Snapshotter struct {
	store  Store
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new Snapshotter
func New(store Store, cfg Config, logger *zap.Logger) *Snapshotter {
	return &Snapshotter{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// SnapshotNow aggregates the collections and upserts today's stats row.
func (s *Snapshotter) SnapshotNow(ctx context.Context) (*ecochain.PlatformStats, error) {
	start := time.Now()
	now := s.now().UTC()

	totals, err := s.store.CountPlatformTotals(ctx, now.Add(-s.cfg.ActiveWindow))
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to count platform totals: %w", err)
	}

	stats, err := s.store.UpsertPlatformStats(ctx, BuildStats(ecochain.SnapshotDate(now), totals))
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to upsert platform stats: %w", err)
	}

	metrics.SnapshotsTotal.WithLabelValues("ok").Inc()
	metrics.LastSnapshotTimestamp.Set(float64(now.Unix()))

	s.logger.Info("Platform stats snapshot recorded",
		zap.Time("date", stats.Date),
		zap.Int64("total_users", stats.TotalUsers),
		zap.Int64("active_users", stats.ActiveUsers),
		zap.Int64("total_eco_actions", stats.TotalEcoActions),
		zap.Duration("duration", time.Since(start)))

	return stats, nil
}

// BuildStats turns raw totals into the stats row for date.
// Governance participation is the share of users who have voted, in percent.
func BuildStats(date time.Time, t *ecochain.PlatformTotals) *ecochain.PlatformStats {
	var participation float64
	if t.TotalUsers > 0 {
		participation = min(float64(t.Voters)/float64(t.TotalUsers)*100, 100)
	}

	return &ecochain.PlatformStats{
		Date:                    date,
		TotalUsers:              t.TotalUsers,
		ActiveUsers:             t.ActiveUsers,
		TotalEcoActions:         t.TotalEcoActions,
		TotalCarbonOffset:       t.TotalCarbonOffset,
		EcoTokensDistributed:    t.EcoTokensDistributed,
		TotalStaked:             t.TotalStaked,
		GovernanceParticipation: participation,
		UtilityPaymentsVolume:   t.UtilityPaymentsVolume,
	}
}

// Start begins taking snapshots every cfg.Interval in a background goroutine.
// It does nothing when the interval is not positive.
func (s *Snapshotter) Start() {
	if s.cfg.Interval <= 0 {
		s.logger.Info("Periodic platform stats snapshot disabled")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		s.logger.Info("Started periodic platform stats snapshot", zap.Duration("interval", s.cfg.Interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
				if _, err := s.SnapshotNow(ctx); err != nil {
					s.logger.Error("Periodic platform stats snapshot failed", zap.Error(err))
				}
				cancel()
			case <-s.stopCh:
				s.logger.Info("Stopping periodic platform stats snapshot")
				return
			}
		}
	}()
}

// Stop stops the periodic snapshot and waits for an in-flight one to finish.
func (s *Snapshotter) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}
