package monitoring

import (
	"os"
	"time"

	"github.com/renefm/user-hub-be/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/process"
)

// StatUpdater periodically logs store and process statistics.
type StatUpdater struct {
	repo     repository.UserRepository
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool
}

// NewStatUpdater creates a new StatUpdater.
func NewStatUpdater(repo repository.UserRepository, interval time.Duration) *StatUpdater {
	return &StatUpdater{
		repo:     repo,
		interval: interval,
		done:     make(chan bool),
	}
}

// Run starts the periodic updates.
func (su *StatUpdater) Run() {
	log.Info().Dur("interval", su.interval).Msg("Starting background stat updater...")
	su.ticker = time.NewTicker(su.interval)
	defer su.ticker.Stop()

	// Run once immediately on start
	su.logStats()

	for {
		select {
		case <-su.done:
			log.Info().Msg("Stopping background stat updater.")
			return
		case <-su.ticker.C:
			su.logStats()
		}
	}
}

// Stop halts the periodic updates.
func (su *StatUpdater) Stop() {
	su.done <- true
}

// logStats emits one snapshot of user counts and process memory usage.
func (su *StatUpdater) logStats() {
	event := log.Info().
		Int64("users_total", su.repo.Count()).
		Int("users_active", len(su.repo.FindByActiveTrue())).
		Int("users_inactive", len(su.repo.FindByActiveFalse()))

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if memInfo, err := proc.MemoryInfo(); err == nil {
			event = event.Uint64("rss_mb", memInfo.RSS/1024/1024)
		}
	}

	event.Msg("Store stats")
}
