package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
)

// Subsystem is advanced once per tick by the Scheduler
type Subsystem interface {
	GetName() string

	// Periodic advances the subsystem by dt
	Periodic(dt time.Duration) error

	// Stop brings all actuators of the subsystem to a halt
	Stop() error
}

// Scheduler calls all registered subsystems at a fixed rate, in registration order.
type Scheduler struct {
	tickRate   time.Duration
	dashboard  *tuning.Dashboard
	subsystems []Subsystem

	mu            sync.Mutex
	ticks         uint64
	errors        uint64
	tickDurations *rolling.PointPolicy
}

func NewScheduler(tickRate time.Duration, dashboard *tuning.Dashboard) *Scheduler {
	return &Scheduler{
		tickRate:      tickRate,
		dashboard:     dashboard,
		tickDurations: util.CreateRollingWindow(50),
	}
}

func (s *Scheduler) Register(subsystem Subsystem) {
	s.subsystems = append(s.subsystems, subsystem)
}

func (s *Scheduler) GetSubsystems() []Subsystem {
	return s.subsystems
}

// Run ticks all subsystems until ctx is cancelled, then stops them.
func (s *Scheduler) Run(ctx context.Context) error {
	ui.Info("Starting scheduler with %d subsystem(s) at %v", len(s.subsystems), s.tickRate)

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping all subsystems...")
			return s.StopAll()
		case <-ticker.C:
			start := time.Now()
			s.Tick(s.tickRate)
			duration := time.Since(start)
			s.tickDurations.Append(float64(duration.Microseconds()))
			if duration > s.tickRate {
				ui.Warning("Tick took %v, which is longer than the tick rate of %v", duration, s.tickRate)
			}
		}
	}
}

// Tick pulls the latest tuning values and advances every subsystem once.
// Errors are logged, the next tick supersedes a failed one.
func (s *Scheduler) Tick(dt time.Duration) {
	for _, subsystem := range s.subsystems {
		if tunable, ok := subsystem.(tuning.Tunable); ok && s.dashboard != nil {
			tunable.PullTuning(s.dashboard)
		}

		err := subsystem.Periodic(dt)
		if err != nil {
			s.mu.Lock()
			s.errors++
			s.mu.Unlock()
			ui.Error("Error in subsystem %s: %v", subsystem.GetName(), err)
		}
	}
	s.mu.Lock()
	s.ticks++
	s.mu.Unlock()
}

// StopAll stops every subsystem, even if some of them fail
func (s *Scheduler) StopAll() error {
	var result error
	for _, subsystem := range s.subsystems {
		err := subsystem.Stop()
		if err != nil {
			ui.Warning("Unable to stop subsystem %s: %v", subsystem.GetName(), err)
			result = errors.Join(result, err)
		}
	}
	return result
}

type Stats struct {
	Ticks  uint64 `json:"ticks"`
	Errors uint64 `json:"errors"`
	// AvgTickDuration in microseconds
	AvgTickDuration float64 `json:"avgTickDuration"`
	// MaxTickDuration in microseconds
	MaxTickDuration float64 `json:"maxTickDuration"`
}

func (s *Scheduler) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{
		Ticks:  s.ticks,
		Errors: s.errors,
	}
	if s.tickDurations.Reduce(rolling.Count) > 0 {
		stats.AvgTickDuration = util.GetWindowAvg(s.tickDurations)
		stats.MaxTickDuration = util.GetWindowMax(s.tickDurations)
	}
	return stats
}
