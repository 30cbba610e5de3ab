package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/markusressel/notebot/internal/tuning"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}

type mockSubsystem struct {
	name     string
	recorder *recorder
	err      error
	stopErr  error
}

func (m *mockSubsystem) GetName() string {
	return m.name
}

func (m *mockSubsystem) Periodic(dt time.Duration) error {
	m.recorder.add(m.name + ".periodic")
	return m.err
}

func (m *mockSubsystem) Stop() error {
	m.recorder.add(m.name + ".stop")
	return m.stopErr
}

type mockTunableSubsystem struct {
	mockSubsystem
}

func (m *mockTunableSubsystem) PullTuning(dashboard *tuning.Dashboard) {
	m.recorder.add(m.name + ".pull")
}

func TestScheduler_TickPullsBeforePeriodic(t *testing.T) {
	// GIVEN
	r := &recorder{}
	s := NewScheduler(20*time.Millisecond, tuning.NewDashboard())
	s.Register(&mockTunableSubsystem{mockSubsystem{name: "arm", recorder: r}})
	s.Register(&mockSubsystem{name: "vision", recorder: r})

	// WHEN
	s.Tick(20 * time.Millisecond)

	// THEN
	assert.Equal(t, []string{"arm.pull", "arm.periodic", "vision.periodic"}, r.get())
	assert.Equal(t, uint64(1), s.GetStats().Ticks)
}

func TestScheduler_ErrorDoesNotStopTick(t *testing.T) {
	// GIVEN
	r := &recorder{}
	s := NewScheduler(20*time.Millisecond, nil)
	s.Register(&mockSubsystem{name: "arm", recorder: r, err: errors.New("motor unreachable")})
	s.Register(&mockSubsystem{name: "intake", recorder: r})

	// WHEN
	s.Tick(20 * time.Millisecond)

	// THEN
	assert.Equal(t, []string{"arm.periodic", "intake.periodic"}, r.get())
	assert.Equal(t, uint64(1), s.GetStats().Errors)
}

func TestScheduler_StopAllContinuesOnError(t *testing.T) {
	// GIVEN
	r := &recorder{}
	s := NewScheduler(20*time.Millisecond, nil)
	s.Register(&mockSubsystem{name: "arm", recorder: r, stopErr: errors.New("failed")})
	s.Register(&mockSubsystem{name: "shooter", recorder: r})

	// WHEN
	err := s.StopAll()

	// THEN
	assert.Error(t, err)
	assert.Equal(t, []string{"arm.stop", "shooter.stop"}, r.get())
}

func TestScheduler_RunStopsSubsystemsOnCancel(t *testing.T) {
	// GIVEN
	r := &recorder{}
	s := NewScheduler(time.Millisecond, nil)
	s.Register(&mockSubsystem{name: "arm", recorder: r})
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN
	done := make(chan error)
	go func() {
		done <- s.Run(ctx)
	}()
	assert.Eventually(t, func() bool {
		return s.GetStats().Ticks >= 3
	}, time.Second, time.Millisecond)
	cancel()
	err := <-done

	// THEN
	assert.NoError(t, err)
	calls := r.get()
	assert.Equal(t, "arm.stop", calls[len(calls)-1])
}
