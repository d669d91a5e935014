package periodicrunner

import (
	"apptrack/internal/core/domain/logging"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingService struct {
	lock  sync.Mutex
	runs  int
	runCh chan struct{}
}

func newCountingService() *countingService {
	return &countingService{runCh: make(chan struct{}, 16)}
}

func (s *countingService) Run(ctx context.Context, input struct{}) (struct{}, error) {
	s.lock.Lock()
	s.runs++
	s.lock.Unlock()
	s.runCh <- struct{}{}
	return struct{}{}, nil
}

func (s *countingService) Runs() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.runs
}

func waitForRun(t *testing.T, service *countingService) {
	t.Helper()
	select {
	case <-service.runCh:
	case <-time.After(time.Second):
		t.Fatal("service was not run within a second")
	}
}

func TestRunnerRunsServiceOnEveryTick(t *testing.T) {
	service := newCountingService()
	ticks := make(chan time.Time)
	runner := New[struct{}, struct{}](logging.NewFakeLogger(), service, struct{}{}, time.Minute).
		WithTicks(ticks)

	runner.Start(context.Background())
	defer runner.Stop()

	ticks <- time.Now()
	waitForRun(t, service)
	ticks <- time.Now()
	waitForRun(t, service)

	require.Equal(t, 2, service.Runs())
}

func TestStoppedRunnerIgnoresFurtherTicks(t *testing.T) {
	service := newCountingService()
	ticks := make(chan time.Time, 1)
	runner := New[struct{}, struct{}](logging.NewFakeLogger(), service, struct{}{}, time.Minute).
		WithTicks(ticks)

	runner.Start(context.Background())
	ticks <- time.Now()
	waitForRun(t, service)

	runner.Stop()
	runner.Stop() // idempotent

	ticks <- time.Now()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 1, service.Runs())
}

func TestStopWithoutStartDoesNotBlock(t *testing.T) {
	service := newCountingService()
	runner := New[struct{}, struct{}](logging.NewFakeLogger(), service, struct{}{}, time.Minute)

	done := make(chan struct{})
	go func() {
		runner.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a started loop")
	}
}
