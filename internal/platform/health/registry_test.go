package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/member-roster/internal/platform/health"
	"github.com/jsamuelsen11/member-roster/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("member-store")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("flash-redis")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["member-store"] != nil {
		t.Errorf("member-store check = %v, want nil", results["member-store"])
	}
	if results["flash-redis"] != nil {
		t.Errorf("flash-redis check = %v, want nil", results["flash-redis"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("member-store")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("flash-redis")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["member-store"] != nil {
		t.Errorf("member-store check = %v, want nil", results["member-store"])
	}
	if results["flash-redis"] == nil {
		t.Fatal("flash-redis check = nil, want error")
	}
	if results["flash-redis"].Error() != "connection refused" {
		t.Errorf("flash-redis check = %q, want %q", results["flash-redis"].Error(), "connection refused")
	}
}

func TestCheckAll_CanceledContextSkipsChecks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// HealthCheck carries no expectation: a check that has not started when
	// the probe is abandoned is not run at all.
	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("flash-redis")

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["flash-redis"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["flash-redis"])
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each check waits until the other has started; run one after the
	// other, the first would never return.
	var started sync.WaitGroup
	started.Add(2)
	wait := func(context.Context) {
		started.Done()
		started.Wait()
	}

	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("member-store")
	store.EXPECT().HealthCheck(mock.Anything).Run(wait).Return(nil)

	redis := mocks.NewMockHealthChecker(t)
	redis.EXPECT().Name().Return("flash-redis")
	redis.EXPECT().HealthCheck(mock.Anything).Run(wait).Return(nil)

	r := health.New(health.WithCheckTimeout(5 * time.Second))
	r.Register(store)
	r.Register(redis)

	done := make(chan map[string]error, 1)
	go func() { done <- r.CheckAll(context.Background()) }()

	select {
	case results := <-done:
		for name, err := range results {
			if err != nil {
				t.Errorf("%s check = %v, want nil", name, err)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("CheckAll did not run checks concurrently")
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("member-store")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("member-store")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["member-store"]
	if !ok {
		t.Fatal(`expected result for key "member-store", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("member-store check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_AppliesCheckTimeout(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("member-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(checker)

	if err := r.CheckAll(context.Background())["member-store"]; err != nil {
		t.Errorf("member-store check = %v, want nil", err)
	}
}

func TestCheckAll_NoTimeoutWhenDisabled(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("member-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(0))
	r.Register(checker)

	if err := r.CheckAll(context.Background())["member-store"]; err != nil {
		t.Errorf("member-store check = %v, want nil", err)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
