package match

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeLocker struct {
	mu       sync.Mutex
	held     bool
	acquired int
	released int
	err      error
}

func (l *fakeLocker) Acquire(_ context.Context, _ string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return "", false, l.err
	}
	if l.held {
		return "", false, nil
	}
	l.held = true
	l.acquired++
	return "token", true, nil
}

func (l *fakeLocker) Release(_ context.Context, _, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != "token" {
		return errors.New("bad token")
	}
	l.held = false
	l.released++
	return nil
}

func expiredMatch(id string, teamA, teamB []RosterEntry) *Match {
	m := upcomingMatch(id)
	m.Date = testNow.Add(-2 * time.Hour)
	m.TeamA = teamA
	m.TeamB = teamB
	return m
}

func lifecycleFixture(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.addPlayer(newPlayer("p1", 6))
	store.addPlayer(newPlayer("p2", 7))
	store.addMatch(expiredMatch("old",
		[]RosterEntry{{ID: "p1", Rating: 6}, {ID: "guest_1", Rating: 5}},
		[]RosterEntry{{ID: "p2", Rating: 7}}))
	store.addMatch(upcomingMatch("future"))
	service, _ := newTestService(store)
	return service, store
}

func TestFinalizeIncrementsRealParticipants(t *testing.T) {
	service, store := lifecycleFixture(t)

	done, err := service.FinalizeMatch(context.Background(), "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Fatalf("expected match to be finalized")
	}
	if store.match("old").Status != StatusCompleted {
		t.Fatalf("expected completed status")
	}
	for _, id := range []string{"p1", "p2"} {
		if got := store.player(id).MatchCount; got != 1 {
			t.Fatalf("expected matchCount 1 for %s, got %d", id, got)
		}
	}
	if store.player("guest_1") != nil {
		t.Fatalf("guest must never get a profile")
	}
	if !store.player("p1").HasBadge("first_match") {
		t.Fatalf("expected first_match badge after first match")
	}
}

// Proprieta': due finalize sullo stesso match contano una sola partita.
func TestFinalizeTwiceIsIdempotent(t *testing.T) {
	service, store := lifecycleFixture(t)
	ctx := context.Background()

	if _, err := service.FinalizeMatch(ctx, "old"); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	done, err := service.FinalizeMatch(ctx, "old")
	if err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if done {
		t.Fatalf("second finalize must be a no-op")
	}
	if got := store.player("p1").MatchCount; got != 1 {
		t.Fatalf("expected matchCount 1, got %d", got)
	}
}

func TestConcurrentFinalizeCountsOnce(t *testing.T) {
	service, store := lifecycleFixture(t)
	store.maxAttempts = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	finalized := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done, err := service.FinalizeMatch(context.Background(), "old")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if done {
				mu.Lock()
				finalized++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if finalized != 1 {
		t.Fatalf("expected exactly one winner, got %d", finalized)
	}
	if got := store.player("p2").MatchCount; got != 1 {
		t.Fatalf("expected matchCount 1, got %d", got)
	}
}

func TestFinalizeNotYetExpired(t *testing.T) {
	service, store := lifecycleFixture(t)

	done, err := service.FinalizeMatch(context.Background(), "future")
	if err != nil || done {
		t.Fatalf("future match must not be finalized: done=%v err=%v", done, err)
	}
	if store.match("future").Status != StatusUpcoming {
		t.Fatalf("status changed")
	}
}

func TestFinalizeSkipsMissingProfiles(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(newPlayer("p1", 6))
	store.addMatch(expiredMatch("old", []RosterEntry{{ID: "p1"}, {ID: "deleted"}}, nil))
	service, _ := newTestService(store)

	done, err := service.FinalizeMatch(context.Background(), "old")
	if err != nil || !done {
		t.Fatalf("expected finalize despite missing profile: done=%v err=%v", done, err)
	}
	if store.player("p1").MatchCount != 1 {
		t.Fatalf("expected p1 counted")
	}
}

func TestSweepExpired(t *testing.T) {
	service, store := lifecycleFixture(t)
	done := expiredMatch("done", nil, nil)
	done.Status = StatusCompleted
	store.addMatch(done)

	finalized, err := service.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(finalized) != 1 || finalized[0] != "old" {
		t.Fatalf("expected only old finalized, got %v", finalized)
	}

	// Secondo giro: nulla da fare.
	finalized, err = service.SweepExpired(context.Background())
	if err != nil || len(finalized) != 0 {
		t.Fatalf("expected empty second sweep, got %v %v", finalized, err)
	}
	if store.player("p1").MatchCount != 1 {
		t.Fatalf("duplicate sweep counted twice")
	}
}

func TestSweepPicksUpMatchesAsClockAdvances(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(newPlayer("p1", 6))
	m := upcomingMatch("soon")
	m.TeamA = []RosterEntry{{ID: "p1", Rating: 6}}
	store.addMatch(m)
	service, clk := newTestService(store)

	if finalized, _ := service.SweepExpired(context.Background()); len(finalized) != 0 {
		t.Fatalf("nothing should expire yet, got %v", finalized)
	}
	clk.Add(25 * time.Hour)
	finalized, err := service.SweepExpired(context.Background())
	if err != nil || len(finalized) != 1 {
		t.Fatalf("expected soon to be finalized, got %v %v", finalized, err)
	}
}

func TestSweepListError(t *testing.T) {
	service, store := lifecycleFixture(t)
	store.listErr = errors.New("index unavailable")

	if _, err := service.SweepExpired(context.Background()); err == nil {
		t.Fatalf("expected list error to surface")
	}
}

func TestSweepOnceUsesLocker(t *testing.T) {
	service, store := lifecycleFixture(t)
	locker := &fakeLocker{}

	service.sweepOnce(time.Second, locker)
	if locker.acquired != 1 || locker.released != 1 {
		t.Fatalf("expected acquire/release, got %d/%d", locker.acquired, locker.released)
	}
	if store.match("old").Status != StatusCompleted {
		t.Fatalf("expected sweep to run under lock")
	}
}

func TestSweepOnceSkipsWhenLockHeld(t *testing.T) {
	service, store := lifecycleFixture(t)
	locker := &fakeLocker{held: true}

	service.sweepOnce(time.Second, locker)
	if store.match("old").Status != StatusUpcoming {
		t.Fatalf("sweep must not run without the lock")
	}
}

func TestRunPeriodicSweepStopsOnShutdown(t *testing.T) {
	service, store := lifecycleFixture(t)
	shutdown := make(chan bool)
	var wg sync.WaitGroup

	wg.Add(1)
	go service.RunPeriodicSweep(5*time.Millisecond, nil, shutdown, &wg)

	deadline := time.After(2 * time.Second)
	for store.match("old").Status != StatusCompleted {
		select {
		case <-deadline:
			t.Fatalf("periodic sweep never finalized the match")
		case <-time.After(5 * time.Millisecond):
		}
	}
	close(shutdown)
	wg.Wait()
}
