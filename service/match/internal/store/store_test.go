package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"HaliSahaX/service/match/internal/match"
)

func TestRunWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := runWithRetry(context.Background(), Options{MaxAttempts: 5}, func(context.Context) error {
		calls++
		if calls < 3 {
			return match.ErrConflict
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRunWithRetryGivesUp(t *testing.T) {
	calls := 0
	err := runWithRetry(context.Background(), Options{MaxAttempts: 4}, func(context.Context) error {
		calls++
		return match.ErrConflict
	})
	if !errors.Is(err, match.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", calls)
	}
}

// Gli errori non di conflitto non vengono ritentati.
func TestRunWithRetryDomainError(t *testing.T) {
	calls := 0
	err := runWithRetry(context.Background(), DefaultOptions, func(context.Context) error {
		calls++
		return match.ErrMatchNotFound
	})
	if !errors.Is(err, match.ErrMatchNotFound) || calls != 1 {
		t.Fatalf("expected single ErrMatchNotFound, got %v after %d calls", err, calls)
	}
}

func TestRunWithRetryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := runWithRetry(ctx, Options{MaxAttempts: 10, Backoff: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return match.ErrConflict
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
}

func TestOptionsNormalize(t *testing.T) {
	got := Options{MaxAttempts: 0, Backoff: -time.Second}.normalize()
	if got.MaxAttempts != DefaultOptions.MaxAttempts || got.Backoff != 0 {
		t.Fatalf("unexpected options %+v", got)
	}
}

func TestStagingRules(t *testing.T) {
	st := newStaging()
	m := st.readMatch(&match.Match{ID: "m1", TeamA: []match.RosterEntry{{ID: "p1"}}}, 3)

	// La copia restituita non condivide i roster con la cache.
	m.TeamA[0].ID = "changed"
	cached, ok := st.cachedMatch("m1")
	if !ok || cached.TeamA[0].ID != "p1" {
		t.Fatalf("cache must be isolated, got %+v", cached)
	}

	if err := st.putPlayer(&match.Player{ID: "ghost"}); !errors.Is(err, ErrNotRead) {
		t.Fatalf("expected ErrNotRead, got %v", err)
	}
	if err := st.beforeRead(); !errors.Is(err, match.ErrReadAfterWrite) {
		t.Fatalf("expected ErrReadAfterWrite, got %v", err)
	}

	if err := st.putMatch(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Status = match.StatusCompleted
	if err := st.putMatch(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.matchWrites) != 1 || st.matchWrites[0].Status != match.StatusCompleted {
		t.Fatalf("expected single staged write with last value, got %+v", st.matchWrites)
	}
	if st.matchReads["m1"] != 3 {
		t.Fatalf("expected read version 3, got %d", st.matchReads["m1"])
	}
	if st.empty() {
		t.Fatalf("staging must not be empty")
	}
}
