package match

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func ratingFixture(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.addPlayer(&Player{ID: "fresh", FullName: "Fresh", Rating: DefaultRating})
	store.addPlayer(&Player{ID: "other", FullName: "Other", Rating: DefaultRating})
	service, _ := newTestService(store)
	return service, store
}

// Proprieta': il primo voto sostituisce il seed 5.0.
func TestFirstVoteBootstrap(t *testing.T) {
	service, store := ratingFixture(t)

	updated, err := service.SubmitBatchRatings(context.Background(), "rater", []RatingEntry{{TargetPlayerID: "fresh", Score: 8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 1 || updated[0] != "fresh" {
		t.Fatalf("unexpected updated ids: %v", updated)
	}
	p := store.player("fresh")
	if p.Rating != 8 || p.TotalVotes != 1 {
		t.Fatalf("expected rating 8 votes 1, got %v %d", p.Rating, p.TotalVotes)
	}
}

// Proprieta': 8 poi 6 su un giocatore nuovo danno 7.0 con 2 voti.
func TestSequentialVotesAverage(t *testing.T) {
	service, store := ratingFixture(t)
	ctx := context.Background()

	if _, err := service.SubmitBatchRatings(ctx, "r1", []RatingEntry{{TargetPlayerID: "fresh", Score: 8}}); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if _, err := service.SubmitBatchRatings(ctx, "r2", []RatingEntry{{TargetPlayerID: "fresh", Score: 6}}); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	p := store.player("fresh")
	if p.Rating != 7.0 || p.TotalVotes != 2 {
		t.Fatalf("expected rating 7 votes 2, got %v %d", p.Rating, p.TotalVotes)
	}
}

func TestApplyScoreRunningAverage(t *testing.T) {
	p := &Player{Rating: 6, TotalVotes: 3}
	ApplyScore(p, 10)
	if p.TotalVotes != 4 || math.Abs(p.Rating-7) > 1e-9 {
		t.Fatalf("expected 7 with 4 votes, got %v %d", p.Rating, p.TotalVotes)
	}

	// Rating assente: default 5.0, ma con zero voti vale il bootstrap.
	empty := &Player{}
	ApplyScore(empty, 3)
	if empty.Rating != 3 || empty.TotalVotes != 1 {
		t.Fatalf("unexpected bootstrap on empty profile: %+v", empty)
	}
}

func TestBatchSkipsGuestsAndFoldsDuplicates(t *testing.T) {
	service, store := ratingFixture(t)

	updated, err := service.SubmitBatchRatings(context.Background(), "rater", []RatingEntry{
		{TargetPlayerID: "fresh", Score: 8},
		{TargetPlayerID: "guest_123", Score: 10},
		{TargetPlayerID: "other", Score: 4},
		{TargetPlayerID: "fresh", Score: 6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 updated players, got %v", updated)
	}
	fresh := store.player("fresh")
	if fresh.Rating != 7 || fresh.TotalVotes != 2 {
		t.Fatalf("duplicate votes must fold: %+v", fresh)
	}
	other := store.player("other")
	if other.Rating != 4 || other.TotalVotes != 1 {
		t.Fatalf("unexpected other: %+v", other)
	}
}

func TestBatchValidation(t *testing.T) {
	service, store := ratingFixture(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		rater   string
		entries []RatingEntry
		want    error
	}{
		{"no rater", "", []RatingEntry{{TargetPlayerID: "fresh", Score: 5}}, ErrUnauthenticated},
		{"empty batch", "r", nil, ErrInvalidArgument},
		{"score low", "r", []RatingEntry{{TargetPlayerID: "fresh", Score: 0}}, ErrInvalidArgument},
		{"score high", "r", []RatingEntry{{TargetPlayerID: "fresh", Score: 11}}, ErrInvalidArgument},
		{"self", "fresh", []RatingEntry{{TargetPlayerID: "fresh", Score: 5}}, ErrInvalidArgument},
		{"no target", "r", []RatingEntry{{Score: 5}}, ErrInvalidArgument},
	}
	for _, tc := range cases {
		if _, err := service.SubmitBatchRatings(ctx, tc.rater, tc.entries); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if p := store.player("fresh"); p.TotalVotes != 0 {
		t.Fatalf("invalid batches must not write: %+v", p)
	}
}

// Un target mancante annulla tutto il batch.
func TestBatchAllOrNothing(t *testing.T) {
	service, store := ratingFixture(t)

	_, err := service.SubmitBatchRatings(context.Background(), "rater", []RatingEntry{
		{TargetPlayerID: "fresh", Score: 9},
		{TargetPlayerID: "ghost", Score: 9},
	})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if p := store.player("fresh"); p.TotalVotes != 0 || p.Rating != DefaultRating {
		t.Fatalf("partial application: %+v", p)
	}
}

// Concorrenza: batch paralleli sullo stesso giocatore non perdono voti.
func TestConcurrentBatchesNoLostUpdate(t *testing.T) {
	service, store := ratingFixture(t)
	store.maxAttempts = 100

	const raters = 10
	var wg sync.WaitGroup
	errs := make(chan error, raters)
	for i := 0; i < raters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.SubmitBatchRatings(context.Background(), fmt.Sprintf("r%d", i), []RatingEntry{
				{TargetPlayerID: "fresh", Score: 6},
				{TargetPlayerID: "other", Score: 8},
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := store.player("fresh")
	if fresh.TotalVotes != raters || math.Abs(fresh.Rating-6) > 1e-9 {
		t.Fatalf("lost update on fresh: %+v", fresh)
	}
	other := store.player("other")
	if other.TotalVotes != raters || math.Abs(other.Rating-8) > 1e-9 {
		t.Fatalf("lost update on other: %+v", other)
	}
}

func TestRatingsAwardStarBadge(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(&Player{ID: "ace", Rating: 8.5, TotalVotes: 4, MatchCount: 3})
	service, _ := newTestService(store)

	if _, err := service.SubmitBatchRatings(context.Background(), "r", []RatingEntry{{TargetPlayerID: "ace", Score: 9}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := store.player("ace")
	if !p.HasBadge("star_player") || !p.HasBadge("first_match") {
		t.Fatalf("expected star_player and first_match badges, got %v", p.Badges)
	}
}
