package match

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

func catalogFixture(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	offsets := map[string]time.Duration{
		"past-2d":   -48 * time.Hour,
		"past-1h":   -time.Hour,
		"now":       0,
		"next-1h":   time.Hour,
		"next-3d":   72 * time.Hour,
		"past-10d":  -240 * time.Hour,
		"next-week": 7 * 24 * time.Hour,
	}
	for id, offset := range offsets {
		m := upcomingMatch(id)
		m.Date = testNow.Add(offset)
		store.addMatch(m)
	}
	service, _ := newTestService(store)
	return service, store
}

func matchIDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

// Proprieta': upcoming non contiene date passate ed e' in ordine crescente.
func TestUpcomingMatches(t *testing.T) {
	service, _ := catalogFixture(t)

	matches, err := service.GetMatchesByStatus(context.Background(), FilterUpcoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"now", "next-1h", "next-3d", "next-week"}
	if !reflect.DeepEqual(matchIDs(matches), want) {
		t.Fatalf("expected %v, got %v", want, matchIDs(matches))
	}
	for _, m := range matches {
		if m.Date.Before(testNow) {
			t.Fatalf("past match %s in upcoming", m.ID)
		}
	}
}

// Proprieta': past non contiene date future ed e' dal piu' recente.
func TestPastMatches(t *testing.T) {
	service, _ := catalogFixture(t)

	matches, err := service.GetMatchesByStatus(context.Background(), FilterPast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"past-1h", "past-2d", "past-10d"}
	if !reflect.DeepEqual(matchIDs(matches), want) {
		t.Fatalf("expected %v, got %v", want, matchIDs(matches))
	}
	for _, m := range matches {
		if !m.Date.Before(testNow) {
			t.Fatalf("future match %s in past", m.ID)
		}
	}
}

func TestMatchesByStatusInvalidFilter(t *testing.T) {
	service, _ := catalogFixture(t)
	if _, err := service.GetMatchesByStatus(context.Background(), TimeFilter("live")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// Lo store non disponibile degrada a lista vuota.
func TestCatalogDegradesToEmpty(t *testing.T) {
	service, store := catalogFixture(t)
	store.listErr = errors.New("index building")

	matches, err := service.GetMatchesByStatus(context.Background(), FilterUpcoming)
	if err != nil || matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty non-nil result, got %v %v", matches, err)
	}
	players, err := service.GetLeaderboard(context.Background())
	if err != nil || players == nil || len(players) != 0 {
		t.Fatalf("expected empty non-nil leaderboard, got %v %v", players, err)
	}
}

func TestCatalogEmptyStore(t *testing.T) {
	service, _ := newTestService(newFakeStore())

	matches, err := service.GetMatchesByStatus(context.Background(), FilterPast)
	if err != nil || matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty result, got %v %v", matches, err)
	}
}

// Proprieta': solo matchCount >= 3, rating decrescente, al massimo 20.
func TestLeaderboard(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 30; i++ {
		p := newPlayer(fmt.Sprintf("p%02d", i), float64(i%10)+0.5)
		p.MatchCount = i % 5
		store.addPlayer(p)
	}
	veteran := newPlayer("veteran", 9.9)
	veteran.MatchCount = 40
	store.addPlayer(veteran)
	rookie := newPlayer("rookie", 10)
	rookie.MatchCount = 2
	store.addPlayer(rookie)
	service, _ := newTestService(store)

	players, err := service.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) == 0 || len(players) > LeaderboardLimit {
		t.Fatalf("unexpected leaderboard size %d", len(players))
	}
	if players[0].ID != "veteran" {
		t.Fatalf("expected veteran first, got %s", players[0].ID)
	}
	for i, p := range players {
		if p.MatchCount < LeaderboardMinMatches {
			t.Fatalf("player %s has only %d matches", p.ID, p.MatchCount)
		}
		if i > 0 && players[i-1].Rating < p.Rating {
			t.Fatalf("leaderboard not sorted at %d", i)
		}
	}
}
