package match

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestNewBadgesRuleTable(t *testing.T) {
	cases := []struct {
		name   string
		player Player
		want   []string
	}{
		{"fresh", Player{Rating: 5}, nil},
		{"first match", Player{MatchCount: 1, Rating: 5}, []string{"first_match"}},
		{"star", Player{MatchCount: 3, Rating: 8}, []string{"first_match", "star_player"}},
		{"star needs matches", Player{MatchCount: 2, Rating: 9}, []string{"first_match"}},
		{"veteran star", Player{MatchCount: 10, Rating: 8.1}, []string{"first_match", "veteran", "star_player"}},
		{"already owned", Player{MatchCount: 10, Rating: 4, Badges: []string{"first_match"}}, []string{"veteran"}},
	}
	for _, tc := range cases {
		got := NewBadges(&tc.player)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestRefreshBadgesAppendsOnlyNew(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(&Player{ID: "p1", MatchCount: 10, Rating: 6, Badges: []string{"first_match"}})
	service, _ := newTestService(store)

	earned, err := service.RefreshBadges(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(earned, []string{"veteran"}) {
		t.Fatalf("expected [veteran], got %v", earned)
	}
	if got := store.player("p1").Badges; !reflect.DeepEqual(got, []string{"first_match", "veteran"}) {
		t.Fatalf("unexpected badges %v", got)
	}

	earned, err = service.RefreshBadges(context.Background(), "p1")
	if err != nil || len(earned) != 0 {
		t.Fatalf("expected nothing new, got %v %v", earned, err)
	}
}

func TestRefreshBadgesErrors(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(&Player{ID: "p1", MatchCount: 1})
	store.badgesErr = errors.New("write failed")
	service, _ := newTestService(store)

	if _, err := service.RefreshBadges(context.Background(), "p1"); err == nil {
		t.Fatalf("expected write error")
	}
	if _, err := service.RefreshBadges(context.Background(), "ghost"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

// Un errore sui badge non annulla la finalizzazione gia' committata.
func TestFinalizeSurvivesBadgeFailure(t *testing.T) {
	store := newFakeStore()
	store.addPlayer(newPlayer("p1", 6))
	store.addMatch(expiredMatch("old", []RosterEntry{{ID: "p1"}}, nil))
	store.badgesErr = errors.New("write failed")
	service, _ := newTestService(store)

	done, err := service.FinalizeMatch(context.Background(), "old")
	if err != nil || !done {
		t.Fatalf("expected finalize to succeed, got %v %v", done, err)
	}
	if store.player("p1").MatchCount != 1 {
		t.Fatalf("expected matchCount 1")
	}
}
