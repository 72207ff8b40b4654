package match

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func entries(ratings map[string]float64, order ...string) []RosterEntry {
	out := make([]RosterEntry, 0, len(order))
	for _, id := range order {
		out = append(out, RosterEntry{ID: id, FullName: id, Rating: ratings[id]})
	}
	return out
}

func TestBalanceRosterGreedy(t *testing.T) {
	ratings := map[string]float64{"a": 9, "b": 8, "c": 7, "d": 6, "e": 5, "f": 4}
	teamA, teamB := BalanceRoster(entries(ratings, "a", "c", "e"), entries(ratings, "b", "d", "f"))

	// 9->A, 8->B, 7->B, 6->A, 5->A (parita' 15-15), 4->B.
	gotA := rosterIDs(teamA)
	gotB := rosterIDs(teamB)
	if !reflect.DeepEqual(gotA, []string{"a", "d", "e"}) || !reflect.DeepEqual(gotB, []string{"b", "c", "f"}) {
		t.Fatalf("unexpected split A=%v B=%v", gotA, gotB)
	}
	if diff := math.Abs(RosterSum(teamA) - RosterSum(teamB)); diff > 1 {
		t.Fatalf("expected balanced sums, diff=%v", diff)
	}
}

func TestBalanceRosterTiesGoToA(t *testing.T) {
	ratings := map[string]float64{"x": 5, "y": 5}
	teamA, teamB := BalanceRoster(nil, entries(ratings, "x", "y"))
	if len(teamA) != 1 || teamA[0].ID != "x" {
		t.Fatalf("first player must go to A on tie, got A=%v", rosterIDs(teamA))
	}
	if len(teamB) != 1 || teamB[0].ID != "y" {
		t.Fatalf("expected y in B, got %v", rosterIDs(teamB))
	}
}

// Stabile: a parita' di rating resta l'ordine A poi B.
func TestBalanceRosterStableSort(t *testing.T) {
	ratings := map[string]float64{"a1": 6, "a2": 6, "b1": 6, "b2": 6}
	teamA, teamB := BalanceRoster(entries(ratings, "a1", "a2"), entries(ratings, "b1", "b2"))
	if !reflect.DeepEqual(rosterIDs(teamA), []string{"a1", "b1"}) || !reflect.DeepEqual(rosterIDs(teamB), []string{"a2", "b2"}) {
		t.Fatalf("unexpected split A=%v B=%v", rosterIDs(teamA), rosterIDs(teamB))
	}
}

// Proprieta': stesso input, stessa assegnazione a ogni esecuzione.
func TestBalanceRosterDeterministic(t *testing.T) {
	ratings := map[string]float64{"a": 7.2, "b": 3.1, "c": 7.2, "d": 9, "e": 1, "f": 5.5, "g": 5.5}
	inA := entries(ratings, "a", "b", "c", "d")
	inB := entries(ratings, "e", "f", "g")

	firstA, firstB := BalanceRoster(inA, inB)
	for i := 0; i < 50; i++ {
		gotA, gotB := BalanceRoster(inA, inB)
		if !reflect.DeepEqual(gotA, firstA) || !reflect.DeepEqual(gotB, firstB) {
			t.Fatalf("run %d differs: A=%v B=%v", i, rosterIDs(gotA), rosterIDs(gotB))
		}
	}
	if len(firstA)+len(firstB) != 7 {
		t.Fatalf("players lost during balance")
	}
	if !reflect.DeepEqual(rosterIDs(inA), []string{"a", "b", "c", "d"}) {
		t.Fatalf("input roster must not be mutated")
	}
}

func TestBalanceRosterEmpty(t *testing.T) {
	teamA, teamB := BalanceRoster(nil, nil)
	if len(teamA) != 0 || len(teamB) != 0 {
		t.Fatalf("expected empty teams")
	}
}

func TestBalanceTeamsPersistsWithGuests(t *testing.T) {
	store := newFakeStore()
	m := upcomingMatch("m1")
	m.TeamA = []RosterEntry{{ID: "p1", Rating: 9}, {ID: "p2", Rating: 8}, {ID: "guest_1", Rating: 7}}
	m.TeamB = []RosterEntry{{ID: "p3", Rating: 2}}
	store.addMatch(m)
	service, _ := newTestService(store)

	got, err := service.BalanceTeams(context.Background(), "org", "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rosterIDs(got.TeamA), []string{"p1", "p3"}) || !reflect.DeepEqual(rosterIDs(got.TeamB), []string{"p2", "guest_1"}) {
		t.Fatalf("unexpected split A=%v B=%v", rosterIDs(got.TeamA), rosterIDs(got.TeamB))
	}
	persisted := store.match("m1")
	if !reflect.DeepEqual(persisted.TeamA, got.TeamA) || !reflect.DeepEqual(persisted.TeamB, got.TeamB) {
		t.Fatalf("balance not persisted")
	}
}

func TestBalanceTeamsMissingMatch(t *testing.T) {
	service, _ := newTestService(newFakeStore())
	if _, err := service.BalanceTeams(context.Background(), "org", "nope"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestBalanceTeamsOnlyOrganizer(t *testing.T) {
	store := newFakeStore()
	m := upcomingMatch("m1")
	m.TeamA = []RosterEntry{{ID: "p1", Rating: 9}, {ID: "p2", Rating: 8}}
	store.addMatch(m)
	service, _ := newTestService(store)

	if _, err := service.BalanceTeams(context.Background(), "p1", "m1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if got := rosterIDs(store.match("m1").TeamA); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Fatalf("roster changed by non organizer: %v", got)
	}
}
