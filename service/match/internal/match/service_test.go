package match

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func newTestService(store Store) (*Service, *clock.Mock) {
	c := newTestClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, c, logger), c
}

// Caso: match creato con squadre vuote, colori di default e id generato.
func TestCreateMatch(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(store)

	m, err := service.CreateMatch(context.Background(), "org", " Kadıköy ", "1500 TL", "TR00", testNow.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.CreatedBy != "org" || m.Status != StatusUpcoming {
		t.Fatalf("unexpected match: %+v", m)
	}
	if m.Location != "Kadıköy" {
		t.Fatalf("expected trimmed location, got %q", m.Location)
	}
	if m.ColorA != DefaultColorA || m.ColorB != DefaultColorB {
		t.Fatalf("unexpected colors: %s %s", m.ColorA, m.ColorB)
	}
	if len(m.TeamA) != 0 || len(m.TeamB) != 0 {
		t.Fatalf("expected empty teams")
	}
	if store.match(m.ID) == nil {
		t.Fatalf("match not persisted")
	}
}

func TestCreateMatchValidation(t *testing.T) {
	service, _ := newTestService(newFakeStore())
	ctx := context.Background()

	if _, err := service.CreateMatch(ctx, "", "x", "1", "", testNow); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := service.CreateMatch(ctx, "org", "", "1", "", testNow); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for location, got %v", err)
	}
	if _, err := service.CreateMatch(ctx, "org", "x", "1", "", time.Time{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for date, got %v", err)
	}
}

// Un match con data passata (o uguale a ora) non viene creato.
func TestCreateMatchRejectsPastDate(t *testing.T) {
	store := newFakeStore()
	service, clk := newTestService(store)
	ctx := context.Background()

	for _, date := range []time.Time{testNow.Add(-time.Hour), testNow} {
		if _, err := service.CreateMatch(ctx, "org", "x", "1", "", date); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %v, got %v", date, err)
		}
	}
	if matches, _ := store.ListMatches(ctx, MatchQuery{}); len(matches) != 0 {
		t.Fatalf("expected no match persisted, got %d", len(matches))
	}

	clk.Add(time.Minute)
	if _, err := service.CreateMatch(ctx, "org", "x", "1", "", testNow.Add(2*time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteMatchOnlyOrganizer(t *testing.T) {
	store := newFakeStore()
	store.addMatch(upcomingMatch("m1"))
	service, _ := newTestService(store)
	ctx := context.Background()

	if err := service.DeleteMatch(ctx, "intruder", "m1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := service.DeleteMatch(ctx, "org", "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.DeleteMatch(ctx, "org", "m1"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestRegisterPlayerSeedsStats(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(store)

	p, err := service.RegisterPlayer(context.Background(), "u1", ProfileUpdate{FullName: "Emre", Position: "Forward", Age: 27})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Rating != DefaultRating || p.TotalVotes != 0 || p.MatchCount != 0 {
		t.Fatalf("unexpected stats: %+v", p)
	}
	if p.Position != PositionForward {
		t.Fatalf("expected forward, got %s", p.Position)
	}
	if len(p.Badges) != 0 {
		t.Fatalf("expected no badges, got %v", p.Badges)
	}

	if _, err := service.RegisterPlayer(context.Background(), "u2", ProfileUpdate{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := service.RegisterPlayer(context.Background(), "guest_123", ProfileUpdate{FullName: "x"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for reserved id, got %v", err)
	}
}

func TestUpdateProfileKeepsStats(t *testing.T) {
	store := newFakeStore()
	p := newPlayer("u1", 7.5)
	p.TotalVotes = 4
	p.MatchCount = 2
	store.addPlayer(p)
	service, _ := newTestService(store)

	err := service.UpdateProfile(context.Background(), "u1", ProfileUpdate{FullName: "  Burak ", Position: "keeper?", Age: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := store.player("u1")
	if got.FullName != "Burak" || got.Position != PositionUnset || got.Age != 30 {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Rating != 7.5 || got.TotalVotes != 4 || got.MatchCount != 2 {
		t.Fatalf("stats must not change: %+v", got)
	}

	if err := service.UpdateProfile(context.Background(), "ghost", ProfileUpdate{FullName: "x"}); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestUpdateTeamColor(t *testing.T) {
	store := newFakeStore()
	store.addMatch(upcomingMatch("m1"))
	service, _ := newTestService(store)
	ctx := context.Background()

	if err := service.UpdateTeamColor(ctx, "m1", TeamB, "#1a2b3c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.match("m1").ColorB; got != "#1A2B3C" {
		t.Fatalf("expected #1A2B3C, got %s", got)
	}

	for _, color := range []string{"red", "#12345", "#GGGGGG", "123456"} {
		if err := service.UpdateTeamColor(ctx, "m1", TeamA, color); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %q, got %v", color, err)
		}
	}
	if err := service.UpdateTeamColor(ctx, "m1", Team("C"), "#000000"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for team, got %v", err)
	}
	if err := service.UpdateTeamColor(ctx, "missing", TeamA, "#000000"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

// Caso: un conflitto transitorio viene ritentato in modo trasparente.
func TestTransactionRetriedOnConflict(t *testing.T) {
	store := newFakeStore()
	store.addMatch(upcomingMatch("m1"))
	store.addPlayer(newPlayer("p1", 6))
	store.conflicts = 2
	service, _ := newTestService(store)

	m, err := service.JoinOrSwitchTeam(context.Background(), "m1", TeamA, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.TeamA) != 1 {
		t.Fatalf("expected player in team A, got %+v", m.TeamA)
	}
	if store.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", store.attempts)
	}
}

// Caso: conflitti oltre il limite vengono propagati.
func TestTransactionConflictSurfaced(t *testing.T) {
	store := newFakeStore()
	store.addMatch(upcomingMatch("m1"))
	store.addPlayer(newPlayer("p1", 6))
	store.conflicts = 10
	service, _ := newTestService(store)

	_, err := service.JoinOrSwitchTeam(context.Background(), "m1", TeamA, "p1")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(store.match("m1").TeamA) != 0 {
		t.Fatalf("no partial application expected")
	}
}
