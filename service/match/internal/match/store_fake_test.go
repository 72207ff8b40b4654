package match

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

var testNow = time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

func newTestClock() *clock.Mock {
	c := clock.NewMock()
	c.Set(testNow)
	return c
}

// fakeStore simula il document store con versioni e commit ottimistici.
type fakeStore struct {
	mu        sync.Mutex
	matches   map[string]*Match
	players   map[string]*Player
	versions  map[string]int
	listErr   error
	badgesErr error

	// conflicts forza N commit consecutivi in conflitto.
	conflicts int
	// beforeCommit gira prima della validazione del commit (scrittore concorrente).
	beforeCommit func(s *fakeStore)
	attempts     int
	maxAttempts  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		matches:     make(map[string]*Match),
		players:     make(map[string]*Player),
		versions:    make(map[string]int),
		maxAttempts: 5,
	}
}

func (s *fakeStore) addMatch(m *Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.TeamA == nil {
		m.TeamA = []RosterEntry{}
	}
	if m.TeamB == nil {
		m.TeamB = []RosterEntry{}
	}
	s.matches[m.ID] = copyMatch(m)
	s.versions["m:"+m.ID]++
}

func (s *fakeStore) addPlayer(p *Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Badges == nil {
		p.Badges = []string{}
	}
	s.players[p.ID] = copyPlayer(p)
	s.versions["p:"+p.ID]++
}

func (s *fakeStore) match(id string) *Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMatch(s.matches[id])
}

func (s *fakeStore) player(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPlayer(s.players[id])
}

func (s *fakeStore) RunTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	for attempt := 1; ; attempt++ {
		s.mu.Lock()
		s.attempts++
		s.mu.Unlock()

		tx := &fakeTx{store: s, reads: make(map[string]int)}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		err := s.commit(tx)
		if !errors.Is(err, ErrConflict) || attempt >= s.maxAttempts {
			return err
		}
	}
}

func (s *fakeStore) commit(tx *fakeTx) error {
	if len(tx.matchWrites) == 0 && len(tx.playerWrites) == 0 {
		return nil
	}
	if s.beforeCommit != nil {
		s.beforeCommit(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflicts > 0 {
		s.conflicts--
		return ErrConflict
	}
	for key, version := range tx.reads {
		if tx.written[key] && s.versions[key] != version {
			return ErrConflict
		}
	}
	for _, m := range tx.matchWrites {
		s.matches[m.ID] = copyMatch(m)
		s.versions["m:"+m.ID]++
	}
	for _, p := range tx.playerWrites {
		s.players[p.ID] = copyPlayer(p)
		s.versions["p:"+p.ID]++
	}
	return nil
}

func (s *fakeStore) GetMatch(_ context.Context, id string) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return copyMatch(m), nil
}

func (s *fakeStore) GetPlayer(_ context.Context, id string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return copyPlayer(p), nil
}

func (s *fakeStore) CreateMatch(_ context.Context, m *Match) error {
	s.addMatch(m)
	return nil
}

func (s *fakeStore) DeleteMatch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; !ok {
		return ErrMatchNotFound
	}
	delete(s.matches, id)
	s.versions["m:"+id]++
	return nil
}

func (s *fakeStore) CreatePlayer(_ context.Context, p *Player) error {
	s.mu.Lock()
	_, exists := s.players[p.ID]
	s.mu.Unlock()
	if exists {
		return ErrInvalidArgument
	}
	s.addPlayer(p)
	return nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, id string, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	p.FullName = update.FullName
	p.Position = update.Position
	p.PreferredFoot = update.PreferredFoot
	p.Age = update.Age
	s.versions["p:"+id]++
	return nil
}

func (s *fakeStore) SetTeamColor(_ context.Context, matchID string, team Team, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[matchID]
	if !ok {
		return ErrMatchNotFound
	}
	if team == TeamA {
		m.ColorA = color
	} else {
		m.ColorB = color
	}
	s.versions["m:"+matchID]++
	return nil
}

func (s *fakeStore) AddBadges(_ context.Context, playerID string, badges []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.badgesErr != nil {
		return s.badgesErr
	}
	p, ok := s.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	for _, badge := range badges {
		if !p.HasBadge(badge) {
			p.Badges = append(p.Badges, badge)
		}
	}
	s.versions["p:"+playerID]++
	return nil
}

func (s *fakeStore) ListMatches(_ context.Context, q MatchQuery) ([]Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []Match
	for _, m := range s.matches {
		if !q.From.IsZero() && m.Date.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !m.Date.Before(q.To) {
			continue
		}
		if q.Status != "" && m.Status != q.Status {
			continue
		}
		out = append(out, *copyMatch(m))
	}
	slices.SortFunc(out, func(a, b Match) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			if q.Descending {
				return -c
			}
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *fakeStore) ListPlayers(_ context.Context, q PlayerQuery) ([]Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []Player
	for _, p := range s.players {
		if p.MatchCount >= q.MinMatchCount {
			out = append(out, *copyPlayer(p))
		}
	}
	slices.SortFunc(out, func(a, b Player) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// fakeTx applica le stesse regole dello store reale: letture prima delle scritture,
// scritture solo su documenti letti.
type fakeTx struct {
	store        *fakeStore
	reads        map[string]int
	written      map[string]bool
	writing      bool
	matchWrites  []*Match
	playerWrites []*Player
}

func (t *fakeTx) GetMatch(ctx context.Context, id string) (*Match, error) {
	if t.writing {
		return nil, ErrReadAfterWrite
	}
	t.store.mu.Lock()
	t.reads["m:"+id] = t.store.versions["m:"+id]
	t.store.mu.Unlock()
	return t.store.GetMatch(ctx, id)
}

func (t *fakeTx) GetPlayer(ctx context.Context, id string) (*Player, error) {
	if t.writing {
		return nil, ErrReadAfterWrite
	}
	t.store.mu.Lock()
	t.reads["p:"+id] = t.store.versions["p:"+id]
	t.store.mu.Unlock()
	return t.store.GetPlayer(ctx, id)
}

func (t *fakeTx) PutMatch(m *Match) error {
	t.writing = true
	return t.markWritten("m:"+m.ID, func() { t.matchWrites = append(t.matchWrites, copyMatch(m)) })
}

func (t *fakeTx) PutPlayer(p *Player) error {
	t.writing = true
	return t.markWritten("p:"+p.ID, func() { t.playerWrites = append(t.playerWrites, copyPlayer(p)) })
}

func (t *fakeTx) markWritten(key string, stage func()) error {
	if _, ok := t.reads[key]; !ok {
		return errors.New("write without read")
	}
	if t.written == nil {
		t.written = make(map[string]bool)
	}
	t.written[key] = true
	stage()
	return nil
}

func copyMatch(m *Match) *Match {
	if m == nil {
		return nil
	}
	out := *m
	out.TeamA = append([]RosterEntry{}, m.TeamA...)
	out.TeamB = append([]RosterEntry{}, m.TeamB...)
	return &out
}

func copyPlayer(p *Player) *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Badges = append([]string{}, p.Badges...)
	return &out
}

// upcomingMatch crea un match futuro organizzato da "org".
func upcomingMatch(id string) *Match {
	return &Match{
		ID:        id,
		Location:  "Kadıköy Arena",
		Price:     "1500",
		Date:      testNow.Add(24 * time.Hour),
		CreatedBy: "org",
		Status:    StatusUpcoming,
		ColorA:    DefaultColorA,
		ColorB:    DefaultColorB,
	}
}

func newPlayer(id string, rating float64) *Player {
	return &Player{ID: id, FullName: "Player " + id, Position: PositionMidfield, Rating: rating}
}
