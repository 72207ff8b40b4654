package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"HaliSahaX/service/match/internal/match"
)

// Implementazioni di match.Store: Postgres (versione per riga) e Redis (WATCH/MULTI).
// Entrambe condividono il loop di retry e lo staging delle scritture.

// ErrNotRead indica una scrittura su un documento non letto nella transazione.
var ErrNotRead = errors.New("document not read in transaction")

// Options configura i tentativi delle transazioni ottimistiche.
type Options struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultOptions sono i valori usati quando la config non li imposta.
var DefaultOptions = Options{MaxAttempts: 5, Backoff: 20 * time.Millisecond}

func (o Options) normalize() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultOptions.MaxAttempts
	}
	if o.Backoff < 0 {
		o.Backoff = 0
	}
	return o
}

// runWithRetry ripete attempt finche' non c'e' piu' conflitto o finiscono i tentativi.
func runWithRetry(ctx context.Context, opts Options, attempt func(ctx context.Context) error) error {
	opts = opts.normalize()
	for i := 1; ; i++ {
		err := attempt(ctx)
		if !errors.Is(err, match.ErrConflict) {
			return err
		}
		if i >= opts.MaxAttempts {
			slog.Warn("transazione abbandonata dopo conflitti", "attempts", i)
			return err
		}
		slog.Debug("conflitto transazione, nuovo tentativo", "attempt", i)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Backoff * time.Duration(i)):
		}
	}
}

// staging tiene letture e scritture di un tentativo di transazione.
// version e' la versione letta (Postgres); Redis la ignora e usa WATCH.
type staging struct {
	writing bool

	matchReads  map[string]int64
	playerReads map[string]int64
	matchCache  map[string]*match.Match
	playerCache map[string]*match.Player

	matchWrites  []*match.Match
	playerWrites []*match.Player
}

func newStaging() *staging {
	return &staging{
		matchReads:  make(map[string]int64),
		playerReads: make(map[string]int64),
		matchCache:  make(map[string]*match.Match),
		playerCache: make(map[string]*match.Player),
	}
}

func (s *staging) beforeRead() error {
	if s.writing {
		return match.ErrReadAfterWrite
	}
	return nil
}

func (s *staging) cachedMatch(id string) (*match.Match, bool) {
	m, ok := s.matchCache[id]
	if !ok {
		return nil, false
	}
	return cloneMatch(m), true
}

func (s *staging) cachedPlayer(id string) (*match.Player, bool) {
	p, ok := s.playerCache[id]
	if !ok {
		return nil, false
	}
	return clonePlayer(p), true
}

func (s *staging) readMatch(m *match.Match, version int64) *match.Match {
	s.matchReads[m.ID] = version
	s.matchCache[m.ID] = m
	return cloneMatch(m)
}

func (s *staging) readPlayer(p *match.Player, version int64) *match.Player {
	s.playerReads[p.ID] = version
	s.playerCache[p.ID] = p
	return clonePlayer(p)
}

func (s *staging) putMatch(m *match.Match) error {
	s.writing = true
	if m == nil {
		return fmt.Errorf("%w: nil match", match.ErrInvalidArgument)
	}
	if _, ok := s.matchReads[m.ID]; !ok {
		return fmt.Errorf("%w: match %s", ErrNotRead, m.ID)
	}
	for i, staged := range s.matchWrites {
		if staged.ID == m.ID {
			s.matchWrites[i] = cloneMatch(m)
			return nil
		}
	}
	s.matchWrites = append(s.matchWrites, cloneMatch(m))
	return nil
}

func (s *staging) putPlayer(p *match.Player) error {
	s.writing = true
	if p == nil {
		return fmt.Errorf("%w: nil player", match.ErrInvalidArgument)
	}
	if _, ok := s.playerReads[p.ID]; !ok {
		return fmt.Errorf("%w: player %s", ErrNotRead, p.ID)
	}
	for i, staged := range s.playerWrites {
		if staged.ID == p.ID {
			s.playerWrites[i] = clonePlayer(p)
			return nil
		}
	}
	s.playerWrites = append(s.playerWrites, clonePlayer(p))
	return nil
}

func (s *staging) empty() bool {
	return len(s.matchWrites) == 0 && len(s.playerWrites) == 0
}

func cloneMatch(m *match.Match) *match.Match {
	out := *m
	out.TeamA = append([]match.RosterEntry{}, m.TeamA...)
	out.TeamB = append([]match.RosterEntry{}, m.TeamB...)
	return &out
}

func clonePlayer(p *match.Player) *match.Player {
	out := *p
	out.Badges = append([]string{}, p.Badges...)
	return &out
}
