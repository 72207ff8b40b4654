package match

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// JoinOrSwitchTeam mette il giocatore nella squadra target.
// Se e' gia' li' non cambia nulla; altrimenti lo toglie dall'altra squadra e
// lo aggiunge in coda alla target con uno snapshot fresco del profilo.
func (s *Service) JoinOrSwitchTeam(ctx context.Context, matchID string, team Team, playerID string) (*Match, error) {
	if !team.Valid() {
		return nil, fmt.Errorf("%w: team must be A or B", ErrInvalidArgument)
	}
	if strings.TrimSpace(playerID) == "" {
		return nil, ErrUnauthenticated
	}

	m, err := s.mutateMatch(ctx, matchID, func(ctx context.Context, tx Tx, m *Match) (bool, error) {
		if containsEntry(m.Roster(team), playerID) {
			return false, nil
		}
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return false, err
		}
		joinTeam(m, team, snapshotOf(player))
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("giocatore in squadra", "match_id", matchID, "player_id", playerID, "team", team)
	return m, nil
}

// LeaveMatch toglie il giocatore da entrambe le squadre.
func (s *Service) LeaveMatch(ctx context.Context, matchID, playerID string) (*Match, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, ErrUnauthenticated
	}
	return s.mutateMatch(ctx, matchID, func(_ context.Context, _ Tx, m *Match) (bool, error) {
		before := len(m.TeamA) + len(m.TeamB)
		m.TeamA = removeEntry(m.TeamA, playerID)
		m.TeamB = removeEntry(m.TeamB, playerID)
		return len(m.TeamA)+len(m.TeamB) != before, nil
	})
}

// KickPlayer toglie un giocatore da una squadra specifica.
// Solo l'organizzatore puo' farlo e non su se stesso.
func (s *Service) KickPlayer(ctx context.Context, actorID, matchID string, team Team, playerID string) (*Match, error) {
	if !team.Valid() {
		return nil, fmt.Errorf("%w: team must be A or B", ErrInvalidArgument)
	}
	if actorID == playerID {
		return nil, fmt.Errorf("%w: organizer cannot kick themselves", ErrForbidden)
	}

	m, err := s.mutateMatch(ctx, matchID, func(_ context.Context, _ Tx, m *Match) (bool, error) {
		if m.CreatedBy != actorID {
			return false, fmt.Errorf("%w: only the organizer can kick players", ErrForbidden)
		}
		roster := m.Roster(team)
		updated := removeEntry(roster, playerID)
		if len(updated) == len(roster) {
			return false, nil
		}
		m.SetRoster(team, updated)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("giocatore rimosso", "match_id", matchID, "player_id", playerID, "team", team)
	return m, nil
}

// AddGuestPlayer aggiunge un ospite con id sintetico alla squadra target.
// Un rating non valido non fa fallire l'operazione: si usa DefaultRating.
func (s *Service) AddGuestPlayer(ctx context.Context, actorID, matchID string, team Team, name, ratingValue string) (*Match, error) {
	if !team.Valid() {
		return nil, fmt.Errorf("%w: team must be A or B", ErrInvalidArgument)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: guest name is required", ErrInvalidArgument)
	}
	rating := ParseGuestRating(ratingValue)

	var guestID string
	m, err := s.mutateMatch(ctx, matchID, func(_ context.Context, _ Tx, m *Match) (bool, error) {
		if m.CreatedBy != actorID {
			return false, fmt.Errorf("%w: only the organizer can add guests", ErrForbidden)
		}
		guestID = s.newGuestID(m)
		m.SetRoster(team, append(m.Roster(team), RosterEntry{
			ID:       guestID,
			FullName: name,
			Position: PositionUnset,
			Rating:   rating,
		}))
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ospite aggiunto", "match_id", matchID, "guest_id", guestID, "team", team)
	return m, nil
}

// ParseGuestRating converte il rating testuale dell'ospite.
func ParseGuestRating(value string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return DefaultRating
	}
	if rating < MinRating || rating > MaxRating {
		return DefaultRating
	}
	return rating
}

// newGuestID usa il timestamp in millisecondi, avanzando finche' e' unico nel match.
func (s *Service) newGuestID(m *Match) string {
	ts := s.clock.Now().UnixMilli()
	for {
		id := GuestIDPrefix + strconv.FormatInt(ts, 10)
		if _, taken := m.TeamOf(id); !taken {
			return id
		}
		ts++
	}
}

// joinTeam applica lo spostamento: filtro idempotente sull'altra squadra e append sulla target.
func joinTeam(m *Match, team Team, entry RosterEntry) {
	other := TeamB
	if team == TeamB {
		other = TeamA
	}
	m.SetRoster(other, removeEntry(m.Roster(other), entry.ID))
	m.SetRoster(team, append(removeEntry(m.Roster(team), entry.ID), entry))
}

func snapshotOf(p *Player) RosterEntry {
	position := p.Position
	if position == "" {
		position = PositionUnset
	}
	rating := p.Rating
	if rating == 0 {
		rating = DefaultRating
	}
	return RosterEntry{
		ID:       p.ID,
		FullName: p.FullName,
		Position: position,
		Rating:   rating,
	}
}

func containsEntry(entries []RosterEntry, id string) bool {
	for _, entry := range entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// removeEntry ritorna una nuova slice senza l'id, preservando l'ordine.
func removeEntry(entries []RosterEntry, id string) []RosterEntry {
	out := make([]RosterEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			out = append(out, entry)
		}
	}
	return out
}
