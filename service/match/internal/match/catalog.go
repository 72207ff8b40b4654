package match

import (
	"context"
	"fmt"
)

const (
	LeaderboardMinMatches = 3
	LeaderboardLimit      = 20
)

// GetMatchesByStatus ritorna i match futuri (dal piu' vicino) o passati (dal piu' recente).
// Non fallisce mai verso il chiamante: in caso di errore ritorna una lista vuota.
func (s *Service) GetMatchesByStatus(ctx context.Context, filter TimeFilter) ([]Match, error) {
	now := s.clock.Now()

	var q MatchQuery
	switch filter {
	case FilterUpcoming:
		q = MatchQuery{From: now}
	case FilterPast:
		q = MatchQuery{To: now, Descending: true}
	default:
		return nil, fmt.Errorf("%w: status must be upcoming or past", ErrInvalidArgument)
	}

	matches, err := s.store.ListMatches(ctx, q)
	if err != nil {
		s.logger.Error("errore lettura catalogo match", "error", err, "filter", filter)
		return []Match{}, nil
	}
	if matches == nil {
		matches = []Match{}
	}
	return matches, nil
}

// GetLeaderboard ritorna i migliori giocatori con almeno tre partite, per rating.
func (s *Service) GetLeaderboard(ctx context.Context) ([]Player, error) {
	players, err := s.store.ListPlayers(ctx, PlayerQuery{
		MinMatchCount: LeaderboardMinMatches,
		Limit:         LeaderboardLimit,
	})
	if err != nil {
		s.logger.Error("errore lettura classifica", "error", err)
		return []Player{}, nil
	}
	if players == nil {
		players = []Player{}
	}
	return players, nil
}
