package match

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// BalanceTeams ridistribuisce tutti i giocatori del match tra le due squadre.
// Guest e giocatori reali sono trattati allo stesso modo; solo l'organizzatore puo' farlo.
func (s *Service) BalanceTeams(ctx context.Context, actorID, matchID string) (*Match, error) {
	m, err := s.mutateMatch(ctx, matchID, func(_ context.Context, _ Tx, m *Match) (bool, error) {
		if m.CreatedBy != actorID {
			return false, fmt.Errorf("%w: only the organizer can balance teams", ErrForbidden)
		}
		m.TeamA, m.TeamB = BalanceRoster(m.TeamA, m.TeamB)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("squadre bilanciate", "match_id", matchID, "actor_id", actorID,
		"team_a", len(m.TeamA), "team_b", len(m.TeamB))
	return m, nil
}

// BalanceRoster e' l'euristica greedy: ordina per rating decrescente (stabile)
// e assegna ogni giocatore alla squadra con somma piu' bassa, A a parita'.
func BalanceRoster(teamA, teamB []RosterEntry) ([]RosterEntry, []RosterEntry) {
	all := make([]RosterEntry, 0, len(teamA)+len(teamB))
	all = append(all, teamA...)
	all = append(all, teamB...)

	slices.SortStableFunc(all, func(a, b RosterEntry) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	newA := make([]RosterEntry, 0, (len(all)+1)/2)
	newB := make([]RosterEntry, 0, len(all)/2)
	var sumA, sumB float64
	for _, entry := range all {
		if sumA <= sumB {
			newA = append(newA, entry)
			sumA += entry.Rating
		} else {
			newB = append(newB, entry)
			sumB += entry.Rating
		}
	}
	return newA, newB
}

// RosterSum ritorna la somma dei rating di una squadra.
func RosterSum(entries []RosterEntry) float64 {
	var sum float64
	for _, entry := range entries {
		sum += entry.Rating
	}
	return sum
}
