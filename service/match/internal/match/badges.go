package match

import "context"

// BadgeRule e' una regola della tabella dei badge.
type BadgeRule struct {
	ID        string
	Title     string
	Condition func(p *Player) bool
}

// BadgeRules e' la tabella stateless valutata su ogni profilo.
var BadgeRules = []BadgeRule{
	{
		ID:        "first_match",
		Title:     "Çaylak",
		Condition: func(p *Player) bool { return p.MatchCount >= 1 },
	},
	{
		ID:        "veteran",
		Title:     "Veteran",
		Condition: func(p *Player) bool { return p.MatchCount >= 10 },
	},
	{
		ID:        "star_player",
		Title:     "Yıldız",
		Condition: func(p *Player) bool { return p.Rating >= 8.0 && p.MatchCount >= 3 },
	},
}

// NewBadges ritorna i badge meritati ma non ancora posseduti, nell'ordine della tabella.
func NewBadges(p *Player) []string {
	var earned []string
	for _, rule := range BadgeRules {
		if !p.HasBadge(rule.ID) && rule.Condition(p) {
			earned = append(earned, rule.ID)
		}
	}
	return earned
}

// RefreshBadges valuta le regole e aggiunge i nuovi badge con un append-if-absent.
func (s *Service) RefreshBadges(ctx context.Context, playerID string) ([]string, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	earned := NewBadges(player)
	if len(earned) == 0 {
		return []string{}, nil
	}
	if err := s.store.AddBadges(ctx, playerID, earned); err != nil {
		s.logger.Error("errore aggiornamento badge", "error", err, "player_id", playerID)
		return nil, err
	}

	s.logger.Info("nuovi badge", "player_id", playerID, "badges", earned)
	return earned, nil
}

func (s *Service) refreshBadgesBestEffort(ctx context.Context, playerID string) {
	if _, err := s.RefreshBadges(ctx, playerID); err != nil {
		s.logger.Warn("badge non aggiornati", "error", err, "player_id", playerID)
	}
}
