package match

import (
	"context"
	"fmt"
	"strings"
)

const (
	MinScore = 1
	MaxScore = 10
)

// SubmitBatchRatings applica i voti di un rater in una sola transazione.
// Prima tutte le letture, poi tutte le scritture; i guest non hanno profilo e
// vengono saltati. Ritorna gli id dei giocatori aggiornati.
func (s *Service) SubmitBatchRatings(ctx context.Context, raterID string, entries []RatingEntry) ([]string, error) {
	if strings.TrimSpace(raterID) == "" {
		return nil, ErrUnauthenticated
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no ratings submitted", ErrInvalidArgument)
	}
	for _, entry := range entries {
		if strings.TrimSpace(entry.TargetPlayerID) == "" {
			return nil, fmt.Errorf("%w: target player is required", ErrInvalidArgument)
		}
		if entry.TargetPlayerID == raterID {
			return nil, fmt.Errorf("%w: players cannot rate themselves", ErrInvalidArgument)
		}
		if entry.Score < MinScore || entry.Score > MaxScore {
			return nil, fmt.Errorf("%w: score %d out of range", ErrInvalidArgument, entry.Score)
		}
	}

	var updated []string
	err := s.store.RunTx(ctx, func(ctx context.Context, tx Tx) error {
		updated = nil
		staged := make(map[string]*Player, len(entries))

		// 1) Letture: un solo get per giocatore, i voti duplicati si sommano sullo staging.
		for _, entry := range entries {
			if IsGuestID(entry.TargetPlayerID) {
				continue
			}
			player, ok := staged[entry.TargetPlayerID]
			if !ok {
				read, err := tx.GetPlayer(ctx, entry.TargetPlayerID)
				if err != nil {
					return err
				}
				player = read
				staged[player.ID] = player
				updated = append(updated, player.ID)
			}
			ApplyScore(player, entry.Score)
		}

		// 2) Scritture.
		for _, id := range updated {
			if err := tx.PutPlayer(staged[id]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("errore puntuazione", "error", err, "rater_id", raterID)
		}
		return nil, err
	}

	s.logger.Info("voti registrati", "rater_id", raterID, "players", len(updated))
	for _, id := range updated {
		s.refreshBadgesBestEffort(ctx, id)
	}
	return updated, nil
}

// ApplyScore aggiorna la media pesata incrementale.
// Al primo voto il rating diventa esattamente il punteggio: il seed 5.0 non entra nella media.
func ApplyScore(p *Player, score int) {
	rating := p.Rating
	if rating == 0 {
		rating = DefaultRating
	}
	votes := p.TotalVotes
	newVotes := votes + 1

	if votes == 0 {
		p.Rating = float64(score)
	} else {
		p.Rating = (rating*float64(votes) + float64(score)) / float64(newVotes)
	}
	p.TotalVotes = newVotes
}
